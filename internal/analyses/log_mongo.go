package analyses

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const logsCollection = "ai_logs"

// MongoLogRepo appends model interactions to the ai_logs collection.
type MongoLogRepo struct {
	DB *mongo.Database
}

func (r *MongoLogRepo) Append(ctx context.Context, entry LogEntry) error {
	doc := bson.M{
		"analysis_id":  entry.AnalysisID,
		"resume_id":    entry.ResumeID,
		"user_id":      entry.UserID,
		"raw_response": entry.RawResponse,
		"result": bson.M{
			"overall_score":           entry.Result.OverallScore,
			"experience_summary":      entry.Result.ExperienceSummary,
			"skills_technical":        entry.Result.Skills.Technical,
			"skills_soft":             entry.Result.Skills.Soft,
			"strengths":               entry.Result.Strengths,
			"gaps":                    entry.Result.Gaps,
			"improvement_suggestions": entry.Result.ImprovementSuggestions,
		},
		"created_at": time.Now().UTC(),
	}
	_, err := r.DB.Collection(logsCollection).InsertOne(ctx, doc)
	return err
}

func (r *MongoLogRepo) DeleteByResume(ctx context.Context, resumeID string) error {
	_, err := r.DB.Collection(logsCollection).DeleteMany(ctx, bson.M{"resume_id": resumeID})
	return err
}
