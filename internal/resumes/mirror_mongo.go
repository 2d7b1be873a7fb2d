package resumes

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const textsCollection = "resume_texts"

type MongoTextMirror struct {
	DB *mongo.Database
}

func (m *MongoTextMirror) Save(ctx context.Context, resumeID, userID, resumeText, jobDescription string) error {
	filter := bson.M{"resume_id": resumeID}
	update := bson.M{"$set": bson.M{
		"resume_id":       resumeID,
		"user_id":         userID,
		"resume_text":     resumeText,
		"job_description": jobDescription,
		"updated_at":      time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := m.DB.Collection(textsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoTextMirror) Delete(ctx context.Context, resumeID string) error {
	_, err := m.DB.Collection(textsCollection).DeleteOne(ctx, bson.M{"resume_id": resumeID})
	return err
}
