package analyses

import "time"

// AnalysisResponse is the outward-facing shape of an analysis. List fields
// are always present, empty rather than null. Scalar fields the model did
// not report serialize as null.
type AnalysisResponse struct {
	ID                     string    `json:"id"`
	CreatedAt              time.Time `json:"created_at"`
	OverallScore           *int      `json:"overall_score"`
	ExperienceSummary      *string   `json:"experience_summary"`
	SkillsTechnical        []string  `json:"skills_technical"`
	SkillsSoft             []string  `json:"skills_soft"`
	Strengths              []string  `json:"strengths"`
	Gaps                   []string  `json:"gaps"`
	ImprovementSuggestions []string  `json:"improvement_suggestions"`
}

func toResponse(analysis Analysis, result Result) AnalysisResponse {
	return AnalysisResponse{
		ID:                     analysis.ID,
		CreatedAt:              analysis.CreatedAt,
		OverallScore:           result.OverallScore,
		ExperienceSummary:      result.ExperienceSummary,
		SkillsTechnical:        result.Skills.Technical,
		SkillsSoft:             result.Skills.Soft,
		Strengths:              result.Strengths,
		Gaps:                   result.Gaps,
		ImprovementSuggestions: result.ImprovementSuggestions,
	}
}
