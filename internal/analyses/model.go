package analyses

import "time"

// Skills groups the skill lists reported by the model.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Result is the structured evaluation decoded from the model's response.
// List fields are always non-nil after decoding. Scalar fields are
// pointers so a score the model omitted stays distinguishable from an
// explicit zero.
type Result struct {
	OverallScore           *int     `json:"overall_score"`
	ExperienceSummary      *string  `json:"experience_summary"`
	Skills                 Skills   `json:"skills"`
	Strengths              []string `json:"strengths"`
	Gaps                   []string `json:"gaps"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// Analysis is the stored record of one completed evaluation. List fields
// are flattened to single strings for the relational store: skills join on
// ", " and the remaining lists join on newlines.
type Analysis struct {
	ID                     string
	ResumeID               string
	OverallScore           *int
	ExperienceSummary      *string
	SkillsTechnical        string
	SkillsSoft             string
	Strengths              string
	Gaps                   string
	ImprovementSuggestions string
	CreatedAt              time.Time
}
