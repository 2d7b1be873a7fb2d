package analyses

import "context"

// Repo defines relational persistence for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetLatestByResume(ctx context.Context, resumeID string) (Analysis, error)
	ListByResume(ctx context.Context, resumeID string) ([]Analysis, error)
	DeleteByResume(ctx context.Context, resumeID string) error
}

// LogEntry is one raw model interaction appended to the document store.
type LogEntry struct {
	AnalysisID  string
	ResumeID    string
	UserID      string
	RawResponse string
	Result      Result
}

// LogRepo appends analysis interactions to the document store. Appends are
// observable but non-fatal; callers log failures and keep going.
type LogRepo interface {
	Append(ctx context.Context, entry LogEntry) error
	DeleteByResume(ctx context.Context, resumeID string) error
}
