package resumes

import "context"

// TextMirror keeps a copy of each resume's plain text and target job
// description in the document store so analysis tooling can read them
// without touching the relational database. Mirror writes are best effort;
// callers log failures and move on. Deletes are part of resume removal
// and their failures propagate.
type TextMirror interface {
	Save(ctx context.Context, resumeID, userID, resumeText, jobDescription string) error
	Delete(ctx context.Context, resumeID string) error
}
