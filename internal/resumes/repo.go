package resumes

import "context"

// Repo defines ownership-scoped persistence for resumes. Reads and writes
// that take a userID only touch rows owned by that user.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetOwned(ctx context.Context, resumeID, userID string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, resumeID, userID string) error
}
