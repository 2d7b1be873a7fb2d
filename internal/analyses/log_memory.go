package analyses

import (
	"context"
	"sync"
)

type MemoryLogRepo struct {
	mu      sync.RWMutex
	entries []LogEntry
	failErr error
}

func NewMemoryLogRepo() *MemoryLogRepo {
	return &MemoryLogRepo{}
}

func (r *MemoryLogRepo) Append(ctx context.Context, entry LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *MemoryLogRepo) DeleteByResume(ctx context.Context, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.ResumeID != resumeID {
			kept = append(kept, entry)
		}
	}
	r.entries = kept
	return nil
}

// FailWith makes subsequent appends return err. Used in tests.
func (r *MemoryLogRepo) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

// Entries returns a copy of the appended entries.
func (r *MemoryLogRepo) Entries() []LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
