package analyses

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	analyses map[string]Analysis
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{analyses: make(map[string]Analysis)}
}

func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses[analysis.ID] = analysis
	return nil
}

func (r *MemoryRepo) GetLatestByResume(ctx context.Context, resumeID string) (Analysis, error) {
	items, err := r.ListByResume(ctx, resumeID)
	if err != nil {
		return Analysis{}, err
	}
	if len(items) == 0 {
		return Analysis{}, ErrNotFound
	}
	return items[0], nil
}

func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Analysis
	for _, analysis := range r.analyses {
		if analysis.ResumeID == resumeID {
			out = append(out, analysis)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) DeleteByResume(ctx context.Context, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, analysis := range r.analyses {
		if analysis.ResumeID == resumeID {
			delete(r.analyses, id)
		}
	}
	return nil
}
