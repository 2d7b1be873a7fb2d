package resumes

import (
	"context"
	"sync"
)

type mirrorEntry struct {
	userID         string
	resumeText     string
	jobDescription string
}

type MemoryTextMirror struct {
	mu      sync.RWMutex
	entries map[string]mirrorEntry
}

func NewMemoryTextMirror() *MemoryTextMirror {
	return &MemoryTextMirror{entries: make(map[string]mirrorEntry)}
}

func (m *MemoryTextMirror) Save(ctx context.Context, resumeID, userID, resumeText, jobDescription string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[resumeID] = mirrorEntry{
		userID:         userID,
		resumeText:     resumeText,
		jobDescription: jobDescription,
	}
	return nil
}

func (m *MemoryTextMirror) Delete(ctx context.Context, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, resumeID)
	return nil
}

// Text returns the mirrored resume text for tests.
func (m *MemoryTextMirror) Text(resumeID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[resumeID]
	return entry.resumeText, ok
}

// JobDescription returns the mirrored job description for tests.
func (m *MemoryTextMirror) JobDescription(resumeID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[resumeID]
	return entry.jobDescription, ok
}
