package resumes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/shared/storage/object"
	"resume-analyzer/internal/shared/telemetry"
)

// AnalysisPurger removes analysis records tied to a resume. Implemented by
// the analyses service and wired in at bootstrap.
type AnalysisPurger interface {
	PurgeByResume(ctx context.Context, resumeID string) error
}

type Service struct {
	Repo   Repo
	Mirror TextMirror
	Store  object.ObjectStore
	Purger AnalysisPurger
}

type CreateInput struct {
	Title          string
	ResumeText     string
	TargetRole     string
	JobDescription string
}

type UpdateInput struct {
	Title          string
	ResumeText     string
	TargetRole     string
	JobDescription string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Resume, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ResumeText) == "" {
		return Resume{}, ErrInvalidInput
	}
	now := time.Now().UTC()
	resume := Resume{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          strings.TrimSpace(in.Title),
		ResumeText:     in.ResumeText,
		TargetRole:     strings.TrimSpace(in.TargetRole),
		JobDescription: in.JobDescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	s.mirrorText(ctx, resume)
	return resume, nil
}

// CreateFromFile stores the uploaded file, extracts its text, and records
// the resume with the extracted text as its body.
func (s *Service) CreateFromFile(ctx context.Context, userID, title, fileName, mimeType string, data []byte) (Resume, error) {
	if strings.TrimSpace(fileName) == "" || len(data) == 0 {
		return Resume{}, ErrInvalidInput
	}

	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return Resume{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		return Resume{}, fmt.Errorf("extract resume text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Resume{}, fmt.Errorf("%w: file contained no text", ErrInvalidInput)
	}

	var storageKey string
	if s.Store != nil {
		key, _, _, err := s.Store.Save(ctx, userID, fileName, strings.NewReader(string(data)))
		if err != nil {
			return Resume{}, fmt.Errorf("store resume file: %w", err)
		}
		storageKey = key
	}

	if strings.TrimSpace(title) == "" {
		title = fileName
	}
	now := time.Now().UTC()
	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      strings.TrimSpace(title),
		ResumeText: text,
		StorageKey: storageKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	s.mirrorText(ctx, resume)
	return resume, nil
}

func (s *Service) Get(ctx context.Context, resumeID, userID string) (Resume, error) {
	return s.Repo.GetOwned(ctx, resumeID, userID)
}

func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, resumeID, userID string, in UpdateInput) (Resume, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ResumeText) == "" {
		return Resume{}, ErrInvalidInput
	}
	existing, err := s.Repo.GetOwned(ctx, resumeID, userID)
	if err != nil {
		return Resume{}, err
	}
	existing.Title = strings.TrimSpace(in.Title)
	existing.ResumeText = in.ResumeText
	existing.TargetRole = strings.TrimSpace(in.TargetRole)
	existing.JobDescription = in.JobDescription
	existing.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Resume{}, err
	}
	s.mirrorText(ctx, existing)
	return existing, nil
}

// Delete removes the resume row, its analyses, and its mirrored text.
// The delete is only finished once the analysis cascade and the
// document-store cleanup have both completed, so their failures fail
// the call.
func (s *Service) Delete(ctx context.Context, resumeID, userID string) error {
	if err := s.Repo.Delete(ctx, resumeID, userID); err != nil {
		return err
	}
	if s.Purger != nil {
		if err := s.Purger.PurgeByResume(ctx, resumeID); err != nil {
			telemetry.Error("resumes.purge_analyses_failed", map[string]any{
				"resume_id": resumeID,
				"error":     err.Error(),
			})
			return fmt.Errorf("purge analyses: %w", err)
		}
	}
	if s.Mirror != nil {
		if err := s.Mirror.Delete(ctx, resumeID); err != nil {
			telemetry.Error("resumes.mirror_delete_failed", map[string]any{
				"resume_id": resumeID,
				"error":     err.Error(),
			})
			return fmt.Errorf("delete text mirror: %w", err)
		}
	}
	return nil
}

// OpenFile streams the originally uploaded file for a resume the user owns.
func (s *Service) OpenFile(ctx context.Context, resumeID, userID string) (io.ReadCloser, string, error) {
	resume, err := s.Repo.GetOwned(ctx, resumeID, userID)
	if err != nil {
		return nil, "", err
	}
	if resume.StorageKey == "" || s.Store == nil {
		return nil, "", ErrNotFound
	}
	rc, err := s.Store.Open(ctx, resume.StorageKey)
	if err != nil {
		return nil, "", err
	}
	return rc, resume.Title, nil
}

func (s *Service) mirrorText(ctx context.Context, resume Resume) {
	if s.Mirror == nil {
		return
	}
	if err := s.Mirror.Save(ctx, resume.ID, resume.UserID, resume.ResumeText, resume.JobDescription); err != nil {
		telemetry.Error("resumes.mirror_save_failed", map[string]any{
			"resume_id": resume.ID,
			"error":     err.Error(),
		})
	}
}
