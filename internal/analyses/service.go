package analyses

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/resumes"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/telemetry"
)

// Service runs the analysis pipeline: build the prompt, call the model,
// extract and decode the structured result, then persist it.
type Service struct {
	Repo       Repo
	Logs       LogRepo
	ResumeRepo resumes.Repo
	LLM        llm.Client
}

// Analyze runs one synchronous evaluation of the resume. The relational
// write is authoritative and happens first; the document-log append is
// best effort. The returned record is built from the in-memory result,
// not read back from storage.
func (s *Service) Analyze(ctx context.Context, resumeID, userID string) (Analysis, Result, error) {
	resume, err := s.ResumeRepo.GetOwned(ctx, resumeID, userID)
	if err != nil {
		return Analysis{}, Result{}, err
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	messages := llm.BuildAnalysisPrompt(resume.ResumeText, resume.JobDescription)
	raw, err := s.LLM.Complete(ctx, messages)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, Result{}, fmt.Errorf("model completion: %w", err)
	}

	payload, err := ExtractJSONBlock(raw)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, Result{}, err
	}
	result, err := DecodeResult(payload)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, Result{}, err
	}

	analysis := flattenResult(result)
	analysis.ID = uuid.NewString()
	analysis.ResumeID = resume.ID
	analysis.CreatedAt = time.Now().UTC()

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, Result{}, fmt.Errorf("persist analysis: %w", err)
	}
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))

	if s.Logs != nil {
		entry := LogEntry{
			AnalysisID:  analysis.ID,
			ResumeID:    resume.ID,
			UserID:      userID,
			RawResponse: raw,
			Result:      result,
		}
		if err := s.Logs.Append(ctx, entry); err != nil {
			telemetry.Error("analyses.log_append_failed", map[string]any{
				"analysis_id": analysis.ID,
				"resume_id":   resume.ID,
				"error":       err.Error(),
			})
		}
	}

	return analysis, result, nil
}

// Latest returns the most recent stored analysis for a resume the user owns.
func (s *Service) Latest(ctx context.Context, resumeID, userID string) (Analysis, Result, error) {
	if _, err := s.ResumeRepo.GetOwned(ctx, resumeID, userID); err != nil {
		return Analysis{}, Result{}, err
	}
	analysis, err := s.Repo.GetLatestByResume(ctx, resumeID)
	if err != nil {
		return Analysis{}, Result{}, err
	}
	return analysis, reconstructResult(analysis), nil
}

// List returns all stored analyses for a resume the user owns, newest first.
func (s *Service) List(ctx context.Context, resumeID, userID string) ([]Analysis, error) {
	if _, err := s.ResumeRepo.GetOwned(ctx, resumeID, userID); err != nil {
		return nil, err
	}
	return s.Repo.ListByResume(ctx, resumeID)
}

// PurgeByResume removes analyses and their document logs for a resume.
// Called by the resumes service on delete.
func (s *Service) PurgeByResume(ctx context.Context, resumeID string) error {
	if err := s.Repo.DeleteByResume(ctx, resumeID); err != nil {
		return err
	}
	if s.Logs != nil {
		if err := s.Logs.DeleteByResume(ctx, resumeID); err != nil {
			return err
		}
	}
	return nil
}
