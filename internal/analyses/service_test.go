package analyses

import (
	"context"
	"errors"
	"testing"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/resumes"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
	lastMsgs []llm.Message
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	f.calls++
	f.lastMsgs = messages
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestService(t *testing.T, client llm.Client) (*Service, *MemoryLogRepo, resumes.Resume) {
	t.Helper()
	resumeRepo := resumes.NewMemoryRepo()
	resume := resumes.Resume{
		ID:             "resume-1",
		UserID:         "user-1",
		Title:          "Backend Resume",
		ResumeText:     "5 years Python backend development",
		JobDescription: "Senior Backend Engineer",
	}
	if err := resumeRepo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	logs := NewMemoryLogRepo()
	svc := &Service{
		Repo:       NewMemoryRepo(),
		Logs:       logs,
		ResumeRepo: resumeRepo,
		LLM:        client,
	}
	return svc, logs, resume
}

const goodResponse = "```json\n" +
	`{"overall_score": 82, "skills": {"technical": ["Python","SQL"], "soft": ["Communication"]}, "strengths": ["Strong backend experience"], "gaps": [], "improvement_suggestions": ["Add cloud certifications"]}` +
	"\n```"

func TestAnalyzeEndToEnd(t *testing.T) {
	client := &fakeLLM{response: goodResponse}
	svc, logs, resume := newTestService(t, client)

	analysis, result, err := svc.Analyze(context.Background(), resume.ID, "user-1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.OverallScore == nil || *result.OverallScore != 82 {
		t.Fatalf("unexpected score %v", result.OverallScore)
	}
	if got := result.Skills.Technical; len(got) != 2 || got[0] != "Python" || got[1] != "SQL" {
		t.Fatalf("unexpected technical skills %v", got)
	}
	if result.Gaps == nil || len(result.Gaps) != 0 {
		t.Fatalf("gaps should be empty non-nil, got %#v", result.Gaps)
	}
	if analysis.SkillsTechnical != "Python, SQL" {
		t.Fatalf("unexpected flattened skills %q", analysis.SkillsTechnical)
	}

	stored, err := svc.Repo.GetLatestByResume(context.Background(), resume.ID)
	if err != nil {
		t.Fatalf("expected stored analysis: %v", err)
	}
	if stored.ID != analysis.ID {
		t.Fatalf("stored id mismatch")
	}
	entries := logs.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].RawResponse != client.response {
		t.Fatalf("log entry should carry raw response")
	}

	if len(client.lastMsgs) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(client.lastMsgs))
	}
}

func TestAnalyzeSucceedsWhenLogAppendFails(t *testing.T) {
	client := &fakeLLM{response: goodResponse}
	svc, logs, resume := newTestService(t, client)
	logs.FailWith(errors.New("mongo down"))

	analysis, _, err := svc.Analyze(context.Background(), resume.ID, "user-1")
	if err != nil {
		t.Fatalf("Analyze should tolerate log failure: %v", err)
	}
	if _, err := svc.Repo.GetLatestByResume(context.Background(), resume.ID); err != nil {
		t.Fatalf("relational record should exist: %v", err)
	}
	if analysis.ID == "" {
		t.Fatalf("expected analysis id")
	}
}

func TestAnalyzeNoJSONBlockPersistsNothing(t *testing.T) {
	client := &fakeLLM{response: "I could not produce JSON, sorry."}
	svc, logs, resume := newTestService(t, client)

	_, _, err := svc.Analyze(context.Background(), resume.ID, "user-1")
	if !errors.Is(err, ErrNoJSONBlock) {
		t.Fatalf("expected ErrNoJSONBlock, got %v", err)
	}
	if _, err := svc.Repo.GetLatestByResume(context.Background(), resume.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("no record should be persisted, got %v", err)
	}
	if len(logs.Entries()) != 0 {
		t.Fatalf("no log entry should be written")
	}
}

func TestAnalyzeUpstreamFailurePersistsNothing(t *testing.T) {
	upstream := errors.New("upstream status 500")
	client := &fakeLLM{err: upstream}
	svc, logs, resume := newTestService(t, client)

	_, _, err := svc.Analyze(context.Background(), resume.ID, "user-1")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
	if _, err := svc.Repo.GetLatestByResume(context.Background(), resume.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("no record should be persisted, got %v", err)
	}
	if len(logs.Entries()) != 0 {
		t.Fatalf("no log entry should be written")
	}
}

func TestAnalyzeMalformedPayload(t *testing.T) {
	client := &fakeLLM{response: "```json\n{\"overall_score\": \n```"}
	svc, _, resume := newTestService(t, client)

	_, _, err := svc.Analyze(context.Background(), resume.ID, "user-1")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestAnalyzeEnforcesOwnership(t *testing.T) {
	client := &fakeLLM{response: goodResponse}
	svc, _, resume := newTestService(t, client)

	_, _, err := svc.Analyze(context.Background(), resume.ID, "user-2")
	if !errors.Is(err, resumes.ErrNotFound) {
		t.Fatalf("expected resumes.ErrNotFound, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("model should not be called for unowned resume")
	}
}

func TestLatestReconstructsLists(t *testing.T) {
	client := &fakeLLM{response: goodResponse}
	svc, _, resume := newTestService(t, client)

	if _, _, err := svc.Analyze(context.Background(), resume.ID, "user-1"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	_, result, err := svc.Latest(context.Background(), resume.ID, "user-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(result.Skills.Technical) != 2 || result.Skills.Technical[1] != "SQL" {
		t.Fatalf("unexpected reconstructed skills %v", result.Skills.Technical)
	}
	if len(result.ImprovementSuggestions) != 1 {
		t.Fatalf("unexpected suggestions %v", result.ImprovementSuggestions)
	}
}

func TestPurgeByResume(t *testing.T) {
	client := &fakeLLM{response: goodResponse}
	svc, logs, resume := newTestService(t, client)

	if _, _, err := svc.Analyze(context.Background(), resume.ID, "user-1"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := svc.PurgeByResume(context.Background(), resume.ID); err != nil {
		t.Fatalf("PurgeByResume: %v", err)
	}
	if _, err := svc.Repo.GetLatestByResume(context.Background(), resume.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("analyses should be gone, got %v", err)
	}
	if len(logs.Entries()) != 0 {
		t.Fatalf("log entries should be purged")
	}
}

func TestAnalyzeCancelledContext(t *testing.T) {
	client := &fakeLLM{response: goodResponse}
	svc, _, resume := newTestService(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := svc.Analyze(ctx, resume.ID, "user-1")
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
	if _, err := svc.Repo.GetLatestByResume(context.Background(), resume.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("no record should be persisted after cancellation, got %v", err)
	}
}
