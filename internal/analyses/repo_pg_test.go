package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateFlattenedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := Analysis{
		ID:                     "analysis-1",
		ResumeID:               "resume-1",
		OverallScore:           intPtr(82),
		ExperienceSummary:      strPtr("Strong backend background."),
		SkillsTechnical:        "Python, SQL",
		SkillsSoft:             "Communication",
		Strengths:              "Strong backend experience",
		Gaps:                   "",
		ImprovementSuggestions: "Add cloud certifications",
		CreatedAt:              time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resume_analyses").
		WithArgs(
			analysis.ID,
			analysis.ResumeID,
			analysis.OverallScore,
			analysis.ExperienceSummary,
			analysis.SkillsTechnical,
			analysis.SkillsSoft,
			analysis.Strengths,
			analysis.Gaps,
			analysis.ImprovementSuggestions,
			analysis.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetLatestByResumeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, resume_id, overall_score").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "resume_id", "overall_score", "experience_summary",
			"skills_technical", "skills_soft", "strengths", "gaps",
			"improvement_suggestions", "created_at",
		}))

	_, err = repo.GetLatestByResume(context.Background(), "resume-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{
		"id", "resume_id", "overall_score", "experience_summary",
		"skills_technical", "skills_soft", "strengths", "gaps",
		"improvement_suggestions", "created_at",
	}).
		AddRow("analysis-2", "resume-1", 85, "Later run", "Go", "", "", "", "", created).
		AddRow("analysis-1", "resume-1", 82, "First run", "Python, SQL", "Communication", "", "", "", created.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, resume_id, overall_score").
		WithArgs("resume-1").
		WillReturnRows(rows)

	items, err := repo.ListByResume(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("ListByResume: %v", err)
	}
	if len(items) != 2 || items[0].ID != "analysis-2" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestPGRepoScanNullScalars(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rows := sqlmock.NewRows([]string{
		"id", "resume_id", "overall_score", "experience_summary",
		"skills_technical", "skills_soft", "strengths", "gaps",
		"improvement_suggestions", "created_at",
	}).
		AddRow("analysis-3", "resume-1", nil, nil, "Go", "", "", "", "", time.Now().UTC())

	mock.ExpectQuery("SELECT id, resume_id, overall_score").
		WithArgs("resume-1").
		WillReturnRows(rows)

	items, err := repo.ListByResume(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("ListByResume: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one row, got %d", len(items))
	}
	if items[0].OverallScore != nil {
		t.Fatalf("null score should scan to unset, got %d", *items[0].OverallScore)
	}
	if items[0].ExperienceSummary != nil {
		t.Fatalf("null summary should scan to unset, got %q", *items[0].ExperienceSummary)
	}
}

func TestPGRepoDeleteByResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM resume_analyses").
		WithArgs("resume-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.DeleteByResume(context.Background(), "resume-1"); err != nil {
		t.Fatalf("DeleteByResume: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
