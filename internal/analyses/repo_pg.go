package analyses

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, resume_id, overall_score, experience_summary, skills_technical, skills_soft, strengths, gaps, improvement_suggestions, created_at`

func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO resume_analyses (id, resume_id, overall_score, experience_summary, skills_technical, skills_soft, strengths, gaps, improvement_suggestions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
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
	)
	return err
}

func (r *PGRepo) GetLatestByResume(ctx context.Context, resumeID string) (Analysis, error) {
	query := `
SELECT ` + analysisColumns + `
FROM resume_analyses
WHERE resume_id = $1
ORDER BY created_at DESC
LIMIT 1`
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

func (r *PGRepo) ListByResume(ctx context.Context, resumeID string) ([]Analysis, error) {
	query := `
SELECT ` + analysisColumns + `
FROM resume_analyses
WHERE resume_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

func (r *PGRepo) DeleteByResume(ctx context.Context, resumeID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM resume_analyses WHERE resume_id = $1`, resumeID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var score sql.NullInt64
	var summary, technical, soft, strengths, gaps, suggestions sql.NullString
	err := row.Scan(
		&analysis.ID,
		&analysis.ResumeID,
		&score,
		&summary,
		&technical,
		&soft,
		&strengths,
		&gaps,
		&suggestions,
		&analysis.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if score.Valid {
		v := int(score.Int64)
		analysis.OverallScore = &v
	}
	if summary.Valid {
		analysis.ExperienceSummary = &summary.String
	}
	analysis.SkillsTechnical = technical.String
	analysis.SkillsSoft = soft.String
	analysis.Strengths = strengths.String
	analysis.Gaps = gaps.String
	analysis.ImprovementSuggestions = suggestions.String
	return analysis, nil
}
