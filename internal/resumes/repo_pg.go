package resumes

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, title, resume_text, target_role, job_description, storage_key, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, title, resume_text, target_role, job_description, storage_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.ResumeText,
		nullableString(resume.TargetRole),
		nullableString(resume.JobDescription),
		nullableString(resume.StorageKey),
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetOwned(ctx context.Context, resumeID, userID string) (Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`
	return scanResume(r.DB.QueryRowContext(ctx, query, resumeID, userID))
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResumeRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes SET
  title = $3,
  resume_text = $4,
  target_role = $5,
  job_description = $6,
  updated_at = $7
WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.ResumeText,
		nullableString(resume.TargetRole),
		nullableString(resume.JobDescription),
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, resumeID, userID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, resumeID, userID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row *sql.Row) (Resume, error) {
	resume, err := scanInto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func scanResumeRows(rows *sql.Rows) (Resume, error) {
	return scanInto(rows)
}

func scanInto(row rowScanner) (Resume, error) {
	var resume Resume
	var targetRole, jobDescription, storageKey sql.NullString
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&resume.ResumeText,
		&targetRole,
		&jobDescription,
		&storageKey,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	resume.TargetRole = targetRole.String
	resume.JobDescription = jobDescription.String
	resume.StorageKey = storageKey.String
	return resume, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
