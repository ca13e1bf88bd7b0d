// Package jobs provides the PostgreSQL-backed repository for job records.
package jobs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts job and returns the id assigned by the database.
func (r *PostgresRepository) Create(ctx context.Context, job *models.Job) (string, error) {
	query := `
		INSERT INTO jobs (user_id, company, role, location, salary, email, description,
			status, origin, date_applied, cover_letter, interview_guide)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, query,
		job.UserID, job.Company, job.Role, job.Location, job.Salary, job.Email, job.Description,
		job.Status, job.Origin, job.DateApplied, job.CoverLetter, job.InterviewGuide,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// Update overwrites the mutable columns of the record. An empty origin keeps
// the stored one. Returns common.ErrorNotFound when no row matched.
func (r *PostgresRepository) Update(ctx context.Context, job *models.Job) error {
	query := `
		UPDATE jobs SET
			company = $3,
			role = $4,
			location = $5,
			salary = $6,
			email = $7,
			description = $8,
			status = $9,
			origin = COALESCE(NULLIF($10, ''), origin),
			cover_letter = $11,
			interview_guide = $12,
			updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		job.ID, job.UserID,
		job.Company, job.Role, job.Location, job.Salary, job.Email, job.Description,
		job.Status, job.Origin, job.CoverLetter, job.InterviewGuide,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

// Delete removes the record. Returns common.ErrorNotFound when no row matched.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

// ListByUser returns the user's records, most recently applied first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Job, error) {
	query := `
		SELECT id, company, role, location, salary, email, description, status, origin,
			date_applied, cover_letter, interview_guide, created_at, updated_at
		FROM jobs
		WHERE user_id = $1
		ORDER BY date_applied DESC, created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select jobs: %w", err)
	}
	defer rows.Close()

	var result []*models.Job
	for rows.Next() {
		item := models.Job{UserID: userID}
		if err := rows.Scan(
			&item.ID, &item.Company, &item.Role, &item.Location, &item.Salary, &item.Email,
			&item.Description, &item.Status, &item.Origin, &item.DateApplied,
			&item.CoverLetter, &item.InterviewGuide, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
