// Package resumes provides the PostgreSQL-backed repository for resume documents.
package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns common.ErrorNotFound when the user has never saved a resume.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Resume, error) {
	item := models.Resume{UserID: userID}
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data, updated_at FROM resumes WHERE user_id = $1`, userID,
	).Scan(&data, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	item.Data = data
	return &item, nil
}

// Save replaces the user's document wholesale.
func (r *PostgresRepository) Save(ctx context.Context, resume *models.Resume) error {
	query := `
		INSERT INTO resumes (user_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, resume.UserID, []byte(resume.Data)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
