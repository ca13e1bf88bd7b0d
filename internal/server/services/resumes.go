package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/repomanager"
)

// ResumeService keeps one resume document per user. The body is stored as
// the JSON the client sent; the server does not interpret its fields.
type ResumeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewResumeService(db *sql.DB, m repomanager.RepositoryManager) *ResumeService {
	return &ResumeService{db: db, repomanager: m}
}

// Get returns common.ErrorNotFound until the first Save.
func (s *ResumeService) Get(ctx context.Context, userID string) (*models.Resume, error) {
	r, err := s.repomanager.Resumes(s.db).Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading resume: %w", err)
	}
	return r, nil
}

func (s *ResumeService) Save(ctx context.Context, userID string, data json.RawMessage) error {
	if !json.Valid(data) {
		return validationError("resume is not valid JSON")
	}
	if err := s.repomanager.Resumes(s.db).Save(ctx, &models.Resume{UserID: userID, Data: data}); err != nil {
		return fmt.Errorf("error saving resume: %w", err)
	}
	return nil
}
