// Package services contains server-side business logic. Every operation is
// scoped to the user id the transport layer took from the access token.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// JobService validates and persists job records.
type JobService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewJobService(db *sql.DB, m repomanager.RepositoryManager) *JobService {
	return &JobService{db: db, repomanager: m}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

func validateJob(job *models.Job) error {
	if strings.TrimSpace(job.Company) == "" {
		return validationError("company is required")
	}
	if strings.TrimSpace(job.Role) == "" {
		return validationError("role is required")
	}
	if !slices.Contains(models.JobStatuses, job.Status) {
		return validationError("unknown status %q", job.Status)
	}
	if !slices.Contains(models.JobOrigins, job.Origin) {
		return validationError("unknown origin %q", job.Origin)
	}
	return nil
}

// Create stores a new record for userID and returns its id. A zero
// DateApplied is replaced with today's date.
func (s *JobService) Create(ctx context.Context, userID string, job *models.Job) (string, error) {
	if err := validateJob(job); err != nil {
		return "", err
	}
	job.UserID = userID
	if job.DateApplied.IsZero() {
		job.DateApplied = common.Today()
	} else {
		job.DateApplied = dateOnly(job.DateApplied)
	}

	id, err := s.repomanager.Jobs(s.db).Create(ctx, job)
	if err != nil {
		return "", fmt.Errorf("error creating job: %w", err)
	}
	return id, nil
}

// Update overwrites the mutable fields of an existing record. Ids that are
// not well-formed cannot exist and yield common.ErrorNotFound.
func (s *JobService) Update(ctx context.Context, userID string, job *models.Job) error {
	if _, err := uuid.Parse(job.ID); err != nil {
		return common.ErrorNotFound
	}
	if err := validateJob(job); err != nil {
		return err
	}
	job.UserID = userID

	if err := s.repomanager.Jobs(s.db).Update(ctx, job); err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	return nil
}

func (s *JobService) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	if err := s.repomanager.Jobs(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	return nil
}

func (s *JobService) List(ctx context.Context, userID string) ([]*models.Job, error) {
	jobs, err := s.repomanager.Jobs(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	return jobs, nil
}

// dateOnly drops the clock part so stored dates compare by calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
