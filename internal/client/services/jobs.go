package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/partition"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// JobStore is the slice of jobstore.Store the job service uses.
type JobStore interface {
	Load(ctx context.Context) error
	List() []models.Job
	Get(id string) (models.Job, bool)
	Pending(id string) bool
	Add(ctx context.Context, job models.Job) (models.Job, error)
	Update(ctx context.Context, job models.Job) error
	Delete(ctx context.Context, id string) error
}

// ContentGenerator fills and refreshes the active content field of a job.
type ContentGenerator interface {
	Prepare(ctx context.Context, job models.Job) models.Job
	Regenerate(ctx context.Context, id string) (models.Job, error)
}

type JobService interface {
	Refresh(ctx context.Context) error
	Applications() []models.Job
	Offers() []models.Job
	Get(id string) (models.Job, error)
	Pending(id string) bool
	Create(ctx context.Context, draft models.Job, generate bool) (models.Job, error)
	Edit(ctx context.Context, id string, fn func(*models.Job)) (models.Job, error)
	SetStatus(ctx context.Context, id string, status models.Status) (models.Job, error)
	Delete(ctx context.Context, id string) error
	Regenerate(ctx context.Context, id string) (models.Job, error)
	Stats() map[models.Status]int
}

type jobService struct {
	store JobStore
	gen   ContentGenerator
}

func NewJobService(store JobStore, gen ContentGenerator) JobService {
	return &jobService{store: store, gen: gen}
}

func (s *jobService) Refresh(ctx context.Context) error {
	return s.store.Load(ctx)
}

func (s *jobService) Applications() []models.Job {
	apps, _ := partition.Split(s.store.List())
	return apps
}

func (s *jobService) Offers() []models.Job {
	_, offers := partition.Split(s.store.List())
	return offers
}

// Get resolves id, accepting a unique id prefix as typed in the CLI.
func (s *jobService) Get(id string) (models.Job, error) {
	if j, ok := s.store.Get(id); ok {
		return j, nil
	}
	var match *models.Job
	for _, j := range s.store.List() {
		if id != "" && strings.HasPrefix(j.ID, id) {
			if match != nil {
				return models.Job{}, fmt.Errorf("id prefix %q is ambiguous", id)
			}
			j := j
			match = &j
		}
	}
	if match == nil {
		return models.Job{}, fmt.Errorf("%w: job %s", common.ErrorNotFound, id)
	}
	return *match, nil
}

func (s *jobService) Pending(id string) bool {
	return s.store.Pending(id)
}

// Create validates a draft, optionally generates its content and adds it.
// Generation never blocks creation.
func (s *jobService) Create(ctx context.Context, draft models.Job, generate bool) (models.Job, error) {
	if draft.Status == "" {
		draft.Status = models.NewJob(draft.Origin, "", "", draft.DateApplied).Status
	}
	if err := draft.Validate(); err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	if generate && s.gen != nil {
		draft = s.gen.Prepare(ctx, draft)
	}
	job, err := s.store.Add(ctx, draft)
	if err != nil {
		return models.Job{}, fmt.Errorf("saving error: %w", err)
	}
	return job, nil
}

func (s *jobService) Edit(ctx context.Context, id string, fn func(*models.Job)) (models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return models.Job{}, err
	}
	fn(&job)
	if err := job.Validate(); err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	if err := s.store.Update(ctx, job); err != nil {
		return job, fmt.Errorf("saving error: %w", err)
	}
	return job, nil
}

func (s *jobService) SetStatus(ctx context.Context, id string, status models.Status) (models.Job, error) {
	return s.Edit(ctx, id, func(j *models.Job) { j.Status = status })
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, job.ID); err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	return nil
}

func (s *jobService) Regenerate(ctx context.Context, id string) (models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return models.Job{}, err
	}
	return s.gen.Regenerate(ctx, job.ID)
}

// Stats counts applications per status for the dashboard.
func (s *jobService) Stats() map[models.Status]int {
	return partition.StatusCounts(s.Applications())
}
