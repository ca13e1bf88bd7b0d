package jobs

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

// Repository stores job records. Every method is scoped to one user; a
// record owned by someone else behaves as if it did not exist.
type Repository interface {
	Create(ctx context.Context, job *models.Job) (string, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]*models.Job, error)
}
