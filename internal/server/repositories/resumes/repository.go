package resumes

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

// Repository stores one resume document per user.
type Repository interface {
	Get(ctx context.Context, userID string) (*models.Resume, error)
	Save(ctx context.Context, resume *models.Resume) error
}
