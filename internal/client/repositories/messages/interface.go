package messages

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Repository is the append-only assistant message log.
type Repository interface {
	Append(ctx context.Context, m models.Message) error
	List(ctx context.Context) ([]models.Message, error)
	Count(ctx context.Context) (int, error)
}
