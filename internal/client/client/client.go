package client

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Client is the persistence boundary: per-record job CRUD, the resume
// document and avatar object URLs.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	CreateJob(ctx context.Context, job models.Job) (string, error)
	UpdateJob(ctx context.Context, job models.Job) error
	DeleteJob(ctx context.Context, id string) error
	ListJobs(ctx context.Context) ([]models.Job, error)

	GetResume(ctx context.Context) (*models.Resume, error)
	SaveResume(ctx context.Context, resume models.Resume) error

	GetAvatarUploadURL(ctx context.Context, digest, contentType string) (key string, url string, err error)
	GetAvatarURL(ctx context.Context, key string) (string, error)
}
