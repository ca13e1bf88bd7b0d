package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/jobs"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/resumes"
)

type fakeJobsRepo struct {
	created []*models.Job
	updated []*models.Job
	deleted []string
	list    []*models.Job
	err     error
}

func (f *fakeJobsRepo) Create(ctx context.Context, job *models.Job) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, job)
	return "11111111-2222-3333-4444-555555555555", nil
}

func (f *fakeJobsRepo) Update(ctx context.Context, job *models.Job) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, job)
	return nil
}

func (f *fakeJobsRepo) Delete(ctx context.Context, userID, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID+"/"+id)
	return nil
}

func (f *fakeJobsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Job, error) {
	return f.list, f.err
}

type fakeResumesRepo struct {
	stored map[string]*models.Resume
	err    error
}

func (f *fakeResumesRepo) Get(ctx context.Context, userID string) (*models.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.stored[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r, nil
}

func (f *fakeResumesRepo) Save(ctx context.Context, r *models.Resume) error {
	if f.err != nil {
		return f.err
	}
	if f.stored == nil {
		f.stored = map[string]*models.Resume{}
	}
	f.stored[r.UserID] = r
	return nil
}

type fakeRepoManager struct {
	jobs    *fakeJobsRepo
	resumes *fakeResumesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Jobs(dbx.DBTX) jobs.Repository                { return m.jobs }
func (m *fakeRepoManager) Resumes(dbx.DBTX) resumes.Repository          { return m.resumes }
