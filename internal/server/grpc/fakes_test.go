package grpc

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

type fakeJobs struct {
	mu      sync.Mutex
	created []*models.Job
	updated []*models.Job
	deleted []string
	list    []*models.Job
	users   []string
	err     error
}

func (f *fakeJobs) Create(ctx context.Context, userID string, job *models.Job) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, job)
	return "srv-1", nil
}

func (f *fakeJobs) Update(ctx context.Context, userID string, job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
	f.updated = append(f.updated, job)
	return f.err
}

func (f *fakeJobs) Delete(ctx context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeJobs) List(ctx context.Context, userID string) ([]*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
	return f.list, f.err
}

type fakeResumes struct {
	data map[string]json.RawMessage
	err  error
}

func (f *fakeResumes) Get(ctx context.Context, userID string) (*models.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.data[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Resume{UserID: userID, Data: d}, nil
}

func (f *fakeResumes) Save(ctx context.Context, userID string, data json.RawMessage) error {
	if f.err != nil {
		return f.err
	}
	if f.data == nil {
		f.data = map[string]json.RawMessage{}
	}
	f.data[userID] = data
	return nil
}

type fakeAvatars struct {
	lastUser string
	err      error
}

func (f *fakeAvatars) UploadURL(ctx context.Context, userID, digest, contentType string) (string, string, error) {
	f.lastUser = userID
	if f.err != nil {
		return "", "", f.err
	}
	return "avatars/" + userID + "/" + digest + ".png", "https://put", nil
}

func (f *fakeAvatars) DownloadURL(ctx context.Context, userID, key string) (string, error) {
	f.lastUser = userID
	if f.err != nil {
		return "", f.err
	}
	return "https://get/" + key, nil
}

func newServer(j *fakeJobs, r *fakeResumes, a *fakeAvatars) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.NewDiscardLogger(), j, r, a, "k")
}

func asUser(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}
