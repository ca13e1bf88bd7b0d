package jobstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/google/uuid"
)

// TempIDPrefix marks ids that were assigned locally and not yet confirmed.
const TempIDPrefix = "tmp-"

var (
	ErrNotFound = errors.New("job not found")
	// ErrCreateAborted is returned for calls that were queued behind a create
	// that failed; the record no longer exists.
	ErrCreateAborted = errors.New("job create failed, change dropped")
)

// Remote is the persistence boundary the store writes through.
type Remote interface {
	CreateJob(ctx context.Context, job models.Job) (string, error)
	UpdateJob(ctx context.Context, job models.Job) error
	DeleteJob(ctx context.Context, id string) error
	ListJobs(ctx context.Context) ([]models.Job, error)
}

// TransitionFunc observes status changes. It is called once per Update that
// changes the status, after the change is visible locally and before the
// remote call is made.
type TransitionFunc func(ctx context.Context, prev, next models.Job)

type entry struct {
	key string
	job models.Job
}

type Store struct {
	mu      sync.Mutex
	remote  Remote
	log     logging.Logger
	entries []*entry // newest first
	aliases map[string]string
	lanes   map[string]*lane

	onTransition TransitionFunc
	newID        func() string
}

type Option func(*Store)

// WithTransitionHook registers fn to be told about status changes.
func WithTransitionHook(fn TransitionFunc) Option {
	return func(s *Store) { s.onTransition = fn }
}

func NewStore(remote Remote, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		remote:  remote,
		log:     log.With("module", "jobstore"),
		aliases: make(map[string]string),
		lanes:   make(map[string]*lane),
		newID:   func() string { return TempIDPrefix + uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// IsTemporaryID reports whether id was assigned locally.
func IsTemporaryID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// Load replaces the collection with the remote list. Records with remote
// calls still outstanding keep their local state.
func (s *Store) Load(ctx context.Context) error {
	jobs, err := s.remote.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("loading jobs: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	aliases := make(map[string]string, len(jobs))
	for id, key := range s.aliases {
		if _, ok := s.lanes[key]; ok {
			aliases[id] = key
		}
	}

	keyOf := func(id string) string {
		if k, ok := aliases[id]; ok {
			return k
		}
		return id
	}

	// An id we have never seen may be the server id of a create still in
	// flight. Such ids are skipped until the create resolves.
	creating := false
	for _, l := range s.lanes {
		if l.remoteID == "" && !l.aborted {
			creating = true
			break
		}
	}
	unclaimed := func(id string) bool {
		_, known := s.aliases[id]
		return creating && !known
	}

	listed := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		if unclaimed(j.ID) {
			continue
		}
		listed[keyOf(j.ID)] = true
	}

	entries := make([]*entry, 0, len(jobs))
	// busy records the server does not know yet stay on top
	for _, e := range s.entries {
		if _, busy := s.lanes[e.key]; busy && !listed[e.key] {
			entries = append(entries, e)
		}
	}
	for _, j := range jobs {
		if unclaimed(j.ID) {
			continue
		}
		key := keyOf(j.ID)
		if _, busy := s.lanes[key]; busy {
			// local state wins; a missing entry means a delete is in flight
			if i := s.indexLocked(key); i >= 0 {
				entries = append(entries, s.entries[i])
			}
			continue
		}
		aliases[j.ID] = key
		entries = append(entries, &entry{key: key, job: j})
	}

	s.entries = entries
	s.aliases = aliases
	s.log.Debug(ctx, "jobs loaded", "count", len(entries))
	return nil
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Job, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.job)
	}
	return out
}

// Get returns a copy of the record known by id. Both the temporary id and the
// server id of a record resolve to it.
func (s *Store) Get(id string) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, e := s.findLocked(id)
	if e == nil {
		return models.Job{}, false
	}
	return e.job, true
}

// Pending reports whether the record known by id has remote calls outstanding.
func (s *Store) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.aliases[id]
	if !ok {
		return false
	}
	l, ok := s.lanes[key]
	return ok && l.pending > 0
}

// Add inserts job at the head of the collection and creates it remotely.
// It returns the record as stored after reconciliation.
func (s *Store) Add(ctx context.Context, job models.Job) (models.Job, error) {
	if job.DateApplied.IsZero() {
		job.DateApplied = common.Today()
	}

	s.mu.Lock()
	job.ID = s.newID()
	key := job.ID
	s.entries = append([]*entry{{key: key, job: job}}, s.entries...)
	s.aliases[key] = key
	t := s.enqueue(key, "")
	s.mu.Unlock()

	id, err := s.remote.CreateJob(ctx, job)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lanes[key].aborted = true
		s.removeLocked(key)
		s.releaseLocked(t)
		s.log.Error(ctx, "create failed, record removed", "temp_id", key, "error", err)
		return models.Job{}, fmt.Errorf("creating job: %w", err)
	}

	s.lanes[key].remoteID = id
	// a Load may already have listed the record under its server id
	for i := len(s.entries) - 1; i >= 0; i-- {
		if e := s.entries[i]; e.key != key && e.job.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
		}
	}
	s.aliases[id] = key
	if i := s.indexLocked(key); i >= 0 {
		s.entries[i].job.ID = id
		job = s.entries[i].job
	} else {
		// deleted while the create was in flight; the queued delete will
		// remove it remotely
		job.ID = id
	}
	s.releaseLocked(t)
	s.log.Debug(ctx, "job created", "temp_id", key, "id", id)
	return job, nil
}

// Update replaces the mutable fields of the record identified by job.ID. The
// change stays applied locally even when the remote call fails.
func (s *Store) Update(ctx context.Context, job models.Job) error {
	s.mu.Lock()
	key, e := s.findLocked(job.ID)
	if e == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, job.ID)
	}
	prev := e.job
	job.ID = prev.ID
	job.DateApplied = prev.DateApplied
	e.job = job
	t := s.enqueue(key, prev.ID)
	s.mu.Unlock()

	if prev.Status != job.Status && s.onTransition != nil {
		s.onTransition(ctx, prev, job)
	}

	remoteID, aborted := s.wait(t)
	defer s.release(t)
	if aborted {
		return ErrCreateAborted
	}

	job.ID = remoteID
	if err := s.remote.UpdateJob(ctx, job); err != nil {
		s.log.Error(ctx, "update failed, local change kept", "id", remoteID, "error", err)
		return fmt.Errorf("updating job: %w", err)
	}
	return nil
}

// Delete removes the record known by id. The removal stays applied locally
// even when the remote call fails.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	key, e := s.findLocked(id)
	if e == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	t := s.enqueue(key, e.job.ID)
	s.removeLocked(key)
	s.mu.Unlock()

	remoteID, aborted := s.wait(t)
	defer s.release(t)
	if aborted {
		return ErrCreateAborted
	}

	if err := s.remote.DeleteJob(ctx, remoteID); err != nil {
		s.log.Error(ctx, "delete failed, record stays removed locally", "id", remoteID, "error", err)
		return fmt.Errorf("deleting job: %w", err)
	}
	return nil
}

func (s *Store) findLocked(id string) (string, *entry) {
	key, ok := s.aliases[id]
	if !ok {
		return "", nil
	}
	i := s.indexLocked(key)
	if i < 0 {
		return "", nil
	}
	return key, s.entries[i]
}

func (s *Store) indexLocked(key string) int {
	for i, e := range s.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

func (s *Store) removeLocked(key string) {
	if i := s.indexLocked(key); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}
