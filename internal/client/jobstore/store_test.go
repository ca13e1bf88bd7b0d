package jobstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*************
 * Fake remote
 *************/

type call struct {
	op  string
	id  string
	job models.Job
}

type fakeRemote struct {
	mu    sync.Mutex
	calls []call

	createID   string
	createErr  error
	createGate chan struct{} // when set, CreateJob blocks until closed
	updateErr  error
	updateGate chan struct{}
	deleteErr  error
	deleteGate chan struct{}
	listJobs   []models.Job
	listErr    error
}

func (f *fakeRemote) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeRemote) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeRemote) CreateJob(ctx context.Context, job models.Job) (string, error) {
	if f.createGate != nil {
		<-f.createGate
	}
	f.record(call{op: "create", id: job.ID, job: job})
	return f.createID, f.createErr
}

func (f *fakeRemote) UpdateJob(ctx context.Context, job models.Job) error {
	if f.updateGate != nil {
		<-f.updateGate
	}
	f.record(call{op: "update", id: job.ID, job: job})
	return f.updateErr
}

func (f *fakeRemote) DeleteJob(ctx context.Context, id string) error {
	if f.deleteGate != nil {
		<-f.deleteGate
	}
	f.record(call{op: "delete", id: id})
	return f.deleteErr
}

func (f *fakeRemote) ListJobs(ctx context.Context) ([]models.Job, error) {
	return f.listJobs, f.listErr
}

type transition struct{ prev, next models.Status }

func newStore(r Remote) (*Store, *[]transition) {
	var mu sync.Mutex
	seen := &[]transition{}
	s := NewStore(r, logging.NewDiscardLogger(), WithTransitionHook(func(_ context.Context, prev, next models.Job) {
		mu.Lock()
		defer mu.Unlock()
		*seen = append(*seen, transition{prev.Status, next.Status})
	}))
	return s, seen
}

func app(company string) models.Job {
	return models.NewJob(models.OriginApplication, company, "Engineer", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

/*************
 * Add
 *************/

func TestAdd_ReconcilesTemporaryID(t *testing.T) {
	r := &fakeRemote{createID: "srv-1"}
	s, _ := newStore(r)

	got, err := s.Add(context.Background(), app("Acme"))
	require.NoError(t, err)
	require.Equal(t, "srv-1", got.ID)

	list := s.List()
	require.Len(t, list, 1)
	require.Equal(t, "srv-1", list[0].ID)
	require.Equal(t, "Acme", list[0].Company)

	calls := r.Calls()
	require.Len(t, calls, 1)
	require.True(t, IsTemporaryID(calls[0].id))
	require.False(t, s.Pending("srv-1"))
}

func TestAdd_VisibleBeforeConfirmation(t *testing.T) {
	r := &fakeRemote{createID: "srv-1", createGate: make(chan struct{})}
	s, _ := newStore(r)

	done := make(chan error, 1)
	go func() {
		_, err := s.Add(context.Background(), app("Acme"))
		done <- err
	}()

	require.Eventually(t, func() bool { return len(s.List()) == 1 }, time.Second, time.Millisecond)
	tmp := s.List()[0]
	require.True(t, IsTemporaryID(tmp.ID))
	require.True(t, s.Pending(tmp.ID))

	close(r.createGate)
	require.NoError(t, <-done)

	list := s.List()
	require.Len(t, list, 1, "never two entries for one record")
	require.Equal(t, "srv-1", list[0].ID)
	require.False(t, s.Pending(tmp.ID))
	require.False(t, s.Pending("srv-1"))
}

func TestAdd_FailureRemovesRecord(t *testing.T) {
	boom := errors.New("boom")
	r := &fakeRemote{createErr: boom}
	s, _ := newStore(r)

	_, err := s.Add(context.Background(), app("Acme"))
	require.ErrorIs(t, err, boom)
	require.Empty(t, s.List())
}

func TestAdd_NewestFirstAndPositionPreserved(t *testing.T) {
	r := &fakeRemote{}
	s, _ := newStore(r)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		r.createID = fmt.Sprintf("srv-%d", i)
		_, err := s.Add(ctx, app(fmt.Sprintf("C%d", i)))
		require.NoError(t, err)
	}

	list := s.List()
	require.Equal(t, []string{"srv-2", "srv-1", "srv-0"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestAdd_DefaultsDateApplied(t *testing.T) {
	r := &fakeRemote{createID: "x"}
	s, _ := newStore(r)

	j := app("Acme")
	j.DateApplied = time.Time{}
	got, err := s.Add(context.Background(), j)
	require.NoError(t, err)
	require.False(t, got.DateApplied.IsZero())
}

/*************
 * Update / Delete
 *************/

func seeded(t *testing.T, r *fakeRemote) (*Store, *[]transition) {
	t.Helper()
	r.listJobs = []models.Job{
		{ID: "a", Company: "A", Role: "R", Status: models.StatusApplied, Origin: models.OriginApplication},
		{ID: "b", Company: "B", Role: "R", Status: models.StatusOffer, Origin: models.OriginOffer},
	}
	s, seen := newStore(r)
	require.NoError(t, s.Load(context.Background()))
	return s, seen
}

func TestUpdate_NoRollbackOnFailure(t *testing.T) {
	boom := errors.New("boom")
	r := &fakeRemote{updateErr: boom}
	s, _ := seeded(t, r)

	j, ok := s.Get("a")
	require.True(t, ok)
	j.Location = "Berlin"

	err := s.Update(context.Background(), j)
	require.ErrorIs(t, err, boom)

	got, _ := s.Get("a")
	require.Equal(t, "Berlin", got.Location)
}

func TestUpdate_KeepsDateApplied(t *testing.T) {
	r := &fakeRemote{}
	s, _ := seeded(t, r)

	j, _ := s.Get("a")
	orig := j.DateApplied
	j.DateApplied = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Update(context.Background(), j))

	got, _ := s.Get("a")
	require.Equal(t, orig, got.DateApplied)
}

func TestUpdate_UnknownID(t *testing.T) {
	s, _ := seeded(t, &fakeRemote{})
	err := s.Update(context.Background(), models.Job{ID: "nope"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_TransitionHookOnlyOnStatusChange(t *testing.T) {
	r := &fakeRemote{}
	s, seen := seeded(t, r)
	ctx := context.Background()

	j, _ := s.Get("a")
	j.Location = "Remote"
	require.NoError(t, s.Update(ctx, j))
	require.Empty(t, *seen)

	j.Status = models.StatusRejected
	require.NoError(t, s.Update(ctx, j))
	require.Equal(t, []transition{{models.StatusApplied, models.StatusRejected}}, *seen)

	// same status again: no second notification
	require.NoError(t, s.Update(ctx, j))
	require.Len(t, *seen, 1)
}

func TestDelete_NoRollbackOnFailure(t *testing.T) {
	boom := errors.New("boom")
	r := &fakeRemote{deleteErr: boom}
	s, _ := seeded(t, r)

	err := s.Delete(context.Background(), "a")
	require.ErrorIs(t, err, boom)
	_, ok := s.Get("a")
	require.False(t, ok)
	require.Len(t, s.List(), 1)
}

func TestDelete_UnknownID(t *testing.T) {
	s, _ := seeded(t, &fakeRemote{})
	require.ErrorIs(t, s.Delete(context.Background(), "nope"), ErrNotFound)
}

/*************
 * Lanes
 *************/

func TestLane_EditsDuringPendingCreateUseServerID(t *testing.T) {
	r := &fakeRemote{createID: "srv-1", createGate: make(chan struct{})}
	s, _ := newStore(r)
	ctx := context.Background()

	addDone := make(chan error, 1)
	go func() {
		_, err := s.Add(ctx, app("Acme"))
		addDone <- err
	}()
	require.Eventually(t, func() bool { return len(s.List()) == 1 }, time.Second, time.Millisecond)
	tmp := s.List()[0]

	upd := tmp
	upd.Status = models.StatusInterview
	updDone := make(chan error, 1)
	go func() { updDone <- s.Update(ctx, upd) }()
	require.Eventually(t, func() bool {
		j, _ := s.Get(tmp.ID)
		return j.Status == models.StatusInterview
	}, time.Second, time.Millisecond)

	// the update is applied locally but waits for the create
	require.Empty(t, r.Calls())

	close(r.createGate)
	require.NoError(t, <-addDone)
	require.NoError(t, <-updDone)

	calls := r.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "create", calls[0].op)
	assert.Equal(t, "update", calls[1].op)
	assert.Equal(t, "srv-1", calls[1].id)
	assert.Equal(t, models.StatusInterview, calls[1].job.Status)

	got, ok := s.Get("srv-1")
	require.True(t, ok)
	require.Equal(t, models.StatusInterview, got.Status)
	require.False(t, s.Pending("srv-1"))
}

func TestLane_EditsDroppedWhenCreateFails(t *testing.T) {
	boom := errors.New("boom")
	r := &fakeRemote{createErr: boom, createGate: make(chan struct{})}
	s, _ := newStore(r)
	ctx := context.Background()

	addDone := make(chan error, 1)
	go func() {
		_, err := s.Add(ctx, app("Acme"))
		addDone <- err
	}()
	require.Eventually(t, func() bool { return len(s.List()) == 1 }, time.Second, time.Millisecond)
	tmp := s.List()[0]

	upd := tmp
	upd.Location = "Paris"
	updDone := make(chan error, 1)
	go func() { updDone <- s.Update(ctx, upd) }()
	require.Eventually(t, func() bool {
		j, _ := s.Get(tmp.ID)
		return j.Location == "Paris"
	}, time.Second, time.Millisecond)

	close(r.createGate)
	require.ErrorIs(t, <-addDone, boom)
	require.ErrorIs(t, <-updDone, ErrCreateAborted)

	require.Empty(t, s.List())
	calls := r.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "create", calls[0].op)
	require.False(t, s.Pending(tmp.ID))
}

func TestLane_DeleteDuringPendingCreate(t *testing.T) {
	r := &fakeRemote{createID: "srv-7", createGate: make(chan struct{})}
	s, _ := newStore(r)
	ctx := context.Background()

	addDone := make(chan error, 1)
	go func() {
		_, err := s.Add(ctx, app("Acme"))
		addDone <- err
	}()
	require.Eventually(t, func() bool { return len(s.List()) == 1 }, time.Second, time.Millisecond)
	tmp := s.List()[0]

	delDone := make(chan error, 1)
	go func() { delDone <- s.Delete(ctx, tmp.ID) }()
	require.Eventually(t, func() bool { return len(s.List()) == 0 }, time.Second, time.Millisecond)
	require.True(t, s.Pending(tmp.ID))

	close(r.createGate)
	require.NoError(t, <-addDone)
	require.NoError(t, <-delDone)

	calls := r.Calls()
	require.Len(t, calls, 2)
	require.Equal(t, call{op: "delete", id: "srv-7"}, calls[1])
	require.Empty(t, s.List())
	require.False(t, s.Pending(tmp.ID))
}

func TestLane_DifferentRecordsAreIndependent(t *testing.T) {
	r := &fakeRemote{createID: "srv-1", createGate: make(chan struct{})}
	s, _ := seeded(t, r)
	ctx := context.Background()

	addDone := make(chan error, 1)
	go func() {
		_, err := s.Add(ctx, app("Acme"))
		addDone <- err
	}()
	require.Eventually(t, func() bool { return len(s.List()) == 3 }, time.Second, time.Millisecond)

	// "a" is not blocked by the pending create
	j, _ := s.Get("a")
	j.Location = "Oslo"
	require.NoError(t, s.Update(ctx, j))

	close(r.createGate)
	require.NoError(t, <-addDone)

	calls := r.Calls()
	require.Equal(t, "update", calls[0].op)
	require.Equal(t, "a", calls[0].id)
}

/*************
 * Load
 *************/

func TestLoad_ReplacesCollection(t *testing.T) {
	r := &fakeRemote{}
	s, _ := seeded(t, r)

	r.listJobs = []models.Job{{ID: "c", Company: "C", Role: "R", Status: models.StatusDraft}}
	require.NoError(t, s.Load(context.Background()))

	list := s.List()
	require.Len(t, list, 1)
	require.Equal(t, "c", list[0].ID)
}

func TestLoad_DuringPendingCreateKeepsOneEntry(t *testing.T) {
	r := &fakeRemote{createID: "srv-1", createGate: make(chan struct{})}
	s, _ := newStore(r)
	ctx := context.Background()

	addDone := make(chan error, 1)
	go func() {
		_, err := s.Add(ctx, app("Acme"))
		addDone <- err
	}()
	require.Eventually(t, func() bool { return len(s.List()) == 1 }, time.Second, time.Millisecond)
	tmp := s.List()[0]

	// the server already committed the row the create is waiting on
	r.listJobs = []models.Job{{ID: "srv-1", Company: "Acme", Role: "Engineer", Status: models.StatusApplied}}
	require.NoError(t, s.Load(ctx))

	list := s.List()
	require.Len(t, list, 1)
	require.Equal(t, tmp.ID, list[0].ID)

	close(r.createGate)
	require.NoError(t, <-addDone)

	list = s.List()
	require.Len(t, list, 1, "never two entries for one record")
	require.Equal(t, "srv-1", list[0].ID)

	require.NoError(t, s.Load(ctx))
	require.Len(t, s.List(), 1)
}

func TestAdd_DropsEntryListedUnderServerID(t *testing.T) {
	r := &fakeRemote{createID: "srv-1", createGate: make(chan struct{})}
	s, _ := newStore(r)
	ctx := context.Background()

	addDone := make(chan error, 1)
	go func() {
		_, err := s.Add(ctx, app("Acme"))
		addDone <- err
	}()
	require.Eventually(t, func() bool { return len(s.List()) == 1 }, time.Second, time.Millisecond)

	// plant an entry as an older Load would have left it
	s.mu.Lock()
	s.entries = append(s.entries, &entry{key: "srv-1", job: models.Job{ID: "srv-1", Company: "Acme"}})
	s.mu.Unlock()

	close(r.createGate)
	require.NoError(t, <-addDone)

	list := s.List()
	require.Len(t, list, 1)
	require.Equal(t, "srv-1", list[0].ID)
	require.Equal(t, "Engineer", list[0].Role)
}

func TestLoad_MergesRecordsWithCallsInFlight(t *testing.T) {
	tests := []struct {
		name   string
		remote *fakeRemote
		// start issues the calls that stay in flight during Load and
		// returns a func that lets them finish.
		start func(t *testing.T, s *Store, r *fakeRemote) (finish func())
		check func(t *testing.T, s *Store)
	}{
		{
			name:   "unconfirmed create stays on top",
			remote: &fakeRemote{createID: "srv-9", createGate: make(chan struct{})},
			start: func(t *testing.T, s *Store, r *fakeRemote) func() {
				done := make(chan error, 1)
				go func() {
					_, err := s.Add(context.Background(), app("New"))
					done <- err
				}()
				require.Eventually(t, func() bool { return len(s.List()) == 3 }, time.Second, time.Millisecond)
				return func() {
					close(r.createGate)
					require.NoError(t, <-done)
				}
			},
			check: func(t *testing.T, s *Store) {
				list := s.List()
				require.Len(t, list, 3)
				require.True(t, IsTemporaryID(list[0].ID))
				require.Equal(t, "New", list[0].Company)
				require.Equal(t, []string{"a", "b"}, []string{list[1].ID, list[2].ID})
			},
		},
		{
			name:   "listed record keeps local state",
			remote: &fakeRemote{updateGate: make(chan struct{})},
			start: func(t *testing.T, s *Store, r *fakeRemote) func() {
				j, _ := s.Get("a")
				j.Location = "Berlin"
				done := make(chan error, 1)
				go func() { done <- s.Update(context.Background(), j) }()
				require.Eventually(t, func() bool { return s.Pending("a") }, time.Second, time.Millisecond)
				return func() {
					close(r.updateGate)
					require.NoError(t, <-done)
				}
			},
			check: func(t *testing.T, s *Store) {
				j, ok := s.Get("a")
				require.True(t, ok)
				require.Equal(t, "Berlin", j.Location)
				require.Len(t, s.List(), 2)
			},
		},
		{
			name:   "record with delete in flight stays removed",
			remote: &fakeRemote{deleteGate: make(chan struct{})},
			start: func(t *testing.T, s *Store, r *fakeRemote) func() {
				done := make(chan error, 1)
				go func() { done <- s.Delete(context.Background(), "a") }()
				require.Eventually(t, func() bool { return s.Pending("a") }, time.Second, time.Millisecond)
				return func() {
					close(r.deleteGate)
					require.NoError(t, <-done)
				}
			},
			check: func(t *testing.T, s *Store) {
				list := s.List()
				require.Len(t, list, 1)
				require.Equal(t, "b", list[0].ID)
				_, ok := s.Get("a")
				require.False(t, ok)
			},
		},
		{
			name:   "server id alias survives reload",
			remote: &fakeRemote{createID: "srv-5", createGate: make(chan struct{}), updateGate: make(chan struct{})},
			start: func(t *testing.T, s *Store, r *fakeRemote) func() {
				ctx := context.Background()
				addDone := make(chan error, 1)
				go func() {
					_, err := s.Add(ctx, app("Acme"))
					addDone <- err
				}()
				require.Eventually(t, func() bool { return len(s.List()) == 3 }, time.Second, time.Millisecond)
				upd := s.List()[0]
				upd.Status = models.StatusInterview
				updDone := make(chan error, 1)
				go func() { updDone <- s.Update(ctx, upd) }()
				require.Eventually(t, func() bool {
					j, _ := s.Get(upd.ID)
					return j.Status == models.StatusInterview
				}, time.Second, time.Millisecond)

				// the create resolves; the update keeps the lane busy
				close(r.createGate)
				require.NoError(t, <-addDone)
				require.True(t, s.Pending("srv-5"))

				r.listJobs = append(r.listJobs, models.Job{ID: "srv-5", Company: "Acme", Status: models.StatusApplied})
				return func() {
					close(r.updateGate)
					require.NoError(t, <-updDone)
				}
			},
			check: func(t *testing.T, s *Store) {
				list := s.List()
				require.Len(t, list, 3)
				byServer, ok := s.Get("srv-5")
				require.True(t, ok)
				require.Equal(t, models.StatusInterview, byServer.Status)
				require.True(t, s.Pending("srv-5"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := seeded(t, tt.remote)
			finish := tt.start(t, s, tt.remote)

			require.NoError(t, s.Load(context.Background()))
			tt.check(t, s)

			finish()
		})
	}
}

func TestLoad_Error(t *testing.T) {
	boom := errors.New("boom")
	s, _ := newStore(&fakeRemote{listErr: boom})
	require.ErrorIs(t, s.Load(context.Background()), boom)
}

func TestList_ReturnsCopies(t *testing.T) {
	s, _ := seeded(t, &fakeRemote{})

	list := s.List()
	list[0].Company = "mutated"

	got, _ := s.Get(list[0].ID)
	require.NotEqual(t, "mutated", got.Company)
}
