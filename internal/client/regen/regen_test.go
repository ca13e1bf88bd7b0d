package regen

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeGen struct {
	calls   atomic.Int32
	gate    chan struct{}
	started chan struct{}
	text    string
	err     error
	kinds   []string
	ctxErrs []error
	mu      sync.Mutex
}

func (f *fakeGen) run(ctx context.Context, kind string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.kinds = append(f.kinds, kind)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	f.mu.Unlock()
	return f.text, f.err
}

func (f *fakeGen) GenerateCoverLetter(ctx context.Context, job models.Job, resume models.Resume) (string, error) {
	return f.run(ctx, "cover_letter")
}

func (f *fakeGen) GenerateInterviewGuide(ctx context.Context, job models.Job, resume models.Resume) (string, error) {
	return f.run(ctx, "interview_guide")
}

type fakeStore struct {
	mu      sync.Mutex
	jobs    map[string]models.Job
	updates []models.Job
	err     error
}

func (f *fakeStore) Get(id string) (models.Job, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	return j, ok
}

func (f *fakeStore) Update(ctx context.Context, job models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
	f.updates = append(f.updates, job)
	return f.err
}

type staticResume models.Resume

func (s staticResume) Current() models.Resume { return models.Resume(s) }

func newController(gen *fakeGen, store *fakeStore) *Controller {
	return NewController(gen, store, staticResume(models.DefaultResume()), logging.NewDiscardLogger())
}

func TestPrepare_PicksGeneratorByClassification(t *testing.T) {
	gen := &fakeGen{text: "generated"}
	c := newController(gen, &fakeStore{})
	ctx := context.Background()

	a := c.Prepare(ctx, models.Job{Origin: models.OriginApplication, Status: models.StatusOffer})
	require.Equal(t, "generated", a.CoverLetter)
	require.Empty(t, a.InterviewGuide)

	o := c.Prepare(ctx, models.Job{Origin: models.OriginOffer, Status: models.StatusApplied})
	require.Equal(t, "generated", o.InterviewGuide)
	require.Empty(t, o.CoverLetter)

	// legacy record without origin falls back to status
	l := c.Prepare(ctx, models.Job{Status: models.StatusOffer})
	require.Equal(t, "generated", l.InterviewGuide)

	require.Equal(t, []string{"cover_letter", "interview_guide", "interview_guide"}, gen.kinds)
}

func TestPrepare_FailureWritesPlaceholder(t *testing.T) {
	c := newController(&fakeGen{err: errors.New("quota")}, &fakeStore{})

	j := c.Prepare(context.Background(), models.Job{Origin: models.OriginApplication})
	require.Equal(t, FailurePlaceholder, j.CoverLetter)
}

func TestPrepare_EmptyTextWritesPlaceholder(t *testing.T) {
	c := newController(&fakeGen{text: "  \n"}, &fakeStore{})

	j := c.Prepare(context.Background(), models.Job{Origin: models.OriginOffer})
	require.Equal(t, FailurePlaceholder, j.InterviewGuide)
}

func TestRegenerate_PersistsThroughStore(t *testing.T) {
	store := &fakeStore{jobs: map[string]models.Job{
		"1": {ID: "1", Company: "Acme", Origin: models.OriginApplication, CoverLetter: "old"},
	}}
	c := newController(&fakeGen{text: "new letter"}, store)

	got, err := c.Regenerate(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "new letter", got.CoverLetter)
	require.Len(t, store.updates, 1)
	require.Equal(t, "new letter", store.updates[0].CoverLetter)
}

func TestRegenerate_FailureNeverSurfaces(t *testing.T) {
	store := &fakeStore{jobs: map[string]models.Job{
		"1": {ID: "1", Origin: models.OriginOffer, InterviewGuide: "old"},
	}}
	c := newController(&fakeGen{err: errors.New("down")}, store)

	got, err := c.Regenerate(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, FailurePlaceholder, got.InterviewGuide)
	require.Equal(t, FailurePlaceholder, store.jobs["1"].InterviewGuide)
}

func TestRegenerate_StoreErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	store := &fakeStore{err: boom, jobs: map[string]models.Job{"1": {ID: "1"}}}
	c := newController(&fakeGen{text: "x"}, store)

	_, err := c.Regenerate(context.Background(), "1")
	require.ErrorIs(t, err, boom)
}

func TestRegenerate_UnknownRecord(t *testing.T) {
	c := newController(&fakeGen{text: "x"}, &fakeStore{jobs: map[string]models.Job{}})
	_, err := c.Regenerate(context.Background(), "nope")
	require.Error(t, err)
}

func TestRegenerate_KeepsConcurrentEdits(t *testing.T) {
	gen := &fakeGen{text: "letter", gate: make(chan struct{}), started: make(chan struct{}, 1)}
	store := &fakeStore{jobs: map[string]models.Job{"1": {ID: "1", Origin: models.OriginApplication}}}
	c := newController(gen, store)

	done := make(chan error, 1)
	go func() {
		_, err := c.Regenerate(context.Background(), "1")
		done <- err
	}()
	<-gen.started

	store.mu.Lock()
	j := store.jobs["1"]
	j.Location = "Lisbon"
	store.jobs["1"] = j
	store.mu.Unlock()

	close(gen.gate)
	require.NoError(t, <-done)
	require.Equal(t, "Lisbon", store.jobs["1"].Location)
	require.Equal(t, "letter", store.jobs["1"].CoverLetter)
}

func TestRegenerate_OneInFlightPerRecord(t *testing.T) {
	gen := &fakeGen{text: "letter", gate: make(chan struct{}), started: make(chan struct{}, 4)}
	store := &fakeStore{jobs: map[string]models.Job{"1": {ID: "1", Origin: models.OriginApplication}}}
	c := newController(gen, store)

	var wg sync.WaitGroup
	regen := func() {
		defer wg.Done()
		_, err := c.Regenerate(context.Background(), "1")
		require.NoError(t, err)
	}

	wg.Add(1)
	go regen()
	<-gen.started

	wg.Add(1)
	go regen()
	// give the second caller time to join the in-flight call
	time.Sleep(50 * time.Millisecond)

	close(gen.gate)
	wg.Wait()

	require.Equal(t, int32(1), gen.calls.Load())
	require.Equal(t, "letter", store.jobs["1"].CoverLetter)
}

func TestRegenerate_JoinedCallerSurvivesFirstCallerCancel(t *testing.T) {
	gen := &fakeGen{text: "letter", gate: make(chan struct{}), started: make(chan struct{}, 4)}
	store := &fakeStore{jobs: map[string]models.Job{"1": {ID: "1", Origin: models.OriginApplication}}}
	c := newController(gen, store)

	firstCtx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := c.Regenerate(firstCtx, "1")
		first <- err
	}()
	<-gen.started

	second := make(chan models.Job, 1)
	go func() {
		j, err := c.Regenerate(context.Background(), "1")
		require.NoError(t, err)
		second <- j
	}()
	// give the second caller time to join the in-flight call
	time.Sleep(50 * time.Millisecond)

	cancel()
	close(gen.gate)
	require.NoError(t, <-first)
	got := <-second

	require.Equal(t, int32(1), gen.calls.Load())
	require.Equal(t, []error{nil}, gen.ctxErrs)
	require.Equal(t, "letter", got.CoverLetter)
}
