// Package regen regenerates the active content field of a job record:
// the cover letter for applications, the interview guide for offers.
//
// At most one generation runs per record at a time; concurrent requests for
// the same record share its result. A failed or empty generation writes
// FailurePlaceholder instead, so callers never see a generation error.
package regen

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/partition"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"golang.org/x/sync/singleflight"
)

// FailurePlaceholder is written into the active field when generation fails.
const FailurePlaceholder = "Content could not be generated right now. Use regenerate to try again."

// Generator produces the two kinds of job content.
type Generator interface {
	GenerateCoverLetter(ctx context.Context, job models.Job, resume models.Resume) (string, error)
	GenerateInterviewGuide(ctx context.Context, job models.Job, resume models.Resume) (string, error)
}

// Store is the part of the job store the controller writes through.
type Store interface {
	Get(id string) (models.Job, bool)
	Update(ctx context.Context, job models.Job) error
}

// ResumeSource supplies the resume used as generation context.
type ResumeSource interface {
	Current() models.Resume
}

type Controller struct {
	gen    Generator
	store  Store
	resume ResumeSource
	log    logging.Logger
	group  singleflight.Group
}

func NewController(gen Generator, store Store, resume ResumeSource, log logging.Logger) *Controller {
	return &Controller{
		gen:    gen,
		store:  store,
		resume: resume,
		log:    log.With("module", "regen"),
	}
}

// Prepare fills the active content field of a record that is about to be
// created. It never fails; a failed generation leaves the placeholder.
func (c *Controller) Prepare(ctx context.Context, job models.Job) models.Job {
	return setActive(job, c.generate(ctx, job))
}

// Regenerate produces new content for the record known by id and persists it
// through the store. The only errors returned come from the store.
func (c *Controller) Regenerate(ctx context.Context, id string) (models.Job, error) {
	job, ok := c.store.Get(id)
	if !ok {
		return models.Job{}, fmt.Errorf("regenerate %s: job not found", id)
	}

	// the flight outlives its first caller; joined callers keep their result
	flightCtx := context.WithoutCancel(ctx)
	v, _, shared := c.group.Do(id, func() (any, error) {
		return c.generate(flightCtx, job), nil
	})
	text := v.(string)
	if shared {
		c.log.Debug(ctx, "joined in-flight generation", "job_id", id)
	}

	// apply to the latest state; the record may have been edited meanwhile
	latest, ok := c.store.Get(id)
	if !ok {
		return models.Job{}, fmt.Errorf("regenerate %s: job not found", id)
	}
	latest = setActive(latest, text)
	if err := c.store.Update(ctx, latest); err != nil {
		return latest, fmt.Errorf("saving regenerated content: %w", err)
	}
	return latest, nil
}

// generate returns usable text or FailurePlaceholder.
func (c *Controller) generate(ctx context.Context, job models.Job) string {
	var resume models.Resume
	if c.resume != nil {
		resume = c.resume.Current()
	}

	var (
		text string
		err  error
	)
	if partition.IsOffer(job) {
		text, err = c.gen.GenerateInterviewGuide(ctx, job, resume)
	} else {
		text, err = c.gen.GenerateCoverLetter(ctx, job, resume)
	}
	if err != nil {
		c.log.Warn(ctx, "generation failed, using placeholder", "company", job.Company, "error", err)
		return FailurePlaceholder
	}
	if strings.TrimSpace(text) == "" {
		c.log.Warn(ctx, "generation returned empty text, using placeholder", "company", job.Company)
		return FailurePlaceholder
	}
	return text
}

func setActive(job models.Job, text string) models.Job {
	if partition.IsOffer(job) {
		job.InterviewGuide = text
	} else {
		job.CoverLetter = text
	}
	return job
}
