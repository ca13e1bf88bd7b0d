package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/jobtracker/internal/client/jobstore"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/partition"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// report logs err and prints it for the user. It returns err so handlers can
// end with `return a.report(...)`.
func (a *App) report(ctx context.Context, msg string, err error) error {
	a.log.Error(ctx, msg, "error", err)
	printlnFn("error:", err)
	return err
}

func (a *App) Apps(ctx context.Context) error {
	a.printJobs(a.jobs.Applications(), "No applications yet. Use 'add' to create one.")
	return nil
}

func (a *App) Offers(ctx context.Context) error {
	a.printJobs(a.jobs.Offers(), "No offers yet. Use 'addoffer' to create one.")
	return nil
}

func (a *App) printJobs(jobs []models.Job, empty string) {
	if len(jobs) == 0 {
		printlnFn(empty)
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tROLE\tSTATUS\tAPPLIED\t")
	for _, j := range jobs {
		status := string(j.Status)
		if a.jobs.Pending(j.ID) {
			status += " (saving)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", shortID(j.ID), j.Company, j.Role, status, common.FormatDate(j.DateApplied))
	}
	tw.Flush()
}

// shortID trims server ids for display; any unique prefix is accepted back.
func shortID(id string) string {
	if jobstore.IsTemporaryID(id) || len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Add prompts for a new record of the given origin. The record is visible
// in the lists before the server has confirmed it.
func (a *App) Add(ctx context.Context, origin models.Origin) error {
	draft := models.NewJob(origin, "", "", common.Today())

	var err error
	fields := []struct {
		label string
		dst   *string
	}{
		{"Company", &draft.Company},
		{"Role", &draft.Role},
		{"Location", &draft.Location},
		{"Salary", &draft.Salary},
		{"Contact email", &draft.Email},
	}
	for _, f := range fields {
		if *f.dst, err = GetSimpleText(a.reader, f.label, a.out); err != nil {
			return a.report(ctx, "input error", err)
		}
	}
	if draft.Description, err = GetMultiline(a.reader, "Job description", a.out); err != nil {
		return a.report(ctx, "input error", err)
	}

	what := "a cover letter"
	if origin == models.OriginOffer {
		what = "an interview guide"
	}
	generate, err := GetConfirm(a.reader, "Generate "+what+" now?", a.out)
	if err != nil {
		return a.report(ctx, "input error", err)
	}

	job, err := a.jobs.Create(ctx, draft, generate)
	if err != nil {
		return a.report(ctx, "error creating job", err)
	}
	printlnFn(fmt.Sprintf("Saved %s at %s (%s)", job.Role, job.Company, shortID(job.ID)))
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	job, err := a.jobs.Get(id)
	if err != nil {
		return a.report(ctx, "error getting job", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s\n", job.Role, job.Company)
	fmt.Fprintf(&b, "ID:       %s\n", job.ID)
	fmt.Fprintf(&b, "Status:   %s", job.Status)
	if a.jobs.Pending(job.ID) {
		b.WriteString(" (saving)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Applied:  %s\n", common.FormatDate(job.DateApplied))
	for _, f := range []struct{ k, v string }{
		{"Location", job.Location},
		{"Salary", job.Salary},
		{"Email", job.Email},
	} {
		if f.v != "" {
			fmt.Fprintf(&b, "%-9s %s\n", f.k+":", f.v)
		}
	}
	if job.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", job.Description)
	}
	if partition.IsOffer(job) {
		writeSection(&b, "Interview guide", job.InterviewGuide)
	} else {
		writeSection(&b, "Cover letter", job.CoverLetter)
	}

	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}

func writeSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "\n--- %s ---\n", title)
	if body == "" {
		b.WriteString("(none yet, use 'regen <id>')\n")
		return
	}
	b.WriteString(body + "\n")
}

// Edit walks the mutable fields; an empty answer keeps the current value.
func (a *App) Edit(ctx context.Context, id string) error {
	cur, err := a.jobs.Get(id)
	if err != nil {
		return a.report(ctx, "error getting job", err)
	}

	next := cur
	fields := []struct {
		label string
		dst   *string
	}{
		{"Company", &next.Company},
		{"Role", &next.Role},
		{"Location", &next.Location},
		{"Salary", &next.Salary},
		{"Contact email", &next.Email},
		{"Description", &next.Description},
	}
	for _, f := range fields {
		if *f.dst, err = GetField(a.reader, f.label, *f.dst, a.out); err != nil {
			return a.report(ctx, "input error", err)
		}
	}
	st, err := GetField(a.reader, "Status", string(next.Status), a.out)
	if err != nil {
		return a.report(ctx, "input error", err)
	}
	if next.Status, err = models.ParseStatus(st); err != nil {
		return a.report(ctx, "input error", err)
	}

	_, err = a.jobs.Edit(ctx, cur.ID, func(j *models.Job) {
		j.Company, j.Role, j.Location = next.Company, next.Role, next.Location
		j.Salary, j.Email, j.Description = next.Salary, next.Email, next.Description
		j.Status = next.Status
	})
	if err != nil {
		// the local copy keeps the edit; only the server write failed
		return a.report(ctx, "error updating job", err)
	}
	printlnFn("Saved.")
	return nil
}

func (a *App) SetStatus(ctx context.Context, id, status string) error {
	st, err := models.ParseStatus(status)
	if err != nil {
		return a.report(ctx, "input error", err)
	}
	job, err := a.jobs.SetStatus(ctx, id, st)
	if err != nil {
		return a.report(ctx, "error updating status", err)
	}
	printlnFn(fmt.Sprintf("%s at %s is now %s", job.Role, job.Company, job.Status))
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	job, err := a.jobs.Get(id)
	if err != nil {
		return a.report(ctx, "error getting job", err)
	}
	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete %s at %s?", job.Role, job.Company), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.jobs.Delete(ctx, job.ID); err != nil {
		if errors.Is(err, jobstore.ErrNotFound) || errors.Is(err, common.ErrorNotFound) {
			printlnFn("Already gone.")
			return nil
		}
		return a.report(ctx, "error deleting job", err)
	}
	printlnFn("Deleted.")
	return nil
}

func (a *App) Regen(ctx context.Context, id string) error {
	printlnFn("Generating...")
	job, err := a.jobs.Regenerate(ctx, id)
	if err != nil {
		return a.report(ctx, "error regenerating content", err)
	}
	return a.Show(ctx, job.ID)
}

func (a *App) Stats(ctx context.Context) error {
	counts := a.jobs.Stats()
	total := 0
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, st := range models.Statuses {
		fmt.Fprintf(tw, "%s\t%d\t\n", st, counts[st])
		total += counts[st]
	}
	fmt.Fprintf(tw, "Total\t%d\t\n", total)
	tw.Flush()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.jobs.Refresh(ctx); err != nil {
		return a.report(ctx, "error loading jobs", err)
	}
	printlnFn(fmt.Sprintf("%d applications, %d offers", len(a.jobs.Applications()), len(a.jobs.Offers())))
	return nil
}
