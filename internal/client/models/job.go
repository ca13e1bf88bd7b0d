// Package models defines client-side data models used by the jobtracker CLI.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is the stage a job record is in.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
	StatusDraft     Status = "Draft"
)

// Statuses lists every status in narrative order.
var Statuses = []Status{StatusApplied, StatusInterview, StatusOffer, StatusAccepted, StatusRejected, StatusDraft}

// Origin records which list a job was created in. The zero value means the
// record predates origins and is classified by status instead.
type Origin string

const (
	OriginNone        Origin = ""
	OriginApplication Origin = "application"
	OriginOffer       Origin = "offer"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrUnknownOrigin = errors.New("unknown origin")
	ErrMissingField  = errors.New("missing required field")
)

// ParseStatus matches s against the known statuses, ignoring case.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// ParseOrigin matches s against the known origins, ignoring case. An empty
// string is accepted and yields OriginNone.
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return OriginNone, nil
	case string(OriginApplication):
		return OriginApplication, nil
	case string(OriginOffer):
		return OriginOffer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrigin, s)
	}
}

// Job is one job-search record.
type Job struct {
	// ID is the store-assigned identity, or a temporary local one while the
	// create is in flight.
	ID string

	Company     string
	Role        string
	Location    string
	Salary      string
	Email       string
	Description string

	Status Status
	Origin Origin

	// DateApplied is the creation date; immutable afterwards.
	DateApplied time.Time

	// CoverLetter is the active content field of applications.
	CoverLetter string
	// InterviewGuide is the active content field of offers.
	InterviewGuide string
}

// NewJob returns a record with creation defaults for the given origin:
// applications start as Applied, offers as Offer.
func NewJob(origin Origin, company, role string, dateApplied time.Time) Job {
	status := StatusApplied
	if origin == OriginOffer {
		status = StatusOffer
	}
	return Job{
		Company:     company,
		Role:        role,
		Status:      status,
		Origin:      origin,
		DateApplied: dateApplied,
	}
}

// Validate checks the fields a record cannot live without.
func (j Job) Validate() error {
	if strings.TrimSpace(j.Company) == "" {
		return fmt.Errorf("%w: company", ErrMissingField)
	}
	if strings.TrimSpace(j.Role) == "" {
		return fmt.Errorf("%w: role", ErrMissingField)
	}
	if _, err := ParseStatus(string(j.Status)); err != nil {
		return err
	}
	if _, err := ParseOrigin(string(j.Origin)); err != nil {
		return err
	}
	return nil
}
