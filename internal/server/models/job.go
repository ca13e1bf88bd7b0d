// Package models defines server-side data models persisted in the database.
package models

import "time"

// Job is one stored job-search record. Status and Origin are stored as the
// strings the client sends; the service validates them on the way in.
type Job struct {
	ID     string
	UserID string

	Company     string
	Role        string
	Location    string
	Salary      string
	Email       string
	Description string
	Status      string
	Origin      string

	// DateApplied is a calendar date; the time part is always zero.
	DateApplied time.Time

	CoverLetter    string
	InterviewGuide string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobStatuses are the status values a record may carry.
var JobStatuses = []string{"Applied", "Interview", "Offer", "Accepted", "Rejected", "Draft"}

// JobOrigins are the accepted origin values; empty marks a legacy record.
var JobOrigins = []string{"", "application", "offer"}
