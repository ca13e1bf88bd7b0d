// Package partition splits the job collection into the applications and
// offers lists. Classify is the only place that decides whether a record is
// an offer; every other package calls through it.
package partition

import "github.com/dmitrijs2005/jobtracker/internal/client/models"

// Classify returns the list a job belongs to. Origin wins when present;
// records without one fall back to their status.
func Classify(j models.Job) models.Origin {
	if j.Origin != models.OriginNone {
		return j.Origin
	}
	if j.Status == models.StatusOffer {
		return models.OriginOffer
	}
	return models.OriginApplication
}

// IsOffer is shorthand for Classify(j) == OriginOffer.
func IsOffer(j models.Job) bool {
	return Classify(j) == models.OriginOffer
}

// Split partitions jobs into applications and offers, preserving relative order.
// It holds no state; call it on every read.
func Split(jobs []models.Job) (applications, offers []models.Job) {
	applications = make([]models.Job, 0, len(jobs))
	offers = make([]models.Job, 0)
	for _, j := range jobs {
		if IsOffer(j) {
			offers = append(offers, j)
		} else {
			applications = append(applications, j)
		}
	}
	return applications, offers
}

// StatusCounts tallies jobs by status, for the dashboard summary.
func StatusCounts(jobs []models.Job) map[models.Status]int {
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, j := range jobs {
		counts[j.Status]++
	}
	return counts
}
