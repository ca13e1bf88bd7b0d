package client

import (
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
)

// jobFields translates the mutable part of a job into its wire form.
func jobFields(j models.Job) pb.JobFields {
	return pb.JobFields{
		Company:        j.Company,
		Role:           j.Role,
		Location:       j.Location,
		Salary:         j.Salary,
		Email:          j.Email,
		Description:    j.Description,
		Status:         string(j.Status),
		Origin:         string(j.Origin),
		CoverLetter:    j.CoverLetter,
		InterviewGuide: j.InterviewGuide,
	}
}

func jobToWire(j models.Job) *pb.Job {
	return &pb.Job{
		ID:          j.ID,
		DateApplied: common.FormatDate(j.DateApplied),
		JobFields:   jobFields(j),
	}
}

func jobFromWire(w *pb.Job) (models.Job, error) {
	d, err := common.ParseDate(w.DateApplied)
	if err != nil {
		return models.Job{}, fmt.Errorf("job %s: bad date_applied: %w", w.ID, err)
	}
	return models.Job{
		ID:             w.ID,
		Company:        w.Company,
		Role:           w.Role,
		Location:       w.Location,
		Salary:         w.Salary,
		Email:          w.Email,
		Description:    w.Description,
		Status:         models.Status(w.Status),
		Origin:         models.Origin(w.Origin),
		DateApplied:    d,
		CoverLetter:    w.CoverLetter,
		InterviewGuide: w.InterviewGuide,
	}, nil
}

func entriesToWire(in []models.ResumeEntry) []pb.ResumeEntry {
	out := make([]pb.ResumeEntry, 0, len(in))
	for _, e := range in {
		out = append(out, pb.ResumeEntry{ID: e.ID, Title: e.Title, Company: e.Company, Date: e.Date, Details: e.Details})
	}
	return out
}

func entriesFromWire(in []pb.ResumeEntry) []models.ResumeEntry {
	out := make([]models.ResumeEntry, 0, len(in))
	for _, e := range in {
		out = append(out, models.ResumeEntry{ID: e.ID, Title: e.Title, Company: e.Company, Date: e.Date, Details: e.Details})
	}
	return out
}

func resumeToWire(r models.Resume) *pb.Resume {
	projects := make([]pb.ResumeProject, 0, len(r.Projects))
	for _, p := range r.Projects {
		projects = append(projects, pb.ResumeProject{ID: p.ID, Name: p.Name, Technologies: p.Technologies, Link: p.Link, Description: p.Description})
	}
	return &pb.Resume{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Summary:    r.Summary,
		Skills:     r.Skills,
		Experience: entriesToWire(r.Experience),
		Education:  entriesToWire(r.Education),
		Projects:   projects,
		Avatar:     r.Avatar,
	}
}

func resumeFromWire(w *pb.Resume) models.Resume {
	projects := make([]models.ResumeProject, 0, len(w.Projects))
	for _, p := range w.Projects {
		projects = append(projects, models.ResumeProject{ID: p.ID, Name: p.Name, Technologies: p.Technologies, Link: p.Link, Description: p.Description})
	}
	return models.Resume{
		FullName:   w.FullName,
		Email:      w.Email,
		Phone:      w.Phone,
		Summary:    w.Summary,
		Skills:     w.Skills,
		Experience: entriesFromWire(w.Experience),
		Education:  entriesFromWire(w.Education),
		Projects:   projects,
		Avatar:     w.Avatar,
	}
}
