package grpc

import (
	"github.com/dmitrijs2005/jobtracker/internal/common"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

func jobFromFields(f pb.JobFields) *models.Job {
	return &models.Job{
		Company:        f.Company,
		Role:           f.Role,
		Location:       f.Location,
		Salary:         f.Salary,
		Email:          f.Email,
		Description:    f.Description,
		Status:         f.Status,
		Origin:         f.Origin,
		CoverLetter:    f.CoverLetter,
		InterviewGuide: f.InterviewGuide,
	}
}

func jobToProto(j *models.Job) *pb.Job {
	return &pb.Job{
		ID:          j.ID,
		DateApplied: common.FormatDate(j.DateApplied),
		JobFields: pb.JobFields{
			Company:        j.Company,
			Role:           j.Role,
			Location:       j.Location,
			Salary:         j.Salary,
			Email:          j.Email,
			Description:    j.Description,
			Status:         j.Status,
			Origin:         j.Origin,
			CoverLetter:    j.CoverLetter,
			InterviewGuide: j.InterviewGuide,
		},
	}
}
