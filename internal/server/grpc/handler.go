package grpc

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into a gRPC status. Internal failures
// are logged and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.Error(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) CreateJob(ctx context.Context, req *pb.CreateJobRequest) (*pb.CreateJobResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	job := jobFromFields(req.Fields)
	if job.DateApplied, err = common.ParseDate(req.DateApplied); err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad date_applied")
	}

	id, err := s.jobs.Create(ctx, userID, job)
	if err != nil {
		return nil, s.toStatus(ctx, "create job", err)
	}

	s.logger.Info(ctx, "Job created", "user_id", userID, "id", id)
	return &pb.CreateJobResponse{ID: id}, nil

}

func (s *GRPCServer) UpdateJob(ctx context.Context, req *pb.UpdateJobRequest) (*pb.UpdateJobResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	job := jobFromFields(req.Fields)
	job.ID = req.ID

	if err := s.jobs.Update(ctx, userID, job); err != nil {
		return nil, s.toStatus(ctx, "update job", err)
	}

	return &pb.UpdateJobResponse{}, nil

}

func (s *GRPCServer) DeleteJob(ctx context.Context, req *pb.DeleteJobRequest) (*pb.DeleteJobResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.Delete(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "delete job", err)
	}

	s.logger.Info(ctx, "Job deleted", "user_id", userID, "id", req.ID)
	return &pb.DeleteJobResponse{}, nil

}

func (s *GRPCServer) ListJobs(ctx context.Context, req *pb.ListJobsRequest) (*pb.ListJobsResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "list jobs", err)
	}

	resp := &pb.ListJobsResponse{Jobs: make([]*pb.Job, 0, len(jobs))}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, jobToProto(j))
	}
	return resp, nil

}

func (s *GRPCServer) GetResume(ctx context.Context, req *pb.GetResumeRequest) (*pb.GetResumeResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	r, err := s.resumes.Get(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return &pb.GetResumeResponse{Found: false}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, "get resume", err)
	}

	var doc pb.Resume
	if err := json.Unmarshal(r.Data, &doc); err != nil {
		return nil, s.toStatus(ctx, "decode resume", err)
	}
	return &pb.GetResumeResponse{Resume: &doc, Found: true}, nil

}

func (s *GRPCServer) SaveResume(ctx context.Context, req *pb.SaveResumeRequest) (*pb.SaveResumeResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Resume == nil {
		return nil, status.Error(codes.InvalidArgument, "resume is required")
	}

	data, err := json.Marshal(req.Resume)
	if err != nil {
		return nil, s.toStatus(ctx, "encode resume", err)
	}

	if err := s.resumes.Save(ctx, userID, data); err != nil {
		return nil, s.toStatus(ctx, "save resume", err)
	}
	return &pb.SaveResumeResponse{}, nil

}

func (s *GRPCServer) GetAvatarUploadUrl(ctx context.Context, req *pb.GetAvatarUploadUrlRequest) (*pb.GetAvatarUploadUrlResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key, url, err := s.avatars.UploadURL(ctx, userID, req.Digest, req.ContentType)
	if err != nil {
		return nil, s.toStatus(ctx, "presign avatar upload", err)
	}
	return &pb.GetAvatarUploadUrlResponse{Key: key, Url: url}, nil

}

func (s *GRPCServer) GetAvatarUrl(ctx context.Context, req *pb.GetAvatarUrlRequest) (*pb.GetAvatarUrlResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.DownloadURL(ctx, userID, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, "presign avatar download", err)
	}
	return &pb.GetAvatarUrlResponse{Url: url}, nil

}
