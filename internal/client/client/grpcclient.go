package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL    string
	conn           *grpc.ClientConn
	client         pb.JobTrackerServiceClient
	accessToken    string
	requestTimeout time.Duration
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the bearer token and bounds every call by
// requestTimeout when one is configured.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewJobTrackerClient(endpointURL, accessToken string, requestTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken, requestTimeout: requestTimeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(pb.CodecName)),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewJobTrackerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) CreateJob(ctx context.Context, job models.Job) (string, error) {

	req := &pb.CreateJobRequest{DateApplied: common.FormatDate(job.DateApplied), Fields: jobFields(job)}

	resp, err := s.client.CreateJob(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("create job: empty id in response")
	}

	return resp.ID, nil
}

func (s *GRPCClient) UpdateJob(ctx context.Context, job models.Job) error {

	_, err := s.client.UpdateJob(ctx, &pb.UpdateJobRequest{ID: job.ID, Fields: jobFields(job)})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteJob(ctx context.Context, id string) error {

	_, err := s.client.DeleteJob(ctx, &pb.DeleteJobRequest{ID: id})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListJobs(ctx context.Context) ([]models.Job, error) {

	resp, err := s.client.ListJobs(ctx, &pb.ListJobsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	jobs := make([]models.Job, 0, len(resp.Jobs))
	for _, w := range resp.Jobs {
		j, err := jobFromWire(w)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// GetResume returns the stored resume, or ErrNotFound when the user has none yet.
func (s *GRPCClient) GetResume(ctx context.Context) (*models.Resume, error) {

	resp, err := s.client.GetResume(ctx, &pb.GetResumeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	if !resp.Found || resp.Resume == nil {
		return nil, ErrNotFound
	}

	r := resumeFromWire(resp.Resume)
	return &r, nil
}

func (s *GRPCClient) SaveResume(ctx context.Context, resume models.Resume) error {

	_, err := s.client.SaveResume(ctx, &pb.SaveResumeRequest{Resume: resumeToWire(resume)})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetAvatarUploadURL(ctx context.Context, digest, contentType string) (string, string, error) {

	resp, err := s.client.GetAvatarUploadUrl(ctx, &pb.GetAvatarUploadUrlRequest{Digest: digest, ContentType: contentType})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) GetAvatarURL(ctx context.Context, key string) (string, error) {

	resp, err := s.client.GetAvatarUrl(ctx, &pb.GetAvatarUrlRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
