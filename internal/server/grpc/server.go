// Package grpc exposes the job tracker persistence service over gRPC.
package grpc

import (
	"context"
	"encoding/json"
	"net"

	"github.com/dmitrijs2005/jobtracker/internal/logging"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"google.golang.org/grpc"
)

type jobSvc interface {
	Create(ctx context.Context, userID string, job *models.Job) (string, error)
	Update(ctx context.Context, userID string, job *models.Job) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]*models.Job, error)
}

type resumeSvc interface {
	Get(ctx context.Context, userID string) (*models.Resume, error)
	Save(ctx context.Context, userID string, data json.RawMessage) error
}

type avatarSvc interface {
	UploadURL(ctx context.Context, userID, digest, contentType string) (string, string, error)
	DownloadURL(ctx context.Context, userID, key string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedJobTrackerServiceServer
	address   string
	jobs      jobSvc
	resumes   resumeSvc
	avatars   avatarSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, js jobSvc, rs resumeSvc, as avatarSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		jobs:      js,
		resumes:   rs,
		avatars:   as,
		jwtSecret: []byte(secretKey),
	}
}

// buildServer builds the gRPC server with the auth interceptor and registers
// the service on it.
func (s *GRPCServer) buildServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterJobTrackerServiceServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.buildServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
