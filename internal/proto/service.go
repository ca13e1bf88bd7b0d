package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "jobtracker.v1.JobTrackerService"

const (
	PingMethod               = "/" + ServiceName + "/Ping"
	CreateJobMethod          = "/" + ServiceName + "/CreateJob"
	UpdateJobMethod          = "/" + ServiceName + "/UpdateJob"
	DeleteJobMethod          = "/" + ServiceName + "/DeleteJob"
	ListJobsMethod           = "/" + ServiceName + "/ListJobs"
	GetResumeMethod          = "/" + ServiceName + "/GetResume"
	SaveResumeMethod         = "/" + ServiceName + "/SaveResume"
	GetAvatarUploadUrlMethod = "/" + ServiceName + "/GetAvatarUploadUrl"
	GetAvatarUrlMethod       = "/" + ServiceName + "/GetAvatarUrl"
)

// JobTrackerServiceClient is the client API for the jobtracker service.
type JobTrackerServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	CreateJob(ctx context.Context, in *CreateJobRequest, opts ...grpc.CallOption) (*CreateJobResponse, error)
	UpdateJob(ctx context.Context, in *UpdateJobRequest, opts ...grpc.CallOption) (*UpdateJobResponse, error)
	DeleteJob(ctx context.Context, in *DeleteJobRequest, opts ...grpc.CallOption) (*DeleteJobResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	GetResume(ctx context.Context, in *GetResumeRequest, opts ...grpc.CallOption) (*GetResumeResponse, error)
	SaveResume(ctx context.Context, in *SaveResumeRequest, opts ...grpc.CallOption) (*SaveResumeResponse, error)
	GetAvatarUploadUrl(ctx context.Context, in *GetAvatarUploadUrlRequest, opts ...grpc.CallOption) (*GetAvatarUploadUrlResponse, error)
	GetAvatarUrl(ctx context.Context, in *GetAvatarUrlRequest, opts ...grpc.CallOption) (*GetAvatarUrlResponse, error)
}

type jobTrackerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobTrackerServiceClient(cc grpc.ClientConnInterface) JobTrackerServiceClient {
	return &jobTrackerServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobTrackerServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, PingMethod, in, opts)
}

func (c *jobTrackerServiceClient) CreateJob(ctx context.Context, in *CreateJobRequest, opts ...grpc.CallOption) (*CreateJobResponse, error) {
	return invoke[CreateJobResponse](ctx, c.cc, CreateJobMethod, in, opts)
}

func (c *jobTrackerServiceClient) UpdateJob(ctx context.Context, in *UpdateJobRequest, opts ...grpc.CallOption) (*UpdateJobResponse, error) {
	return invoke[UpdateJobResponse](ctx, c.cc, UpdateJobMethod, in, opts)
}

func (c *jobTrackerServiceClient) DeleteJob(ctx context.Context, in *DeleteJobRequest, opts ...grpc.CallOption) (*DeleteJobResponse, error) {
	return invoke[DeleteJobResponse](ctx, c.cc, DeleteJobMethod, in, opts)
}

func (c *jobTrackerServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	return invoke[ListJobsResponse](ctx, c.cc, ListJobsMethod, in, opts)
}

func (c *jobTrackerServiceClient) GetResume(ctx context.Context, in *GetResumeRequest, opts ...grpc.CallOption) (*GetResumeResponse, error) {
	return invoke[GetResumeResponse](ctx, c.cc, GetResumeMethod, in, opts)
}

func (c *jobTrackerServiceClient) SaveResume(ctx context.Context, in *SaveResumeRequest, opts ...grpc.CallOption) (*SaveResumeResponse, error) {
	return invoke[SaveResumeResponse](ctx, c.cc, SaveResumeMethod, in, opts)
}

func (c *jobTrackerServiceClient) GetAvatarUploadUrl(ctx context.Context, in *GetAvatarUploadUrlRequest, opts ...grpc.CallOption) (*GetAvatarUploadUrlResponse, error) {
	return invoke[GetAvatarUploadUrlResponse](ctx, c.cc, GetAvatarUploadUrlMethod, in, opts)
}

func (c *jobTrackerServiceClient) GetAvatarUrl(ctx context.Context, in *GetAvatarUrlRequest, opts ...grpc.CallOption) (*GetAvatarUrlResponse, error) {
	return invoke[GetAvatarUrlResponse](ctx, c.cc, GetAvatarUrlMethod, in, opts)
}

// JobTrackerServiceServer is the server API for the jobtracker service.
type JobTrackerServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	CreateJob(context.Context, *CreateJobRequest) (*CreateJobResponse, error)
	UpdateJob(context.Context, *UpdateJobRequest) (*UpdateJobResponse, error)
	DeleteJob(context.Context, *DeleteJobRequest) (*DeleteJobResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	GetResume(context.Context, *GetResumeRequest) (*GetResumeResponse, error)
	SaveResume(context.Context, *SaveResumeRequest) (*SaveResumeResponse, error)
	GetAvatarUploadUrl(context.Context, *GetAvatarUploadUrlRequest) (*GetAvatarUploadUrlResponse, error)
	GetAvatarUrl(context.Context, *GetAvatarUrlRequest) (*GetAvatarUrlResponse, error)
}

// UnimplementedJobTrackerServiceServer can be embedded to have forward compatible implementations.
type UnimplementedJobTrackerServiceServer struct{}

func (UnimplementedJobTrackerServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedJobTrackerServiceServer) CreateJob(context.Context, *CreateJobRequest) (*CreateJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateJob not implemented")
}
func (UnimplementedJobTrackerServiceServer) UpdateJob(context.Context, *UpdateJobRequest) (*UpdateJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateJob not implemented")
}
func (UnimplementedJobTrackerServiceServer) DeleteJob(context.Context, *DeleteJobRequest) (*DeleteJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteJob not implemented")
}
func (UnimplementedJobTrackerServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedJobTrackerServiceServer) GetResume(context.Context, *GetResumeRequest) (*GetResumeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetResume not implemented")
}
func (UnimplementedJobTrackerServiceServer) SaveResume(context.Context, *SaveResumeRequest) (*SaveResumeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveResume not implemented")
}
func (UnimplementedJobTrackerServiceServer) GetAvatarUploadUrl(context.Context, *GetAvatarUploadUrlRequest) (*GetAvatarUploadUrlResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAvatarUploadUrl not implemented")
}
func (UnimplementedJobTrackerServiceServer) GetAvatarUrl(context.Context, *GetAvatarUrlRequest) (*GetAvatarUrlResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAvatarUrl not implemented")
}

func unaryHandler[Req any, Resp any](method string, call func(JobTrackerServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(JobTrackerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(JobTrackerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// JobTrackerService_ServiceDesc is the grpc.ServiceDesc for the jobtracker service.
var JobTrackerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JobTrackerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(PingMethod, JobTrackerServiceServer.Ping)},
		{MethodName: "CreateJob", Handler: unaryHandler(CreateJobMethod, JobTrackerServiceServer.CreateJob)},
		{MethodName: "UpdateJob", Handler: unaryHandler(UpdateJobMethod, JobTrackerServiceServer.UpdateJob)},
		{MethodName: "DeleteJob", Handler: unaryHandler(DeleteJobMethod, JobTrackerServiceServer.DeleteJob)},
		{MethodName: "ListJobs", Handler: unaryHandler(ListJobsMethod, JobTrackerServiceServer.ListJobs)},
		{MethodName: "GetResume", Handler: unaryHandler(GetResumeMethod, JobTrackerServiceServer.GetResume)},
		{MethodName: "SaveResume", Handler: unaryHandler(SaveResumeMethod, JobTrackerServiceServer.SaveResume)},
		{MethodName: "GetAvatarUploadUrl", Handler: unaryHandler(GetAvatarUploadUrlMethod, JobTrackerServiceServer.GetAvatarUploadUrl)},
		{MethodName: "GetAvatarUrl", Handler: unaryHandler(GetAvatarUrlMethod, JobTrackerServiceServer.GetAvatarUrl)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "jobtracker/v1/service",
}

func RegisterJobTrackerServiceServer(s grpc.ServiceRegistrar, srv JobTrackerServiceServer) {
	s.RegisterService(&JobTrackerService_ServiceDesc, srv)
}
