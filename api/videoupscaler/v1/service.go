package videoupscalerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Query_GetVideoUpscalerTask_FullMethodName         = "/janction.videoUpscaler.v1.Query/GetVideoUpscalerTask"
	Query_GetVideoUpscalerLogs_FullMethodName         = "/janction.videoUpscaler.v1.Query/GetVideoUpscalerLogs"
	Query_GetPendingVideoUpscalerTasks_FullMethodName = "/janction.videoUpscaler.v1.Query/GetPendingVideoUpscalerTasks"
	Query_GetWorker_FullMethodName                    = "/janction.videoUpscaler.v1.Query/GetWorker"
)

// QueryClient is the client API for the videoUpscaler Query service.
type QueryClient interface {
	GetVideoUpscalerTask(ctx context.Context, in *QueryGetVideoUpscalerTaskRequest, opts ...grpc.CallOption) (*QueryGetVideoUpscalerTaskResponse, error)
	GetVideoUpscalerLogs(ctx context.Context, in *QueryGetVideoUpscalerLogsRequest, opts ...grpc.CallOption) (*QueryGetVideoUpscalerLogsResponse, error)
	GetPendingVideoUpscalerTasks(ctx context.Context, in *QueryGetPendingVideoUpscalerTaskRequest, opts ...grpc.CallOption) (*QueryGetPendingVideoUpscalerTaskResponse, error)
	GetWorker(ctx context.Context, in *QueryGetWorkerRequest, opts ...grpc.CallOption) (*QueryGetWorkerResponse, error)
}

type queryClient struct {
	cc grpc.ClientConnInterface
}

// NewQueryClient returns a Query client over any gRPC connection, including a
// cosmos-sdk client.Context.
func NewQueryClient(cc grpc.ClientConnInterface) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) GetVideoUpscalerTask(ctx context.Context, in *QueryGetVideoUpscalerTaskRequest, opts ...grpc.CallOption) (*QueryGetVideoUpscalerTaskResponse, error) {
	out := new(QueryGetVideoUpscalerTaskResponse)
	if err := c.cc.Invoke(ctx, Query_GetVideoUpscalerTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) GetVideoUpscalerLogs(ctx context.Context, in *QueryGetVideoUpscalerLogsRequest, opts ...grpc.CallOption) (*QueryGetVideoUpscalerLogsResponse, error) {
	out := new(QueryGetVideoUpscalerLogsResponse)
	if err := c.cc.Invoke(ctx, Query_GetVideoUpscalerLogs_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) GetPendingVideoUpscalerTasks(ctx context.Context, in *QueryGetPendingVideoUpscalerTaskRequest, opts ...grpc.CallOption) (*QueryGetPendingVideoUpscalerTaskResponse, error) {
	out := new(QueryGetPendingVideoUpscalerTaskResponse)
	if err := c.cc.Invoke(ctx, Query_GetPendingVideoUpscalerTasks_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) GetWorker(ctx context.Context, in *QueryGetWorkerRequest, opts ...grpc.CallOption) (*QueryGetWorkerResponse, error) {
	out := new(QueryGetWorkerResponse)
	if err := c.cc.Invoke(ctx, Query_GetWorker_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServer is the server API for the videoUpscaler Query service.
type QueryServer interface {
	GetVideoUpscalerTask(context.Context, *QueryGetVideoUpscalerTaskRequest) (*QueryGetVideoUpscalerTaskResponse, error)
	GetVideoUpscalerLogs(context.Context, *QueryGetVideoUpscalerLogsRequest) (*QueryGetVideoUpscalerLogsResponse, error)
	GetPendingVideoUpscalerTasks(context.Context, *QueryGetPendingVideoUpscalerTaskRequest) (*QueryGetPendingVideoUpscalerTaskResponse, error)
	GetWorker(context.Context, *QueryGetWorkerRequest) (*QueryGetWorkerResponse, error)
}

// UnimplementedQueryServer can be embedded to have forward compatible implementations.
type UnimplementedQueryServer struct{}

func (UnimplementedQueryServer) GetVideoUpscalerTask(context.Context, *QueryGetVideoUpscalerTaskRequest) (*QueryGetVideoUpscalerTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVideoUpscalerTask not implemented")
}
func (UnimplementedQueryServer) GetVideoUpscalerLogs(context.Context, *QueryGetVideoUpscalerLogsRequest) (*QueryGetVideoUpscalerLogsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVideoUpscalerLogs not implemented")
}
func (UnimplementedQueryServer) GetPendingVideoUpscalerTasks(context.Context, *QueryGetPendingVideoUpscalerTaskRequest) (*QueryGetPendingVideoUpscalerTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPendingVideoUpscalerTasks not implemented")
}
func (UnimplementedQueryServer) GetWorker(context.Context, *QueryGetWorkerRequest) (*QueryGetWorkerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWorker not implemented")
}

func RegisterQueryServer(s grpc.ServiceRegistrar, srv QueryServer) {
	s.RegisterService(&Query_ServiceDesc, srv)
}

var Query_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "janction.videoUpscaler.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetVideoUpscalerTask",
			Handler: unaryHandler(Query_GetVideoUpscalerTask_FullMethodName,
				func(srv any, ctx context.Context, in *QueryGetVideoUpscalerTaskRequest) (*QueryGetVideoUpscalerTaskResponse, error) {
					return srv.(QueryServer).GetVideoUpscalerTask(ctx, in)
				}),
		},
		{
			MethodName: "GetVideoUpscalerLogs",
			Handler: unaryHandler(Query_GetVideoUpscalerLogs_FullMethodName,
				func(srv any, ctx context.Context, in *QueryGetVideoUpscalerLogsRequest) (*QueryGetVideoUpscalerLogsResponse, error) {
					return srv.(QueryServer).GetVideoUpscalerLogs(ctx, in)
				}),
		},
		{
			MethodName: "GetPendingVideoUpscalerTasks",
			Handler: unaryHandler(Query_GetPendingVideoUpscalerTasks_FullMethodName,
				func(srv any, ctx context.Context, in *QueryGetPendingVideoUpscalerTaskRequest) (*QueryGetPendingVideoUpscalerTaskResponse, error) {
					return srv.(QueryServer).GetPendingVideoUpscalerTasks(ctx, in)
				}),
		},
		{
			MethodName: "GetWorker",
			Handler: unaryHandler(Query_GetWorker_FullMethodName,
				func(srv any, ctx context.Context, in *QueryGetWorkerRequest) (*QueryGetWorkerResponse, error) {
					return srv.(QueryServer).GetWorker(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "janction/videoUpscaler/v1/query.proto",
}

const (
	Msg_CreateVideoUpscalerTask_FullMethodName = "/janction.videoUpscaler.v1.Msg/CreateVideoUpscalerTask"
	Msg_AddWorker_FullMethodName               = "/janction.videoUpscaler.v1.Msg/AddWorker"
	Msg_SubscribeWorkerToTask_FullMethodName   = "/janction.videoUpscaler.v1.Msg/SubscribeWorkerToTask"
	Msg_ProposeSolution_FullMethodName         = "/janction.videoUpscaler.v1.Msg/ProposeSolution"
	Msg_RevealSolution_FullMethodName          = "/janction.videoUpscaler.v1.Msg/RevealSolution"
	Msg_SubmitValidation_FullMethodName        = "/janction.videoUpscaler.v1.Msg/SubmitValidation"
	Msg_SubmitSolution_FullMethodName          = "/janction.videoUpscaler.v1.Msg/SubmitSolution"
)

// MsgClient is the client API for the videoUpscaler Msg service. Chains only
// accept these through transactions; the client exists for in-process routers.
type MsgClient interface {
	CreateVideoUpscalerTask(ctx context.Context, in *MsgCreateVideoUpscalerTask, opts ...grpc.CallOption) (*MsgCreateVideoUpscalerTaskResponse, error)
	AddWorker(ctx context.Context, in *MsgAddWorker, opts ...grpc.CallOption) (*MsgAddWorkerResponse, error)
	SubscribeWorkerToTask(ctx context.Context, in *MsgSubscribeWorkerToTask, opts ...grpc.CallOption) (*MsgSubscribeWorkerToTaskResponse, error)
	ProposeSolution(ctx context.Context, in *MsgProposeSolution, opts ...grpc.CallOption) (*MsgProposeSolutionResponse, error)
	RevealSolution(ctx context.Context, in *MsgRevealSolution, opts ...grpc.CallOption) (*MsgRevealSolutionResponse, error)
	SubmitValidation(ctx context.Context, in *MsgSubmitValidation, opts ...grpc.CallOption) (*MsgSubmitValidationResponse, error)
	SubmitSolution(ctx context.Context, in *MsgSubmitSolution, opts ...grpc.CallOption) (*MsgSubmitSolutionResponse, error)
}

type msgClient struct {
	cc grpc.ClientConnInterface
}

func NewMsgClient(cc grpc.ClientConnInterface) MsgClient {
	return &msgClient{cc}
}

func (c *msgClient) CreateVideoUpscalerTask(ctx context.Context, in *MsgCreateVideoUpscalerTask, opts ...grpc.CallOption) (*MsgCreateVideoUpscalerTaskResponse, error) {
	out := new(MsgCreateVideoUpscalerTaskResponse)
	if err := c.cc.Invoke(ctx, Msg_CreateVideoUpscalerTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) AddWorker(ctx context.Context, in *MsgAddWorker, opts ...grpc.CallOption) (*MsgAddWorkerResponse, error) {
	out := new(MsgAddWorkerResponse)
	if err := c.cc.Invoke(ctx, Msg_AddWorker_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) SubscribeWorkerToTask(ctx context.Context, in *MsgSubscribeWorkerToTask, opts ...grpc.CallOption) (*MsgSubscribeWorkerToTaskResponse, error) {
	out := new(MsgSubscribeWorkerToTaskResponse)
	if err := c.cc.Invoke(ctx, Msg_SubscribeWorkerToTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) ProposeSolution(ctx context.Context, in *MsgProposeSolution, opts ...grpc.CallOption) (*MsgProposeSolutionResponse, error) {
	out := new(MsgProposeSolutionResponse)
	if err := c.cc.Invoke(ctx, Msg_ProposeSolution_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) RevealSolution(ctx context.Context, in *MsgRevealSolution, opts ...grpc.CallOption) (*MsgRevealSolutionResponse, error) {
	out := new(MsgRevealSolutionResponse)
	if err := c.cc.Invoke(ctx, Msg_RevealSolution_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) SubmitValidation(ctx context.Context, in *MsgSubmitValidation, opts ...grpc.CallOption) (*MsgSubmitValidationResponse, error) {
	out := new(MsgSubmitValidationResponse)
	if err := c.cc.Invoke(ctx, Msg_SubmitValidation_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) SubmitSolution(ctx context.Context, in *MsgSubmitSolution, opts ...grpc.CallOption) (*MsgSubmitSolutionResponse, error) {
	out := new(MsgSubmitSolutionResponse)
	if err := c.cc.Invoke(ctx, Msg_SubmitSolution_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MsgServer is the server API for the videoUpscaler Msg service.
type MsgServer interface {
	CreateVideoUpscalerTask(context.Context, *MsgCreateVideoUpscalerTask) (*MsgCreateVideoUpscalerTaskResponse, error)
	AddWorker(context.Context, *MsgAddWorker) (*MsgAddWorkerResponse, error)
	SubscribeWorkerToTask(context.Context, *MsgSubscribeWorkerToTask) (*MsgSubscribeWorkerToTaskResponse, error)
	ProposeSolution(context.Context, *MsgProposeSolution) (*MsgProposeSolutionResponse, error)
	RevealSolution(context.Context, *MsgRevealSolution) (*MsgRevealSolutionResponse, error)
	SubmitValidation(context.Context, *MsgSubmitValidation) (*MsgSubmitValidationResponse, error)
	SubmitSolution(context.Context, *MsgSubmitSolution) (*MsgSubmitSolutionResponse, error)
}

// UnimplementedMsgServer can be embedded to have forward compatible implementations.
type UnimplementedMsgServer struct{}

func (UnimplementedMsgServer) CreateVideoUpscalerTask(context.Context, *MsgCreateVideoUpscalerTask) (*MsgCreateVideoUpscalerTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateVideoUpscalerTask not implemented")
}
func (UnimplementedMsgServer) AddWorker(context.Context, *MsgAddWorker) (*MsgAddWorkerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddWorker not implemented")
}
func (UnimplementedMsgServer) SubscribeWorkerToTask(context.Context, *MsgSubscribeWorkerToTask) (*MsgSubscribeWorkerToTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubscribeWorkerToTask not implemented")
}
func (UnimplementedMsgServer) ProposeSolution(context.Context, *MsgProposeSolution) (*MsgProposeSolutionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProposeSolution not implemented")
}
func (UnimplementedMsgServer) RevealSolution(context.Context, *MsgRevealSolution) (*MsgRevealSolutionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RevealSolution not implemented")
}
func (UnimplementedMsgServer) SubmitValidation(context.Context, *MsgSubmitValidation) (*MsgSubmitValidationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitValidation not implemented")
}
func (UnimplementedMsgServer) SubmitSolution(context.Context, *MsgSubmitSolution) (*MsgSubmitSolutionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitSolution not implemented")
}

func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {
	s.RegisterService(&Msg_ServiceDesc, srv)
}

var Msg_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "janction.videoUpscaler.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateVideoUpscalerTask",
			Handler: unaryHandler(Msg_CreateVideoUpscalerTask_FullMethodName,
				func(srv any, ctx context.Context, in *MsgCreateVideoUpscalerTask) (*MsgCreateVideoUpscalerTaskResponse, error) {
					return srv.(MsgServer).CreateVideoUpscalerTask(ctx, in)
				}),
		},
		{
			MethodName: "AddWorker",
			Handler: unaryHandler(Msg_AddWorker_FullMethodName,
				func(srv any, ctx context.Context, in *MsgAddWorker) (*MsgAddWorkerResponse, error) {
					return srv.(MsgServer).AddWorker(ctx, in)
				}),
		},
		{
			MethodName: "SubscribeWorkerToTask",
			Handler: unaryHandler(Msg_SubscribeWorkerToTask_FullMethodName,
				func(srv any, ctx context.Context, in *MsgSubscribeWorkerToTask) (*MsgSubscribeWorkerToTaskResponse, error) {
					return srv.(MsgServer).SubscribeWorkerToTask(ctx, in)
				}),
		},
		{
			MethodName: "ProposeSolution",
			Handler: unaryHandler(Msg_ProposeSolution_FullMethodName,
				func(srv any, ctx context.Context, in *MsgProposeSolution) (*MsgProposeSolutionResponse, error) {
					return srv.(MsgServer).ProposeSolution(ctx, in)
				}),
		},
		{
			MethodName: "RevealSolution",
			Handler: unaryHandler(Msg_RevealSolution_FullMethodName,
				func(srv any, ctx context.Context, in *MsgRevealSolution) (*MsgRevealSolutionResponse, error) {
					return srv.(MsgServer).RevealSolution(ctx, in)
				}),
		},
		{
			MethodName: "SubmitValidation",
			Handler: unaryHandler(Msg_SubmitValidation_FullMethodName,
				func(srv any, ctx context.Context, in *MsgSubmitValidation) (*MsgSubmitValidationResponse, error) {
					return srv.(MsgServer).SubmitValidation(ctx, in)
				}),
		},
		{
			MethodName: "SubmitSolution",
			Handler: unaryHandler(Msg_SubmitSolution_FullMethodName,
				func(srv any, ctx context.Context, in *MsgSubmitSolution) (*MsgSubmitSolutionResponse, error) {
					return srv.(MsgServer).SubmitSolution(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "janction/videoUpscaler/v1/tx.proto",
}

// unaryHandler adapts a typed server call to grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(srv any, ctx context.Context, in *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
