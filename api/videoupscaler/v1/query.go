package videoupscalerv1

import (
	proto "github.com/cosmos/gogoproto/proto"
)

type QueryGetVideoUpscalerTaskRequest struct {
	Index string `protobuf:"bytes,1,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *QueryGetVideoUpscalerTaskRequest) Reset()         { *m = QueryGetVideoUpscalerTaskRequest{} }
func (m *QueryGetVideoUpscalerTaskRequest) String() string { return proto.CompactTextString(m) }
func (*QueryGetVideoUpscalerTaskRequest) ProtoMessage()    {}
func (*QueryGetVideoUpscalerTaskRequest) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{0}
}
func (*QueryGetVideoUpscalerTaskRequest) XXX_MessageName() string {
	return protoPackage + ".QueryGetVideoUpscalerTaskRequest"
}

type QueryGetVideoUpscalerTaskResponse struct {
	VideoUpscalerTask *VideoUpscalerTask `protobuf:"bytes,1,opt,name=videoUpscalerTask,proto3" json:"videoUpscalerTask,omitempty"`
}

func (m *QueryGetVideoUpscalerTaskResponse) Reset()         { *m = QueryGetVideoUpscalerTaskResponse{} }
func (m *QueryGetVideoUpscalerTaskResponse) String() string { return proto.CompactTextString(m) }
func (*QueryGetVideoUpscalerTaskResponse) ProtoMessage()    {}
func (*QueryGetVideoUpscalerTaskResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{1}
}
func (*QueryGetVideoUpscalerTaskResponse) XXX_MessageName() string {
	return protoPackage + ".QueryGetVideoUpscalerTaskResponse"
}

func (m *QueryGetVideoUpscalerTaskResponse) GetVideoUpscalerTask() *VideoUpscalerTask {
	if m != nil {
		return m.VideoUpscalerTask
	}
	return nil
}

type QueryGetVideoUpscalerLogsRequest struct {
	ThreadId string `protobuf:"bytes,1,opt,name=threadId,proto3" json:"threadId,omitempty"`
}

func (m *QueryGetVideoUpscalerLogsRequest) Reset()         { *m = QueryGetVideoUpscalerLogsRequest{} }
func (m *QueryGetVideoUpscalerLogsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryGetVideoUpscalerLogsRequest) ProtoMessage()    {}
func (*QueryGetVideoUpscalerLogsRequest) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{2}
}
func (*QueryGetVideoUpscalerLogsRequest) XXX_MessageName() string {
	return protoPackage + ".QueryGetVideoUpscalerLogsRequest"
}

type QueryGetVideoUpscalerLogsResponse struct {
	VideoUpscalerLogs *VideoUpscalerLogs `protobuf:"bytes,1,opt,name=videoUpscalerLogs,proto3" json:"videoUpscalerLogs,omitempty"`
}

func (m *QueryGetVideoUpscalerLogsResponse) Reset()         { *m = QueryGetVideoUpscalerLogsResponse{} }
func (m *QueryGetVideoUpscalerLogsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryGetVideoUpscalerLogsResponse) ProtoMessage()    {}
func (*QueryGetVideoUpscalerLogsResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{3}
}
func (*QueryGetVideoUpscalerLogsResponse) XXX_MessageName() string {
	return protoPackage + ".QueryGetVideoUpscalerLogsResponse"
}

func (m *QueryGetVideoUpscalerLogsResponse) GetVideoUpscalerLogs() *VideoUpscalerLogs {
	if m != nil {
		return m.VideoUpscalerLogs
	}
	return nil
}

type QueryGetPendingVideoUpscalerTaskRequest struct{}

func (m *QueryGetPendingVideoUpscalerTaskRequest) Reset() {
	*m = QueryGetPendingVideoUpscalerTaskRequest{}
}
func (m *QueryGetPendingVideoUpscalerTaskRequest) String() string { return proto.CompactTextString(m) }
func (*QueryGetPendingVideoUpscalerTaskRequest) ProtoMessage()    {}
func (*QueryGetPendingVideoUpscalerTaskRequest) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{4}
}
func (*QueryGetPendingVideoUpscalerTaskRequest) XXX_MessageName() string {
	return protoPackage + ".QueryGetPendingVideoUpscalerTaskRequest"
}

type QueryGetPendingVideoUpscalerTaskResponse struct {
	VideoUpscalerTasks []*VideoUpscalerTask `protobuf:"bytes,1,rep,name=videoUpscalerTasks,proto3" json:"videoUpscalerTasks,omitempty"`
}

func (m *QueryGetPendingVideoUpscalerTaskResponse) Reset() {
	*m = QueryGetPendingVideoUpscalerTaskResponse{}
}
func (m *QueryGetPendingVideoUpscalerTaskResponse) String() string { return proto.CompactTextString(m) }
func (*QueryGetPendingVideoUpscalerTaskResponse) ProtoMessage()    {}
func (*QueryGetPendingVideoUpscalerTaskResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{5}
}
func (*QueryGetPendingVideoUpscalerTaskResponse) XXX_MessageName() string {
	return protoPackage + ".QueryGetPendingVideoUpscalerTaskResponse"
}

func (m *QueryGetPendingVideoUpscalerTaskResponse) GetVideoUpscalerTasks() []*VideoUpscalerTask {
	if m != nil {
		return m.VideoUpscalerTasks
	}
	return nil
}

type QueryGetWorkerRequest struct {
	Worker string `protobuf:"bytes,1,opt,name=worker,proto3" json:"worker,omitempty"`
}

func (m *QueryGetWorkerRequest) Reset()         { *m = QueryGetWorkerRequest{} }
func (m *QueryGetWorkerRequest) String() string { return proto.CompactTextString(m) }
func (*QueryGetWorkerRequest) ProtoMessage()    {}
func (*QueryGetWorkerRequest) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{6}
}
func (*QueryGetWorkerRequest) XXX_MessageName() string {
	return protoPackage + ".QueryGetWorkerRequest"
}

type QueryGetWorkerResponse struct {
	Worker *Worker `protobuf:"bytes,1,opt,name=worker,proto3" json:"worker,omitempty"`
}

func (m *QueryGetWorkerResponse) Reset()         { *m = QueryGetWorkerResponse{} }
func (m *QueryGetWorkerResponse) String() string { return proto.CompactTextString(m) }
func (*QueryGetWorkerResponse) ProtoMessage()    {}
func (*QueryGetWorkerResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(queryFile), []int{7}
}
func (*QueryGetWorkerResponse) XXX_MessageName() string {
	return protoPackage + ".QueryGetWorkerResponse"
}

func (m *QueryGetWorkerResponse) GetWorker() *Worker {
	if m != nil {
		return m.Worker
	}
	return nil
}

func init() {
	proto.RegisterType((*QueryGetVideoUpscalerTaskRequest)(nil), "janction.videoUpscaler.v1.QueryGetVideoUpscalerTaskRequest")
	proto.RegisterType((*QueryGetVideoUpscalerTaskResponse)(nil), "janction.videoUpscaler.v1.QueryGetVideoUpscalerTaskResponse")
	proto.RegisterType((*QueryGetVideoUpscalerLogsRequest)(nil), "janction.videoUpscaler.v1.QueryGetVideoUpscalerLogsRequest")
	proto.RegisterType((*QueryGetVideoUpscalerLogsResponse)(nil), "janction.videoUpscaler.v1.QueryGetVideoUpscalerLogsResponse")
	proto.RegisterType((*QueryGetPendingVideoUpscalerTaskRequest)(nil), "janction.videoUpscaler.v1.QueryGetPendingVideoUpscalerTaskRequest")
	proto.RegisterType((*QueryGetPendingVideoUpscalerTaskResponse)(nil), "janction.videoUpscaler.v1.QueryGetPendingVideoUpscalerTaskResponse")
	proto.RegisterType((*QueryGetWorkerRequest)(nil), "janction.videoUpscaler.v1.QueryGetWorkerRequest")
	proto.RegisterType((*QueryGetWorkerResponse)(nil), "janction.videoUpscaler.v1.QueryGetWorkerResponse")
}
