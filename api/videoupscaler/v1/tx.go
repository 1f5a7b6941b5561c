package videoupscalerv1

import (
	types "github.com/cosmos/cosmos-sdk/types"
	proto "github.com/cosmos/gogoproto/proto"
)

type MsgCreateVideoUpscalerTask struct {
	Creator    string      `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator,omitempty"`
	Cid        string      `protobuf:"bytes,2,opt,name=cid,proto3" json:"cid,omitempty"`
	StartFrame int64       `protobuf:"varint,3,opt,name=startFrame,proto3" json:"startFrame,omitempty"`
	EndFrame   int64       `protobuf:"varint,4,opt,name=endFrame,proto3" json:"endFrame,omitempty"`
	Threads    int64       `protobuf:"varint,5,opt,name=threads,proto3" json:"threads,omitempty"`
	Reward     *types.Coin `protobuf:"bytes,6,opt,name=reward,proto3" json:"reward,omitempty"`
}

func (m *MsgCreateVideoUpscalerTask) Reset()         { *m = MsgCreateVideoUpscalerTask{} }
func (m *MsgCreateVideoUpscalerTask) String() string { return proto.CompactTextString(m) }
func (*MsgCreateVideoUpscalerTask) ProtoMessage()    {}
func (*MsgCreateVideoUpscalerTask) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{0}
}
func (*MsgCreateVideoUpscalerTask) XXX_MessageName() string {
	return protoPackage + ".MsgCreateVideoUpscalerTask"
}

type MsgCreateVideoUpscalerTaskResponse struct {
	TaskId string `protobuf:"bytes,1,opt,name=taskId,proto3" json:"taskId,omitempty"`
}

func (m *MsgCreateVideoUpscalerTaskResponse) Reset()         { *m = MsgCreateVideoUpscalerTaskResponse{} }
func (m *MsgCreateVideoUpscalerTaskResponse) String() string { return proto.CompactTextString(m) }
func (*MsgCreateVideoUpscalerTaskResponse) ProtoMessage()    {}
func (*MsgCreateVideoUpscalerTaskResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{1}
}
func (*MsgCreateVideoUpscalerTaskResponse) XXX_MessageName() string {
	return protoPackage + ".MsgCreateVideoUpscalerTaskResponse"
}

type MsgAddWorker struct {
	Creator  string      `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator,omitempty"`
	PublicIp string      `protobuf:"bytes,2,opt,name=public_ip,json=publicIp,proto3" json:"public_ip,omitempty"`
	IpfsId   string      `protobuf:"bytes,3,opt,name=ipfs_id,json=ipfsId,proto3" json:"ipfs_id,omitempty"`
	Stake    *types.Coin `protobuf:"bytes,4,opt,name=stake,proto3" json:"stake,omitempty"`
}

func (m *MsgAddWorker) Reset()         { *m = MsgAddWorker{} }
func (m *MsgAddWorker) String() string { return proto.CompactTextString(m) }
func (*MsgAddWorker) ProtoMessage()    {}
func (*MsgAddWorker) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{2}
}
func (*MsgAddWorker) XXX_MessageName() string {
	return protoPackage + ".MsgAddWorker"
}

type MsgAddWorkerResponse struct {
	Ok      bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *MsgAddWorkerResponse) Reset()         { *m = MsgAddWorkerResponse{} }
func (m *MsgAddWorkerResponse) String() string { return proto.CompactTextString(m) }
func (*MsgAddWorkerResponse) ProtoMessage()    {}
func (*MsgAddWorkerResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{3}
}
func (*MsgAddWorkerResponse) XXX_MessageName() string {
	return protoPackage + ".MsgAddWorkerResponse"
}

type MsgSubscribeWorkerToTask struct {
	Address  string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	TaskId   string `protobuf:"bytes,2,opt,name=taskId,proto3" json:"taskId,omitempty"`
	ThreadId string `protobuf:"bytes,3,opt,name=threadId,proto3" json:"threadId,omitempty"`
}

func (m *MsgSubscribeWorkerToTask) Reset()         { *m = MsgSubscribeWorkerToTask{} }
func (m *MsgSubscribeWorkerToTask) String() string { return proto.CompactTextString(m) }
func (*MsgSubscribeWorkerToTask) ProtoMessage()    {}
func (*MsgSubscribeWorkerToTask) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{4}
}
func (*MsgSubscribeWorkerToTask) XXX_MessageName() string {
	return protoPackage + ".MsgSubscribeWorkerToTask"
}

type MsgSubscribeWorkerToTaskResponse struct {
	ThreadId string `protobuf:"bytes,1,opt,name=threadId,proto3" json:"threadId,omitempty"`
}

func (m *MsgSubscribeWorkerToTaskResponse) Reset()         { *m = MsgSubscribeWorkerToTaskResponse{} }
func (m *MsgSubscribeWorkerToTaskResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSubscribeWorkerToTaskResponse) ProtoMessage()    {}
func (*MsgSubscribeWorkerToTaskResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{5}
}
func (*MsgSubscribeWorkerToTaskResponse) XXX_MessageName() string {
	return protoPackage + ".MsgSubscribeWorkerToTaskResponse"
}

// MsgProposeSolution commits to a thread solution without revealing it.
// Signatures are "filename=base64(signature)" entries.
type MsgProposeSolution struct {
	Creator    string   `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator,omitempty"`
	TaskId     string   `protobuf:"bytes,2,opt,name=taskId,proto3" json:"taskId,omitempty"`
	ThreadId   string   `protobuf:"bytes,3,opt,name=threadId,proto3" json:"threadId,omitempty"`
	PublicKey  string   `protobuf:"bytes,4,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	Signatures []string `protobuf:"bytes,5,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *MsgProposeSolution) Reset()         { *m = MsgProposeSolution{} }
func (m *MsgProposeSolution) String() string { return proto.CompactTextString(m) }
func (*MsgProposeSolution) ProtoMessage()    {}
func (*MsgProposeSolution) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{6}
}
func (*MsgProposeSolution) XXX_MessageName() string {
	return protoPackage + ".MsgProposeSolution"
}

type MsgProposeSolutionResponse struct{}

func (m *MsgProposeSolutionResponse) Reset()         { *m = MsgProposeSolutionResponse{} }
func (m *MsgProposeSolutionResponse) String() string { return proto.CompactTextString(m) }
func (*MsgProposeSolutionResponse) ProtoMessage()    {}
func (*MsgProposeSolutionResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{7}
}
func (*MsgProposeSolutionResponse) XXX_MessageName() string {
	return protoPackage + ".MsgProposeSolutionResponse"
}

// MsgRevealSolution discloses the frames of a proposed solution.
// Frames are "filename=cid:hash" entries.
type MsgRevealSolution struct {
	Creator  string   `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator,omitempty"`
	TaskId   string   `protobuf:"bytes,2,opt,name=taskId,proto3" json:"taskId,omitempty"`
	ThreadId string   `protobuf:"bytes,3,opt,name=threadId,proto3" json:"threadId,omitempty"`
	Frames   []string `protobuf:"bytes,4,rep,name=frames,proto3" json:"frames,omitempty"`
}

func (m *MsgRevealSolution) Reset()         { *m = MsgRevealSolution{} }
func (m *MsgRevealSolution) String() string { return proto.CompactTextString(m) }
func (*MsgRevealSolution) ProtoMessage()    {}
func (*MsgRevealSolution) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{8}
}
func (*MsgRevealSolution) XXX_MessageName() string {
	return protoPackage + ".MsgRevealSolution"
}

type MsgRevealSolutionResponse struct{}

func (m *MsgRevealSolutionResponse) Reset()         { *m = MsgRevealSolutionResponse{} }
func (m *MsgRevealSolutionResponse) String() string { return proto.CompactTextString(m) }
func (*MsgRevealSolutionResponse) ProtoMessage()    {}
func (*MsgRevealSolutionResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{9}
}
func (*MsgRevealSolutionResponse) XXX_MessageName() string {
	return protoPackage + ".MsgRevealSolutionResponse"
}

type MsgSubmitValidation struct {
	Creator    string   `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator,omitempty"`
	TaskId     string   `protobuf:"bytes,2,opt,name=taskId,proto3" json:"taskId,omitempty"`
	ThreadId   string   `protobuf:"bytes,3,opt,name=threadId,proto3" json:"threadId,omitempty"`
	PublicKey  string   `protobuf:"bytes,4,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	Signatures []string `protobuf:"bytes,5,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *MsgSubmitValidation) Reset()         { *m = MsgSubmitValidation{} }
func (m *MsgSubmitValidation) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitValidation) ProtoMessage()    {}
func (*MsgSubmitValidation) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{10}
}
func (*MsgSubmitValidation) XXX_MessageName() string {
	return protoPackage + ".MsgSubmitValidation"
}

type MsgSubmitValidationResponse struct{}

func (m *MsgSubmitValidationResponse) Reset()         { *m = MsgSubmitValidationResponse{} }
func (m *MsgSubmitValidationResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitValidationResponse) ProtoMessage()    {}
func (*MsgSubmitValidationResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{11}
}
func (*MsgSubmitValidationResponse) XXX_MessageName() string {
	return protoPackage + ".MsgSubmitValidationResponse"
}

type MsgSubmitSolution struct {
	Creator              string `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator,omitempty"`
	TaskId               string `protobuf:"bytes,2,opt,name=taskId,proto3" json:"taskId,omitempty"`
	ThreadId             string `protobuf:"bytes,3,opt,name=threadId,proto3" json:"threadId,omitempty"`
	Dir                  string `protobuf:"bytes,4,opt,name=dir,proto3" json:"dir,omitempty"`
	AverageRenderSeconds int64  `protobuf:"varint,5,opt,name=average_render_seconds,json=averageRenderSeconds,proto3" json:"average_render_seconds,omitempty"`
}

func (m *MsgSubmitSolution) Reset()         { *m = MsgSubmitSolution{} }
func (m *MsgSubmitSolution) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitSolution) ProtoMessage()    {}
func (*MsgSubmitSolution) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{12}
}
func (*MsgSubmitSolution) XXX_MessageName() string {
	return protoPackage + ".MsgSubmitSolution"
}

type MsgSubmitSolutionResponse struct{}

func (m *MsgSubmitSolutionResponse) Reset()         { *m = MsgSubmitSolutionResponse{} }
func (m *MsgSubmitSolutionResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitSolutionResponse) ProtoMessage()    {}
func (*MsgSubmitSolutionResponse) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(txFile), []int{13}
}
func (*MsgSubmitSolutionResponse) XXX_MessageName() string {
	return protoPackage + ".MsgSubmitSolutionResponse"
}

func init() {
	proto.RegisterType((*MsgCreateVideoUpscalerTask)(nil), "janction.videoUpscaler.v1.MsgCreateVideoUpscalerTask")
	proto.RegisterType((*MsgCreateVideoUpscalerTaskResponse)(nil), "janction.videoUpscaler.v1.MsgCreateVideoUpscalerTaskResponse")
	proto.RegisterType((*MsgAddWorker)(nil), "janction.videoUpscaler.v1.MsgAddWorker")
	proto.RegisterType((*MsgAddWorkerResponse)(nil), "janction.videoUpscaler.v1.MsgAddWorkerResponse")
	proto.RegisterType((*MsgSubscribeWorkerToTask)(nil), "janction.videoUpscaler.v1.MsgSubscribeWorkerToTask")
	proto.RegisterType((*MsgSubscribeWorkerToTaskResponse)(nil), "janction.videoUpscaler.v1.MsgSubscribeWorkerToTaskResponse")
	proto.RegisterType((*MsgProposeSolution)(nil), "janction.videoUpscaler.v1.MsgProposeSolution")
	proto.RegisterType((*MsgProposeSolutionResponse)(nil), "janction.videoUpscaler.v1.MsgProposeSolutionResponse")
	proto.RegisterType((*MsgRevealSolution)(nil), "janction.videoUpscaler.v1.MsgRevealSolution")
	proto.RegisterType((*MsgRevealSolutionResponse)(nil), "janction.videoUpscaler.v1.MsgRevealSolutionResponse")
	proto.RegisterType((*MsgSubmitValidation)(nil), "janction.videoUpscaler.v1.MsgSubmitValidation")
	proto.RegisterType((*MsgSubmitValidationResponse)(nil), "janction.videoUpscaler.v1.MsgSubmitValidationResponse")
	proto.RegisterType((*MsgSubmitSolution)(nil), "janction.videoUpscaler.v1.MsgSubmitSolution")
	proto.RegisterType((*MsgSubmitSolutionResponse)(nil), "janction.videoUpscaler.v1.MsgSubmitSolutionResponse")
}
