// Package videoupscalerv1 holds the Go bindings of the janction.videoUpscaler.v1
// protobuf package (see proto/janction/videoUpscaler/v1). Messages carry
// protobuf struct tags and are encoded by the gogoproto runtime.
package videoupscalerv1

import (
	types "github.com/cosmos/cosmos-sdk/types"
	proto "github.com/cosmos/gogoproto/proto"
)

const protoPackage = "janction.videoUpscaler.v1"

// VideoUpscalerLog_Severity classifies a worker log entry.
type VideoUpscalerLog_Severity int32

const (
	VideoUpscalerLog_INFO    VideoUpscalerLog_Severity = 0
	VideoUpscalerLog_SUCCESS VideoUpscalerLog_Severity = 1
	VideoUpscalerLog_ERROR   VideoUpscalerLog_Severity = 2
)

var VideoUpscalerLog_Severity_name = map[int32]string{
	0: "INFO",
	1: "SUCCESS",
	2: "ERROR",
}

var VideoUpscalerLog_Severity_value = map[string]int32{
	"INFO":    0,
	"SUCCESS": 1,
	"ERROR":   2,
}

func (x VideoUpscalerLog_Severity) String() string {
	return proto.EnumName(VideoUpscalerLog_Severity_name, int32(x))
}

type VideoUpscalerTask struct {
	TaskId       string                 `protobuf:"bytes,1,opt,name=taskId,proto3" json:"taskId,omitempty"`
	Requester    string                 `protobuf:"bytes,2,opt,name=requester,proto3" json:"requester,omitempty"`
	Cid          string                 `protobuf:"bytes,3,opt,name=cid,proto3" json:"cid,omitempty"`
	StartFrame   int64                  `protobuf:"varint,4,opt,name=startFrame,proto3" json:"startFrame,omitempty"`
	EndFrame     int64                  `protobuf:"varint,5,opt,name=endFrame,proto3" json:"endFrame,omitempty"`
	ThreadAmount int64                  `protobuf:"varint,6,opt,name=threadAmount,proto3" json:"threadAmount,omitempty"`
	Completed    bool                   `protobuf:"varint,7,opt,name=completed,proto3" json:"completed,omitempty"`
	Reward       *types.Coin            `protobuf:"bytes,8,opt,name=reward,proto3" json:"reward,omitempty"`
	Threads      []*VideoUpscalerThread `protobuf:"bytes,9,rep,name=threads,proto3" json:"threads,omitempty"`
}

func (m *VideoUpscalerTask) Reset()         { *m = VideoUpscalerTask{} }
func (m *VideoUpscalerTask) String() string { return proto.CompactTextString(m) }
func (*VideoUpscalerTask) ProtoMessage()    {}
func (*VideoUpscalerTask) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{0}
}
func (*VideoUpscalerTask) XXX_MessageName() string {
	return protoPackage + ".VideoUpscalerTask"
}

type VideoUpscalerThread struct {
	ThreadId             string                            `protobuf:"bytes,1,opt,name=threadId,proto3" json:"threadId,omitempty"`
	TaskId               string                            `protobuf:"bytes,2,opt,name=taskId,proto3" json:"taskId,omitempty"`
	StartFrame           int64                             `protobuf:"varint,3,opt,name=startFrame,proto3" json:"startFrame,omitempty"`
	EndFrame             int64                             `protobuf:"varint,4,opt,name=endFrame,proto3" json:"endFrame,omitempty"`
	Completed            bool                              `protobuf:"varint,5,opt,name=completed,proto3" json:"completed,omitempty"`
	Workers              []string                          `protobuf:"bytes,6,rep,name=workers,proto3" json:"workers,omitempty"`
	Solution             *VideoUpscalerThread_Solution     `protobuf:"bytes,7,opt,name=solution,proto3" json:"solution,omitempty"`
	Validations          []*VideoUpscalerThread_Validation `protobuf:"bytes,8,rep,name=validations,proto3" json:"validations,omitempty"`
	AverageRenderSeconds int64                             `protobuf:"varint,9,opt,name=average_render_seconds,json=averageRenderSeconds,proto3" json:"average_render_seconds,omitempty"`
}

func (m *VideoUpscalerThread) Reset()         { *m = VideoUpscalerThread{} }
func (m *VideoUpscalerThread) String() string { return proto.CompactTextString(m) }
func (*VideoUpscalerThread) ProtoMessage()    {}
func (*VideoUpscalerThread) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{1}
}
func (*VideoUpscalerThread) XXX_MessageName() string {
	return protoPackage + ".VideoUpscalerThread"
}

type VideoUpscalerThread_Frame struct {
	Filename     string `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Signature    string `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
	Cid          string `protobuf:"bytes,3,opt,name=cid,proto3" json:"cid,omitempty"`
	Hash         string `protobuf:"bytes,4,opt,name=hash,proto3" json:"hash,omitempty"`
	ValidCount   int64  `protobuf:"varint,5,opt,name=validCount,proto3" json:"validCount,omitempty"`
	InvalidCount int64  `protobuf:"varint,6,opt,name=invalidCount,proto3" json:"invalidCount,omitempty"`
}

func (m *VideoUpscalerThread_Frame) Reset()         { *m = VideoUpscalerThread_Frame{} }
func (m *VideoUpscalerThread_Frame) String() string { return proto.CompactTextString(m) }
func (*VideoUpscalerThread_Frame) ProtoMessage()    {}
func (*VideoUpscalerThread_Frame) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{1, 0}
}
func (*VideoUpscalerThread_Frame) XXX_MessageName() string {
	return protoPackage + ".VideoUpscalerThread.Frame"
}

type VideoUpscalerThread_Solution struct {
	ProposedBy string                       `protobuf:"bytes,1,opt,name=proposedBy,proto3" json:"proposedBy,omitempty"`
	Frames     []*VideoUpscalerThread_Frame `protobuf:"bytes,2,rep,name=frames,proto3" json:"frames,omitempty"`
	PublicKey  string                       `protobuf:"bytes,3,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	Dir        string                       `protobuf:"bytes,4,opt,name=dir,proto3" json:"dir,omitempty"`
	Accepted   bool                         `protobuf:"varint,5,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (m *VideoUpscalerThread_Solution) Reset()         { *m = VideoUpscalerThread_Solution{} }
func (m *VideoUpscalerThread_Solution) String() string { return proto.CompactTextString(m) }
func (*VideoUpscalerThread_Solution) ProtoMessage()    {}
func (*VideoUpscalerThread_Solution) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{1, 1}
}
func (*VideoUpscalerThread_Solution) XXX_MessageName() string {
	return protoPackage + ".VideoUpscalerThread.Solution"
}

type VideoUpscalerThread_Validation struct {
	Validator string                       `protobuf:"bytes,1,opt,name=validator,proto3" json:"validator,omitempty"`
	Frames    []*VideoUpscalerThread_Frame `protobuf:"bytes,2,rep,name=frames,proto3" json:"frames,omitempty"`
	PublicKey string                       `protobuf:"bytes,3,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	IsReverse bool                         `protobuf:"varint,4,opt,name=isReverse,proto3" json:"isReverse,omitempty"`
}

func (m *VideoUpscalerThread_Validation) Reset()         { *m = VideoUpscalerThread_Validation{} }
func (m *VideoUpscalerThread_Validation) String() string { return proto.CompactTextString(m) }
func (*VideoUpscalerThread_Validation) ProtoMessage()    {}
func (*VideoUpscalerThread_Validation) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{1, 2}
}
func (*VideoUpscalerThread_Validation) XXX_MessageName() string {
	return protoPackage + ".VideoUpscalerThread.Validation"
}

type Worker struct {
	Address            string             `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Reputation         *Worker_Reputation `protobuf:"bytes,2,opt,name=reputation,proto3" json:"reputation,omitempty"`
	Enabled            bool               `protobuf:"varint,3,opt,name=enabled,proto3" json:"enabled,omitempty"`
	PublicIp           string             `protobuf:"bytes,4,opt,name=public_ip,json=publicIp,proto3" json:"public_ip,omitempty"`
	IpfsId             string             `protobuf:"bytes,5,opt,name=ipfs_id,json=ipfsId,proto3" json:"ipfs_id,omitempty"`
	CurrentTaskId      string             `protobuf:"bytes,6,opt,name=currentTaskId,proto3" json:"currentTaskId,omitempty"`
	CurrentThreadIndex int32              `protobuf:"varint,7,opt,name=currentThreadIndex,proto3" json:"currentThreadIndex,omitempty"`
}

func (m *Worker) Reset()         { *m = Worker{} }
func (m *Worker) String() string { return proto.CompactTextString(m) }
func (*Worker) ProtoMessage()    {}
func (*Worker) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{2}
}
func (*Worker) XXX_MessageName() string {
	return protoPackage + ".Worker"
}

type Worker_Reputation struct {
	Points          int64       `protobuf:"varint,1,opt,name=points,proto3" json:"points,omitempty"`
	Staked          *types.Coin `protobuf:"bytes,2,opt,name=staked,proto3" json:"staked,omitempty"`
	Validations     int64       `protobuf:"varint,3,opt,name=validations,proto3" json:"validations,omitempty"`
	Solutions       int64       `protobuf:"varint,4,opt,name=solutions,proto3" json:"solutions,omitempty"`
	Winnings        *types.Coin `protobuf:"bytes,5,opt,name=winnings,proto3" json:"winnings,omitempty"`
	RenderDurations []int64     `protobuf:"varint,6,rep,packed,name=render_durations,json=renderDurations,proto3" json:"render_durations,omitempty"`
}

func (m *Worker_Reputation) Reset()         { *m = Worker_Reputation{} }
func (m *Worker_Reputation) String() string { return proto.CompactTextString(m) }
func (*Worker_Reputation) ProtoMessage()    {}
func (*Worker_Reputation) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{2, 0}
}
func (*Worker_Reputation) XXX_MessageName() string {
	return protoPackage + ".Worker.Reputation"
}

type VideoUpscalerLogs struct {
	ThreadId string              `protobuf:"bytes,1,opt,name=threadId,proto3" json:"threadId,omitempty"`
	Logs     []*VideoUpscalerLog `protobuf:"bytes,2,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *VideoUpscalerLogs) Reset()         { *m = VideoUpscalerLogs{} }
func (m *VideoUpscalerLogs) String() string { return proto.CompactTextString(m) }
func (*VideoUpscalerLogs) ProtoMessage()    {}
func (*VideoUpscalerLogs) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{3}
}
func (*VideoUpscalerLogs) XXX_MessageName() string {
	return protoPackage + ".VideoUpscalerLogs"
}

type VideoUpscalerLog struct {
	Log       string                    `protobuf:"bytes,1,opt,name=log,proto3" json:"log,omitempty"`
	Timestamp int64                     `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Severity  VideoUpscalerLog_Severity `protobuf:"varint,3,opt,name=severity,proto3,enum=janction.videoUpscaler.v1.VideoUpscalerLog_Severity" json:"severity,omitempty"`
}

func (m *VideoUpscalerLog) Reset()         { *m = VideoUpscalerLog{} }
func (m *VideoUpscalerLog) String() string { return proto.CompactTextString(m) }
func (*VideoUpscalerLog) ProtoMessage()    {}
func (*VideoUpscalerLog) Descriptor() ([]byte, []int) {
	return gzippedDescriptor(typesFile), []int{4}
}
func (*VideoUpscalerLog) XXX_MessageName() string {
	return protoPackage + ".VideoUpscalerLog"
}

func init() {
	proto.RegisterEnum("janction.videoUpscaler.v1.VideoUpscalerLog_Severity", VideoUpscalerLog_Severity_name, VideoUpscalerLog_Severity_value)
	proto.RegisterType((*VideoUpscalerTask)(nil), "janction.videoUpscaler.v1.VideoUpscalerTask")
	proto.RegisterType((*VideoUpscalerThread)(nil), "janction.videoUpscaler.v1.VideoUpscalerThread")
	proto.RegisterType((*VideoUpscalerThread_Frame)(nil), "janction.videoUpscaler.v1.VideoUpscalerThread.Frame")
	proto.RegisterType((*VideoUpscalerThread_Solution)(nil), "janction.videoUpscaler.v1.VideoUpscalerThread.Solution")
	proto.RegisterType((*VideoUpscalerThread_Validation)(nil), "janction.videoUpscaler.v1.VideoUpscalerThread.Validation")
	proto.RegisterType((*Worker)(nil), "janction.videoUpscaler.v1.Worker")
	proto.RegisterType((*Worker_Reputation)(nil), "janction.videoUpscaler.v1.Worker.Reputation")
	proto.RegisterType((*VideoUpscalerLogs)(nil), "janction.videoUpscaler.v1.VideoUpscalerLogs")
	proto.RegisterType((*VideoUpscalerLog)(nil), "janction.videoUpscaler.v1.VideoUpscalerLog")
}
