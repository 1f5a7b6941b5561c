package videoupscalerv1

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	errorsmod "cosmossdk.io/errors"
	msgv1 "cosmossdk.io/api/cosmos/msg/v1"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/codec/unknownproto"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"
	protov2 "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const testCID = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"

func testAddress(t *testing.T, b byte) string {
	t.Helper()
	raw := make([]byte, 20)
	for i := range raw {
		raw[i] = b
	}
	addr, err := bech32.ConvertAndEncode("janction", raw)
	require.NoError(t, err)
	return addr
}

func TestTypeURLsMatchMessageNames(t *testing.T) {
	cases := map[string]gogoproto.Message{
		TypeURLMsgCreateVideoUpscalerTask:         &MsgCreateVideoUpscalerTask{},
		TypeURLMsgCreateVideoUpscalerTaskResponse: &MsgCreateVideoUpscalerTaskResponse{},
		TypeURLMsgAddWorker:                       &MsgAddWorker{},
		TypeURLMsgSubscribeWorkerToTask:           &MsgSubscribeWorkerToTask{},
		TypeURLMsgProposeSolution:                 &MsgProposeSolution{},
		TypeURLMsgRevealSolution:                  &MsgRevealSolution{},
		TypeURLMsgSubmitValidation:                &MsgSubmitValidation{},
		TypeURLMsgSubmitSolution:                  &MsgSubmitSolution{},
	}
	for url, msg := range cases {
		require.Equal(t, url, sdk.MsgTypeURL(msg))
	}

	reg := Types()
	require.Len(t, reg, 2)
	require.Equal(t, "/janction.videoUpscaler.v1.MsgCreateVideoUpscalerTask", reg[0].TypeURL)
	require.Equal(t, "/janction.videoUpscaler.v1.MsgCreateVideoUpscalerTaskResponse", reg[1].TypeURL)
}

func TestTaskRoundTrip(t *testing.T) {
	reward := sdk.NewCoin("jct", sdkmath.NewInt(5000))
	task := &VideoUpscalerTask{
		TaskId:       "7",
		Requester:    testAddress(t, 1),
		Cid:          testCID,
		StartFrame:   1,
		EndFrame:     10,
		ThreadAmount: 2,
		Reward:       &reward,
		Threads: []*VideoUpscalerThread{{
			ThreadId:   "70",
			TaskId:     "7",
			StartFrame: 1,
			EndFrame:   5,
			Workers:    []string{testAddress(t, 2)},
			Solution: &VideoUpscalerThread_Solution{
				ProposedBy: testAddress(t, 2),
				Frames:     []*VideoUpscalerThread_Frame{{Filename: "frame_0001.png", Cid: testCID, Hash: "abc", ValidCount: 2}},
			},
		}},
	}

	bz, err := gogoproto.Marshal(task)
	require.NoError(t, err)

	var decoded VideoUpscalerTask
	require.NoError(t, gogoproto.Unmarshal(bz, &decoded))
	require.Equal(t, task.TaskId, decoded.TaskId)
	require.Equal(t, "5000jct", decoded.Reward.String())
	require.Len(t, decoded.Threads, 1)
	require.Equal(t, int64(2), decoded.Threads[0].Solution.Frames[0].ValidCount)
}

func TestLogSeverityNames(t *testing.T) {
	require.Equal(t, "SUCCESS", VideoUpscalerLog_SUCCESS.String())
	require.Equal(t, VideoUpscalerLog_ERROR, VideoUpscalerLog_Severity(VideoUpscalerLog_Severity_value["ERROR"]))
}

func TestRegisterFilesSignerOptions(t *testing.T) {
	require.NoError(t, RegisterFiles())
	require.NoError(t, RegisterFiles())

	cases := map[string]string{
		"MsgCreateVideoUpscalerTask": "creator",
		"MsgAddWorker":               "creator",
		"MsgSubscribeWorkerToTask":   "address",
		"MsgSubmitSolution":          "creator",
	}
	for name, signer := range cases {
		desc, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(protoPackage + "." + name))
		require.NoError(t, err)
		md, ok := desc.(protoreflect.MessageDescriptor)
		require.True(t, ok)
		signers, ok := protov2.GetExtension(md.Options(), msgv1.E_Signer).([]string)
		require.True(t, ok)
		require.Equal(t, []string{signer}, signers)
	}

	svc, err := protoregistry.GlobalFiles.FindDescriptorByName(protoPackage + ".Msg")
	require.NoError(t, err)
	sd := svc.(protoreflect.ServiceDescriptor)
	require.Equal(t, 7, sd.Methods().Len())
	require.True(t, protov2.GetExtension(sd.Options(), msgv1.E_Service).(bool))

	nested, err := protoregistry.GlobalFiles.FindDescriptorByName(protoPackage + ".VideoUpscalerThread.Frame")
	require.NoError(t, err)
	require.Equal(t, 6, nested.(protoreflect.MessageDescriptor).Fields().Len())
}

type describedMessage interface {
	Descriptor() ([]byte, []int)
	XXX_MessageName() string
}

func TestDescriptorIndexesMatchMessageNames(t *testing.T) {
	all := []describedMessage{
		&VideoUpscalerTask{}, &VideoUpscalerThread{}, &VideoUpscalerThread_Frame{},
		&VideoUpscalerThread_Solution{}, &VideoUpscalerThread_Validation{},
		&Worker{}, &Worker_Reputation{}, &VideoUpscalerLogs{}, &VideoUpscalerLog{},
		&QueryGetVideoUpscalerTaskRequest{}, &QueryGetVideoUpscalerTaskResponse{},
		&QueryGetVideoUpscalerLogsRequest{}, &QueryGetVideoUpscalerLogsResponse{},
		&QueryGetPendingVideoUpscalerTaskRequest{}, &QueryGetPendingVideoUpscalerTaskResponse{},
		&QueryGetWorkerRequest{}, &QueryGetWorkerResponse{},
		&MsgCreateVideoUpscalerTask{}, &MsgCreateVideoUpscalerTaskResponse{},
		&MsgAddWorker{}, &MsgAddWorkerResponse{},
		&MsgSubscribeWorkerToTask{}, &MsgSubscribeWorkerToTaskResponse{},
		&MsgProposeSolution{}, &MsgProposeSolutionResponse{},
		&MsgRevealSolution{}, &MsgRevealSolutionResponse{},
		&MsgSubmitValidation{}, &MsgSubmitValidationResponse{},
		&MsgSubmitSolution{}, &MsgSubmitSolutionResponse{},
	}
	for _, m := range all {
		gz, indexes := m.Descriptor()
		zr, err := gzip.NewReader(bytes.NewReader(gz))
		require.NoError(t, err)
		raw, err := io.ReadAll(zr)
		require.NoError(t, err)

		fdp := &descriptorpb.FileDescriptorProto{}
		require.NoError(t, protov2.Unmarshal(raw, fdp))
		require.Equal(t, protoPackage, fdp.GetPackage())

		md := fdp.MessageType[indexes[0]]
		path := []string{md.GetName()}
		for _, i := range indexes[1:] {
			md = md.NestedType[i]
			path = append(path, md.GetName())
		}
		want := strings.TrimPrefix(m.XXX_MessageName(), protoPackage+".")
		require.Equal(t, strings.ReplaceAll(want, "_", "."), strings.Join(path, "."))
	}
}

func TestStrictDecodingAcceptsModuleMessages(t *testing.T) {
	stake := sdk.NewCoin("jct", sdkmath.NewInt(5))
	worker := &Worker{
		Address: testAddress(t, 2),
		Reputation: &Worker_Reputation{
			Points: 3, Staked: &stake, Winnings: &stake, RenderDurations: []int64{4, 5},
		},
		Enabled: true,
	}
	bz, err := gogoproto.Marshal(worker)
	require.NoError(t, err)
	require.NoError(t, unknownproto.RejectUnknownFieldsStrict(bz, &Worker{}, unknownproto.DefaultAnyResolver{}))

	msg := &MsgCreateVideoUpscalerTask{Creator: testAddress(t, 1), Cid: testCID, StartFrame: 1, EndFrame: 10, Threads: 2, Reward: &stake}
	bz, err = gogoproto.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, unknownproto.RejectUnknownFieldsStrict(bz, &MsgCreateVideoUpscalerTask{}, unknownproto.DefaultAnyResolver{}))
}

func TestCreateTaskValidateBasic(t *testing.T) {
	reward := sdk.NewCoin("jct", sdkmath.NewInt(100))
	valid := func() *MsgCreateVideoUpscalerTask {
		return &MsgCreateVideoUpscalerTask{
			Creator:    testAddress(t, 1),
			Cid:        testCID,
			StartFrame: 1,
			EndFrame:   4,
			Threads:    2,
			Reward:     &reward,
		}
	}
	require.NoError(t, valid().ValidateBasic())

	tests := []struct {
		name   string
		mutate func(*MsgCreateVideoUpscalerTask)
		want   *errorsmod.Error
	}{
		{"bad creator", func(m *MsgCreateVideoUpscalerTask) { m.Creator = "nope" }, sdkerrors.ErrInvalidAddress},
		{"bad cid", func(m *MsgCreateVideoUpscalerTask) { m.Cid = "not-a-cid" }, sdkerrors.ErrInvalidRequest},
		{"reversed range", func(m *MsgCreateVideoUpscalerTask) { m.StartFrame, m.EndFrame = 5, 4 }, ErrInvalidVideoUpscalerTask},
		{"negative start", func(m *MsgCreateVideoUpscalerTask) { m.StartFrame = -1 }, ErrInvalidVideoUpscalerTask},
		{"zero threads", func(m *MsgCreateVideoUpscalerTask) { m.Threads = 0 }, ErrInvalidVideoUpscalerTask},
		{"more threads than frames", func(m *MsgCreateVideoUpscalerTask) { m.Threads = 5 }, ErrInvalidVideoUpscalerTask},
		{"missing reward", func(m *MsgCreateVideoUpscalerTask) { m.Reward = nil }, sdkerrors.ErrInvalidCoins},
		{"zero reward", func(m *MsgCreateVideoUpscalerTask) {
			zero := sdk.NewCoin("jct", sdkmath.ZeroInt())
			m.Reward = &zero
		}, sdkerrors.ErrInvalidCoins},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			err := msg.ValidateBasic()
			require.Error(t, err)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolutionMsgsValidateBasic(t *testing.T) {
	creator := testAddress(t, 3)

	propose := &MsgProposeSolution{
		Creator:    creator,
		TaskId:     "1",
		ThreadId:   "10",
		PublicKey:  "pk",
		Signatures: []string{"frame_0001.png=c2ln"},
	}
	require.NoError(t, propose.ValidateBasic())

	propose.Signatures = []string{"frame_0001.png"}
	require.ErrorIs(t, propose.ValidateBasic(), sdkerrors.ErrInvalidRequest)

	propose.Signatures = []string{"a=b"}
	propose.PublicKey = ""
	require.ErrorIs(t, propose.ValidateBasic(), ErrInvalidSolution)

	reveal := &MsgRevealSolution{Creator: creator, TaskId: "1", ThreadId: "10", Frames: []string{"f.png=" + testCID + ":hash"}}
	require.NoError(t, reveal.ValidateBasic())
	reveal.ThreadId = " "
	require.ErrorIs(t, reveal.ValidateBasic(), sdkerrors.ErrInvalidRequest)

	submit := &MsgSubmitSolution{Creator: creator, TaskId: "1", ThreadId: "10", Dir: testCID, AverageRenderSeconds: 12}
	require.NoError(t, submit.ValidateBasic())
	submit.Dir = "x"
	require.ErrorIs(t, submit.ValidateBasic(), sdkerrors.ErrInvalidRequest)

	stake := sdk.NewCoin("jct", sdkmath.NewInt(1_000_000))
	worker := &MsgAddWorker{Creator: creator, PublicIp: "10.0.0.1", IpfsId: "12D3KooW", Stake: &stake}
	require.NoError(t, worker.ValidateBasic())
	worker.Stake = nil
	require.ErrorIs(t, worker.ValidateBasic(), ErrWorkerIncorrectStake)

	sub := &MsgSubscribeWorkerToTask{Address: creator, TaskId: "1", ThreadId: "10"}
	require.NoError(t, sub.ValidateBasic())
}

func TestResponseGettersNilSafe(t *testing.T) {
	var pending *QueryGetPendingVideoUpscalerTaskResponse
	require.Nil(t, pending.GetVideoUpscalerTasks())
	var worker *QueryGetWorkerResponse
	require.Nil(t, worker.GetWorker())

	task := &VideoUpscalerTask{TaskId: "1"}
	pending = &QueryGetPendingVideoUpscalerTaskResponse{VideoUpscalerTasks: []*VideoUpscalerTask{task}}
	require.Equal(t, []*VideoUpscalerTask{task}, pending.GetVideoUpscalerTasks())
	require.Equal(t, task, (&QueryGetVideoUpscalerTaskResponse{VideoUpscalerTask: task}).GetVideoUpscalerTask())
}
