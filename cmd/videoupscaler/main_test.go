package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
	sdkcrypto "github.com/janction/sdk-go/internal/crypto"
	"github.com/janction/sdk-go/pkg/crypto"
	"github.com/janction/sdk-go/types"
)

const testCID = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"

type queryServer struct {
	videoupscalerv1.UnimplementedQueryServer
}

func (queryServer) GetVideoUpscalerTask(_ context.Context, req *videoupscalerv1.QueryGetVideoUpscalerTaskRequest) (*videoupscalerv1.QueryGetVideoUpscalerTaskResponse, error) {
	if req.Index != "1" {
		return nil, status.Error(codes.NotFound, "task not found")
	}
	reward := sdk.NewCoin("jct", sdkmath.NewInt(1000))
	return &videoupscalerv1.QueryGetVideoUpscalerTaskResponse{VideoUpscalerTask: &videoupscalerv1.VideoUpscalerTask{
		TaskId:       "1",
		Requester:    "janction1req",
		Cid:          testCID,
		StartFrame:   1,
		EndFrame:     10,
		ThreadAmount: 1,
		Reward:       &reward,
		Threads:      []*videoupscalerv1.VideoUpscalerThread{{ThreadId: "10", TaskId: "1", StartFrame: 1, EndFrame: 10}},
	}}, nil
}

func (queryServer) GetPendingVideoUpscalerTasks(context.Context, *videoupscalerv1.QueryGetPendingVideoUpscalerTaskRequest) (*videoupscalerv1.QueryGetPendingVideoUpscalerTaskResponse, error) {
	return &videoupscalerv1.QueryGetPendingVideoUpscalerTaskResponse{VideoUpscalerTasks: []*videoupscalerv1.VideoUpscalerTask{
		{TaskId: "1", Requester: "janction1a"},
		{TaskId: "2", Requester: "janction1b"},
		{TaskId: "3", Requester: "janction1a"},
	}}, nil
}

func startChain(t *testing.T) string {
	t.Helper()
	reg, err := sdkcrypto.NewInterfaceRegistry("janction")
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer(grpc.ForceServerCodec(codec.NewProtoCodec(reg).GRPCCodec()))
	videoupscalerv1.RegisterQueryServer(srv, queryServer{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testMnemonic(t *testing.T) string {
	t.Helper()
	mnemonic, err := bip39.NewMnemonic(make([]byte, 32))
	require.NoError(t, err)
	return mnemonic
}

func TestQueryTask(t *testing.T) {
	t.Setenv("VIDEOUPSCALER_GRPC_ENDPOINT", startChain(t))

	out, err := run(t, "query", "task", "1")
	require.NoError(t, err)

	var task types.Task
	require.NoError(t, json.Unmarshal([]byte(out), &task))
	require.Equal(t, "1", task.ID)
	require.Equal(t, testCID, task.CID)
	require.Equal(t, "1000jct", task.Reward.String())
	require.Len(t, task.Threads, 1)

	_, err = run(t, "query", "task", "7")
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestQueryPendingFilters(t *testing.T) {
	t.Setenv("VIDEOUPSCALER_GRPC_ENDPOINT", startChain(t))

	out, err := run(t, "query", "pending", "--requester", "janction1a", "--limit", "1")
	require.NoError(t, err)

	var tasks []types.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 1)
	require.Equal(t, "1", tasks[0].ID)
}

func TestQueryUsesConfigFile(t *testing.T) {
	addr := startChain(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grpc_endpoint: "+addr+"\n"), 0o600))

	out, err := run(t, "--config", path, "query", "task", "1")
	require.NoError(t, err)
	require.Contains(t, out, testCID)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "query", "task", "1")
	require.Error(t, err)
}

func TestMaxMsgSizeFlag(t *testing.T) {
	opts := &rootOptions{maxMsgSize: "64MB", logLevel: "error"}
	require.NoError(t, opts.load())
	require.Equal(t, 64_000_000, opts.cfg.MaxRecvMsgSize)
	require.Equal(t, 64_000_000, opts.cfg.MaxSendMsgSize)

	opts = &rootOptions{maxMsgSize: "lots", logLevel: "error"}
	require.ErrorContains(t, opts.load(), "--max-msg-size")
}

func TestArgsValidated(t *testing.T) {
	_, err := run(t, "query", "task")
	require.Error(t, err)
	_, err = run(t, "tx", "create-task", testCID, "one", "10", "2", "100jct")
	require.ErrorContains(t, err, "start-frame")
	_, err = run(t, "tx", "create-task", testCID, "1", "10", "2", "lots")
	require.ErrorContains(t, err, "reward")
	_, err = run(t, "tx", "subscribe", "1", "10", "--gas", "100")
	require.ErrorContains(t, err, "--fees")
	_, err = run(t, "download", "not-a-cid", t.TempDir())
	require.Error(t, err)
}

func TestFeeFlags(t *testing.T) {
	fee, err := (&feeFlags{}).fee()
	require.NoError(t, err)
	require.True(t, fee.IsAuto())

	fee, err = (&feeFlags{gasAdjustment: 1.5}).fee()
	require.NoError(t, err)
	require.True(t, fee.IsAuto())
	require.Equal(t, 1.5, fee.Multiplier())

	fee, err = (&feeFlags{gas: 200000, fees: "5000jct"}).fee()
	require.NoError(t, err)
	require.False(t, fee.IsAuto())
	require.Equal(t, uint64(200000), fee.GasLimit())
	require.Equal(t, "5000jct", fee.Amount().String())

	_, err = (&feeFlags{gasAdjustment: -1}).fee()
	require.Error(t, err)
	_, err = (&feeFlags{fees: "5000jct"}).fee()
	require.Error(t, err)
	_, err = (&feeFlags{gas: 1, fees: "5000jct", gasAdjustment: 2}).fee()
	require.Error(t, err)
	_, err = (&feeFlags{gas: 1, fees: "??"}).fee()
	require.Error(t, err)
}

func TestSigningClientFromEnvMnemonic(t *testing.T) {
	t.Setenv(mnemonicEnv, testMnemonic(t))

	opts := &rootOptions{logLevel: "error"}
	require.NoError(t, opts.load())

	c, err := opts.signingClient(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.Equal(t, defaultKeyName, c.Config().KeyName)
	require.True(t, strings.HasPrefix(c.Config().Address, "janction1"))
	require.NoError(t, crypto.ValidateAddress(c.Config().Address, "janction"))
}

func TestKeyringFromMnemonicFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mnemonic")
	require.NoError(t, os.WriteFile(path, []byte(testMnemonic(t)+"\n"), 0o600))

	opts := &rootOptions{mnemonicFile: path}
	kr, err := opts.keyring("worker", "janction")
	require.NoError(t, err)

	addr, err := crypto.AddressFromKey(kr, "worker", "janction")
	require.NoError(t, err)

	t.Setenv(mnemonicEnv, testMnemonic(t))
	envKr, err := (&rootOptions{}).keyring("worker", "janction")
	require.NoError(t, err)
	envAddr, err := crypto.AddressFromKey(envKr, "worker", "janction")
	require.NoError(t, err)
	require.Equal(t, addr, envAddr)

	t.Setenv(mnemonicEnv, "not a mnemonic")
	_, err = (&rootOptions{}).keyring("worker", "janction")
	require.ErrorContains(t, err, mnemonicEnv)
}

func TestUpload(t *testing.T) {
	ipfs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		switch r.URL.Path {
		case "/api/v0/version":
			fmt.Fprint(w, `{"Version":"0.29.0"}`)
		case "/api/v0/add":
			fmt.Fprintf(w, `{"Name":"video.mp4","Hash":"%s","Size":"3"}`, testCID)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ipfs.Close)
	t.Setenv("VIDEOUPSCALER_IPFS_API", ipfs.URL)

	video := filepath.Join(t.TempDir(), "video.mp4")
	require.NoError(t, os.WriteFile(video, []byte("mp4"), 0o600))

	out, err := run(t, "upload", video)
	require.NoError(t, err)

	var res map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, testCID, res["cid"])
	require.Equal(t, video, res["path"])
}
