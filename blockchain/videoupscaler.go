package blockchain

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
	"github.com/janction/sdk-go/blockchain/base"
	"github.com/janction/sdk-go/types"
)

// TaskIDAttribute is the event attribute carrying a created task id.
const TaskIDAttribute = "task_id"

// VideoUpscalerClient provides videoUpscaler module operations
type VideoUpscalerClient struct {
	base   *base.Client
	query  videoupscalerv1.QueryClient
	logger *zap.Logger
}

// GetVideoUpscalerTask retrieves a task by index
func (v *VideoUpscalerClient) GetVideoUpscalerTask(ctx context.Context, index string) (*types.Task, error) {
	ctx, cancel := v.base.WithCallTimeout(ctx)
	defer cancel()

	resp, err := v.query.GetVideoUpscalerTask(ctx, &videoupscalerv1.QueryGetVideoUpscalerTaskRequest{
		Index: index,
	})
	if err != nil {
		return nil, queryError("video upscaler task", index, err)
	}
	if resp == nil || resp.VideoUpscalerTask == nil {
		return nil, fmt.Errorf("video upscaler task %s: %w", index, types.ErrNotFound)
	}

	return types.TaskFromProto(resp.VideoUpscalerTask), nil
}

// GetVideoUpscalerLogs retrieves the log entries recorded for a thread
func (v *VideoUpscalerClient) GetVideoUpscalerLogs(ctx context.Context, threadID string) (*types.ThreadLogs, error) {
	ctx, cancel := v.base.WithCallTimeout(ctx)
	defer cancel()

	resp, err := v.query.GetVideoUpscalerLogs(ctx, &videoupscalerv1.QueryGetVideoUpscalerLogsRequest{
		ThreadId: threadID,
	})
	if err != nil {
		return nil, queryError("video upscaler logs", threadID, err)
	}
	if resp == nil || resp.VideoUpscalerLogs == nil {
		return nil, fmt.Errorf("video upscaler logs %s: %w", threadID, types.ErrNotFound)
	}

	return types.ThreadLogsFromProto(resp.VideoUpscalerLogs), nil
}

// GetWorker retrieves a registered worker by address
func (v *VideoUpscalerClient) GetWorker(ctx context.Context, address string) (*types.Worker, error) {
	ctx, cancel := v.base.WithCallTimeout(ctx)
	defer cancel()

	resp, err := v.query.GetWorker(ctx, &videoupscalerv1.QueryGetWorkerRequest{
		Worker: address,
	})
	if err != nil {
		return nil, queryError("worker", address, err)
	}
	if resp == nil || resp.Worker == nil {
		return nil, fmt.Errorf("worker %s: %w", address, types.ErrNotFound)
	}

	return types.WorkerFromProto(resp.Worker), nil
}

// GetPendingVideoUpscalerTasks lists tasks that are not completed yet
func (v *VideoUpscalerClient) GetPendingVideoUpscalerTasks(ctx context.Context, opts ...QueryOption) ([]*types.Task, error) {
	var filter pendingFilter
	for _, opt := range opts {
		opt(&filter)
	}

	ctx, cancel := v.base.WithCallTimeout(ctx)
	defer cancel()

	resp, err := v.query.GetPendingVideoUpscalerTasks(ctx, &videoupscalerv1.QueryGetPendingVideoUpscalerTaskRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending video upscaler tasks: %w", err)
	}

	tasks := make([]*types.Task, 0, len(resp.GetVideoUpscalerTasks()))
	for _, pb := range resp.GetVideoUpscalerTasks() {
		task := types.TaskFromProto(pb)
		if !filter.keep(task) {
			continue
		}
		tasks = append(tasks, task)
		if filter.limit > 0 && len(tasks) == filter.limit {
			break
		}
	}
	return tasks, nil
}

// CreateVideoUpscalerTask submits a task creation transaction and returns
// the id the chain assigned to the task.
func (v *VideoUpscalerClient) CreateVideoUpscalerTask(
	ctx context.Context,
	creator string,
	cid string,
	startFrame int64,
	endFrame int64,
	threads int64,
	reward sdk.Coin,
	fee Fee,
) (*types.TaskResult, error) {
	msg := NewMsgCreateVideoUpscalerTask(creator, cid, startFrame, endFrame, threads, reward)
	res, err := v.broadcast(ctx, creator, msg, fee)
	if res == nil {
		return nil, err
	}

	out := &types.TaskResult{TxResult: *res}
	if err != nil {
		return out, err
	}

	var resp videoupscalerv1.MsgCreateVideoUpscalerTaskResponse
	found, uerr := base.UnpackMsgResponse(res, videoupscalerv1.TypeURLMsgCreateVideoUpscalerTaskResponse, &resp)
	if uerr != nil {
		v.logger.Debug("cannot decode msg responses", zap.String("tx_hash", res.TxHash), zap.Error(uerr))
	}
	if found && resp.TaskId != "" {
		out.TaskID = resp.TaskId
	} else {
		out.TaskID = findAttribute(res, TaskIDAttribute)
	}
	if out.TaskID == "" {
		return out, fmt.Errorf("task id not found in tx %s", res.TxHash)
	}

	v.logger.Info("video upscaler task created", zap.String("task_id", out.TaskID), zap.String("tx_hash", res.TxHash))
	return out, nil
}

// AddWorker registers the signer as a worker with the given stake.
func (v *VideoUpscalerClient) AddWorker(ctx context.Context, creator, publicIP, ipfsID string, stake sdk.Coin, fee Fee) (*types.TxResult, error) {
	return v.broadcast(ctx, creator, NewMsgAddWorker(creator, publicIP, ipfsID, stake), fee)
}

// SubscribeWorkerToTask subscribes address to a thread of taskID and
// returns the thread the chain assigned.
func (v *VideoUpscalerClient) SubscribeWorkerToTask(ctx context.Context, address, taskID, threadID string, fee Fee) (*types.SubscriptionResult, error) {
	res, err := v.broadcast(ctx, address, NewMsgSubscribeWorkerToTask(address, taskID, threadID), fee)
	if res == nil {
		return nil, err
	}
	out := &types.SubscriptionResult{TxResult: *res, ThreadID: threadID}
	if err != nil {
		return out, err
	}

	var resp videoupscalerv1.MsgSubscribeWorkerToTaskResponse
	if found, _ := base.UnpackMsgResponse(res, sdk.MsgTypeURL(&resp), &resp); found && resp.ThreadId != "" {
		out.ThreadID = resp.ThreadId
	}
	return out, nil
}

// ProposeSolution submits signed frame hashes for a thread.
func (v *VideoUpscalerClient) ProposeSolution(ctx context.Context, creator, taskID, threadID, publicKey string, signatures []string, fee Fee) (*types.TxResult, error) {
	return v.broadcast(ctx, creator, NewMsgProposeSolution(creator, taskID, threadID, publicKey, signatures), fee)
}

// RevealSolution reveals the frame cids and hashes of a proposed solution.
func (v *VideoUpscalerClient) RevealSolution(ctx context.Context, creator, taskID, threadID string, frames []string, fee Fee) (*types.TxResult, error) {
	return v.broadcast(ctx, creator, NewMsgRevealSolution(creator, taskID, threadID, frames), fee)
}

// SubmitValidation submits a validator's signed frame hashes for a thread.
func (v *VideoUpscalerClient) SubmitValidation(ctx context.Context, creator, taskID, threadID, publicKey string, signatures []string, fee Fee) (*types.TxResult, error) {
	return v.broadcast(ctx, creator, NewMsgSubmitValidation(creator, taskID, threadID, publicKey, signatures), fee)
}

// SubmitSolution publishes the directory of upscaled frames for a thread.
func (v *VideoUpscalerClient) SubmitSolution(ctx context.Context, creator, taskID, threadID, dir string, averageRenderSeconds int64, fee Fee) (*types.TxResult, error) {
	return v.broadcast(ctx, creator, NewMsgSubmitSolution(creator, taskID, threadID, dir, averageRenderSeconds), fee)
}

type validatedMsg interface {
	sdk.Msg
	ValidateBasic() error
}

// broadcast validates msg, checks that signer is the account of the
// client's key and signs and broadcasts it.
func (v *VideoUpscalerClient) broadcast(ctx context.Context, signer string, msg validatedMsg, fee Fee) (*types.TxResult, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", sdk.MsgTypeURL(msg), err)
	}
	keyAddr, err := v.base.SignerAddress()
	if err != nil {
		return nil, fmt.Errorf("resolve signer: %w", err)
	}
	if signer != keyAddr {
		return nil, fmt.Errorf("%w: key %q signs as %s, message names %s",
			types.ErrSignerMismatch, v.base.KeyName(), keyAddr, signer)
	}
	return v.base.SignAndBroadcast(ctx, []sdk.Msg{msg}, base.TxOptions{Fee: fee})
}

func findAttribute(res *types.TxResult, key string) string {
	for _, ev := range res.Events {
		if v, ok := ev.Attributes[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

func queryError(what, id string, err error) error {
	if base.IsNotFound(err) {
		return fmt.Errorf("%s %s: %w", what, id, types.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
