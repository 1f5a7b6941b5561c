package blockchain

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
)

// NewMsgCreateVideoUpscalerTask constructs a task creation message for the
// inclusive frame range [startFrame, endFrame] split into threads.
func NewMsgCreateVideoUpscalerTask(
	creator string,
	cid string,
	startFrame int64,
	endFrame int64,
	threads int64,
	reward sdk.Coin,
) *videoupscalerv1.MsgCreateVideoUpscalerTask {
	return &videoupscalerv1.MsgCreateVideoUpscalerTask{
		Creator:    creator,
		Cid:        cid,
		StartFrame: startFrame,
		EndFrame:   endFrame,
		Threads:    threads,
		Reward:     &reward,
	}
}

// NewMsgAddWorker registers creator as a worker reachable at publicIP.
func NewMsgAddWorker(creator, publicIP, ipfsID string, stake sdk.Coin) *videoupscalerv1.MsgAddWorker {
	return &videoupscalerv1.MsgAddWorker{
		Creator:  creator,
		PublicIp: publicIP,
		IpfsId:   ipfsID,
		Stake:    &stake,
	}
}

// NewMsgSubscribeWorkerToTask constructs a MsgSubscribeWorkerToTask.
func NewMsgSubscribeWorkerToTask(address, taskID, threadID string) *videoupscalerv1.MsgSubscribeWorkerToTask {
	return &videoupscalerv1.MsgSubscribeWorkerToTask{
		Address:  address,
		TaskId:   taskID,
		ThreadId: threadID,
	}
}

// NewMsgProposeSolution carries the signed frame hashes of a finished
// thread. Signatures are "filename=signature" entries.
func NewMsgProposeSolution(creator, taskID, threadID, publicKey string, signatures []string) *videoupscalerv1.MsgProposeSolution {
	return &videoupscalerv1.MsgProposeSolution{
		Creator:    creator,
		TaskId:     taskID,
		ThreadId:   threadID,
		PublicKey:  publicKey,
		Signatures: signatures,
	}
}

// NewMsgRevealSolution reveals frames as "filename=cid:hash" entries.
func NewMsgRevealSolution(creator, taskID, threadID string, frames []string) *videoupscalerv1.MsgRevealSolution {
	return &videoupscalerv1.MsgRevealSolution{
		Creator:  creator,
		TaskId:   taskID,
		ThreadId: threadID,
		Frames:   frames,
	}
}

// NewMsgSubmitValidation constructs a MsgSubmitValidation.
func NewMsgSubmitValidation(creator, taskID, threadID, publicKey string, signatures []string) *videoupscalerv1.MsgSubmitValidation {
	return &videoupscalerv1.MsgSubmitValidation{
		Creator:    creator,
		TaskId:     taskID,
		ThreadId:   threadID,
		PublicKey:  publicKey,
		Signatures: signatures,
	}
}

// NewMsgSubmitSolution points the chain at the uploaded directory of
// upscaled frames.
func NewMsgSubmitSolution(creator, taskID, threadID, dir string, averageRenderSeconds int64) *videoupscalerv1.MsgSubmitSolution {
	return &videoupscalerv1.MsgSubmitSolution{
		Creator:              creator,
		TaskId:               taskID,
		ThreadId:             threadID,
		Dir:                  dir,
		AverageRenderSeconds: averageRenderSeconds,
	}
}
