package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
)

// Task represents a video upscaling task in the SDK
type Task struct {
	ID           string
	Requester    string
	CID          string
	StartFrame   int64
	EndFrame     int64
	ThreadAmount int64
	Completed    bool
	Reward       sdk.Coin
	Threads      []*Thread
}

// Thread is the slice of a task's frames handled by a group of workers
type Thread struct {
	ID                   string
	TaskID               string
	StartFrame           int64
	EndFrame             int64
	Completed            bool
	Workers              []string
	Solution             *Solution
	Validations          []*Validation
	AverageRenderSeconds int64
}

// Frame is a single rendered frame reported by a worker
type Frame struct {
	Filename     string
	Signature    string
	CID          string
	Hash         string
	ValidCount   int64
	InvalidCount int64
}

// Solution is the set of frames proposed by the winning worker
type Solution struct {
	ProposedBy string
	Frames     []*Frame
	PublicKey  string
	Dir        string
	Accepted   bool
}

// Validation is a validator's signed view of a thread's frames
type Validation struct {
	Validator string
	Frames    []*Frame
	PublicKey string
	IsReverse bool
}

// TaskFromProto converts the chain representation of a task.
func TaskFromProto(pb *videoupscalerv1.VideoUpscalerTask) *Task {
	if pb == nil {
		return nil
	}
	t := &Task{
		ID:           pb.TaskId,
		Requester:    pb.Requester,
		CID:          pb.Cid,
		StartFrame:   pb.StartFrame,
		EndFrame:     pb.EndFrame,
		ThreadAmount: pb.ThreadAmount,
		Completed:    pb.Completed,
		Reward:       coinOrZero(pb.Reward),
	}
	for _, th := range pb.Threads {
		t.Threads = append(t.Threads, ThreadFromProto(th))
	}
	return t
}

// ThreadFromProto converts the chain representation of a thread.
func ThreadFromProto(pb *videoupscalerv1.VideoUpscalerThread) *Thread {
	if pb == nil {
		return nil
	}
	th := &Thread{
		ID:                   pb.ThreadId,
		TaskID:               pb.TaskId,
		StartFrame:           pb.StartFrame,
		EndFrame:             pb.EndFrame,
		Completed:            pb.Completed,
		Workers:              append([]string(nil), pb.Workers...),
		AverageRenderSeconds: pb.AverageRenderSeconds,
	}
	if pb.Solution != nil {
		th.Solution = &Solution{
			ProposedBy: pb.Solution.ProposedBy,
			Frames:     framesFromProto(pb.Solution.Frames),
			PublicKey:  pb.Solution.PublicKey,
			Dir:        pb.Solution.Dir,
			Accepted:   pb.Solution.Accepted,
		}
	}
	for _, v := range pb.Validations {
		if v == nil {
			continue
		}
		th.Validations = append(th.Validations, &Validation{
			Validator: v.Validator,
			Frames:    framesFromProto(v.Frames),
			PublicKey: v.PublicKey,
			IsReverse: v.IsReverse,
		})
	}
	return th
}

func framesFromProto(in []*videoupscalerv1.VideoUpscalerThread_Frame) []*Frame {
	out := make([]*Frame, 0, len(in))
	for _, f := range in {
		if f == nil {
			continue
		}
		out = append(out, &Frame{
			Filename:     f.Filename,
			Signature:    f.Signature,
			CID:          f.Cid,
			Hash:         f.Hash,
			ValidCount:   f.ValidCount,
			InvalidCount: f.InvalidCount,
		})
	}
	return out
}

func coinOrZero(c *sdk.Coin) sdk.Coin {
	if c == nil {
		return sdk.Coin{Amount: sdkmath.ZeroInt()}
	}
	return *c
}

// FrameCount is the number of frames in the task's inclusive range.
func (t *Task) FrameCount() int64 {
	return t.EndFrame - t.StartFrame + 1
}

// WinnerReward is the share paid to the worker whose solution is accepted
// for one thread: half the reward split evenly across threads.
func (t *Task) WinnerReward() sdk.Coin {
	return t.halfPerThread()
}

// ValidatorsReward is the share split between the validators of one thread.
func (t *Task) ValidatorsReward() sdk.Coin {
	return t.halfPerThread()
}

func (t *Task) halfPerThread() sdk.Coin {
	if len(t.Threads) == 0 || t.Reward.Amount.IsNil() {
		return sdk.Coin{Denom: t.Reward.Denom, Amount: sdkmath.ZeroInt()}
	}
	return sdk.Coin{Denom: t.Reward.Denom, Amount: t.Reward.Amount.QuoRaw(2).QuoRaw(int64(len(t.Threads)))}
}

// PendingThreads returns the threads not yet completed.
func (t *Task) PendingThreads() []*Thread {
	var out []*Thread
	for _, th := range t.Threads {
		if th != nil && !th.Completed {
			out = append(out, th)
		}
	}
	return out
}

// Thread looks a thread up by id.
func (t *Task) Thread(id string) *Thread {
	for _, th := range t.Threads {
		if th != nil && th.ID == id {
			return th
		}
	}
	return nil
}

// IsReverse reports whether worker renders the thread's frames in reverse
// order. Workers at odd positions in the subscription list do.
func (t *Thread) IsReverse(worker string) bool {
	for i, w := range t.Workers {
		if w == worker {
			return i%2 != 0
		}
	}
	return false
}

// ValidatorReward is worker's cut of total, proportional to the number of
// frames it validated across all validations of the thread.
func (t *Thread) ValidatorReward(worker string, total sdk.Coin) sdk.Coin {
	var totalFrames int64
	for _, v := range t.Validations {
		totalFrames += int64(len(v.Frames))
	}
	for _, v := range t.Validations {
		if v.Validator != worker || totalFrames == 0 {
			continue
		}
		amount := total.Amount.MulRaw(int64(len(v.Frames))).QuoRaw(totalFrames)
		return sdk.Coin{Denom: total.Denom, Amount: amount}
	}
	return sdk.Coin{Denom: total.Denom, Amount: sdkmath.ZeroInt()}
}

// Frame returns the solution frame named filename, or nil.
func (t *Thread) Frame(filename string) *Frame {
	if t.Solution == nil {
		return nil
	}
	for _, f := range t.Solution.Frames {
		if f.Filename == filename {
			return f
		}
	}
	return nil
}

// SolutionAccepted applies the chain's acceptance rule to the counted
// validations: a frame is valid with at least two valid validations (one when
// the thread has a single worker) and at least a fifth of the frames, never
// fewer than one, must be valid.
func (t *Thread) SolutionAccepted() bool {
	if t.Solution == nil || len(t.Solution.Frames) == 0 {
		return false
	}
	minValid := int64(2)
	if len(t.Workers) == 1 {
		minValid = 1
	}
	valid := 0
	for _, f := range t.Solution.Frames {
		if f.ValidCount >= minValid {
			valid++
		}
	}
	required := len(t.Solution.Frames) / 5
	if required == 0 {
		required = 1
	}
	return valid >= required
}

// FrameRange is an inclusive range of frames.
type FrameRange struct {
	ThreadID   string
	StartFrame int64
	EndFrame   int64
}

// SplitFrames divides start..end among threads the way the chain does when
// it creates a task. The first total%threads ranges get one extra frame.
// It returns nil when threads is not positive or exceeds the frame count.
func SplitFrames(taskID string, start, end, threads int64) []FrameRange {
	total := end - start + 1
	if threads <= 0 || total <= 0 || threads > total {
		return nil
	}
	per := total / threads
	remainder := total % threads

	out := make([]FrameRange, threads)
	cur := start
	for i := int64(0); i < threads; i++ {
		n := per
		if i < remainder {
			n++
		}
		out[i] = FrameRange{
			ThreadID:   taskID + strconv.FormatInt(i, 10),
			StartFrame: cur,
			EndFrame:   cur + n - 1,
		}
		cur += n
	}
	return out
}
