package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
)

// Worker is a registered rendering node
type Worker struct {
	Address            string
	Reputation         Reputation
	Enabled            bool
	PublicIP           string
	IPFSID             string
	CurrentTaskID      string
	CurrentThreadIndex int32
}

// Reputation tracks a worker's stake and track record
type Reputation struct {
	Points          int64
	Staked          sdk.Coin
	Validations     int64
	Solutions       int64
	Winnings        sdk.Coin
	RenderDurations []int64
}

// Busy reports whether the worker is subscribed to a task.
func (w *Worker) Busy() bool {
	return w.CurrentTaskID != ""
}

// AverageRenderSeconds averages the recorded render durations.
func (r Reputation) AverageRenderSeconds() int64 {
	if len(r.RenderDurations) == 0 {
		return 0
	}
	var sum int64
	for _, d := range r.RenderDurations {
		sum += d
	}
	return sum / int64(len(r.RenderDurations))
}

// WorkerFromProto converts the chain representation of a worker.
func WorkerFromProto(pb *videoupscalerv1.Worker) *Worker {
	if pb == nil {
		return nil
	}
	w := &Worker{
		Address:            pb.Address,
		Enabled:            pb.Enabled,
		PublicIP:           pb.PublicIp,
		IPFSID:             pb.IpfsId,
		CurrentTaskID:      pb.CurrentTaskId,
		CurrentThreadIndex: pb.CurrentThreadIndex,
	}
	if r := pb.Reputation; r != nil {
		w.Reputation = Reputation{
			Points:          r.Points,
			Staked:          coinOrZero(r.Staked),
			Validations:     r.Validations,
			Solutions:       r.Solutions,
			Winnings:        coinOrZero(r.Winnings),
			RenderDurations: append([]int64(nil), r.RenderDurations...),
		}
	}
	return w
}

// Severity of a thread log entry
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeveritySuccess Severity = "SUCCESS"
	SeverityError   Severity = "ERROR"
)

// ThreadLogs holds the log entries workers reported for a thread
type ThreadLogs struct {
	ThreadID string
	Entries  []LogEntry
}

// LogEntry is a single worker log line
type LogEntry struct {
	Message   string
	Timestamp time.Time
	Severity  Severity
}

// ThreadLogsFromProto converts the chain representation of thread logs.
// Timestamps are unix seconds on chain.
func ThreadLogsFromProto(pb *videoupscalerv1.VideoUpscalerLogs) *ThreadLogs {
	if pb == nil {
		return nil
	}
	out := &ThreadLogs{ThreadID: pb.ThreadId}
	for _, l := range pb.Logs {
		if l == nil {
			continue
		}
		out.Entries = append(out.Entries, LogEntry{
			Message:   l.Log,
			Timestamp: time.Unix(l.Timestamp, 0).UTC(),
			Severity:  severityFromProto(l.Severity),
		})
	}
	return out
}

func severityFromProto(s videoupscalerv1.VideoUpscalerLog_Severity) Severity {
	switch s {
	case videoupscalerv1.VideoUpscalerLog_SUCCESS:
		return SeveritySuccess
	case videoupscalerv1.VideoUpscalerLog_ERROR:
		return SeverityError
	default:
		return SeverityInfo
	}
}
