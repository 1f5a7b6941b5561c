package waittx

import (
	"context"
	"fmt"
	"time"

	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"

	clientconfig "github.com/janction/sdk-go/client/config"
)

type poller struct {
	querier  Querier
	backoff  Backoff
	maxTries int
}

// constantBackoff waits the same interval between attempts.
type constantBackoff struct{ every time.Duration }

func (b constantBackoff) Next(int) time.Duration { return b.every }

func newPoller(q Querier, cfg clientconfig.WaitTxConfig) *poller {
	return &poller{
		querier:  q,
		backoff:  NewBackoff(cfg),
		maxTries: cfg.PollMaxRetries,
	}
}

// NewBackoff constructs the poller cadence from the WaitTx configuration.
func NewBackoff(cfg clientconfig.WaitTxConfig) Backoff {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return constantBackoff{every: interval}
}

func (p *poller) Wait(ctx context.Context, txHash string) (Result, error) {
	attempt := 0
	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		resp, err := p.querier.GetTx(ctx, &txtypes.GetTxRequest{Hash: txHash})
		if err == nil && resp != nil && resp.TxResponse != nil && resp.TxResponse.Txhash != "" {
			return Result{
				Code:   resp.TxResponse.Code,
				Height: resp.TxResponse.Height,
				Events: flattenEvents(resp.TxResponse),
			}, nil
		}

		attempt++
		if p.maxTries > 0 && attempt >= p.maxTries {
			return Result{}, fmt.Errorf("polling exhausted after %d attempts: %w", attempt, err)
		}

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-sleepCtx(ctx, p.backoff.Next(attempt)):
		}
	}
}

func flattenEvents(resp *abcipb.TxResponse) map[string][]string {
	flat := make(map[string][]string)
	for _, e := range resp.Events {
		typeName := e.GetType_()
		for _, a := range e.GetAttributes() {
			key := typeName + "." + a.GetKey()
			flat[key] = append(flat[key], a.GetValue())
		}
	}
	return flat
}

func sleepCtx(ctx context.Context, d time.Duration) <-chan struct{} {
	ch := make(chan struct{})
	if d <= 0 {
		close(ch)
		return ch
	}
	go func() {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
		close(ch)
	}()
	return ch
}
