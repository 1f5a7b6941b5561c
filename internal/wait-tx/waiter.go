package waittx

import (
	"context"
	"fmt"
	"time"

	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	clientconfig "github.com/janction/sdk-go/client/config"
)

// Querier fetches transactions over gRPC.
type Querier interface {
	GetTx(ctx context.Context, req *txtypes.GetTxRequest, opts ...grpc.CallOption) (*txtypes.GetTxResponse, error)
}

// Waiter coordinates a subscriber (WS) and poller (gRPC) to observe a tx.
type Waiter struct {
	subscriber Source
	poller     Source
	setupDelay time.Duration
	logger     *zap.Logger
}

// New creates a waiter based on the provided config and querier. The
// subscriber is only used when rpcEndpoint is set.
func New(cfg clientconfig.WaitTxConfig, rpcEndpoint string, querier Querier, logger *zap.Logger) (*Waiter, error) {
	if querier == nil {
		return nil, fmt.Errorf("querier is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	normalized := cfg
	clientconfig.ApplyWaitTxDefaults(&normalized)

	poller := newPoller(querier, normalized)

	var sub Source
	if rpcEndpoint != "" {
		sub = newSubscriber(rpcEndpoint, logger)
	}

	return &Waiter{subscriber: sub, poller: poller, setupDelay: normalized.SubscriberSetupTimeout, logger: logger}, nil
}

// Wait blocks until the transaction reaches a final state or the context ends.
func (w *Waiter) Wait(ctx context.Context, txHash string, timeout time.Duration) (Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if w.subscriber != nil {
		subCtx, cancel := context.WithTimeout(ctx, w.setupDelay)
		defer cancel()
		resCh := make(chan Result, 1)
		errCh := make(chan error, 1)
		go func() {
			res, err := w.subscriber.Wait(subCtx, txHash)
			if err != nil {
				errCh <- err
				return
			}
			resCh <- res
		}()

		select {
		case <-subCtx.Done():
			w.log().Debug("subscriber did not deliver in time, polling", zap.String("hash", txHash))
		case err := <-errCh:
			w.log().Debug("subscriber failed, polling", zap.String("hash", txHash), zap.Error(err))
		case res := <-resCh:
			return res, nil
		}
		cancel()
	}

	if w.poller == nil {
		return Result{}, fmt.Errorf("poller is required")
	}
	return w.poller.Wait(ctx, txHash)
}

func (w *Waiter) log() *zap.Logger {
	if w.logger == nil {
		return zap.NewNop()
	}
	return w.logger
}
