package waittx

import (
	"context"
	"fmt"
	"strings"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	tmtypes "github.com/cometbft/cometbft/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const subscriberPrefix = "videoupscaler-wait-"

type subscriber struct {
	endpoint string
	logger   *zap.Logger
}

func newSubscriber(endpoint string, logger *zap.Logger) Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &subscriber{endpoint: endpoint, logger: logger}
}

// Wait subscribes under a fresh subscriber id so concurrent waits sharing an
// endpoint do not collide.
func (s *subscriber) Wait(ctx context.Context, txHash string) (Result, error) {
	client, err := rpchttp.New(s.endpoint, "/websocket")
	if err != nil {
		return Result{}, fmt.Errorf("tm client init: %w", err)
	}
	if err := client.Start(); err != nil {
		return Result{}, fmt.Errorf("tm client start: %w", err)
	}
	defer client.Stop() //nolint:errcheck

	id := subscriberPrefix + uuid.NewString()
	query := fmt.Sprintf("tm.event='Tx' AND tx.hash='%s'", formatTMHash(txHash))
	ch, err := client.Subscribe(ctx, id, query)
	if err != nil {
		return Result{}, fmt.Errorf("subscribe: %w", err)
	}
	defer client.Unsubscribe(context.Background(), id, query) //nolint:errcheck
	s.logger.Debug("subscribed to tx", zap.String("subscriber", id), zap.String("hash", txHash))

	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return Result{}, fmt.Errorf("subscription closed")
			}
			txev, ok := ev.Data.(tmtypes.EventDataTx)
			if !ok {
				continue
			}
			flat := make(map[string][]string)
			for _, e := range txev.TxResult.Result.Events {
				for _, a := range e.Attributes {
					key := e.Type + "." + a.Key
					flat[key] = append(flat[key], a.Value)
				}
			}
			return Result{
				Code:   txev.TxResult.Result.Code,
				Height: txev.TxResult.Height,
				Events: flat,
			}, nil
		}
	}
}

func formatTMHash(h string) string {
	h = strings.TrimPrefix(h, "0x")
	return "0x" + strings.ToUpper(h)
}
