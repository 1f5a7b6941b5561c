package waittx

import (
	"context"
	"errors"
	"testing"
	"time"

	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	"google.golang.org/grpc"

	clientconfig "github.com/janction/sdk-go/client/config"
)

type stubSource struct {
	res   Result
	err   error
	block bool
	calls int
}

func (s *stubSource) Wait(ctx context.Context, txHash string) (Result, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return Result{}, ctx.Err()
	}
	return s.res, s.err
}

func TestWaiterPrefersSubscriber(t *testing.T) {
	w := &Waiter{
		poller:     &stubSource{res: Result{Code: 1}},
		subscriber: &stubSource{res: Result{Code: 0}},
		setupDelay: 50 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := w.Wait(ctx, "hash", 0)
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if res.Code != 0 {
		t.Fatalf("expected subscriber result")
	}

	if w.poller.(*stubSource).calls != 0 {
		t.Fatalf("poller should not be used when subscriber succeeds")
	}
}

func TestWaiterFallsBackToPoller(t *testing.T) {
	poller := &stubSource{res: Result{Code: 2}}
	sub := &stubSource{err: errors.New("boom")}

	w := &Waiter{poller: poller, subscriber: sub, setupDelay: 10 * time.Millisecond}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := w.Wait(ctx, "hash", 0)
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if res.Code != 2 {
		t.Fatalf("expected poller result")
	}
	if poller.calls == 0 {
		t.Fatalf("poller should have been invoked")
	}
}

func TestWaiterFallsBackWhenSubscriberIsSlow(t *testing.T) {
	poller := &stubSource{res: Result{Code: 3}}
	w := &Waiter{poller: poller, subscriber: &stubSource{block: true}, setupDelay: 10 * time.Millisecond}

	res, err := w.Wait(context.Background(), "hash", time.Second)
	if err != nil {
		t.Fatalf("wait error: %v", err)
	}
	if res.Code != 3 {
		t.Fatalf("expected poller result, got %d", res.Code)
	}
}

type waiterStubQuerier struct {
	resp  *txtypes.GetTxResponse
	err   error
	calls int
}

func (s *waiterStubQuerier) GetTx(ctx context.Context, req *txtypes.GetTxRequest, _ ...grpc.CallOption) (*txtypes.GetTxResponse, error) {
	s.calls++
	return s.resp, s.err
}

func TestNewSetsDefaults(t *testing.T) {
	resp := &txtypes.GetTxResponse{TxResponse: &abcipb.TxResponse{Txhash: "hash"}}
	q := &waiterStubQuerier{resp: resp}

	w, err := New(clientconfig.DefaultWaitTxConfig(), "", q, nil)
	if err != nil {
		t.Fatalf("new error: %v", err)
	}
	if w.subscriber != nil {
		t.Fatalf("subscriber should be nil without an rpc endpoint")
	}
	if w.setupDelay != 5*time.Second {
		t.Fatalf("unexpected setup delay: %v", w.setupDelay)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := w.Wait(ctx, "hash", 0); err != nil {
		t.Fatalf("unexpected wait error: %v", err)
	}
	if q.calls != 1 {
		t.Fatalf("expected a single poll, got %d", q.calls)
	}
}

func TestNewRequiresQuerier(t *testing.T) {
	if _, err := New(clientconfig.DefaultWaitTxConfig(), "", nil, nil); err == nil {
		t.Fatalf("expected error without querier")
	}
}

func TestNewDefaultsPollRetries(t *testing.T) {
	w, err := New(clientconfig.WaitTxConfig{}, "", &waiterStubQuerier{}, nil)
	if err != nil {
		t.Fatalf("new error: %v", err)
	}
	p, ok := w.poller.(*poller)
	if !ok {
		t.Fatalf("unexpected poller type %T", w.poller)
	}
	if p.maxTries != 40 {
		t.Fatalf("expected 40 poll retries, got %d", p.maxTries)
	}

	w, err = New(clientconfig.WaitTxConfig{PollMaxRetries: -1}, "", &waiterStubQuerier{}, nil)
	if err != nil {
		t.Fatalf("new error: %v", err)
	}
	if got := w.poller.(*poller).maxTries; got != -1 {
		t.Fatalf("expected unlimited retries to be kept, got %d", got)
	}
}
