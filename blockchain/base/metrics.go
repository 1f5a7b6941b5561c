package base

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const metricsNamespace = "videoupscaler_sdk"

// Metrics records gRPC call latency and transaction outcomes.
type Metrics struct {
	rpcDuration *prometheus.HistogramVec
	txTotal     *prometheus.CounterVec
}

// NewMetrics builds the collectors and registers them on reg when it is not
// nil. Collectors already registered by another client are reused.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "Latency of gRPC calls to the chain, by method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
		txTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tx_total",
			Help:      "Transactions submitted, by first message type and outcome.",
		}, []string{"msg", "outcome"}),
	}
	if reg == nil {
		return m
	}
	m.rpcDuration = register(reg, m.rpcDuration)
	m.txTotal = register(reg, m.txTotal)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

// UnaryClientInterceptor observes the duration of every unary call.
func (m *Metrics) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		m.rpcDuration.WithLabelValues(method, status.Code(err).String()).Observe(time.Since(start).Seconds())
		return err
	}
}

const (
	outcomeCommitted = "committed"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	outcomeError     = "error"
)

func (m *Metrics) observeTx(msg, outcome string) {
	m.txTotal.WithLabelValues(msg, outcome).Inc()
}
