package base

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	clientconfig "github.com/janction/sdk-go/client/config"
)

// Config captures shared Cosmos SDK chain settings for gRPC + tx workflows.
type Config struct {
	ChainID        string
	GRPCAddr       string
	RPCEndpoint    string
	AccountHRP     string
	FeeDenom       string
	GasPrice       sdkmath.LegacyDec
	Timeout        time.Duration
	MaxRecvMsgSize int
	MaxSendMsgSize int
	InsecureGRPC   bool
	WaitTx         clientconfig.WaitTxConfig

	Logger            *zap.Logger
	MetricsRegisterer prometheus.Registerer
}
