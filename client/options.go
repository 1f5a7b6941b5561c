package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option is a function that modifies Config
type Option func(*Config)

// WithChainID sets the chain ID
func WithChainID(chainID string) Option {
	return func(c *Config) {
		c.ChainID = chainID
	}
}

// WithGRPCAddr sets the gRPC address
func WithGRPCAddr(addr string) Option {
	return func(c *Config) {
		c.GRPCEndpoint = addr
	}
}

// WithRPCEndpoint sets the CometBFT RPC endpoint used to follow transactions
func WithRPCEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.RPCEndpoint = endpoint
	}
}

// WithBlockchainTimeout sets the blockchain timeout
func WithBlockchainTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.BlockchainTimeout = timeout
	}
}

// WithStorageTimeout sets the storage timeout
func WithStorageTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.StorageTimeout = timeout
	}
}

// WithMaxMessageSize sets both send and receive message sizes
func WithMaxMessageSize(size int) Option {
	return func(c *Config) {
		c.MaxRecvMsgSize = size
		c.MaxSendMsgSize = size
	}
}

// WithWaitTxConfig overrides the transaction inclusion settings
func WithWaitTxConfig(cfg WaitTxConfig) Option {
	return func(c *Config) {
		c.WaitTx = cfg
	}
}

// WithLogger sets the logger used by every sub-client
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithGasPrice sets the decimal gas price, paid in the fee denom
func WithGasPrice(price string) Option {
	return func(c *Config) {
		c.GasPrice = price
	}
}

// WithIPFSAPI sets the IPFS HTTP API address
func WithIPFSAPI(addr string) Option {
	return func(c *Config) {
		c.IPFSAPI = addr
	}
}

// WithInsecureGRPC forces a plaintext gRPC connection
func WithInsecureGRPC(insecure bool) Option {
	return func(c *Config) {
		c.InsecureGRPC = insecure
	}
}

// WithMetricsRegisterer registers SDK metrics on reg
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) {
		c.MetricsRegisterer = reg
	}
}
