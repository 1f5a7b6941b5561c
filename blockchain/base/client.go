package base

import (
	"context"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	clientconfig "github.com/janction/sdk-go/client/config"
	sdkcrypto "github.com/janction/sdk-go/internal/crypto"
)

// Client provides common Cosmos SDK gRPC and tx helpers.
type Client struct {
	conn     *grpc.ClientConn
	config   Config
	keyring  keyring.Keyring
	keyName  string
	txConfig client.TxConfig
	logger   *zap.Logger
	metrics  *Metrics
}

// New creates a base blockchain client with a gRPC connection.
func New(ctx context.Context, cfg Config, kr keyring.Keyring, keyName string) (*Client, error) {
	// Use TLS if: port is 443, or hostname isn't local.
	useTLS := shouldUseTLS(cfg.GRPCAddr)
	if cfg.InsecureGRPC {
		useTLS = false
	}

	var creds credentials.TransportCredentials
	if useTLS {
		creds = credentials.NewTLS(nil)
	} else {
		creds = insecure.NewCredentials()
	}

	if cfg.AccountHRP == "" {
		cfg.AccountHRP = sdkcrypto.DefaultAccountHRP
	}
	txCfg, err := sdkcrypto.NewDefaultTxConfig(cfg.AccountHRP)
	if err != nil {
		return nil, fmt.Errorf("tx config: %w", err)
	}
	reg, err := sdkcrypto.NewInterfaceRegistry(cfg.AccountHRP)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics(cfg.MetricsRegisterer)

	// Module messages are gogoproto types, so every call goes through the
	// Cosmos codec, which also handles the protobuf-go messages of cosmossdk.io/api.
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(
			grpc.ForceCodec(codec.NewProtoCodec(reg).GRPCCodec()),
			grpc.MaxCallRecvMsgSize(cfg.MaxRecvMsgSize),
			grpc.MaxCallSendMsgSize(cfg.MaxSendMsgSize),
		),
		grpc.WithUnaryInterceptor(metrics.UnaryClientInterceptor()),
	}

	clientconfig.ApplyWaitTxDefaults(&cfg.WaitTx)

	conn, err := grpc.NewClient(cfg.GRPCAddr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gRPC: %w", err)
	}

	return NewWithConn(conn, cfg, kr, keyName, txCfg, metrics), nil
}

// NewWithConn wraps an existing connection. The connection must use a codec
// able to marshal gogoproto messages.
func NewWithConn(conn *grpc.ClientConn, cfg Config, kr keyring.Keyring, keyName string, txCfg client.TxConfig, metrics *Metrics) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Client{
		conn:     conn,
		config:   cfg,
		keyring:  kr,
		keyName:  keyName,
		txConfig: txCfg,
		logger:   logger,
		metrics:  metrics,
	}
}

// Close closes the underlying gRPC connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// GRPCConn exposes the underlying gRPC connection for specialized queries.
func (c *Client) GRPCConn() *grpc.ClientConn {
	return c.conn
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Logger returns the client logger.
func (c *Client) Logger() *zap.Logger {
	return c.logger
}

// KeyName is the keyring entry transactions are signed with.
func (c *Client) KeyName() string {
	return c.keyName
}

// WithCallTimeout bounds ctx by the configured per-call timeout.
func (c *Client) WithCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.Timeout > 0 {
		return context.WithTimeout(ctx, c.config.Timeout)
	}
	return context.WithCancel(ctx)
}

// shouldUseTLS determines if TLS should be used based on the gRPC address.
func shouldUseTLS(addr string) bool {
	// Check for explicit port 443 (standard HTTPS/gRPC-TLS port).
	if strings.HasSuffix(addr, ":443") {
		return true
	}

	// Check if it's a local address (localhost, 127.0.0.1, or no hostname).
	if strings.HasPrefix(addr, "localhost:") ||
		strings.HasPrefix(addr, "127.0.0.1:") ||
		strings.HasPrefix(addr, "0.0.0.0:") ||
		strings.HasPrefix(addr, ":") { // Just port, implies localhost.
		return false
	}

	// For any other remote address, prefer TLS by default.
	return !strings.Contains(addr, "localhost") &&
		!strings.Contains(addr, "127.0.0.1") &&
		!strings.Contains(addr, "0.0.0.0")
}
