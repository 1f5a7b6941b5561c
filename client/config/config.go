package config

import (
	"fmt"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultEnvPrefix prefixes environment overrides, e.g.
// VIDEOUPSCALER_GRPC_ENDPOINT or VIDEOUPSCALER_WAIT_TX__POLL_INTERVAL.
const DefaultEnvPrefix = "VIDEOUPSCALER_"

// Config holds all configuration for the video upscaler client.
type Config struct {
	// Blockchain connection
	ChainID      string `koanf:"chain_id"`
	GRPCEndpoint string `koanf:"grpc_endpoint"` // chain gRPC endpoint
	RPCEndpoint  string `koanf:"rpc_endpoint"`  // CometBFT RPC endpoint for websocket subscriptions
	InsecureGRPC bool   `koanf:"insecure_grpc"` // force plaintext gRPC for remote endpoints

	// IPFS HTTP API used for video uploads
	IPFSAPI string `koanf:"ipfs_api"`

	// Account settings
	Address    string `koanf:"address"`  // your janction1... address
	KeyName    string `koanf:"key_name"` // key name in keyring
	AccountHRP string `koanf:"account_hrp"`

	// Fees
	FeeDenom string `koanf:"fee_denom"`
	GasPrice string `koanf:"gas_price"` // decimal, per unit of gas in FeeDenom

	// Timeouts
	BlockchainTimeout time.Duration `koanf:"blockchain_timeout"`
	StorageTimeout    time.Duration `koanf:"storage_timeout"`

	// Optional overrides
	MaxRecvMsgSize int `koanf:"max_recv_msg_size"` // max message size for gRPC (default: 50MB)
	MaxSendMsgSize int `koanf:"max_send_msg_size"`

	// WaitTx controls transaction confirmation behaviour.
	WaitTx WaitTxConfig `koanf:"wait_tx"`

	// Logger is optional; when set, SDK operations emit diagnostics.
	Logger *zap.Logger `koanf:"-"`

	// MetricsRegisterer is optional; when set, gRPC client metrics are registered on it.
	MetricsRegisterer prometheus.Registerer `koanf:"-"`
}

// WaitTxConfig configures how the SDK waits for transaction inclusion.
type WaitTxConfig struct {
	// SubscriberSetupTimeout defines how long we wait for the websocket subscription to deliver.
	SubscriberSetupTimeout time.Duration `koanf:"subscriber_setup_timeout"`

	// Polling is a fallback mechanism when a websocket subscription is not available.
	// PollInterval controls how frequently the fallback poller queries gRPC for the tx.
	PollInterval time.Duration `koanf:"poll_interval"`
	// PollMaxRetries limits the number of poll attempts before failing.
	// Zero selects the default of 40; a negative value polls until the
	// context deadline.
	PollMaxRetries int `koanf:"poll_max_retries"`
}

// Validate checks if the configuration is valid and populates defaults.
func (c *Config) Validate() error {
	if c.ChainID == "" {
		return fmt.Errorf("chain_id is required")
	}
	if c.GRPCEndpoint == "" {
		return fmt.Errorf("grpc_endpoint is required")
	}
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	if c.KeyName == "" {
		return fmt.Errorf("key_name is required")
	}
	return c.ApplyDefaults()
}

// ApplyDefaults fills every optional setting left empty. Read-only callers
// that never sign use it instead of Validate.
func (c *Config) ApplyDefaults() error {
	def := Default()
	if c.AccountHRP == "" {
		c.AccountHRP = def.AccountHRP
	}
	if c.FeeDenom == "" {
		c.FeeDenom = def.FeeDenom
	}
	if c.GasPrice == "" {
		c.GasPrice = def.GasPrice
	}
	if _, err := c.GasPriceDec(); err != nil {
		return err
	}
	if c.IPFSAPI == "" {
		c.IPFSAPI = def.IPFSAPI
	}
	if c.BlockchainTimeout == 0 {
		c.BlockchainTimeout = 10 * time.Second
	}
	if c.StorageTimeout == 0 {
		c.StorageTimeout = 5 * time.Minute
	}
	if c.MaxRecvMsgSize == 0 {
		c.MaxRecvMsgSize = 1024 * 1024 * 50 // 50MB
	}
	if c.MaxSendMsgSize == 0 {
		c.MaxSendMsgSize = 1024 * 1024 * 50 // 50MB
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	ApplyWaitTxDefaults(&c.WaitTx)

	return nil
}

// GasPriceDec parses GasPrice.
func (c *Config) GasPriceDec() (sdkmath.LegacyDec, error) {
	dec, err := sdkmath.LegacyNewDecFromStr(c.GasPrice)
	if err != nil {
		return sdkmath.LegacyDec{}, fmt.Errorf("invalid gas_price %q: %w", c.GasPrice, err)
	}
	if dec.IsNegative() {
		return sdkmath.LegacyDec{}, fmt.Errorf("gas_price must not be negative")
	}
	return dec, nil
}

// Default returns a configuration with sensible defaults for a local chain.
func Default() Config {
	return Config{
		ChainID:           "videoUpscaler",
		GRPCEndpoint:      "localhost:9090",
		RPCEndpoint:       "http://localhost:26657",
		IPFSAPI:           "localhost:5001",
		AccountHRP:        "janction",
		FeeDenom:          "jct",
		GasPrice:          "0.025",
		BlockchainTimeout: 10 * time.Second,
		StorageTimeout:    5 * time.Minute,
		MaxRecvMsgSize:    1024 * 1024 * 50,
		MaxSendMsgSize:    1024 * 1024 * 50,
		WaitTx:            DefaultWaitTxConfig(),
	}
}

// DefaultWaitTxConfig returns recommended defaults for wait-tx behaviour.
func DefaultWaitTxConfig() WaitTxConfig {
	return WaitTxConfig{
		SubscriberSetupTimeout: 5 * time.Second,
		PollInterval:           500 * time.Millisecond,
		PollMaxRetries:         40,
	}
}

// ApplyWaitTxDefaults fills unset durations and a zero PollMaxRetries from
// DefaultWaitTxConfig. A negative PollMaxRetries is kept. Applying it twice
// yields the same config.
func ApplyWaitTxDefaults(cfg *WaitTxConfig) {
	if cfg == nil {
		return
	}
	def := DefaultWaitTxConfig()

	if cfg.SubscriberSetupTimeout <= 0 {
		cfg.SubscriberSetupTimeout = def.SubscriberSetupTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.PollMaxRetries == 0 {
		cfg.PollMaxRetries = def.PollMaxRetries
	}
}

// Load reads the configuration from an optional YAML file, then applies
// environment overrides under envPrefix. Keys are the koanf tags; a double
// underscore in an environment name descends into a nested section. Values
// not set anywhere keep their Default.
func Load(path, envPrefix string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if envPrefix == "" {
		envPrefix = DefaultEnvPrefix
	}
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
