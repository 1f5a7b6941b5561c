package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := Config{
		ChainID:      "videoUpscaler",
		GRPCEndpoint: "localhost:9090",
		Address:      "janction1abc",
		KeyName:      "alice",
	}
	require.NoError(t, cfg.Validate())

	require.Equal(t, "janction", cfg.AccountHRP)
	require.Equal(t, "jct", cfg.FeeDenom)
	require.Equal(t, 10*time.Second, cfg.BlockchainTimeout)
	require.Equal(t, 50*1024*1024, cfg.MaxRecvMsgSize)
	require.Equal(t, DefaultWaitTxConfig(), cfg.WaitTx)
	require.NotNil(t, cfg.Logger)

	price, err := cfg.GasPriceDec()
	require.NoError(t, err)
	require.Equal(t, "0.025000000000000000", price.String())
}

func TestValidateRequiredFields(t *testing.T) {
	base := Config{ChainID: "c", GRPCEndpoint: "g", Address: "a", KeyName: "k"}

	for name, mutate := range map[string]func(*Config){
		"chain_id":      func(c *Config) { c.ChainID = "" },
		"grpc_endpoint": func(c *Config) { c.GRPCEndpoint = "" },
		"address":       func(c *Config) { c.Address = "" },
		"key_name":      func(c *Config) { c.KeyName = "" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), name)
		})
	}

	cfg := base
	cfg.GasPrice = "cheap"
	require.ErrorContains(t, cfg.Validate(), "gas_price")
}

func TestApplyWaitTxDefaults(t *testing.T) {
	cfg := WaitTxConfig{}
	ApplyWaitTxDefaults(&cfg)
	require.Equal(t, 5*time.Second, cfg.SubscriberSetupTimeout)
	require.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	require.Equal(t, 40, cfg.PollMaxRetries)

	unlimited := WaitTxConfig{PollMaxRetries: -3}
	ApplyWaitTxDefaults(&unlimited)
	require.Equal(t, -3, unlimited.PollMaxRetries)
	ApplyWaitTxDefaults(&unlimited)
	require.Equal(t, -3, unlimited.PollMaxRetries)

	ApplyWaitTxDefaults(nil)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `chain_id: upscaler-testnet
grpc_endpoint: grpc.example.com:443
address: janction1file
key_name: file-key
blockchain_timeout: 30s
wait_tx:
  poll_interval: 2s
  poll_max_retries: 7
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("TESTUPSCALER_KEY_NAME", "env-key")
	t.Setenv("TESTUPSCALER_WAIT_TX__POLL_MAX_RETRIES", "9")

	cfg, err := Load(path, "TESTUPSCALER_")
	require.NoError(t, err)

	require.Equal(t, "upscaler-testnet", cfg.ChainID)
	require.Equal(t, "grpc.example.com:443", cfg.GRPCEndpoint)
	require.Equal(t, "env-key", cfg.KeyName)
	require.Equal(t, 30*time.Second, cfg.BlockchainTimeout)
	require.Equal(t, 2*time.Second, cfg.WaitTx.PollInterval)
	require.Equal(t, 9, cfg.WaitTx.PollMaxRetries)
	// untouched values keep their defaults
	require.Equal(t, "jct", cfg.FeeDenom)
	require.Equal(t, 5*time.Second, cfg.WaitTx.SubscriberSetupTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), "")
	require.Error(t, err)
}

func TestApplyDefaultsWithoutSigner(t *testing.T) {
	cfg := Config{GRPCEndpoint: "localhost:9090"}
	require.NoError(t, cfg.ApplyDefaults())
	require.Empty(t, cfg.Address)
	require.Equal(t, "localhost:5001", cfg.IPFSAPI)
	require.Equal(t, 5*time.Minute, cfg.StorageTimeout)

	cfg.GasPrice = "-1"
	require.ErrorContains(t, cfg.ApplyDefaults(), "negative")
}
