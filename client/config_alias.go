package client

import clientconfig "github.com/janction/sdk-go/client/config"

// Config re-exports the config.Config type.
type Config = clientconfig.Config

// WaitTxConfig re-exports the wait-tx config type.
type WaitTxConfig = clientconfig.WaitTxConfig

// DefaultConfig mirrors config.Default.
func DefaultConfig() Config {
	return clientconfig.Default()
}

// DefaultWaitTxConfig mirrors config.DefaultWaitTxConfig.
func DefaultWaitTxConfig() WaitTxConfig {
	return clientconfig.DefaultWaitTxConfig()
}

// ApplyWaitTxDefaults mirrors config.ApplyWaitTxDefaults.
func ApplyWaitTxDefaults(cfg *WaitTxConfig) {
	clientconfig.ApplyWaitTxDefaults(cfg)
}

// LoadConfig mirrors config.Load.
func LoadConfig(path, envPrefix string) (Config, error) {
	return clientconfig.Load(path, envPrefix)
}
