package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cosmos/cosmos-sdk/codec"
	humanize "github.com/dustin/go-humanize"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/janction/sdk-go/blockchain"
	"github.com/janction/sdk-go/client"
	clientconfig "github.com/janction/sdk-go/client/config"
	sdkcrypto "github.com/janction/sdk-go/internal/crypto"
	"github.com/janction/sdk-go/pkg/crypto"
	sdklog "github.com/janction/sdk-go/pkg/log"
	"github.com/janction/sdk-go/storage"
)

const (
	mnemonicEnv    = clientconfig.DefaultEnvPrefix + "MNEMONIC"
	defaultKeyName = "default"
)

type rootOptions struct {
	configPath     string
	mnemonicFile   string
	keyName        string
	keyringBackend string
	keyringDir     string
	maxMsgSize     string
	logLevel       string
	jsonLogs       bool

	cfg    client.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "videoupscaler",
		Short:         "Client for the janction videoUpscaler module",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file; "+clientconfig.DefaultEnvPrefix+"* variables override it")
	f.StringVar(&opts.mnemonicFile, "mnemonic-file", "", "file holding the signer mnemonic (or set "+mnemonicEnv+")")
	f.StringVar(&opts.keyName, "key-name", "", "key used to sign transactions (overrides key_name)")
	f.StringVar(&opts.keyringBackend, "keyring-backend", keyring.BackendOS, "keyring backend when no mnemonic is given: os|file|test")
	f.StringVar(&opts.keyringDir, "keyring-dir", "", "keyring directory (default $HOME/.janctiond)")
	f.StringVar(&opts.maxMsgSize, "max-msg-size", "", "gRPC message size limit, e.g. 64MB (overrides max_*_msg_size)")
	f.StringVar(&opts.logLevel, "log-level", "info", "debug|info|warn|error")
	f.BoolVar(&opts.jsonLogs, "log-json", false, "emit JSON logs")

	cmd.AddCommand(
		newQueryCmd(opts),
		newTxCmd(opts),
		newUploadCmd(opts),
		newDownloadCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := client.LoadConfig(o.configPath, clientconfig.DefaultEnvPrefix)
	if err != nil {
		return err
	}
	if o.keyName != "" {
		cfg.KeyName = o.keyName
	}
	if o.maxMsgSize != "" {
		size, err := humanize.ParseBytes(o.maxMsgSize)
		if err != nil {
			return fmt.Errorf("invalid --max-msg-size: %w", err)
		}
		cfg.MaxRecvMsgSize = int(size)
		cfg.MaxSendMsgSize = int(size)
	}

	logger, err := sdklog.New(sdklog.Options{Level: o.logLevel, JSON: o.jsonLogs})
	if err != nil {
		return err
	}
	cfg.Logger = logger

	o.cfg = cfg
	o.logger = logger
	return nil
}

// readConfig is the loaded configuration with defaults applied, without
// requiring a signer.
func (o *rootOptions) readConfig() (client.Config, error) {
	cfg := o.cfg
	if err := cfg.ApplyDefaults(); err != nil {
		return client.Config{}, err
	}
	return cfg, nil
}

func (o *rootOptions) blockchainClient(ctx context.Context) (*blockchain.Client, error) {
	cfg, err := o.readConfig()
	if err != nil {
		return nil, err
	}
	bcCfg, err := client.BlockchainConfig(cfg)
	if err != nil {
		return nil, err
	}
	return blockchain.New(ctx, bcCfg, nil, "")
}

func (o *rootOptions) storageClient() (*storage.Client, error) {
	cfg, err := o.readConfig()
	if err != nil {
		return nil, err
	}
	return storage.New(client.StorageConfig(cfg), cfg.Logger.Named("storage"))
}

// signingClient opens the keyring and derives the signer address when the
// configuration does not carry one.
func (o *rootOptions) signingClient(ctx context.Context) (*client.Client, error) {
	cfg := o.cfg
	if cfg.KeyName == "" {
		cfg.KeyName = defaultKeyName
	}
	if cfg.AccountHRP == "" {
		cfg.AccountHRP = crypto.DefaultAccountHRP
	}

	kr, err := o.keyring(cfg.KeyName, cfg.AccountHRP)
	if err != nil {
		return nil, err
	}
	if cfg.Address == "" {
		addr, err := crypto.AddressFromKey(kr, cfg.KeyName, cfg.AccountHRP)
		if err != nil {
			return nil, fmt.Errorf("derive signer address: %w", err)
		}
		cfg.Address = addr
	}
	return client.New(ctx, cfg, kr)
}

func (o *rootOptions) keyring(keyName, hrp string) (keyring.Keyring, error) {
	if o.mnemonicFile != "" {
		kr, _, _, err := crypto.LoadKeyringFromMnemonic(keyName, o.mnemonicFile, hrp)
		return kr, err
	}
	if mnemonic := os.Getenv(mnemonicEnv); mnemonic != "" {
		reg, err := sdkcrypto.NewInterfaceRegistry(hrp)
		if err != nil {
			return nil, err
		}
		kr := keyring.NewInMemory(codec.NewProtoCodec(reg))
		if _, _, err := crypto.ImportKeyFromMnemonic(kr, keyName, mnemonic, hrp); err != nil {
			return nil, fmt.Errorf("import %s: %w", mnemonicEnv, err)
		}
		return kr, nil
	}
	return crypto.NewKeyring(crypto.KeyringParams{
		Backend: o.keyringBackend,
		Dir:     o.keyringDir,
	})
}
