package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	"github.com/janction/sdk-go/blockchain"
	"github.com/janction/sdk-go/storage"
	"github.com/janction/sdk-go/types"
)

// Client provides unified access to the janction chain and IPFS storage
type Client struct {
	// High-level modules
	Blockchain *blockchain.Client
	Storage    *storage.Client

	// Configuration
	config  *Config
	keyring keyring.Keyring
	logger  *zap.Logger
}

// New creates a new unified videoUpscaler client
func New(ctx context.Context, cfg Config, kr keyring.Keyring, opts ...Option) (*Client, error) {
	// Apply options
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
	}
	bcCfg, err := BlockchainConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
	}

	// Initialize blockchain client
	blockchainClient, err := blockchain.New(ctx, bcCfg, kr, cfg.KeyName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blockchain client: %w", err)
	}

	// Initialize IPFS storage client
	storageClient, storageErr := storage.New(StorageConfig(cfg), cfg.Logger.Named("storage"))
	if storageErr != nil {
		if closeErr := blockchainClient.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w; also failed to close blockchain client: %v", storageErr, closeErr)
		}
		return nil, fmt.Errorf("failed to initialize storage client: %w", storageErr)
	}

	return newClient(cfg, kr, blockchainClient, storageClient), nil
}

// BlockchainConfig derives the chain client settings from cfg. Defaults
// must already be applied.
func BlockchainConfig(cfg Config) (blockchain.Config, error) {
	gasPrice, err := cfg.GasPriceDec()
	if err != nil {
		return blockchain.Config{}, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return blockchain.Config{
		ChainID:           cfg.ChainID,
		GRPCAddr:          cfg.GRPCEndpoint,
		RPCEndpoint:       cfg.RPCEndpoint,
		AccountHRP:        cfg.AccountHRP,
		FeeDenom:          cfg.FeeDenom,
		GasPrice:          gasPrice,
		Timeout:           cfg.BlockchainTimeout,
		MaxRecvMsgSize:    cfg.MaxRecvMsgSize,
		MaxSendMsgSize:    cfg.MaxSendMsgSize,
		InsecureGRPC:      cfg.InsecureGRPC,
		WaitTx:            cfg.WaitTx,
		Logger:            logger.Named("blockchain"),
		MetricsRegisterer: cfg.MetricsRegisterer,
	}, nil
}

// StorageConfig derives the IPFS client settings from cfg.
func StorageConfig(cfg Config) storage.Config {
	return storage.Config{
		APIAddr: cfg.IPFSAPI,
		Timeout: cfg.StorageTimeout,
	}
}

func newClient(cfg Config, kr keyring.Keyring, bc *blockchain.Client, st *storage.Client) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		Blockchain: bc,
		Storage:    st,
		config:     &cfg,
		keyring:    kr,
		logger:     logger,
	}
}

// CreateTaskFromPath uploads the video at path to IPFS and creates a task
// for frames [startFrame, endFrame] of it, signed by the configured address.
func (c *Client) CreateTaskFromPath(
	ctx context.Context,
	path string,
	startFrame int64,
	endFrame int64,
	threads int64,
	reward sdk.Coin,
	fee blockchain.Fee,
) (*types.TaskResult, error) {
	cid, err := c.Storage.Upload(ctx, path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("video uploaded", zap.String("path", path), zap.String("cid", cid))

	return c.Blockchain.VideoUpscaler.CreateVideoUpscalerTask(ctx,
		c.config.Address, cid, startFrame, endFrame, threads, reward, fee)
}

// Close releases all resources
func (c *Client) Close() error {
	var errs []error

	if c.Blockchain != nil {
		if err := c.Blockchain.Close(); err != nil {
			errs = append(errs, fmt.Errorf("blockchain close: %w", err))
		}
	}

	if c.Storage != nil {
		if err := c.Storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage close: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Config returns the client configuration
func (c *Client) Config() Config {
	return *c.config
}

// Keyring returns the keyring transactions are signed with
func (c *Client) Keyring() keyring.Keyring {
	return c.keyring
}
