package blockchain

import (
	"context"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"google.golang.org/grpc"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
	"github.com/janction/sdk-go/blockchain/base"
)

// Config for blockchain client
type Config = base.Config

// Client provides access to blockchain operations
type Client struct {
	*base.Client

	// Module-specific clients
	VideoUpscaler *VideoUpscalerClient
}

// New creates a new blockchain client
func New(ctx context.Context, cfg Config, kr keyring.Keyring, keyName string) (*Client, error) {
	baseClient, err := base.New(ctx, cfg, kr, keyName)
	if err != nil {
		return nil, err
	}
	return newClient(baseClient), nil
}

// NewWithBase wraps an already configured base client.
func NewWithBase(b *base.Client) *Client {
	return newClient(b)
}

func newClient(b *base.Client) *Client {
	return &Client{
		Client:        b,
		VideoUpscaler: newVideoUpscalerClient(b, b.GRPCConn()),
	}
}

func newVideoUpscalerClient(b *base.Client, conn grpc.ClientConnInterface) *VideoUpscalerClient {
	return &VideoUpscalerClient{
		base:   b,
		query:  videoupscalerv1.NewQueryClient(conn),
		logger: b.Logger().Named("videoupscaler"),
	}
}
