package client

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"

	"github.com/janction/sdk-go/pkg/crypto"
)

// Factory shares one configuration and keyring between clients that sign
// as different keys.
type Factory struct {
	baseCfg Config
	keyring keyring.Keyring
	opts    []Option
}

// NewFactory captures the shared configuration and keyring. Address and
// KeyName of cfg are ignored; WithSigner supplies them.
func NewFactory(cfg Config, kr keyring.Keyring, opts ...Option) (*Factory, error) {
	if kr == nil {
		return nil, fmt.Errorf("keyring is required")
	}
	return &Factory{
		baseCfg: cfg,
		keyring: kr,
		opts:    append([]Option{}, opts...),
	}, nil
}

// WithSigner returns a Client signing with keyName. An empty address is
// derived from the key; a non-empty one must match it. Extra options apply
// after the factory's own.
func (f *Factory) WithSigner(ctx context.Context, address, keyName string, extraOpts ...Option) (*Client, error) {
	if keyName == "" {
		return nil, fmt.Errorf("key name is required")
	}

	cfg := f.baseCfg
	opts := append(append([]Option{}, f.opts...), extraOpts...)
	for _, opt := range opts {
		opt(&cfg)
	}
	hrp := cfg.AccountHRP
	if hrp == "" {
		hrp = crypto.DefaultAccountHRP
	}

	derived, err := crypto.AddressFromKey(f.keyring, keyName, hrp)
	if err != nil {
		return nil, fmt.Errorf("signer %q: %w", keyName, err)
	}
	if address != "" && address != derived {
		return nil, fmt.Errorf("signer %q has address %s, not %s", keyName, derived, address)
	}

	cfg.Address = derived
	cfg.KeyName = keyName
	return New(ctx, cfg, f.keyring)
}
