package crypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
)

// Account is the on-chain position a signature commits to.
type Account struct {
	Number   uint64
	Sequence uint64
}

// TxSigner signs janction transactions with a single keyring identity.
type TxSigner struct {
	Keyring keyring.Keyring
	KeyName string
	ChainID string
	// AccountHRP is the bech32 prefix used by Address.
	AccountHRP string
}

func (s TxSigner) validate() error {
	switch {
	case s.Keyring == nil:
		return errors.New("signer keyring is required")
	case s.KeyName == "":
		return errors.New("signer key name is required")
	case s.ChainID == "":
		return errors.New("signer chain id is required")
	}
	return nil
}

// Address returns the bech32 account address of the signing key.
func (s TxSigner) Address() (string, error) {
	return AddressFromKey(s.Keyring, s.KeyName, s.AccountHRP)
}

// Sign replaces any signatures on builder, such as a simulation
// placeholder, with a signature from the signer's key in the tx config's
// default sign mode.
func (s TxSigner) Sign(ctx context.Context, txCfg client.TxConfig, builder client.TxBuilder, acct Account) error {
	if err := s.validate(); err != nil {
		return err
	}
	factory := tx.Factory{}.
		WithChainID(s.ChainID).
		WithTxConfig(txCfg).
		WithAccountNumber(acct.Number).
		WithSequence(acct.Sequence).
		WithKeybase(s.Keyring)

	if err := tx.Sign(ctx, factory, s.KeyName, builder, true); err != nil {
		return fmt.Errorf("sign with %q: %w", s.KeyName, err)
	}
	return nil
}

// SignAndEncode signs builder and returns the wire bytes ready for
// broadcast.
func (s TxSigner) SignAndEncode(ctx context.Context, txCfg client.TxConfig, builder client.TxBuilder, acct Account) ([]byte, error) {
	if err := s.Sign(ctx, txCfg, builder, acct); err != nil {
		return nil, err
	}
	bz, err := txCfg.TxEncoder()(builder.GetTx())
	if err != nil {
		return nil, fmt.Errorf("encode signed tx: %w", err)
	}
	return bz, nil
}
