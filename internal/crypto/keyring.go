package crypto

import (
	"fmt"

	"cosmossdk.io/x/tx/signing"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	"github.com/cosmos/gogoproto/proto"

	videoupscalerv1 "github.com/janction/sdk-go/api/videoupscaler/v1"
)

// DefaultAccountHRP is the bech32 prefix of janction accounts.
const DefaultAccountHRP = "janction"

// NewInterfaceRegistry returns a registry with crypto, tx and videoUpscaler
// interfaces whose signing context resolves Msg signers with the given
// account prefix.
func NewInterfaceRegistry(hrp string) (codectypes.InterfaceRegistry, error) {
	if hrp == "" {
		hrp = DefaultAccountHRP
	}
	if err := videoupscalerv1.RegisterFiles(); err != nil {
		return nil, fmt.Errorf("register videoUpscaler descriptors: %w", err)
	}

	reg, err := codectypes.NewInterfaceRegistryWithOptions(codectypes.InterfaceRegistryOptions{
		ProtoFiles: proto.HybridResolver,
		SigningOptions: signing.Options{
			AddressCodec:          addresscodec.NewBech32Codec(hrp),
			ValidatorAddressCodec: addresscodec.NewBech32Codec(hrp + "valoper"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create interface registry: %w", err)
	}
	std.RegisterInterfaces(reg)
	videoupscalerv1.RegisterInterfaces(reg)
	return reg, nil
}

// NewDefaultTxConfig constructs a client.TxConfig backed by a protobuf codec,
// registering videoUpscaler message interfaces as required for signing/encoding.
func NewDefaultTxConfig(hrp string) (client.TxConfig, error) {
	reg, err := NewInterfaceRegistry(hrp)
	if err != nil {
		return nil, err
	}
	cdc := codec.NewProtoCodec(reg)
	return authtx.NewTxConfig(cdc, authtx.DefaultSignModes), nil
}
