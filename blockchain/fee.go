package blockchain

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/janction/sdk-go/blockchain/base"
)

// Fee selects how a transaction pays for gas. The zero value is AutoFee.
type Fee = base.Fee

// AutoFee simulates the transaction and prices the padded gas at the
// configured gas price.
func AutoFee() Fee { return base.AutoFee() }

// AutoFeeWithMultiplier is AutoFee with a custom gas multiplier.
func AutoFeeWithMultiplier(m float64) Fee { return base.AutoFeeWithMultiplier(m) }

// ExplicitFee pays amount with a fixed gas limit.
func ExplicitFee(gasLimit uint64, amount sdk.Coins) Fee { return base.ExplicitFee(gasLimit, amount) }
