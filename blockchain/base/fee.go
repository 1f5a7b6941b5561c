package base

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultGasMultiplier pads simulated gas.
	DefaultGasMultiplier = 1.3
	// FallbackGasLimit is used when simulation fails.
	FallbackGasLimit uint64 = 200000
)

// Fee selects how a transaction pays for gas. The zero value is AutoFee.
type Fee struct {
	explicit   bool
	multiplier float64
	gasLimit   uint64
	amount     sdk.Coins
}

// AutoFee simulates the transaction, pads the gas by DefaultGasMultiplier
// and prices it at the configured gas price.
func AutoFee() Fee {
	return Fee{multiplier: DefaultGasMultiplier}
}

// AutoFeeWithMultiplier is AutoFee with a custom gas multiplier.
func AutoFeeWithMultiplier(m float64) Fee {
	return Fee{multiplier: m}
}

// ExplicitFee pays amount with a fixed gas limit and skips simulation.
func ExplicitFee(gasLimit uint64, amount sdk.Coins) Fee {
	return Fee{explicit: true, gasLimit: gasLimit, amount: amount}
}

// IsAuto reports whether gas is estimated by simulation.
func (f Fee) IsAuto() bool { return !f.explicit }

// GasLimit is the fixed gas limit of an explicit fee.
func (f Fee) GasLimit() uint64 { return f.gasLimit }

// Amount is the fee amount of an explicit fee.
func (f Fee) Amount() sdk.Coins { return f.amount }

// Multiplier is the simulation padding of an auto fee.
func (f Fee) Multiplier() float64 {
	if f.multiplier <= 0 {
		return DefaultGasMultiplier
	}
	return f.multiplier
}

// gasFromSimulation applies the multiplier to the simulated gas, falling back
// to FallbackGasLimit when simulation gave nothing.
func (f Fee) gasFromSimulation(gasUsed uint64, simErr error) uint64 {
	if simErr != nil || gasUsed == 0 {
		return FallbackGasLimit
	}
	gas := uint64(float64(gasUsed) * f.Multiplier())
	if gas < gasUsed {
		gas = gasUsed
	}
	return gas
}

// feeForGas prices gas at gasPrice in denom, rounding up.
func feeForGas(gas uint64, gasPrice sdkmath.LegacyDec, denom string) sdk.Coins {
	if gasPrice.IsNil() || gasPrice.IsZero() {
		return sdk.NewCoins()
	}
	amount := gasPrice.MulInt(sdkmath.NewIntFromUint64(gas)).Ceil().TruncateInt()
	return sdk.NewCoins(sdk.NewCoin(denom, amount))
}
