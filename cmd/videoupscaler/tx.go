package main

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/janction/sdk-go/blockchain"
)

type feeFlags struct {
	gas           uint64
	fees          string
	gasAdjustment float64
}

func (f *feeFlags) register(fs *pflag.FlagSet) {
	fs.Uint64Var(&f.gas, "gas", 0, "fixed gas limit; requires --fees")
	fs.StringVar(&f.fees, "fees", "", "fixed fee, e.g. 5000jct; requires --gas")
	fs.Float64Var(&f.gasAdjustment, "gas-adjustment", 0, "multiplier applied to simulated gas")
}

func (f *feeFlags) fee() (blockchain.Fee, error) {
	if f.gas == 0 && f.fees == "" {
		if f.gasAdjustment < 0 {
			return blockchain.Fee{}, fmt.Errorf("--gas-adjustment must not be negative")
		}
		if f.gasAdjustment > 0 {
			return blockchain.AutoFeeWithMultiplier(f.gasAdjustment), nil
		}
		return blockchain.AutoFee(), nil
	}
	if f.gas == 0 || f.fees == "" {
		return blockchain.Fee{}, fmt.Errorf("--gas and --fees must be set together")
	}
	if f.gasAdjustment != 0 {
		return blockchain.Fee{}, fmt.Errorf("--gas-adjustment cannot be combined with --gas")
	}
	amount, err := sdk.ParseCoinsNormalized(f.fees)
	if err != nil {
		return blockchain.Fee{}, fmt.Errorf("invalid --fees: %w", err)
	}
	return blockchain.ExplicitFee(f.gas, amount), nil
}

func newTxCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Sign and broadcast videoUpscaler transactions",
	}
	cmd.AddCommand(
		newCreateTaskCmd(opts),
		newAddWorkerCmd(opts),
		newSubscribeCmd(opts),
	)
	return cmd
}

func newCreateTaskCmd(opts *rootOptions) *cobra.Command {
	var ff feeFlags
	cmd := &cobra.Command{
		Use:   "create-task <cid> <start-frame> <end-frame> <threads> <reward>",
		Short: "Create an upscaling task for a video already on IPFS",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			var frames [3]int64
			for i, name := range []string{"start-frame", "end-frame", "threads"} {
				n, err := strconv.ParseInt(args[i+1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid %s %q: %w", name, args[i+1], err)
				}
				frames[i] = n
			}
			reward, err := sdk.ParseCoinNormalized(args[4])
			if err != nil {
				return fmt.Errorf("invalid reward: %w", err)
			}
			fee, err := ff.fee()
			if err != nil {
				return err
			}

			c, err := opts.signingClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close() //nolint:errcheck

			res, err := c.Blockchain.VideoUpscaler.CreateVideoUpscalerTask(cmd.Context(),
				c.Config().Address, args[0], frames[0], frames[1], frames[2], reward, fee)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	ff.register(cmd.Flags())
	return cmd
}

func newAddWorkerCmd(opts *rootOptions) *cobra.Command {
	var ff feeFlags
	cmd := &cobra.Command{
		Use:   "add-worker <public-ip> <ipfs-id> <stake>",
		Short: "Register the signer as a worker",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stake, err := sdk.ParseCoinNormalized(args[2])
			if err != nil {
				return fmt.Errorf("invalid stake: %w", err)
			}
			fee, err := ff.fee()
			if err != nil {
				return err
			}

			c, err := opts.signingClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close() //nolint:errcheck

			res, err := c.Blockchain.VideoUpscaler.AddWorker(cmd.Context(),
				c.Config().Address, args[0], args[1], stake, fee)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	ff.register(cmd.Flags())
	return cmd
}

func newSubscribeCmd(opts *rootOptions) *cobra.Command {
	var ff feeFlags
	cmd := &cobra.Command{
		Use:   "subscribe <task-id> <thread-id>",
		Short: "Subscribe the signer to a task thread",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fee, err := ff.fee()
			if err != nil {
				return err
			}

			c, err := opts.signingClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close() //nolint:errcheck

			res, err := c.Blockchain.VideoUpscaler.SubscribeWorkerToTask(cmd.Context(),
				c.Config().Address, args[0], args[1], fee)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	ff.register(cmd.Flags())
	return cmd
}
