package main

import (
	"github.com/spf13/cobra"

	"github.com/janction/sdk-go/blockchain"
)

func newQueryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the videoUpscaler module",
	}
	cmd.AddCommand(
		newQueryTaskCmd(opts),
		newQueryLogsCmd(opts),
		newQueryWorkerCmd(opts),
		newQueryPendingCmd(opts),
	)
	return cmd
}

func newQueryTaskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "task <index>",
		Short: "Show a task with its threads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, err := opts.blockchainClient(cmd.Context())
			if err != nil {
				return err
			}
			defer bc.Close() //nolint:errcheck

			task, err := bc.VideoUpscaler.GetVideoUpscalerTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), task)
		},
	}
}

func newQueryLogsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logs <thread-id>",
		Short: "Show the worker logs of a thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, err := opts.blockchainClient(cmd.Context())
			if err != nil {
				return err
			}
			defer bc.Close() //nolint:errcheck

			logs, err := bc.VideoUpscaler.GetVideoUpscalerLogs(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), logs)
		},
	}
}

func newQueryWorkerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "worker <address>",
		Short: "Show a registered worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, err := opts.blockchainClient(cmd.Context())
			if err != nil {
				return err
			}
			defer bc.Close() //nolint:errcheck

			worker, err := bc.VideoUpscaler.GetWorker(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), worker)
		},
	}
}

func newQueryPendingCmd(opts *rootOptions) *cobra.Command {
	var (
		requester   string
		limit       int
		openThreads bool
	)
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List tasks that are not completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc, err := opts.blockchainClient(cmd.Context())
			if err != nil {
				return err
			}
			defer bc.Close() //nolint:errcheck

			var filters []blockchain.QueryOption
			if requester != "" {
				filters = append(filters, blockchain.WithRequester(requester))
			}
			if limit > 0 {
				filters = append(filters, blockchain.WithLimit(limit))
			}
			if openThreads {
				filters = append(filters, blockchain.WithOpenThreads())
			}

			tasks, err := bc.VideoUpscaler.GetPendingVideoUpscalerTasks(cmd.Context(), filters...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tasks)
		},
	}
	cmd.Flags().StringVar(&requester, "requester", "", "only tasks created by this address")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of tasks")
	cmd.Flags().BoolVar(&openThreads, "open-threads", false, "only tasks with at least one uncompleted thread")
	return cmd
}
