package main

import (
	"github.com/spf13/cobra"

	"github.com/janction/sdk-go/storage"
)

func newUploadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: "Add a video file or frame directory to IPFS and print its CID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.storageClient()
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			cid, err := st.Upload(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"cid": cid, "path": args[0]})
		},
	}
}

func newDownloadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "download <cid> <dir>",
		Short: "Fetch a CID from IPFS into dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.ValidateCID(args[0]); err != nil {
				return err
			}
			st, err := opts.storageClient()
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			if err := st.Download(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"cid": args[0], "dir": args[1]})
		},
	}
}
