package cmd

import "github.com/spf13/cobra"

func newURLsAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "urls-all",
		Short: "Print the URL of every open Safari tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := runningSafari(cmd)
			if err != nil {
				return err
			}
			urls, err := client.AllURLs(cmd.Context())
			if err != nil {
				return err
			}
			printLines(cmd, urls)
			return nil
		},
	}
}
