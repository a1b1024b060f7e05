package cmd

import "github.com/spf13/cobra"

func newReadingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reading-list",
		Short: "Print the URLs in Safari's Reading List",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := newSafariClient().ReadingList()
			if err != nil {
				return err
			}
			printLines(cmd, urls)
			return nil
		},
	}
}
