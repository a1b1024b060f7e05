package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newICloudTabsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "icloud-tabs",
		Short: "Print the URLs from iCloud Tabs",
		Long:  "Print the URLs from iCloud Tabs. The default is to list the URLs from every device; filter with --device.",
		Args:  cobra.NoArgs,
		RunE:  runICloudTabs,
	}
	c.Flags().Bool("list-devices", false, "List the devices known to iCloud Tabs")
	c.Flags().String("device", "", "Only print the URLs for this device")
	c.MarkFlagsMutuallyExclusive("list-devices", "device")
	return c
}

func runICloudTabs(cmd *cobra.Command, args []string) error {
	client := newSafariClient()

	listDevices, _ := cmd.Flags().GetBool("list-devices")
	if listDevices {
		devices, err := client.ICloudDevices()
		if err != nil {
			return err
		}
		printLines(cmd, devices)
		return nil
	}

	device, _ := cmd.Flags().GetString("device")
	tabs, err := client.ICloudTabs(device)
	if err != nil {
		return err
	}
	if device != "" {
		for _, dt := range tabs {
			printLines(cmd, dt.URLs)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for i, dt := range tabs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "## %s\n", dt.Device)
		printLines(cmd, dt.URLs)
	}
	return nil
}
