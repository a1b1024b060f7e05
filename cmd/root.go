package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabtidy/tabtidy/internal/applescript"
	"github.com/tabtidy/tabtidy/internal/config"
	"github.com/tabtidy/tabtidy/internal/log"
	"github.com/tabtidy/tabtidy/internal/safari"
	"github.com/tabtidy/tabtidy/internal/tidy"
)

var AppVersion = "Development"

var errUsage = errors.New("usage error")

// Swapped out in tests.
var (
	newRunner     = func() applescript.Runner { return applescript.NewOSAScript() }
	safariRunning = safari.IsRunning
)

// cfg is the configuration of the running command, built in setup.
var cfg *config.Config

var rootCmd = newRootCmd()

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "tabtidy",
		Short:             "tabtidy prints and tidies the URLs open in Safari",
		Long:              "tabtidy reads URLs from Safari tabs, Reading List and iCloud Tabs, strips tracking parameters and other junk from them, and closes tabs by pattern.",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runRoot,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "Config file path")
	pf.StringP("log-level", "l", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Also write logs to this file (--log-file=PATH); a bare --log-file uses the default location")
	pf.Lookup("log-file").NoOptDefVal = log.AutoLogFile
	pf.String("safari-app", "", "Name of the Safari application to script")

	root.Flags().BoolP("version", "v", false, "Show version")
	root.Flags().BoolP("generate-config", "g", false, "Generate template config file")

	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("log-level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log-file", pf.Lookup("log-file"))
	_ = viper.BindPFlag("safari-app", pf.Lookup("safari-app"))

	viper.SetEnvPrefix("TABTIDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	root.AddCommand(
		newURLCmd(),
		newURLsAllCmd(),
		newCloseTabsCmd(),
		newReadingListCmd(),
		newICloudTabsCmd(),
		newTidyCmd(),
		newResolveCmd(),
		newPatternsCmd(),
	)
	return root
}

func initConfig() {
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.MergeInConfig(); err != nil {
			slog.Error("Failed to read config file", slog.Any("error", err))
			os.Exit(1)
		}
	}
	config.SetDefaults(viper.GetViper())
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.BuildConfigFromViper()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	cfg = c

	log.SetLogConf(cfg.LogLevel, cfg.LogFile)
	log.LogHeader(AppVersion, cfg)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	showVer, _ := cmd.Flags().GetBool("version")
	if showVer {
		fmt.Fprintf(cmd.OutOrStdout(), "tabtidy version %s\n", AppVersion)
		return nil
	}

	genConfig, _ := cmd.Flags().GetBool("generate-config")
	if genConfig {
		if _, err := config.GenerateTemplateConfig("config.yaml"); err != nil {
			return fmt.Errorf("failed to generate template config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Template config file 'config.yaml' generated successfully.")
		return nil
	}

	return cmd.Help()
}

// runningSafari returns a client for the scripted Safari, or
// safari.ErrNotRunning when there is no Safari process to talk to.
func runningSafari(cmd *cobra.Command) (*safari.Client, error) {
	running, err := safariRunning(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !running {
		return nil, safari.ErrNotRunning
	}
	return newSafariClient(), nil
}

func newSafariClient() *safari.Client {
	return safari.New(newRunner(), tidy.New(cfg), cfg.SafariApp, cfg.Home)
}

func printLines(cmd *cobra.Command, lines []string) {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
