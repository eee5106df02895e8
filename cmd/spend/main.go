package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spend",
		Short: "💸 Personal expense tracker",
		Long: `spend: a small expense tracker for the terminal.

Record what you spend, see where it goes by category, and keep it all in a
local SQLite database. Run without a subcommand to open the interactive UI.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              runUI,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/spend/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "database path (default: $XDG_DATA_HOME/spend/spend.db)")
	rootCmd.PersistentFlags().String("currency", "", "ISO 4217 currency code amounts are shown in")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyDatabasePath, rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag(config.KeyCurrency, rootCmd.PersistentFlags().Lookup("currency"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(uiCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(themeCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, common.UserMessage(err))
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}

	settings, err := config.FromViper(v)
	if err != nil {
		return err
	}

	if err := setupLogging(cmd, settings); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

// setupLogging sends logs to stderr, or to the log file for the full-screen
// UI where stderr output would corrupt the display.
func setupLogging(cmd *cobra.Command, s config.Settings) error {
	if !isUICommand(cmd) || s.LogFile == "" {
		return common.SetupLogger(s.LogLevel, s.LogFormat)
	}

	if err := os.MkdirAll(filepath.Dir(s.LogFile), 0o750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	// Left open for the life of the process.
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	return common.SetupLoggerTo(f, s.LogLevel, s.LogFormat)
}

func isUICommand(cmd *cobra.Command) bool {
	return cmd.Name() == "ui" || !cmd.HasParent()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spend %s\n", version)
		},
	}
}
