package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/gateway"
	"backoffice/internal/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	v       = viper.New()
	rootCmd = &cobra.Command{
		Use:   "backofficectl",
		Short: "Operator CLI for the payment back-office",
		Long: `backofficectl reads the upstream payment API directly and prints the same
lists, statistics and health checks the back-office API serves.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("api-base-url", gateway.DefaultBaseURL, "upstream API base URL")
	rootCmd.PersistentFlags().Duration("timeout", gateway.DefaultTimeout, "upstream request timeout")
	rootCmd.PersistentFlags().String("timezone", "Asia/Seoul", "reporting time zone for day buckets")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("API_BASE_URL", rootCmd.PersistentFlags().Lookup("api-base-url"))
	_ = v.BindPFlag("API_TIMEOUT", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = v.BindPFlag("REPORT_TIMEZONE", rootCmd.PersistentFlags().Lookup("timezone"))
	_ = v.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(transactionsCmd())
	rootCmd.AddCommand(merchantsCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(codesCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is what every command needs to reach the upstream API.
type app struct {
	gw  *gateway.Client
	loc *time.Location
	log zerolog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.LoadWith(v)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(logger.ParseLevel(cfg.LogLevel))

	gw, err := gateway.NewClient(gateway.Options{
		BaseURL:   cfg.APIBaseURL,
		HealthURL: cfg.HealthURL,
		Timeout:   cfg.APITimeout,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}
	return &app{gw: gw, loc: cfg.ReportLocation, log: log}, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "backofficectl "+version)
		},
	}
}

// context carries the CLI logger so services log through it.
func (a *app) context(cmd *cobra.Command) context.Context {
	return logger.WithContext(cmd.Context(), a.log)
}
