package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timetally/internal/app/server"
	"timetally/internal/platform/config"
	"timetally/internal/platform/logging"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "timetally",
		Short: "Working hours API server",
		Long:  "Serves working-hour calculations between two dates, excluding weekends and Swedish holidays.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			v := viper.New()
			// Flag names use dashes, config keys use underscores.
			for key, flag := range map[string]string{
				"addr":                  "addr",
				"metrics":               "metrics",
				"metrics_addr":          "metrics-addr",
				"log_method":            "log-method",
				"log_file":              "log-file",
				"verbose":               "verbose",
				"rate_limit_per_minute": "rate-limit-per-minute",
				"auth_secret":           "auth-secret",
				"environment":           "environment",
			} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return server.Run(cfg, logger)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	flags.StringP("addr", "a", ":8080", "listen address for the API server")
	flags.BoolP("metrics", "m", false, "enable the metrics server")
	flags.String("metrics-addr", ":9090", "listen address for the metrics server")
	flags.StringP("log-method", "s", config.LogMethodStdout, "log sink: stdout or file")
	flags.String("log-file", "", "log file path when log-method is file")
	flags.IntP("verbose", "v", 3, "log verbosity, 1 (error) to 5 (debug)")
	flags.Int("rate-limit-per-minute", 120, "per-client request budget per minute")
	flags.String("auth-secret", "", "HS256 secret; when set, API requests need a bearer token")
	flags.String("environment", "development", "deployment environment name")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
