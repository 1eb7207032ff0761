package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"histcal/internal/config"
	appLog "histcal/internal/log"
	"histcal/internal/web"
)

var (
	serveConfigPath string
	serveListen     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the date API over HTTP",
	Long: `Serve /api/format, /api/duration and /api/timeline until interrupted.

Configuration is read from --config (created with defaults on first run) and
then overridden by HISTCAL_* environment variables and --listen.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", defaultConfigPath(), "Path to config file")
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "HTTP listen address (overrides config if set)")
	rootCmd.AddCommand(serveCmd)
}

func defaultConfigPath() string {
	if p := os.Getenv("HISTCAL_CONFIG"); p != "" {
		return p
	}
	return "./histcal.yaml"
}

func runServe(_ *cobra.Command, _ []string) error {
	conf, err := resolveServeConfig(serveConfigPath, serveListen)
	if err != nil {
		return err
	}
	if logLevel == "" {
		if l, err := appLog.ParseLevel(conf.LogLevel); err == nil {
			appLog.SetLevel(l)
		} else {
			appLog.Warn("ignoring unknown log level in config", "log_level", conf.LogLevel)
		}
	}

	appLog.Info("effective config",
		"listen", conf.Listen,
		"log_level", conf.LogLevel,
		"cache_ttl_seconds", conf.CacheTTLSeconds,
		"basic_auth", conf.BasicAuth != nil,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := web.NewServer(conf).Run(ctx); err != nil {
		appLog.Error("http server failed", err)
		return err
	}
	appLog.Info("histcal exiting")
	return nil
}

// resolveServeConfig loads the config file, then applies HISTCAL_*
// environment overrides, then the --listen flag.
func resolveServeConfig(path, listen string) (*config.Config, error) {
	conf, err := config.Load(path)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", path)
		return nil, err
	}
	if err := conf.ApplyEnv(); err != nil {
		return nil, usageError{err}
	}
	if listen != "" {
		conf.Listen = listen
	}
	return conf, nil
}
