// Package uuidgen parses page service flags and launches the server.
package uuidgen

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/uuidgen/internal/platform/cmd"
	server "github.com/louisbranch/uuidgen/internal/services/uuidgen"
)

// Config holds the uuidgen command configuration.
type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	OTelShutdownTimeout time.Duration `env:"OTEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.OTelShutdownTimeout, "otel-shutdown-timeout", cfg.OTelShutdownTimeout, "Telemetry flush timeout on exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the page server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	options := entrypoint.RunOptions{ShutdownTimeout: cfg.OTelShutdownTimeout}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceUUIDGen, options, func(ctx context.Context) error {
		srv, err := server.NewServer(ctx, server.Config{HTTPAddr: cfg.HTTPAddr})
		if err != nil {
			return fmt.Errorf("init uuidgen server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve uuidgen: %w", err)
		}
		return nil
	})
}
