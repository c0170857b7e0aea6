package uuidgen

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("UUIDGEN_HTTP_ADDR", "")

	fs := flag.NewFlagSet("uuidgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.OTelShutdownTimeout != 5*time.Second {
		t.Fatalf("OTelShutdownTimeout = %v, want %v", cfg.OTelShutdownTimeout, 5*time.Second)
	}
}

func TestParseConfigShutdownTimeout(t *testing.T) {
	t.Setenv("UUIDGEN_OTEL_SHUTDOWN_TIMEOUT", "2s")

	fs := flag.NewFlagSet("uuidgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OTelShutdownTimeout != 2*time.Second {
		t.Fatalf("OTelShutdownTimeout = %v, want %v", cfg.OTelShutdownTimeout, 2*time.Second)
	}

	fs = flag.NewFlagSet("uuidgen", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"-otel-shutdown-timeout", "250ms"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OTelShutdownTimeout != 250*time.Millisecond {
		t.Fatalf("OTelShutdownTimeout = %v, want %v", cfg.OTelShutdownTimeout, 250*time.Millisecond)
	}
}

func TestParseConfigRejectsBadShutdownTimeout(t *testing.T) {
	t.Setenv("UUIDGEN_OTEL_SHUTDOWN_TIMEOUT", "soon")

	fs := flag.NewFlagSet("uuidgen", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected duration parse error")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("UUIDGEN_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("uuidgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("UUIDGEN_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("uuidgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	t.Setenv("UUIDGEN_HTTP_ADDR", "")

	fs := flag.NewFlagSet("uuidgen", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	if _, err := ParseConfig(fs, []string{"-port", "1"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunRejectsEmptyAddress(t *testing.T) {
	t.Setenv("UUIDGEN_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{HTTPAddr: ""})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "init uuidgen server") {
		t.Fatalf("err = %v, want init prefix", err)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	t.Setenv("UUIDGEN_OTEL_ENDPOINT", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0", OTelShutdownTimeout: time.Second}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
