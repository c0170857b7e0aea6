// Package main starts the UUID generator page service and handles termination.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	uuidgencmd "github.com/louisbranch/uuidgen/internal/cmd/uuidgen"
	"github.com/louisbranch/uuidgen/internal/platform/config"
)

func main() {
	cfg, err := uuidgencmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[UUIDGEN] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := uuidgencmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
