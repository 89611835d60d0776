// Package main starts the browser-facing web service.
//
// This process owns route wiring, the questionnaire flow, result storage and
// the operator dashboard.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	webcmd "github.com/securelups/securelups.co/internal/cmd/web"
)

func main() {
	// Missing .env is fine; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
