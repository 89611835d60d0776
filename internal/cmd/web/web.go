// Package web wires configuration and dependencies for the web command.
package web

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"

	"github.com/securelups/securelups.co/internal/assessment/storage/sqlite"
	"github.com/securelups/securelups.co/internal/platform/config"
	"github.com/securelups/securelups.co/internal/platform/otel"
	"github.com/securelups/securelups.co/internal/web/app"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"SECURELUPS_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath        string `env:"SECURELUPS_WEB_DB_PATH" envDefault:"securelups.db"`
	AdminPassword string `env:"SECURELUPS_WEB_ADMIN_PASSWORD"`
	SessionKey    string `env:"SECURELUPS_WEB_SESSION_KEY"`
}

// ParseConfig reads environment configuration and applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "securelups-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open result store: %w", err)
	}
	defer store.Close()

	sessionKey, err := sessionKeyBytes(cfg)
	if err != nil {
		return err
	}

	server, err := app.NewServer(app.Config{
		HTTPAddr:      cfg.HTTPAddr,
		Results:       store,
		AdminPassword: cfg.AdminPassword,
		SessionKey:    sessionKey,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// sessionKeyBytes resolves the admin session signing key. Without a
// configured key, a random per-process key is generated; admin sessions then
// reset on restart.
func sessionKeyBytes(cfg Config) ([]byte, error) {
	if cfg.SessionKey != "" {
		return []byte(cfg.SessionKey), nil
	}
	if cfg.AdminPassword == "" {
		return nil, nil
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	log.Printf("no session key configured, using a random per-process key")
	return key, nil
}
