package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.DBPath != "securelups.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "securelups.db")
	}
	if cfg.AdminPassword != "" {
		t.Fatalf("AdminPassword = %q, want empty", cfg.AdminPassword)
	}
	if cfg.SessionKey != "" {
		t.Fatalf("SessionKey = %q, want empty", cfg.SessionKey)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SECURELUPS_WEB_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("SECURELUPS_WEB_DB_PATH", "/tmp/env.db")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want flag override", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Fatalf("DBPath = %q, want env value", cfg.DBPath)
	}
}

func TestParseConfigEnvValues(t *testing.T) {
	t.Setenv("SECURELUPS_WEB_ADMIN_PASSWORD", "secreto")
	t.Setenv("SECURELUPS_WEB_SESSION_KEY", "clave")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.AdminPassword != "secreto" {
		t.Fatalf("AdminPassword = %q, want env value", cfg.AdminPassword)
	}
	if cfg.SessionKey != "clave" {
		t.Fatalf("SessionKey = %q, want env value", cfg.SessionKey)
	}
}

func TestSessionKeyBytes(t *testing.T) {
	key, err := sessionKeyBytes(Config{SessionKey: "clave"})
	if err != nil {
		t.Fatalf("sessionKeyBytes() error = %v", err)
	}
	if string(key) != "clave" {
		t.Fatalf("key = %q, want configured value", key)
	}

	key, err = sessionKeyBytes(Config{})
	if err != nil {
		t.Fatalf("sessionKeyBytes() error = %v", err)
	}
	if key != nil {
		t.Fatal("no password and no key should yield no key")
	}

	key, err = sessionKeyBytes(Config{AdminPassword: "secreto"})
	if err != nil {
		t.Fatalf("sessionKeyBytes() error = %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("generated key length = %d, want 32", len(key))
	}
}
