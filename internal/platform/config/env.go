// Package config parses env-tagged configuration structs. Every binary in
// this module reads its settings through ParseEnv before applying flag
// overrides.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from environment variables declared through `env`
// struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse environment config: %w", err)
	}
	return nil
}
