// Package config holds the shared configuration helpers for service entry
// points: env-tag struct parsing and the fatal-exit path for unusable flags.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills the target struct from environment variables declared via
// `env:` struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
