// Package config loads process settings from LAUNCHDASH_* environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag read by ParseEnv.
const EnvPrefix = "LAUNCHDASH_"

// ParseEnv fills target from prefixed environment variables, falling back to
// envDefault tags for unset or empty variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
