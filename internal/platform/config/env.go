// Package config loads process configuration from the environment.
//
// Struct tags name variables without the service prefix; ParseEnv prepends
// EnvPrefix, so `env:"HTTP_ADDR"` reads UUIDGEN_HTTP_ADDR.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every tagged variable name.
const EnvPrefix = "UUIDGEN_"

// ParseEnv loads prefixed environment variables into target.
func ParseEnv(target any) error {
	return parse(target, nil)
}

// parse reads from environ when non-nil, otherwise from the process environment.
func parse(target any, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
