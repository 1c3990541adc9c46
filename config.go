package swell

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// LoadOptions reads client options from SWELL_* environment variables.
func LoadOptions() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("parse config: %w", err)
	}
	return opts, nil
}

// FromEnv creates a Client from SWELL_* environment variables. It is a
// convenience for hosts that configure the SDK entirely through the
// environment; everything else should call New directly.
func FromEnv() (*Client, error) {
	opts, err := LoadOptions()
	if err != nil {
		return nil, err
	}
	return New(opts)
}
