// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the set of configuration parameters for Queue. The zero value is
// a valid configuration.
type Config struct {
	// Name identifies the queue in log records.
	Name string `env:"WAITQUEUE_NAME" envDefault:"waitqueue"`

	// Deadline armed by Shift and Pop. Zero means they wait until the
	// passed context is done. Must not be negative.
	DefaultTimeout time.Duration `env:"WAITQUEUE_DEFAULT_TIMEOUT" envDefault:"0s"`
}

func (c *Config) validate() error {
	if c.DefaultTimeout < 0 {
		return fmt.Errorf("%w: negative DefaultTimeout %v", ErrInvalidConfig, c.DefaultTimeout)
	}
	return nil
}

// ConfigFromEnv loads a Config from the process environment. Variables found
// in the optional dotenv files are used for keys the process environment does
// not set. The process environment itself is never modified.
func ConfigFromEnv(files ...string) (*Config, error) {
	environ := env.ToMap(os.Environ())
	if len(files) != 0 {
		fileEnv, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		for k, v := range fileEnv {
			if _, ok := environ[k]; !ok {
				environ[k] = v
			}
		}
	}

	conf := &Config{}
	if err := env.ParseWithOptions(conf, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Option configures a Queue.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for listener lifecycle records. Records are
// emitted at debug level. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
