// Package config loads tsp solver settings from YAML.
//
// A document may set any subset of the fields; missing fields keep the values
// of Default. Unknown keys are rejected so typos surface early.
//
//	delta: rounded-sum     # per-edge | rounded-sum
//	max_swaps: 0           # 0 ⇒ run to a local optimum
//	matrix_limit: 2048     # precompute lengths for n ≤ limit; 0 ⇒ never
//	time_limit: 30s        # 0 ⇒ unlimited
//	log_level: info        # any logrus level
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/eutsp/tsp"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config mirrors tsp.Options in a serializable form.
type Config struct {
	Delta       string        `yaml:"delta" validate:"omitempty,oneof=per-edge rounded-sum"`
	MaxSwaps    int           `yaml:"max_swaps" validate:"gte=0"`
	MatrixLimit int           `yaml:"matrix_limit" validate:"gte=0"`
	TimeLimit   time.Duration `yaml:"time_limit" validate:"gte=0s"`
	LogLevel    string        `yaml:"log_level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
}

// Default returns the configuration equivalent to tsp.DefaultOptions.
func Default() Config {
	o := tsp.DefaultOptions()
	return Config{
		Delta:       o.Delta.String(),
		MaxSwaps:    o.MaxSwaps,
		MatrixLimit: o.MatrixLimit,
		TimeLimit:   o.TimeLimit,
		LogLevel:    logrus.InfoLevel.String(),
	}
}

// Load decodes a YAML document over Default and validates the result.
// An empty document yields Default.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// NewLogger returns a logrus logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if c.LogLevel != "" {
		var err error
		if level, err = logrus.ParseLevel(c.LogLevel); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	return logger, nil
}

// TSPOptions converts the configuration into solver options. A nil logger
// leaves the solver's discarding default in place.
func (c Config) TSPOptions(logger logrus.FieldLogger) ([]tsp.Option, error) {
	policy, err := tsp.ParseDeltaPolicy(c.Delta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	opts := []tsp.Option{
		tsp.WithDeltaPolicy(policy),
		tsp.WithMaxSwaps(c.MaxSwaps),
		tsp.WithDistanceMatrix(c.MatrixLimit),
		tsp.WithTimeLimit(c.TimeLimit),
	}
	if logger != nil {
		opts = append(opts, tsp.WithLogger(logger))
	}

	return opts, nil
}
