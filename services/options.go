package services

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Option customises the challenge engines.
type Option func(*engineConfig)

type engineConfig struct {
	pick  func(n int) int
	newID func() string
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		pick:  rand.IntN,
		newID: uuid.NewString,
	}
}

// WithPicker replaces the uniform random index picker. pick(n) must return a value in [0,n).
func WithPicker(pick func(n int) int) Option {
	return func(c *engineConfig) { c.pick = pick }
}

// WithIDGenerator replaces the challenge id generator.
func WithIDGenerator(newID func() string) Option {
	return func(c *engineConfig) { c.newID = newID }
}

func applyOptions(opts []Option) engineConfig {
	cfg := defaultEngineConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
