// SPDX-License-Identifier: MIT
// Package: qimen/chart
//
// options.go — functional options for Generate and GenerateAll.
//
// Contract:
//   • Option constructors panic on programmer errors such as nil loggers.
//   • Worker counts usually come from user configuration, so GenerateAll
//     rejects them with ErrBadWorkers instead of panicking.
//   • Generate itself never panics.

package chart

import (
	"runtime"

	"go.uber.org/zap"
)

// Option customizes chart generation.
type Option func(*config)

type config struct {
	log     *zap.Logger
	workers int
}

func newConfig(opts ...Option) config {
	c := config{
		log:     zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithLogger routes pipeline debug records to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("chart: WithLogger(nil)")
	}

	return func(c *config) {
		c.log = l
	}
}

// WithWorkers bounds the goroutines GenerateAll runs at once.
// The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
