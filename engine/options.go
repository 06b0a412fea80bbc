// SPDX-License-Identifier: MIT
// Package engine: functional configuration for the orchestrator.

package engine

import "github.com/katalvlaran/shockcov/higham"

// options is the internal orchestrator configuration.
type options struct {
	projector []higham.Option
}

// Option mutates the engine configuration at call time.
type Option func(*options)

// gatherOptions applies defaults first, then caller Options in order.
// The zero value is complete: projector defaults live in the higham
// package itself (single source of truth).
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithProjector forwards tuning options (iteration budget, eigenvalue
// floor, eigensolver backend) to the nearest-correlation projection stage.
//
//	engine.ComputeShock(req, engine.WithProjector(
//	    higham.WithEigensolver(higham.NewGonumSolver()),
//	))
func WithProjector(opts ...higham.Option) Option {
	return func(o *options) { o.projector = append(o.projector, opts...) }
}
