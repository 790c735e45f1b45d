// Package layout: types and configuration options for the layout algorithms.
package layout

import "errors"

// ErrBadIterations indicates WithIterations was given a non-positive value.
var ErrBadIterations = errors.New("layout: Iterations must be positive")

// Point is a 2-D coordinate for one vertex.
type Point struct {
	X, Y float64
}

// Options configures the Spring layout.
//
// Iterations – number of simulation steps (default 50).
// Seed       – seed for the initial random placement (default 1); runs with
// the same graph and seed produce identical coordinates.
type Options struct {
	Iterations int
	Seed       int64
}

// Option represents a functional option for configuring Spring.
type Option func(*Options)

// WithIterations sets the number of simulation steps.
// Must pass a positive value; zero or negative cause ErrBadIterations.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.Iterations = n
	}
}

// WithSeed sets the seed for the initial random placement.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns the Spring defaults: 50 iterations, seed 1.
func DefaultOptions() Options {
	return Options{
		Iterations: 50,
		Seed:       1,
	}
}
