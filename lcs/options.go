// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

const (
	// DefaultMaxSolutions is the default limit on the number of distinct
	// subsequences that will be collected.
	DefaultMaxSolutions = 1 << 16

	// DefaultMaxTopDownDepth is the default limit on len(a)+len(b) for
	// the top-down strategy, which is also its maximum recursion depth.
	DefaultMaxTopDownDepth = 1 << 16
)

type options struct {
	maxSolutions    int
	maxTopDownDepth int
}

// Option represents an option accepted by the functions in this package.
type Option func(*options)

// WithMaxSolutions sets the maximum number of distinct subsequences that
// may be collected at any cell of the table before ErrTooManySolutions is
// returned. A value <= 0 removes the limit. Sets for intermediate cells are
// released as soon as every cell that depends on them has been collected,
// but the sets along the active frontier are retained together, so memory
// use may exceed that implied by the limit alone.
func WithMaxSolutions(n int) Option {
	return func(o *options) {
		o.maxSolutions = n
	}
}

// WithMaxTopDownDepth sets the maximum combined length of the inputs that
// the top-down strategy will accept. A value <= 0 removes the limit.
func WithMaxTopDownDepth(n int) Option {
	return func(o *options) {
		o.maxTopDownDepth = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		maxSolutions:    DefaultMaxSolutions,
		maxTopDownDepth: DefaultMaxTopDownDepth,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
