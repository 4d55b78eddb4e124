// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import "cloudeng.io/errors"

var (
	// ErrTooManySolutions is returned when the number of distinct
	// subsequences being collected exceeds the configured limit.
	ErrTooManySolutions = errors.New("too many longest common subsequences")

	// ErrInputTooLong is returned when the inputs are too long for the
	// recursion depth allowed for the top-down strategy.
	ErrInputTooLong = errors.New("input too long for top-down construction")

	// ErrStrategyMismatch indicates that the bottom-up and top-down
	// strategies produced different tables and represents an internal
	// programming error.
	ErrStrategyMismatch = errors.New("bottom-up and top-down tables differ")

	// ErrInvalidTable is returned by Table.Validate.
	ErrInvalidTable = errors.New("invalid lcs table")

	// ErrInvalidStrategy is returned for unrecognised strategies.
	ErrInvalidStrategy = errors.New("invalid strategy")
)
