// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/logging/ctxlog"
)

// Strategy represents the method used to build the dynamic programming
// table.
type Strategy int

// Supported strategies.
const (
	BottomUp Strategy = iota
	TopDown
)

var strategyNames = map[Strategy]string{
	BottomUp: "bottom-up",
	TopDown:  "top-down",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the Strategy named by s, one of bottom-up
// or top-down.
func ParseStrategy(s string) (Strategy, error) {
	for k, v := range strategyNames {
		if v == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidStrategy)
}

// Result represents the outcome of solving for a pair of sequences.
type Result struct {
	// Length of the longest common subsequence(s).
	Length int
	// Solutions contains every distinct longest common subsequence.
	Solutions Set
	// Table is the completed table, it must not be modified.
	Table *Table
	// Strategy used to build the table.
	Strategy Strategy
	// A and B are the row and column sequences respectively.
	A, B []rune
}

// One returns a single longest common subsequence as per CollectOne.
func (r *Result) One() string {
	return CollectOne(r.Table, r.A, r.B)
}

// EditScript returns the shortest edit script that transforms A into B
// as per NewEditScript.
func (r *Result) EditScript() EditScript {
	return NewEditScript(r.Table, r.A, r.B)
}

// Build returns the table for r and c using the specified strategy.
func Build(r, c []rune, strategy Strategy, opts ...Option) (*Table, error) {
	switch strategy {
	case BottomUp:
		return BuildBottomUp(r, c), nil
	case TopDown:
		return BuildTopDown(r, c, opts...)
	}
	return nil, fmt.Errorf("%v: %w", strategy, ErrInvalidStrategy)
}

// Solve builds the table for r and c using the specified strategy and then
// collects all of the longest common subsequences from it.
func Solve(ctx context.Context, r, c []rune, strategy Strategy, opts ...Option) (*Result, error) {
	logger := ctxlog.Logger(ctx).With("strategy", strategy.String(), "rows", len(r)+1, "cols", len(c)+1)
	start := time.Now()
	t, err := Build(r, c, strategy, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("table built", "length", t.Length(), "duration", time.Since(start))
	start = time.Now()
	solutions, err := CollectAll(ctx, t, r, c, opts...)
	if err != nil {
		logger.Debug("collection failed", "error", err)
		return nil, err
	}
	logger.Debug("solutions collected", "solutions", len(solutions), "duration", time.Since(start))
	return &Result{
		Length:    t.Length(),
		Solutions: solutions,
		Table:     t,
		Strategy:  strategy,
		A:         r,
		B:         c,
	}, nil
}

// SolveBottomUp is equivalent to Solve(ctx, r, c, BottomUp, opts...).
func SolveBottomUp(ctx context.Context, r, c []rune, opts ...Option) (*Result, error) {
	return Solve(ctx, r, c, BottomUp, opts...)
}

// SolveTopDown is equivalent to Solve(ctx, r, c, TopDown, opts...).
func SolveTopDown(ctx context.Context, r, c []rune, opts ...Option) (*Result, error) {
	return Solve(ctx, r, c, TopDown, opts...)
}

// SolveStrings is like Solve but for strings, which are interpreted as
// sequences of runes.
func SolveStrings(ctx context.Context, r, c string, strategy Strategy, opts ...Option) (*Result, error) {
	return Solve(ctx, []rune(r), []rune(c), strategy, opts...)
}

// Length returns the length of the longest common subsequence of r and c.
// Only two rows of the table are retained and hence it requires
// O(len(c)) space.
func Length(r, c []rune) int {
	prev, cur := make([]int, len(c)+1), make([]int, len(c)+1)
	for i := 1; i <= len(r); i++ {
		for j := 1; j <= len(c); j++ {
			if r[i-1] == c[j-1] {
				cur[j] = prev[j-1] + 1
				continue
			}
			cur[j] = max(prev[j], cur[j-1])
		}
		prev, cur = cur, prev
	}
	return prev[len(c)]
}

// Agree builds the table for r and c using both strategies and returns
// ErrStrategyMismatch, annotated with the first differing cell, if they
// are not identical.
func Agree(r, c []rune, opts ...Option) error {
	bu := BuildBottomUp(r, c)
	td, err := BuildTopDown(r, c, opts...)
	if err != nil {
		return err
	}
	i, j, ok := bu.firstDifference(td)
	if ok {
		return nil
	}
	if i < 0 {
		return fmt.Errorf("dimensions %vx%v and %vx%v: %w", bu.rows, bu.cols, td.rows, td.cols, ErrStrategyMismatch)
	}
	return fmt.Errorf("cell [%v][%v]: bottom-up %v, top-down %v: %w", i, j, bu.At(i, j), td.At(i, j), ErrStrategyMismatch)
}
