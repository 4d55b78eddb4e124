// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"fmt"

	"cloudeng.io/algo/container/bitmap"
)

// BuildBottomUp fills the table for r and c iteratively, in row-major
// order, starting from the empty prefixes. Each cell depends only on
// cells that precede it in that order and hence a single pass suffices.
func BuildBottomUp(r, c []rune) *Table {
	t := newTable(len(r), len(c))
	for i := 1; i < t.rows; i++ {
		for j := 1; j < t.cols; j++ {
			idx := t.index(i, j)
			if r[i-1] == c[j-1] {
				t.cells[idx] = t.cells[t.index(i-1, j-1)] + 1
				continue
			}
			t.cells[idx] = max(t.cells[t.index(i-1, j)], t.cells[idx-1])
		}
	}
	return t
}

type topDown struct {
	r, c   []rune
	t      *Table
	// solved records which cells have been computed, zero is a
	// legitimate LCS length and cannot be used for that purpose.
	solved bitmap.T
}

func (td *topDown) solve(i, j int) int {
	idx := td.t.index(i, j)
	if td.solved.IsSetUnsafe(idx) {
		return td.t.cells[idx]
	}
	var v int
	switch {
	case i == 0 || j == 0:
	case td.r[i-1] == td.c[j-1]:
		v = td.solve(i-1, j-1) + 1
	default:
		v = max(td.solve(i-1, j), td.solve(i, j-1))
	}
	td.t.cells[idx] = v
	td.solved.SetUnsafe(idx)
	return v
}

// BuildTopDown fills the table for r and c using memoized recursion
// starting from the final cell. Cells that are not reachable from the final
// cell are subsequently filled in, row by row, so that the resulting table is identical
// to that returned by BuildBottomUp. The recursion depth is bounded
// by len(r)+len(c) and ErrInputTooLong is returned if that exceeds the
// limit set by WithMaxTopDownDepth.
func BuildTopDown(r, c []rune, opts ...Option) (*Table, error) {
	o := newOptions(opts)
	if depth := len(r) + len(c); o.maxTopDownDepth > 0 && depth > o.maxTopDownDepth {
		return nil, fmt.Errorf("%v + %v characters exceeds the limit of %v: %w",
			len(r), len(c), o.maxTopDownDepth, ErrInputTooLong)
	}
	td := &topDown{r: r, c: c, t: newTable(len(r), len(c))}
	td.solved = bitmap.New(len(td.t.cells))
	td.solve(len(r), len(c))
	// Every predecessor of a cell has been solved by the time the
	// row-major sweep reaches it, so these calls do not recurse.
	for i := 0; i < td.t.rows; i++ {
		for j := 0; j < td.t.cols; j++ {
			td.solve(i, j)
		}
	}
	return td.t, nil
}
