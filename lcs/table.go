// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"fmt"

	"cloudeng.io/errors"
)

// Table represents a completed dynamic programming table for a pair of
// sequences. Cell [i][j] contains the length of the LCS of the first i
// characters of the row sequence and the first j characters of the
// column sequence. Row 0 and column 0 represent the empty prefixes.
type Table struct {
	rows, cols int
	cells      []int
}

func newTable(m, n int) *Table {
	return &Table{
		rows:  m + 1,
		cols:  n + 1,
		cells: make([]int, (m+1)*(n+1)),
	}
}

func (t *Table) index(i, j int) int {
	return i*t.cols + j
}

// Rows returns the number of rows in the table, ie. len(rowSequence)+1.
func (t *Table) Rows() int {
	return t.rows
}

// Cols returns the number of columns in the table, ie. len(colSequence)+1.
func (t *Table) Cols() int {
	return t.cols
}

// At returns the value of cell [i][j].
func (t *Table) At(i, j int) int {
	return t.cells[t.index(i, j)]
}

// Row returns a copy of the i'th row.
func (t *Table) Row(i int) []int {
	r := make([]int, t.cols)
	copy(r, t.cells[t.index(i, 0):t.index(i, t.cols)])
	return r
}

// Length returns the value of the final cell, ie. the length of the
// longest common subsequence of the two complete sequences.
func (t *Table) Length() int {
	return t.cells[len(t.cells)-1]
}

// Equal returns true if both tables have the same dimensions and contents.
func (t *Table) Equal(o *Table) bool {
	_, _, ok := t.firstDifference(o)
	return ok
}

// firstDifference returns the row major first cell at which the two
// tables differ and false, or true if they are identical.
func (t *Table) firstDifference(o *Table) (int, int, bool) {
	if t.rows != o.rows || t.cols != o.cols {
		return -1, -1, false
	}
	for idx, v := range t.cells {
		if o.cells[idx] != v {
			return idx / t.cols, idx % t.cols, false
		}
	}
	return 0, 0, true
}

// Validate checks that the table satisfies the LCS recurrence for the
// supplied sequences: the empty prefix row and column are zero, matching
// characters extend the diagonal by one, all other cells carry the maximum
// of their upper and left neighbours and values never decrease along a row
// or a column. All violations are returned.
func (t *Table) Validate(r, c []rune) error {
	if t.rows != len(r)+1 || t.cols != len(c)+1 {
		return fmt.Errorf("table is %vx%v, expected %vx%v: %w",
			t.rows, t.cols, len(r)+1, len(c)+1, ErrInvalidTable)
	}
	errs := &errors.M{}
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			got := t.At(i, j)
			var want int
			switch {
			case i == 0 || j == 0:
				want = 0
			case r[i-1] == c[j-1]:
				want = t.At(i-1, j-1) + 1
			default:
				want = max(t.At(i-1, j), t.At(i, j-1))
			}
			if got != want {
				errs.Append(fmt.Errorf("cell [%v][%v]: got %v, want %v: %w", i, j, got, want, ErrInvalidTable))
			}
			if i > 0 && got < t.At(i-1, j) {
				errs.Append(fmt.Errorf("cell [%v][%v]: %v decreases from %v in the previous row: %w", i, j, got, t.At(i-1, j), ErrInvalidTable))
			}
			if j > 0 && got < t.At(i, j-1) {
				errs.Append(fmt.Errorf("cell [%v][%v]: %v decreases from %v in the previous column: %w", i, j, got, t.At(i, j-1), ErrInvalidTable))
			}
		}
	}
	return errs.Err()
}
