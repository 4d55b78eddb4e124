// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// emptyPrefixLabel labels row 0 and column 0.
const emptyPrefixLabel = '-'

// Format prints the table with the column sequence, c, across the top
// and the row sequence, r, down the left hand side, eg:
//
//	     -  G  A  C
//	  -  0  0  0  0
//	  A  0  0  1  1
//	  G  0  1  1  1
func (t *Table) Format(out io.Writer, r, c []rune) {
	width := len(strconv.Itoa(t.Length())) + 2
	line := &strings.Builder{}
	cell := func(v any, verb string) {
		fmt.Fprintf(line, "%*"+verb, width, v)
	}
	label := func(seq []rune, i int) rune {
		if i == 0 || i > len(seq) {
			return emptyPrefixLabel
		}
		return seq[i-1]
	}
	cell("", "s")
	for j := 0; j < t.cols; j++ {
		cell(label(c, j), "c")
	}
	line.WriteByte('\n')
	for i := 0; i < t.rows; i++ {
		cell(label(r, i), "c")
		for j := 0; j < t.cols; j++ {
			cell(t.At(i, j), "d")
		}
		line.WriteByte('\n')
	}
	_, _ = io.WriteString(out, line.String())
}
