// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// EditOp represents an edit operation.
type EditOp int

// Values for EditOp.
const (
	Insert EditOp = iota
	Delete
	Identical
)

// Edit represents a single edit.
// For deletions, an edit specifies the index in the original (A) sequence
// to be deleted and the deleted value.
// For insertions, an edit specifies the new value and the index in the
// original (A) sequence that the new value is to be inserted after, as well
// as the index of the new value in the new (B) sequence.
// Identical edits identify the members of the LCS and their positions in
// both sequences.
type Edit struct {
	Op   EditOp
	A, B int
	Val  rune
}

// EditScript represents a series of Edits.
type EditScript []Edit

func floor0(x int) int {
	if x < 0 {
		return 0
	}
	return x
}

// NewEditScript returns the shortest edit script for transforming r into c
// using the completed table t. It follows the same path through the table as
// CollectOne and hence the Identical edits spell out CollectOne's result.
func NewEditScript(t *Table, r, c []rune) EditScript {
	var es EditScript
	i, j := len(r), len(c)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && r[i-1] == c[j-1]:
			es = append(es, Edit{Identical, i - 1, j - 1, r[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || t.At(i, j-1) > t.At(i-1, j)):
			es = append(es, Edit{Insert, floor0(i - 1), j - 1, c[j-1]})
			j--
		default:
			es = append(es, Edit{Delete, i - 1, floor0(j - 1), r[i-1]})
			i--
		}
	}
	slices.Reverse(es)
	return es
}

var opStr = map[EditOp]string{
	Insert:    "+",
	Delete:    "-",
	Identical: "=",
}

// String implements stringer.
func (es EditScript) String() string {
	out := strings.Builder{}
	for i, e := range es {
		out.WriteString(opStr[e.Op])
		switch e.Op {
		case Identical:
			fmt.Fprintf(&out, " %c@[%v == %v]", e.Val, e.A, e.B)
		case Insert:
			fmt.Fprintf(&out, " %c@[%v < %v]", e.Val, e.A, e.B)
		default:
			fmt.Fprintf(&out, " @[%v]", e.A)
		}
		if i < len(es)-1 {
			out.WriteString(", ")
		}
	}
	return out.String()
}

// Apply transforms the original sequence to the new one by applying the
// edit script.
func (es EditScript) Apply(a []rune) []rune {
	b := make([]rune, 0, len(es))
	for _, action := range es {
		switch action.Op {
		case Insert:
			b = append(b, action.Val)
		case Identical:
			b = append(b, a[action.A])
		}
	}
	return b
}

// Reverse returns a new edit script that is the inverse of the one supplied.
// That is, if the original script would transform A to B, then the result of
// this function will transform B to A.
func (es EditScript) Reverse() EditScript {
	rev := make(EditScript, len(es))
	for i, e := range es {
		switch e.Op {
		case Identical:
			rev[i] = Edit{Op: Identical, A: e.B, B: e.A, Val: e.Val}
		case Delete:
			rev[i] = Edit{Op: Insert, A: e.B, B: e.A, Val: e.Val}
		case Insert:
			rev[i] = Edit{Op: Delete, A: e.B, B: e.A, Val: e.Val}
		}
	}
	return rev
}

// FormatVertical prints a representation of the edit script with one
// item per line, eg:
//
//	+ G
//	  A
//	- G
//	  C
//	- A
//	- T
func (es EditScript) FormatVertical(out io.Writer) {
	for _, op := range es {
		switch op.Op {
		case Identical:
			fmt.Fprintf(out, "  %c\n", op.Val)
		case Delete:
			fmt.Fprintf(out, "- %c\n", op.Val)
		case Insert:
			fmt.Fprintf(out, "+ %c\n", op.Val)
		}
	}
}

// FormatHorizontal prints a representation of the edit script across
// three lines, with the top line showing the result of applying the
// edit, the middle line the operations applied and the bottom line
// any items deleted, eg. for AGCAT to GAC:
//
//	GA C
//	+|-|--
//	  G AT
func (es EditScript) FormatHorizontal(out io.Writer) {
	top, mid, bottom := &strings.Builder{}, &strings.Builder{}, &strings.Builder{}
	for _, op := range es {
		switch op.Op {
		case Identical:
			top.WriteRune(op.Val)
			mid.WriteByte('|')
			bottom.WriteByte(' ')
		case Delete:
			top.WriteByte(' ')
			mid.WriteByte('-')
			bottom.WriteRune(op.Val)
		case Insert:
			top.WriteRune(op.Val)
			mid.WriteByte('+')
			bottom.WriteByte(' ')
		}
	}
	fmt.Fprintf(out, "%s\n%s\n%s\n", top.String(), mid.String(), bottom.String())
}
