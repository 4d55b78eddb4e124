// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"context"
	"fmt"

	"cloudeng.io/algo/container/bitmap"
)

type collector struct {
	ctx   context.Context
	t     *Table
	r, c  []rune
	limit int
	// sets collected for each cell, these are never modified once stored.
	memo  map[int]Set
	// refs counts the cells that have yet to read each memoized set, an
	// entry is released once its count drops to zero.
	refs  []int32
}

func newCollector(ctx context.Context, t *Table, r, c []rune, o options) *collector {
	cl := &collector{
		ctx:   ctx,
		t:     t,
		r:     r,
		c:     c,
		limit: o.maxSolutions,
		memo:  map[int]Set{},
		refs:  make([]int32, len(t.cells)),
	}
	cl.countRefs(len(r), len(c))
	return cl
}

// predecessors returns the cells that all(i, j) reads.
func (cl *collector) predecessors(i, j int, buf [][2]int) [][2]int {
	buf = buf[:0]
	if i == 0 || j == 0 {
		return buf
	}
	up, left := cl.t.At(i-1, j), cl.t.At(i, j-1)
	switch {
	case cl.r[i-1] == cl.c[j-1]:
		buf = append(buf, [2]int{i - 1, j - 1})
	case up > left:
		buf = append(buf, [2]int{i - 1, j})
	case left > up:
		buf = append(buf, [2]int{i, j - 1})
	default:
		buf = append(buf, [2]int{i - 1, j}, [2]int{i, j - 1})
	}
	return buf
}

// countRefs walks every cell reachable from [i][j] and records how many
// distinct cells read each of them.
func (cl *collector) countRefs(i, j int) {
	visited := bitmap.New(len(cl.t.cells))
	visited.Set(cl.t.index(i, j))
	stack := [][2]int{{i, j}}
	var buf [][2]int
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		buf = cl.predecessors(cell[0], cell[1], buf)
		for _, p := range buf {
			idx := cl.t.index(p[0], p[1])
			cl.refs[idx]++
			if !visited.IsSetUnsafe(idx) {
				visited.Set(idx)
				stack = append(stack, p)
			}
		}
	}
}

// read returns the set for [i][j] on behalf of one of the cells that
// depend on it and drops the memoized copy after the last such read.
func (cl *collector) read(i, j int) (Set, error) {
	s, err := cl.all(i, j)
	if err != nil {
		return nil, err
	}
	idx := cl.t.index(i, j)
	if cl.refs[idx]--; cl.refs[idx] <= 0 {
		delete(cl.memo, idx)
	}
	return s, nil
}

// all returns the set of all longest common subsequences for the
// prefixes r[:i] and c[:j].
func (cl *collector) all(i, j int) (Set, error) {
	if i == 0 || j == 0 {
		return NewSet(""), nil
	}
	idx := cl.t.index(i, j)
	if s, ok := cl.memo[idx]; ok {
		return s, nil
	}
	if err := cl.ctx.Err(); err != nil {
		return nil, err
	}
	var (
		s   Set
		err error
	)
	up, left := cl.t.At(i-1, j), cl.t.At(i, j-1)
	switch {
	case cl.r[i-1] == cl.c[j-1]:
		s, err = cl.extend(i, j)
	case up > left:
		s, err = cl.read(i-1, j)
	case left > up:
		s, err = cl.read(i, j-1)
	default:
		s, err = cl.union(i, j)
	}
	if err != nil {
		return nil, err
	}
	if cl.limit > 0 && len(s) > cl.limit {
		return nil, fmt.Errorf("cell [%v][%v]: more than %v solutions: %w", i, j, cl.limit, ErrTooManySolutions)
	}
	cl.memo[idx] = s
	return s, nil
}

// extend appends the matched character at [i][j] to every subsequence
// of the diagonal predecessor.
func (cl *collector) extend(i, j int) (Set, error) {
	prev, err := cl.read(i-1, j-1)
	if err != nil {
		return nil, err
	}
	ch := string(cl.r[i-1])
	s := make(Set, len(prev))
	for p := range prev {
		s[p+ch] = struct{}{}
	}
	return s, nil
}

// union merges the subsequences of both neighbours of a tie cell.
func (cl *collector) union(i, j int) (Set, error) {
	up, err := cl.read(i-1, j)
	if err != nil {
		return nil, err
	}
	left, err := cl.read(i, j-1)
	if err != nil {
		return nil, err
	}
	s := make(Set, len(up)+len(left))
	s.Union(up)
	s.Union(left)
	return s, nil
}

// CollectAll returns all of the distinct longest common subsequences of
// r and c by backtracking through t from its final cell, branching at every
// cell where the upper and left neighbours are equal. The returned set is
// never empty, it contains the empty string if there is no common character.
// The number of solutions is bounded as per WithMaxSolutions.
func CollectAll(ctx context.Context, t *Table, r, c []rune, opts ...Option) (Set, error) {
	cl := newCollector(ctx, t, r, c, newOptions(opts))
	return cl.all(len(r), len(c))
}

// CollectOne returns a single longest common subsequence, preferring the
// upper neighbour whenever the upper and left neighbours are equal. It runs
// in O(len(r)+len(c)) time.
func CollectOne(t *Table, r, c []rune) string {
	out := make([]rune, t.Length())
	k := len(out)
	i, j := len(r), len(c)
	for i > 0 && j > 0 {
		switch {
		case r[i-1] == c[j-1]:
			k--
			out[k] = r[i-1]
			i--
			j--
		case t.At(i-1, j) >= t.At(i, j-1):
			i--
		default:
			j--
		}
	}
	return string(out)
}
