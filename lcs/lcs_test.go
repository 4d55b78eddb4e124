// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/lcsengine/lcs"
)

func ExampleSolveStrings() {
	res, err := lcs.SolveStrings(context.Background(), "AGCAT", "GAC", lcs.BottomUp)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Length)
	for _, s := range res.Solutions.Sorted() {
		fmt.Println(s)
	}
	// Output:
	// 2
	// AC
	// GA
	// GC
}

func ExampleCollectOne() {
	a, b := []rune("XMJYAUZ"), []rune("MZJAWXU")
	t := lcs.BuildBottomUp(a, b)
	fmt.Println(lcs.CollectOne(t, a, b))
	// Output:
	// MJAU
}

func isSubsequence(s, seq []rune) bool {
	i := 0
	for _, r := range seq {
		if i < len(s) && s[i] == r {
			i++
		}
	}
	return i == len(s)
}

var strategies = []lcs.Strategy{lcs.BottomUp, lcs.TopDown}

func validateResult(t *testing.T, i int, res *lcs.Result, a, b []rune) {
	t.Helper()
	if got, want := res.Table.Rows(), len(a)+1; got != want {
		t.Errorf("%v: %v: rows: got %v, want %v", i, res.Strategy, got, want)
	}
	if got, want := res.Table.Cols(), len(b)+1; got != want {
		t.Errorf("%v: %v: cols: got %v, want %v", i, res.Strategy, got, want)
	}
	if err := res.Table.Validate(a, b); err != nil {
		t.Errorf("%v: %v: %v", i, res.Strategy, err)
	}
	if got, want := res.Length, res.Table.Length(); got != want {
		t.Errorf("%v: %v: got %v, want %v", i, res.Strategy, got, want)
	}
	if got, want := res.Length, lcs.Length(a, b); got != want {
		t.Errorf("%v: %v: got %v, want %v", i, res.Strategy, got, want)
	}
	if res.Solutions.Len() == 0 {
		t.Errorf("%v: %v: no solutions", i, res.Strategy)
	}
	for s := range res.Solutions {
		rs := []rune(s)
		if got, want := len(rs), res.Length; got != want {
			t.Errorf("%v: %v: %q: got length %v, want %v", i, res.Strategy, s, got, want)
		}
		if !isSubsequence(rs, a) || !isSubsequence(rs, b) {
			t.Errorf("%v: %v: %q is not a subsequence of both %q and %q", i, res.Strategy, s, string(a), string(b))
		}
	}
	if one := res.One(); !res.Solutions.Contains(one) {
		t.Errorf("%v: %v: %q is not one of %v", i, res.Strategy, one, res.Solutions.Sorted())
	}
}

func TestLCS(t *testing.T) {
	ctx := context.Background()
	l := func(s ...string) []string {
		if len(s) == 0 {
			return []string{""}
		}
		return s
	}
	for i, tc := range []struct {
		a, b   string
		length int
		all    []string
	}{
		// Example from myer's 1986 paper.
		{"ABCABBA", "CBABAC", 4, l("BABA", "CABA", "CBBA")},

		// Wikipedia dynamic programming example.
		{"AGCAT", "GAC", 2, l("AC", "GA", "GC")},
		{"XMJYAUZ", "MZJAWXU", 4, l("MJAU")},

		// Longer examples.
		{"ABCADEFGH", "ABCIJKFGH", 6, l("ABCFGH")},
		{"ABCDEF1234", "PQRST2UV4", 2, l("24")},
		{"SABCDE", "SC", 2, l("SC")},
		{"SABCDE", "SSC", 2, l("SC")},

		// Repeated characters along the diagonal must not branch.
		{"AAAA", "AAAA", 4, l("AAAA")},
		{"AAAA", "AA", 2, l("AA")},

		// Nothing in common.
		{"ABC", "DEF", 0, l()},
		{"ABCDEFGH", "HGFEDCBA", 1, l("A", "B", "C", "D", "E", "F", "G", "H")},

		// More exhaustive cases.
		{"", "", 0, l()},
		{"", "ABC", 0, l()},
		{"ABC", "", 0, l()},
		{"A", "A", 1, l("A")},
		{"AB", "AB", 2, l("AB")},
		{"AB", "ABC", 2, l("AB")},
		{"ABC", "AB", 2, l("AB")},
		{"AC", "AXC", 2, l("AC")},
		{"ABC", "ABXY", 2, l("AB")},
		{"AB", "BA", 1, l("A", "B")},

		// Multi-byte runes.
		{"日本語", "日本de語", 3, l("日本語")},
	} {
		a, b := []rune(tc.a), []rune(tc.b)
		var tables []*lcs.Table
		for _, strategy := range strategies {
			res, err := lcs.Solve(ctx, a, b, strategy)
			if err != nil {
				t.Errorf("%v: %v: %v", i, strategy, err)
				continue
			}
			if got, want := res.Length, tc.length; got != want {
				t.Errorf("%v: %v: got %v, want %v", i, strategy, got, want)
			}
			if got, want := res.Solutions.Sorted(), tc.all; !reflect.DeepEqual(got, want) {
				t.Errorf("%v: %v: got %q, want %q", i, strategy, got, want)
			}
			validateResult(t, i, res, a, b)
			tables = append(tables, res.Table)
		}
		if len(tables) == 2 && !tables[0].Equal(tables[1]) {
			t.Errorf("%v: bottom-up and top-down tables differ", i)
		}
		if err := lcs.Agree(a, b); err != nil {
			t.Errorf("%v: %v", i, err)
		}
	}
}

func randomSequence(rng *rand.Rand, alphabet string, n int) []rune {
	ab := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = ab[rng.IntN(len(ab))]
	}
	return out
}

func TestStrategiesAgree(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(13, 17))
	for i := 0; i < 200; i++ {
		alphabet := []string{"AB", "ACGT", "ABCDEFGHIJ"}[i%3]
		a := randomSequence(rng, alphabet, rng.IntN(12))
		b := randomSequence(rng, alphabet, rng.IntN(12))
		if err := lcs.Agree(a, b); err != nil {
			t.Fatalf("%v: %q %q: %v", i, string(a), string(b), err)
		}
		bu, err := lcs.SolveBottomUp(ctx, a, b)
		if err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		td, err := lcs.SolveTopDown(ctx, a, b)
		if err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if !bu.Table.Equal(td.Table) {
			t.Errorf("%v: %q %q: tables differ", i, string(a), string(b))
		}
		if !bu.Solutions.Equal(td.Solutions) {
			t.Errorf("%v: %q %q: got %v, want %v", i, string(a), string(b), td.Solutions.Sorted(), bu.Solutions.Sorted())
		}
		validateResult(t, i, bu, a, b)
		validateResult(t, i, td, a, b)

		// Idempotence.
		again, err := lcs.SolveTopDown(ctx, a, b)
		if err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if !again.Table.Equal(td.Table) || !again.Solutions.Equal(td.Solutions) {
			t.Errorf("%v: %q %q: repeated solve differs", i, string(a), string(b))
		}

		// Symmetry.
		if got, want := lcs.Length(b, a), lcs.Length(a, b); got != want {
			t.Errorf("%v: %q %q: got %v, want %v", i, string(a), string(b), got, want)
		}
	}
}

func TestMaxSolutions(t *testing.T) {
	ctx := context.Background()
	a, b := []rune("ABCDEFGH"), []rune("HGFEDCBA")
	for _, strategy := range strategies {
		_, err := lcs.Solve(ctx, a, b, strategy, lcs.WithMaxSolutions(3))
		if !errors.Is(err, lcs.ErrTooManySolutions) {
			t.Errorf("%v: unexpected or missing error: %v", strategy, err)
		}
		res, err := lcs.Solve(ctx, a, b, strategy, lcs.WithMaxSolutions(8))
		if err != nil {
			t.Fatalf("%v: %v", strategy, err)
		}
		if got, want := res.Solutions.Len(), 8; got != want {
			t.Errorf("%v: got %v, want %v", strategy, got, want)
		}
		res, err = lcs.Solve(ctx, a, b, strategy, lcs.WithMaxSolutions(0))
		if err != nil {
			t.Fatalf("%v: %v", strategy, err)
		}
		if got, want := res.Solutions.Len(), 8; got != want {
			t.Errorf("%v: got %v, want %v", strategy, got, want)
		}
	}
}

func TestTopDownDepth(t *testing.T) {
	ctx := context.Background()
	a, b := []rune("ABC"), []rune("ABC")
	if _, err := lcs.BuildTopDown(a, b, lcs.WithMaxTopDownDepth(4)); !errors.Is(err, lcs.ErrInputTooLong) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := lcs.SolveTopDown(ctx, a, b, lcs.WithMaxTopDownDepth(4)); !errors.Is(err, lcs.ErrInputTooLong) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := lcs.SolveBottomUp(ctx, a, b, lcs.WithMaxTopDownDepth(4)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := lcs.SolveTopDown(ctx, a, b, lcs.WithMaxTopDownDepth(6)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Long inputs are handled by the default limit.
	long := []rune(strings.Repeat("ACGT", 1000))
	res, err := lcs.SolveTopDown(ctx, long, long)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Length, len(long); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a, b := []rune("AGCAT"), []rune("GAC")
	if _, err := lcs.CollectAll(ctx, lcs.BuildBottomUp(a, b), a, b); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestValidateDimensions(t *testing.T) {
	tbl := lcs.BuildBottomUp([]rune("AB"), []rune("CD"))
	if err := tbl.Validate([]rune("ABC"), []rune("CD")); !errors.Is(err, lcs.ErrInvalidTable) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := tbl.Validate([]rune("AB"), []rune("CD")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStrategy(t *testing.T) {
	for _, s := range strategies {
		p, err := lcs.ParseStrategy(s.String())
		if err != nil {
			t.Errorf("%v: %v", s, err)
		}
		if got, want := p, s; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, err := lcs.ParseStrategy("sideways"); !errors.Is(err, lcs.ErrInvalidStrategy) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := lcs.Solve(context.Background(), nil, nil, lcs.Strategy(7)); !errors.Is(err, lcs.ErrInvalidStrategy) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := lcs.Strategy(7).String(), "Strategy(7)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
