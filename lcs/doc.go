// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lcs provides a dynamic programming implementation of the longest
// common subsequence (LCS) problem that returns every distinct longest
// common subsequence rather than just one of them.
//
// The dynamic programming table may be built bottom-up (iteratively, in
// row-major order) or top-down (recursively with memoization); both
// strategies produce identical tables and hence identical results:
//
//	res, err := lcs.SolveStrings(ctx, "AGCAT", "GAC", lcs.BottomUp)
//	// res.Length == 2
//	// res.Solutions.Sorted() == []string{"AC", "GA", "GC"}
//
// Enumerating all solutions is exponential in the worst case (many tied
// cells, eg. long runs of a repeated character) and consequently the number
// of solutions collected is bounded, see WithMaxSolutions. CollectOne
// returns a single solution in O(m+n) time when only one is needed.
//
// The finished table is returned to the caller as part of the Result so
// that it may be displayed or validated; it is never shared across calls.
package lcs
