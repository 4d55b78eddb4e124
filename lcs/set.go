// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"maps"
	"slices"
)

// Set represents a set of distinct subsequences.
type Set map[string]struct{}

// NewSet returns a Set containing the supplied strings.
func NewSet(s ...string) Set {
	set := make(Set, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// Add adds s to the set.
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// Contains returns true if v is in the set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of strings in the set.
func (s Set) Len() int {
	return len(s)
}

// Union adds all of the members of o to s.
func (s Set) Union(o Set) {
	for v := range o {
		s[v] = struct{}{}
	}
}

// Equal returns true if both sets have the same members.
func (s Set) Equal(o Set) bool {
	return maps.Equal(s, o)
}

// Sorted returns the members of the set in lexicographic order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
