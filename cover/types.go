// Package cover defines the Set type shared by the exact solver, the MIS
// derivation and the approximation heuristics.
package cover

import (
	"sort"
	"strconv"
	"strings"
)

// Set is a set of node indices, kept sorted ascending with no duplicates.
// It is used for both vertex covers and independent sets.
type Set []int

// NewSet returns a sorted, de-duplicated Set holding ids.
func NewSet(ids ...int) Set {
	s := make(Set, len(ids))
	copy(s, ids)
	sort.Ints(s)

	out := s[:0]
	for _, v := range s {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Contains reports whether id is a member. O(log |s|).
func (s Set) Contains(id int) bool {
	i := sort.SearchInts(s, id)
	return i < len(s) && s[i] == id
}

// Complement returns {0..n-1} \ s.
func (s Set) Complement(n int) Set {
	out := make(Set, 0, n)
	j := 0
	for v := 0; v < n; v++ {
		for j < len(s) && s[j] < v {
			j++
		}
		if j < len(s) && s[j] == v {
			continue
		}
		out = append(out, v)
	}

	return out
}

// String renders the set as "{a, b, c}".
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// fromFlags collects the indices i with in[i] == true, ascending.
func fromFlags(in []bool) Set {
	out := Set{}
	for i, ok := range in {
		if ok {
			out = append(out, i)
		}
	}

	return out
}
