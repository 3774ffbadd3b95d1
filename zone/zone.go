// Package zone resolves the ordered zone list that labels both matrix axes.
//
// A Set is either read from an authority file or derived from the triples of
// the input. Its length is the matrix dimension and the position of a zone in
// the Set is its rank on both axes.
package zone

import "slices"

// Set is an ascending list of zone ids.
//
// Sets derived from triples are strictly ascending. Sets read from an
// authority file are sorted but keep duplicate ids.
type Set []int32

// Len returns the number of zones, which is the matrix dimension.
func (s Set) Len() int {
	return len(s)
}

// IsStrictlyAscending reports whether s is sorted without duplicates.
func (s Set) IsStrictlyAscending() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}

	return true
}

// Duplicates returns every id that occurs more than once in s, once each and
// in order of first repetition.
func (s Set) Duplicates() []int32 {
	seen := make(map[int32]int, len(s))
	var dups []int32
	for _, id := range s {
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}

	return dups
}

// Index builds the id to rank mapping of s in one forward pass.
// When s contains duplicates, the last occurrence of an id wins.
func (s Set) Index() Index {
	idx := make(Index, len(s))
	for rank, id := range s {
		idx[id] = rank
	}

	return idx
}

// Index maps a zone id to its rank in a Set. It is read-only once built.
type Index map[int32]int

// Rank returns the rank of id and whether id is part of the Set.
func (x Index) Rank(id int32) (int, bool) {
	rank, ok := x[id]
	return rank, ok
}

// sortedUnique sorts ids in place and removes duplicates.
func sortedUnique(ids []int32) []int32 {
	slices.Sort(ids)
	return slices.Compact(ids)
}
