// Package literal extracts required prefix literals from compiled textwalker
// patterns.
//
// A required prefix is a byte string such that every match of the pattern
// must begin with one of the extracted literals. The walker uses them to
// build a prefilter that skips input positions where no match can possibly
// start, instead of attempting the full matcher at every position.
package literal

import (
	"bytes"
	"sort"
)

// Seq is an ordered collection of alternative prefix literals.
type Seq struct {
	lits [][]byte
}

// NewSeq returns an empty sequence.
func NewSeq() *Seq { return &Seq{} }

// Push appends a literal to the sequence.
func (s *Seq) Push(b []byte) {
	s.lits = append(s.lits, b)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int { return len(s.lits) }

// IsEmpty reports whether the sequence contains no literals.
func (s *Seq) IsEmpty() bool { return len(s.lits) == 0 }

// Get returns the i-th literal.
func (s *Seq) Get(i int) []byte { return s.lits[i] }

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	min := len(s.lits[0])
	for _, l := range s.lits[1:] {
		if len(l) < min {
			min = len(l)
		}
	}
	return min
}

// Dedup sorts the sequence and removes duplicate literals in place.
func (s *Seq) Dedup() {
	if len(s.lits) < 2 {
		return
	}
	sort.Slice(s.lits, func(i, j int) bool {
		return bytes.Compare(s.lits[i], s.lits[j]) < 0
	})
	out := s.lits[:1]
	for _, l := range s.lits[1:] {
		if !bytes.Equal(l, out[len(out)-1]) {
			out = append(out, l)
		}
	}
	s.lits = out
}
