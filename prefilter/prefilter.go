// Package prefilter provides fast candidate filtering for sequential
// pattern scanning.
//
// A prefilter scans the haystack for required prefix literals extracted from
// a compiled pattern and reports candidate positions where a match could
// start. The caller verifies each candidate with the full matcher; positions
// the prefilter skips are guaranteed not to match, so filtering never
// changes scan results, only how fast they are found.
//
// Strategy selection is based on the extracted literal sequence:
//   - single literal  -> Index (stdlib substring search)
//   - multiple literals -> AhoCorasick (multi-pattern automaton)
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/textwalker/literal"
)

// Prefilter finds candidate match positions in a haystack.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or
	// -1 if no candidate exists. A candidate is a position where one of the
	// prefilter's literals occurs; it does not guarantee a full match.
	Find(haystack []byte, start int) int
}

// Build selects a prefilter for the given prefix sequence. It returns nil
// when seq is nil or empty, or when no prefilter could be constructed;
// callers fall back to scanning every position.
func Build(seq *literal.Seq) Prefilter {
	if seq == nil || seq.IsEmpty() {
		return nil
	}
	if seq.Len() == 1 {
		return &Index{needle: seq.Get(0)}
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &AhoCorasick{auto: auto}
}

// Index is a single-literal prefilter backed by bytes.Index.
type Index struct {
	needle []byte
}

// Find implements Prefilter.
func (p *Index) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

// AhoCorasick is a multi-literal prefilter backed by an Aho-Corasick
// automaton. One automaton handles any number of alternative prefixes in a
// single O(n) pass.
type AhoCorasick struct {
	auto *ahocorasick.Automaton
}

// Find implements Prefilter.
func (p *AhoCorasick) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}
