// Package textwalker provides a small pattern dialect and a sequential text
// walker built on it.
//
// The dialect supports literal text, character sets with ranges, nestable
// groups, and the quantifiers '*', '+', '?' and '{m,n}'. Structural
// characters must always be escaped to match literally:
//
//	( ) [ ] { } -
//
// There are no predefined classes, no alternation, and no anchors; matching
// is greedy with no backtracking across sibling boundaries (see Match).
//
// Basic usage:
//
//	p, err := textwalker.Compile(`[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, ok := p.Match("dat9", 0)
//	// m == "dat", ok == true
//
// The Walker consumes a text token by token, skipping a configurable
// delimiter pattern before each token:
//
//	w := textwalker.NewWalker("(+1)123-456-7890")
//	area, _, _ := w.Walk(`(\(\+[0-9]+\))?`)
//	// area == "(+1)"
package textwalker

import (
	"github.com/coregx/textwalker/literal"
	"github.com/coregx/textwalker/match"
	"github.com/coregx/textwalker/prefilter"
	"github.com/coregx/textwalker/syntax"
)

// Config controls compilation and walking behavior.
type Config struct {
	// MaxNestingDepth bounds group nesting during compilation.
	// Default: syntax.DefaultMaxNestingDepth
	MaxNestingDepth int

	// MaxRecursionDepth bounds matcher recursion into nested groupings.
	// Default: match.DefaultConfig().MaxRecursionDepth
	MaxRecursionDepth int

	// EnablePrefilter enables literal-prefix prefiltering in
	// Walker.WalkUntil. When false the walker scans one rune at a time.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxNestingDepth:   syntax.DefaultMaxNestingDepth,
		MaxRecursionDepth: match.DefaultConfig().MaxRecursionDepth,
		EnablePrefilter:   true,
	}
}

// Pattern is a compiled pattern.
//
// A Pattern is immutable and safe to use concurrently from multiple
// goroutines.
type Pattern struct {
	root    *syntax.Grouping
	engine  *match.Engine
	pf      prefilter.Prefilter
	pattern string
}

// Compile compiles a pattern string.
//
// Malformed patterns fail with a *syntax.ParseError wrapping one of the
// syntax package sentinels (syntax.ErrUnclosedCharset and friends).
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom limits.
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	root, err := syntax.ParseWithLimit(pattern, config.MaxNestingDepth)
	if err != nil {
		return nil, err
	}

	engine := match.NewEngine(root, match.Config{
		MaxRecursionDepth: config.MaxRecursionDepth,
	})

	p := &Pattern{
		root:    root,
		engine:  engine,
		pattern: pattern,
	}
	if config.EnablePrefilter {
		seq, ok := literal.New(literal.DefaultConfig()).Prefixes(root)
		if ok {
			p.pf = prefilter.Build(seq)
		}
	}
	return p, nil
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at compile time.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("textwalker: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// Match returns the longest substring of text beginning at byte offset at
// that satisfies the full pattern. The pattern must be satisfied completely;
// the input need not be consumed completely. The returned string may be
// empty for patterns that permit a zero-length match; ok distinguishes that
// from no match. Match never fails for a compiled pattern.
//
// Matching is greedy maximal munch: each element consumes as many
// repetitions as its quantifier and the input allow before its successor
// runs, and characters are never given back. The pattern (ab)*ab therefore
// does not match "abab" at all; bound the repetition explicitly, as in
// (ab){1,1}ab, when a trailing copy must survive.
func (p *Pattern) Match(text string, at int) (string, bool) {
	return p.engine.Match(text, at)
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Match compiles pattern and matches it against text at offset 0. For
// repeated use, compile once with Compile.
func Match(pattern, text string) (string, bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return "", false, err
	}
	m, ok := p.Match(text, 0)
	return m, ok, nil
}
