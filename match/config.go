// Package match implements the greedy matcher for compiled textwalker
// patterns.
//
// The engine walks a compiled token tree against an input string and returns
// the longest match consistent with every quantifier, or reports no match.
// Matching is maximal munch: each child consumes as many repetitions as its
// quantifier and the input allow before the engine moves to the next
// sibling, and it never revisits an earlier sibling to give characters back.
// This makes (ab)*ab unmatchable against "abab" (the star consumes
// everything); bounding the repetition explicitly, as in (ab){1,1}ab, is the
// documented workaround.
//
// Matching never errors. A failed match is an ordinary outcome, reported
// through the bool result, and is distinct from a successful zero-length
// match.
package match

// Config controls engine limits.
type Config struct {
	// MaxRecursionDepth bounds recursion into nested groupings. Matching a
	// tree nested deeper than this fails predictably (no match) instead of
	// overflowing the call stack. Compilation bounds nesting as well, so
	// trees from syntax.Parse stay well inside the default.
	// Default: 250
	MaxRecursionDepth int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: 250,
	}
}
