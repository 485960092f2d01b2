package match

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/textwalker/syntax"
)

// Engine matches input text against one compiled pattern tree.
//
// An Engine is stateless between calls: all cursors and repetition counters
// live on the stack of a single Match invocation, so one Engine is safe to
// use concurrently from multiple goroutines.
type Engine struct {
	root   *syntax.Grouping
	config Config
}

// NewEngine returns an engine bound to a compiled tree.
func NewEngine(root *syntax.Grouping, config Config) *Engine {
	if config.MaxRecursionDepth <= 0 {
		config.MaxRecursionDepth = DefaultConfig().MaxRecursionDepth
	}
	return &Engine{root: root, config: config}
}

// Match returns the longest substring of text beginning at byte offset at
// that satisfies the full pattern. The input need not be fully consumed, but
// the pattern must be: a partial structural match is no match. The returned
// string may be empty for patterns that permit a zero-length match; the bool
// distinguishes that from no match.
func (e *Engine) Match(text string, at int) (string, bool) {
	if at < 0 || at > len(text) {
		return "", false
	}
	return e.matchGrouping(e.root, text, at, 0)
}

// canConsume reports whether the quantifier permits one more repetition.
// Checked before consuming.
func canConsume(rep int, q *syntax.Quantifier) bool {
	_, max := q.Bounds()
	return max == syntax.Unbounded || rep < max
}

// sufficient reports whether the quantifier minimum has been met. Checked
// after consuming.
func sufficient(rep int, q *syntax.Quantifier) bool {
	min, _ := q.Bounds()
	return rep >= min
}

// acceptsEmpty reports whether the quantifier permits zero repetitions, in
// which case a failed match is reinterpreted as a zero-length match.
func acceptsEmpty(q *syntax.Quantifier) bool {
	min, _ := q.Bounds()
	return min == 0
}

// matchGrouping repeats the grouping's child sequence according to the
// grouping's own quantifier, concatenating the repetitions greedily. It
// stops on the first zero-length repetition so an optional empty-matching
// body can never loop forever.
func (e *Engine) matchGrouping(g *syntax.Grouping, text string, at, depth int) (string, bool) {
	if depth > e.config.MaxRecursionDepth {
		return "", false
	}

	var b strings.Builder
	rep := 0
	for canConsume(rep, g.Quant()) {
		s, ok := e.matchChildren(g.Children, text, at, depth)
		if !ok {
			if !sufficient(rep, g.Quant()) {
				return "", false
			}
			break
		}
		b.WriteString(s)
		rep++
		at += len(s)
		if len(s) == 0 {
			break
		}
	}
	return b.String(), true
}

// matchChildren runs the per-repetition consumption loop over the ordered
// children of a grouping. Each child is given as many repetitions as its
// quantifier and the input allow; once the cursor moves past a child it is
// never revisited. The sequence matches only if the cursor logically reaches
// past the final child; trailing children that were never matched (string
// exhausted too early) make the whole sequence a non-match.
func (e *Engine) matchChildren(children []syntax.Token, text string, at, depth int) (string, bool) {
	var b strings.Builder
	idx := 0
	rep := 0
	lastMatched := -1

	for idx < len(children) {
		child := children[idx]

		// A nested grouping consumes all repetitions its own quantifier
		// allows in a single recursive call, so it takes one turn here
		// regardless of that quantifier.
		if g, ok := child.(*syntax.Grouping); ok {
			s, matched := e.matchGrouping(g, text, at, depth+1)
			if !matched {
				return "", false
			}
			b.WriteString(s)
			at += len(s)
			lastMatched = idx
			idx++
			rep = 0
			continue
		}

		if !canConsume(rep, child.Quant()) {
			// The repetition cap is reached. The child counts as consumed
			// only if its minimum is also met; a cap below the minimum can
			// never be satisfied.
			if !sufficient(rep, child.Quant()) {
				return "", false
			}
			lastMatched = idx
			idx++
			rep = 0
			continue
		}

		s, ok := e.matchToken(child, text, at)
		if !ok && acceptsEmpty(child.Quant()) {
			// Zero-width acceptance: a quantifier-permitted absence is a
			// match of length zero, not a failure.
			s, ok = "", true
		}
		if !ok {
			if !sufficient(rep, child.Quant()) {
				return "", false
			}
			idx++
			rep = 0
			continue
		}

		rep++
		b.WriteString(s)
		at += len(s)
		lastMatched = idx
		if len(s) == 0 {
			// A zero-length repetition would never terminate; move on.
			idx++
			rep = 0
		}
	}

	if lastMatched < len(children)-1 {
		return "", false
	}
	return b.String(), true
}

func (e *Engine) matchToken(tok syntax.Token, text string, at int) (string, bool) {
	switch t := tok.(type) {
	case *syntax.Literal:
		return matchLiteral(t, text, at)
	case *syntax.Charset:
		return matchCharset(t, text, at)
	}
	// The token set is closed; parse never produces anything else.
	panic("textwalker: unknown token kind")
}

// matchLiteral compares the literal's full stored value against the input at
// the cursor. Running past the end of input is a failure, never a partial
// match.
func matchLiteral(lit *syntax.Literal, text string, at int) (string, bool) {
	end := at + len(lit.Value)
	if end > len(text) || text[at:end] != lit.Value {
		return "", false
	}
	return lit.Value, true
}

// matchCharset tests exactly one input rune against the set members in
// order; the first satisfying member wins. At end of input nothing matches.
func matchCharset(cs *syntax.Charset, text string, at int) (string, bool) {
	if at >= len(text) {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(text[at:])
	for _, item := range cs.Items {
		if item.Contains(r) {
			return text[at : at+size], true
		}
	}
	return "", false
}
