// Package syntax implements the textwalker pattern dialect: a compiler that
// turns a pattern string into an immutable token tree, and the token types
// that make up that tree.
//
// The dialect supports literal text, character sets with inclusive ranges
// ([a-z09]), parenthesized groups (arbitrarily nestable), and the quantifiers
// '*', '+', '?' and '{m,n}'. All structural characters must be escaped with a
// backslash to appear literally:
//
//	( ) [ ] { } -
//
// There is no alternation, no predefined classes, and no anchors. See the
// package-level grammar:
//
//	pattern    := group_body
//	group_body := (literal | charset | group | escape)*
//	group      := '(' group_body ')' quantifier?
//	charset    := '[' charset_body ']' quantifier?
//	range      := char '-' char
//	quantifier := '*' | '+' | '?' | '{' digits ',' digits '}'
//
// A compiled tree is immutable after Parse returns and is safe for
// concurrent read-only use.
package syntax

import (
	"fmt"
	"strings"
)

// Unbounded is the Max value of a quantifier with no upper repetition limit.
const Unbounded = -1

// Quantifier constrains how many times the token it is attached to may
// repeat. A nil *Quantifier on a token means "exactly one".
type Quantifier struct {
	// Min is the minimum number of repetitions required for a match.
	Min int

	// Max is the maximum number of repetitions consumed, or Unbounded.
	Max int
}

// ZeroOrMore returns the '*' quantifier (0..inf repetitions).
func ZeroOrMore() *Quantifier { return &Quantifier{Min: 0, Max: Unbounded} }

// OneOrMore returns the '+' quantifier (1..inf repetitions).
func OneOrMore() *Quantifier { return &Quantifier{Min: 1, Max: Unbounded} }

// ZeroOrOne returns the '?' quantifier (0..1 repetitions).
func ZeroOrOne() *Quantifier { return &Quantifier{Min: 0, Max: 1} }

// Range returns the bounded '{min,max}' quantifier.
func Range(min, max int) *Quantifier { return &Quantifier{Min: min, Max: max} }

// Bounds returns the repetition bounds for q. A nil receiver is the default
// quantifier, exactly one repetition.
func (q *Quantifier) Bounds() (min, max int) {
	if q == nil {
		return 1, 1
	}
	return q.Min, q.Max
}

// String returns the source form of the quantifier ("*", "+", "?", "{m,n}").
// A nil quantifier renders as the empty string.
func (q *Quantifier) String() string {
	switch {
	case q == nil:
		return ""
	case q.Min == 0 && q.Max == Unbounded:
		return "*"
	case q.Min == 1 && q.Max == Unbounded:
		return "+"
	case q.Min == 0 && q.Max == 1:
		return "?"
	default:
		return fmt.Sprintf("{%d,%d}", q.Min, q.Max)
	}
}

// Token is a compiled pattern fragment. The set of implementations is closed:
// *Literal, *Charset and *Grouping. The matcher dispatches exhaustively over
// these three kinds.
type Token interface {
	// Quant returns the quantifier attached to the token, or nil for
	// exactly one repetition.
	Quant() *Quantifier

	// String returns a debug rendering of the token.
	String() string

	// setQuant attaches a quantifier during compilation. Unexported so the
	// tree is immutable outside this package.
	setQuant(q *Quantifier)
}

// Literal is a run of one or more characters matched verbatim. Adjacent
// unquantified single-character literals are coalesced into one Literal at
// compile time, so repetition works at word granularity ("foo" is one
// 3-character unit, not three units).
type Literal struct {
	// Value is the literal text. Never empty.
	Value string

	quant *Quantifier
}

// Quant returns the quantifier attached to the literal, or nil.
func (l *Literal) Quant() *Quantifier { return l.quant }

func (l *Literal) setQuant(q *Quantifier) { l.quant = q }

// String returns a debug rendering like "L[foo]" or "L[o*]".
func (l *Literal) String() string {
	return "L[" + l.Value + l.quant.String() + "]"
}

// ClassItem is a single member of a Charset: an inclusive rune range.
// A single-character member has Lo == Hi. Ordering is native rune order.
type ClassItem struct {
	Lo, Hi rune
}

// Contains reports whether r falls within the item's inclusive bounds.
func (c ClassItem) Contains(r rune) bool { return c.Lo <= r && r <= c.Hi }

// String returns "a" for single characters and "a-z" for ranges.
func (c ClassItem) String() string {
	if c.Lo == c.Hi {
		return string(c.Lo)
	}
	return string(c.Lo) + "-" + string(c.Hi)
}

// Charset matches exactly one input character belonging to any of its
// members. Members are tested in order; the first satisfying member wins.
// The quantifier applies to the set as one matchable unit, never to
// individual members.
type Charset struct {
	// Items are the set members in source order.
	Items []ClassItem

	quant *Quantifier
}

// Quant returns the quantifier attached to the charset, or nil.
func (c *Charset) Quant() *Quantifier { return c.quant }

func (c *Charset) setQuant(q *Quantifier) { c.quant = q }

// String returns a debug rendering like "CS[a-z09+]".
func (c *Charset) String() string {
	var b strings.Builder
	b.WriteString("CS[")
	for _, item := range c.Items {
		b.WriteString(item.String())
	}
	b.WriteString(c.quant.String())
	b.WriteString("]")
	return b.String()
}

// Grouping is an ordered sequence of child tokens matched as a unit,
// optionally repeated by a quantifier. The compiled top-level pattern is
// always a Grouping, even when it has a single child. Containment is a strict
// tree; a parent exclusively owns its children.
type Grouping struct {
	// Children are the sub-patterns in source order.
	Children []Token

	quant *Quantifier
}

// Quant returns the quantifier attached to the grouping, or nil.
func (g *Grouping) Quant() *Quantifier { return g.quant }

func (g *Grouping) setQuant(q *Quantifier) { g.quant = q }

// String returns a debug rendering like "G[L[ab]*]".
func (g *Grouping) String() string {
	var b strings.Builder
	b.WriteString("G[")
	for _, child := range g.Children {
		b.WriteString(child.String())
	}
	b.WriteString(g.quant.String())
	b.WriteString("]")
	return b.String()
}
