package syntax

// DefaultMaxNestingDepth bounds group nesting during compilation. Nesting
// depth also bounds matcher recursion, so the limit keeps pathological
// patterns from overflowing the call stack at match time.
const DefaultMaxNestingDepth = 100

// Parse compiles a pattern string into its token tree. The result is always
// a *Grouping, even for single-token patterns. All grammar violations are
// reported as a *ParseError wrapping one of the package sentinels; there is
// no partial-pattern recovery.
func Parse(pattern string) (*Grouping, error) {
	return ParseWithLimit(pattern, DefaultMaxNestingDepth)
}

// ParseWithLimit is Parse with an explicit group nesting limit. A maxDepth
// of zero or less falls back to DefaultMaxNestingDepth.
func ParseWithLimit(pattern string, maxDepth int) (*Grouping, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxNestingDepth
	}
	p := &parser{
		src:      pattern,
		pattern:  []rune(pattern),
		maxDepth: maxDepth,
	}
	tok, err := p.parseGroup(false, 0)
	if err != nil {
		return nil, err
	}
	// The root is always a Grouping so the matcher has a uniform entry
	// point. A root-level group like "(ab)*" is already one.
	if g, ok := tok.(*Grouping); ok {
		return g, nil
	}
	return &Grouping{Children: []Token{tok}}, nil
}

func isEscapable(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '-':
		return true
	}
	return false
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// parser is a recursive-descent reader over the pattern runes with one rune
// of lookahead.
type parser struct {
	src      string
	pattern  []rune
	pos      int
	maxDepth int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.pattern) }

func (p *parser) peek() rune { return p.pattern[p.pos] }

func (p *parser) advance() rune {
	r := p.pattern[p.pos]
	p.pos++
	return r
}

func (p *parser) errorAt(err error, pos int) error {
	return &ParseError{Pattern: p.src, Pos: pos, Err: err}
}

// parseGroup compiles one group body: the whole pattern when nested is
// false, or the body of a parenthesized group with the '(' already consumed.
// For nested calls the result may be any single token (a one-child group is
// unwrapped); the root wrapping happens in ParseWithLimit.
func (p *parser) parseGroup(nested bool, depth int) (Token, error) {
	if depth > p.maxDepth {
		return nil, p.errorAt(ErrNestingTooDeep, p.pos)
	}

	var tokens []Token
	var err error
	// Tracks whether the previous pattern element was a quantifier, so a
	// quantifier directly following a quantifier is rejected rather than
	// silently restacked.
	afterQuant := false
	for !p.atEnd() {
		at := p.pos
		ch := p.advance()
		isQuant := false
		switch ch {
		case '(':
			group, err := p.parseGroup(true, depth+1)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, group)

		case ')':
			if !nested {
				return nil, p.errorAt(ErrUnmatchedParen, at)
			}
			return finishGroup(tokens), nil

		case '[':
			charset, err := p.parseCharset()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, charset)

		case '*':
			if tokens, err = p.attach(tokens, ZeroOrMore(), at, afterQuant); err != nil {
				return nil, err
			}
			isQuant = true
		case '+':
			if tokens, err = p.attach(tokens, OneOrMore(), at, afterQuant); err != nil {
				return nil, err
			}
			isQuant = true
		case '?':
			if tokens, err = p.attach(tokens, ZeroOrOne(), at, afterQuant); err != nil {
				return nil, err
			}
			isQuant = true

		case '{':
			quant, err := p.parseRangeQuant()
			if err != nil {
				return nil, err
			}
			if tokens, err = p.attach(tokens, quant, at, afterQuant); err != nil {
				return nil, err
			}
			isQuant = true

		case '-':
			// Dash is only meaningful inside a charset range.
			return nil, p.errorAt(ErrUnescapedChar, at)

		case '\\':
			if p.atEnd() || !isEscapable(p.peek()) {
				return nil, p.errorAt(ErrUnrecognizedEscape, p.pos)
			}
			tokens = append(tokens, &Literal{Value: string(p.advance())})

		default:
			tokens = append(tokens, &Literal{Value: string(ch)})
		}
		afterQuant = isQuant
	}

	if nested {
		return nil, p.errorAt(ErrUnterminatedGroup, p.pos)
	}
	return finishGroup(tokens), nil
}

// attach binds a quantifier to the most recently compiled token. Quantifiers
// never stand alone and never follow another quantifier. A token that is
// already quantified through group unwrapping, as in "(a*)?", is wrapped in
// a fresh grouping so both quantifiers keep their meaning.
func (p *parser) attach(tokens []Token, q *Quantifier, at int, afterQuant bool) ([]Token, error) {
	if len(tokens) == 0 || afterQuant {
		return nil, p.errorAt(ErrUnassociatedQuantifier, at)
	}
	last := tokens[len(tokens)-1]
	if last.Quant() != nil {
		last = &Grouping{Children: []Token{last}}
		tokens[len(tokens)-1] = last
	}
	last.setQuant(q)
	return tokens, nil
}

// parseRangeQuant reads the body of a '{m,n}' quantifier with the '{'
// already consumed.
func (p *parser) parseRangeQuant() (*Quantifier, error) {
	min, err := p.parseDigits()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.peek() != ',' {
		return nil, p.errorAt(ErrUnexpectedChar, p.pos)
	}
	p.advance()
	max, err := p.parseDigits()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.peek() != '}' {
		return nil, p.errorAt(ErrUnexpectedChar, p.pos)
	}
	p.advance()
	if min > max {
		return nil, p.errorAt(ErrUnexpectedChar, p.pos-1)
	}
	return Range(min, max), nil
}

func (p *parser) parseDigits() (int, error) {
	if p.atEnd() || !isDigit(p.peek()) {
		return 0, p.errorAt(ErrUnexpectedChar, p.pos)
	}
	n := 0
	for !p.atEnd() && isDigit(p.peek()) {
		n = n*10 + int(p.advance()-'0')
	}
	return n, nil
}

// parseCharset reads a character set body with the '[' already consumed.
func (p *parser) parseCharset() (*Charset, error) {
	var items []ClassItem
	for !p.atEnd() {
		at := p.pos
		ch := p.advance()
		switch ch {
		case '\\':
			if p.atEnd() || !isEscapable(p.peek()) {
				return nil, p.errorAt(ErrUnrecognizedEscape, p.pos)
			}
			esc := p.advance()
			items = append(items, ClassItem{Lo: esc, Hi: esc})

		case '-':
			// A dash is only valid as an infix between two range
			// endpoints, where it is consumed by the range case below.
			return nil, p.errorAt(ErrUnescapedChar, at)

		case ']':
			return &Charset{Items: items}, nil

		default:
			if !p.atEnd() && p.peek() == '-' && p.pos+1 < len(p.pattern) {
				p.advance() // dash
				items = append(items, ClassItem{Lo: ch, Hi: p.advance()})
			} else {
				items = append(items, ClassItem{Lo: ch, Hi: ch})
			}
		}
	}
	return nil, p.errorAt(ErrUnclosedCharset, p.pos)
}

// finishGroup runs literal coalescing over a completed group body and
// unwraps single-child results so quantifiers following ')' bind to the
// child directly instead of a redundant one-element group.
func finishGroup(tokens []Token) Token {
	tokens = coalesceLiterals(tokens)
	if len(tokens) == 1 {
		return tokens[0]
	}
	return &Grouping{Children: tokens}
}

// coalesceLiterals merges every maximal run of adjacent unquantified
// literals into one multi-character Literal, preserving the order and
// position of all other tokens. Without this, "foo" would be three
// independent matchables and sibling sequencing would happen one character
// at a time instead of at word granularity.
func coalesceLiterals(tokens []Token) []Token {
	var out []Token
	var run []byte

	flush := func() {
		if len(run) > 0 {
			out = append(out, &Literal{Value: string(run)})
			run = nil
		}
	}

	for _, tok := range tokens {
		if lit, ok := tok.(*Literal); ok && lit.Quant() == nil {
			run = append(run, lit.Value...)
			continue
		}
		flush()
		out = append(out, tok)
	}
	flush()
	return out
}
