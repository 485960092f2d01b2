package textwalker

import "unicode/utf8"

// Commonly used delimiter patterns.
const (
	// Newline matches a single CR or LF.
	Newline = "[\r\n]"

	// NewlineWhitespace matches a single space, CR, LF, or tab. This is
	// the default word delimiter.
	NewlineWhitespace = "[ \r\n\t]"

	// Whitespace matches a single space or tab.
	Whitespace = "[ \t]"
)

// Walker consumes a text token by token. Before each token it skips input
// matching the configured delimiter pattern, then matches the caller's
// pattern at the cursor and advances past the match.
//
// Compiled patterns are cached per distinct pattern string for the lifetime
// of the Walker.
type Walker struct {
	text   string
	pos    int
	delim  *Pattern // nil disables delimiter skipping
	config Config
	cache  map[string]*Pattern
}

// NewWalker returns a walker over text using the default delimiter,
// NewlineWhitespace.
func NewWalker(text string) *Walker {
	w, err := NewWalkerDelim(text, NewlineWhitespace)
	if err != nil {
		// The default delimiter is a valid pattern.
		panic(err)
	}
	return w
}

// NewWalkerDelim returns a walker over text using the given delimiter
// pattern. An empty delimiter disables delimiter skipping. Fails if the
// delimiter pattern does not compile.
func NewWalkerDelim(text, delim string) (*Walker, error) {
	return NewWalkerConfig(text, delim, DefaultConfig())
}

// NewWalkerConfig is NewWalkerDelim with custom limits.
func NewWalkerConfig(text, delim string, config Config) (*Walker, error) {
	w := &Walker{
		text:   text,
		config: config,
		cache:  make(map[string]*Pattern),
	}
	if delim != "" {
		p, err := CompileWithConfig(delim, config)
		if err != nil {
			return nil, err
		}
		w.delim = p
	}
	return w, nil
}

// Pos returns the walker's cursor as a byte offset into the text.
func (w *Walker) Pos() int { return w.pos }

// Rest returns the unconsumed remainder of the text.
func (w *Walker) Rest() string { return w.text[w.pos:] }

func (w *Walker) compile(pattern string) (*Pattern, error) {
	if p, ok := w.cache[pattern]; ok {
		return p, nil
	}
	p, err := CompileWithConfig(pattern, w.config)
	if err != nil {
		return nil, err
	}
	w.cache[pattern] = p
	return p, nil
}

// skipDelim consumes delimiter matches at the cursor. A zero-length
// delimiter match stops the loop; it consumes nothing and would otherwise
// repeat forever.
func (w *Walker) skipDelim() {
	if w.delim == nil {
		return
	}
	for {
		m, ok := w.delim.Match(w.text, w.pos)
		if !ok || len(m) == 0 {
			return
		}
		w.pos += len(m)
	}
}

// Walk skips delimiters, then matches pattern at the cursor. On a match the
// cursor advances past it. ok is false when the pattern does not match at
// the cursor; err is non-nil only for a malformed pattern.
func (w *Walker) Walk(pattern string) (m string, ok bool, err error) {
	p, err := w.compile(pattern)
	if err != nil {
		return "", false, err
	}
	w.skipDelim()
	m, ok = p.Match(w.text, w.pos)
	if !ok {
		return "", false, nil
	}
	w.pos += len(m)
	return m, true, nil
}

// WalkMany walks one pattern after another and returns the matches in
// order. A pattern that does not match contributes an empty string and does
// not advance the cursor; use Walk to distinguish a no-match from an empty
// match. Fails on the first malformed pattern.
func (w *Walker) WalkMany(patterns []string) ([]string, error) {
	matches := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		m, _, err := w.Walk(pattern)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// WalkUntil scans forward one rune at a time until pattern matches,
// returning the skipped prefix and the match. The cursor is left at the
// match start; the match itself is not consumed. When no match exists the
// remainder of the text is returned as skipped and the match is empty.
//
// When the pattern has extractable required prefixes the scan jumps between
// candidate positions found by a prefilter instead of attempting the
// matcher at every rune; results are identical either way.
func (w *Walker) WalkUntil(pattern string) (skipped, m string, err error) {
	p, err := w.compile(pattern)
	if err != nil {
		return "", "", err
	}
	start := w.pos

	if p.pf != nil {
		haystack := []byte(w.text)
		for w.pos <= len(w.text) {
			cand := p.pf.Find(haystack, w.pos)
			if cand < 0 {
				break
			}
			w.pos = cand
			if m, ok := p.Match(w.text, w.pos); ok {
				return w.text[start:w.pos], m, nil
			}
			w.pos = cand + 1
		}
		w.pos = len(w.text)
		return w.text[start:], "", nil
	}

	for w.pos < len(w.text) {
		if m, ok := p.Match(w.text, w.pos); ok {
			return w.text[start:w.pos], m, nil
		}
		_, size := utf8.DecodeRuneInString(w.text[w.pos:])
		w.pos += size
	}
	// The pattern may still match empty at the very end.
	if m, ok := p.Match(w.text, w.pos); ok {
		return w.text[start:w.pos], m, nil
	}
	w.pos = len(w.text)
	return w.text[start:], "", nil
}
