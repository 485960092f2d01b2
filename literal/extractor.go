package literal

import (
	"unicode/utf8"

	"github.com/coregx/textwalker/syntax"
)

// Config limits extraction so pathological patterns cannot blow up the
// prefilter.
type Config struct {
	// MaxLiterals caps the number of alternative prefixes. Charset
	// expansion multiplies alternatives; past this cap extraction gives up.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen caps the byte length of each extracted prefix. A
	// truncated prefix is still a required prefix. Default: 64
	MaxLiteralLen int

	// MaxClassSize caps the number of characters a charset may expand to.
	// Large classes like [a-z0-9] produce too many weak single-byte
	// prefixes to be worth filtering on. Default: 10
	MaxClassSize int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor derives required prefixes from compiled pattern trees.
type Extractor struct {
	config Config
}

// New creates an Extractor with the given limits.
func New(config Config) *Extractor {
	def := DefaultConfig()
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = def.MaxLiterals
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = def.MaxLiteralLen
	}
	if config.MaxClassSize <= 0 {
		config.MaxClassSize = def.MaxClassSize
	}
	return &Extractor{config: config}
}

// Prefixes extracts the required prefix literals of a compiled pattern.
// When ok is true, every match of the pattern begins with one of the
// returned literals. ok is false when no sound, bounded prefix set exists:
// the pattern can match the empty string (and so matches at any position), a
// charset is too large to expand, or the limits were exceeded.
func (e *Extractor) Prefixes(g *syntax.Grouping) (*Seq, bool) {
	lits, mayEmpty, ok := e.childrenFirsts(g.Children)
	if min, _ := g.Quant().Bounds(); min == 0 {
		mayEmpty = true
	}
	if !ok || mayEmpty || len(lits) == 0 {
		return nil, false
	}

	seq := NewSeq()
	for _, l := range lits {
		seq.Push(l)
	}
	seq.Dedup()
	if seq.Len() > e.config.MaxLiterals {
		return nil, false
	}
	return seq, true
}

// tokenFirsts returns the possible first literals of one token, whether the
// token can contribute a zero-length match, and whether extraction is sound.
func (e *Extractor) tokenFirsts(tok syntax.Token) (lits [][]byte, mayEmpty, ok bool) {
	switch t := tok.(type) {
	case *syntax.Literal:
		v := t.Value
		if len(v) > e.config.MaxLiteralLen {
			v = v[:e.config.MaxLiteralLen]
		}
		return [][]byte{[]byte(v)}, false, true

	case *syntax.Charset:
		size := 0
		for _, item := range t.Items {
			if item.Hi >= item.Lo {
				size += int(item.Hi-item.Lo) + 1
			}
		}
		if size > e.config.MaxClassSize {
			return nil, false, false
		}
		for _, item := range t.Items {
			for r := item.Lo; r <= item.Hi; r++ {
				buf := make([]byte, utf8.UTFMax)
				n := utf8.EncodeRune(buf, r)
				lits = append(lits, buf[:n])
			}
		}
		return lits, false, true

	case *syntax.Grouping:
		lits, mayEmpty, ok = e.childrenFirsts(t.Children)
		if min, _ := t.Quant().Bounds(); min == 0 {
			mayEmpty = true
		}
		return lits, mayEmpty, ok
	}
	return nil, false, false
}

// childrenFirsts accumulates first literals across an ordered child
// sequence: each skippable child (quantifier minimum zero, or a child that
// can match zero-length) contributes its firsts and defers to the next
// sibling as well; the first unskippable child terminates the walk.
func (e *Extractor) childrenFirsts(children []syntax.Token) (lits [][]byte, mayEmpty, ok bool) {
	var acc [][]byte
	for _, child := range children {
		clits, cEmpty, cok := e.tokenFirsts(child)
		if !cok {
			return nil, false, false
		}
		acc = append(acc, clits...)
		if len(acc) > e.config.MaxLiterals {
			return nil, false, false
		}
		min, _ := child.Quant().Bounds()
		if min > 0 && !cEmpty {
			return acc, false, true
		}
	}
	// Every child was skippable: the whole sequence can match empty.
	return acc, true, true
}
