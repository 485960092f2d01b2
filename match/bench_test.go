package match

import (
	"strings"
	"testing"

	"github.com/coregx/textwalker/syntax"
)

func benchEngine(b *testing.B, pattern string) *Engine {
	b.Helper()
	g, err := syntax.Parse(pattern)
	if err != nil {
		b.Fatal(err)
	}
	return NewEngine(g, DefaultConfig())
}

func BenchmarkMatchLiteral(b *testing.B) {
	e := benchEngine(b, "helxphelyp")
	text := "helxphelyp9"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Match(text, 0)
	}
}

func BenchmarkMatchCharsetPlus(b *testing.B) {
	e := benchEngine(b, "[a-z]+")
	text := strings.Repeat("abcdefghij", 100) + "9"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Match(text, 0)
	}
}

func BenchmarkMatchRepeatedGroup(b *testing.B) {
	e := benchEngine(b, "(hel[a-z]p)+")
	text := strings.Repeat("helxp", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Match(text, 0)
	}
}
