package textwalker

import (
	"strings"
	"testing"
)

func TestWalk(t *testing.T) {
	w := NewWalker("select * from table_1")

	kw, ok, err := w.Walk("[a-z]+")
	if err != nil || !ok || kw != "select" {
		t.Fatalf("Walk() = (%q, %v, %v), want (%q, true, nil)", kw, ok, err, "select")
	}

	star, ok, err := w.Walk(`\*`)
	if err != nil || !ok || star != "*" {
		t.Fatalf("Walk() = (%q, %v, %v), want (%q, true, nil)", star, ok, err, "*")
	}

	from, ok, err := w.Walk("[a-z]+")
	if err != nil || !ok || from != "from" {
		t.Fatalf("Walk() = (%q, %v, %v), want (%q, true, nil)", from, ok, err, "from")
	}

	table, ok, err := w.Walk("[a-z0-9_]+")
	if err != nil || !ok || table != "table_1" {
		t.Fatalf("Walk() = (%q, %v, %v), want (%q, true, nil)", table, ok, err, "table_1")
	}

	if w.Pos() != len("select * from table_1") {
		t.Errorf("Pos() = %d, want end of text", w.Pos())
	}
}

func TestWalkNoMatch(t *testing.T) {
	w := NewWalker("  abc")
	before := w.Pos()

	m, ok, err := w.Walk("[0-9]+")
	if err != nil || ok || m != "" {
		t.Errorf("Walk() = (%q, %v, %v), want no match", m, ok, err)
	}
	// Delimiters consumed before the attempt stay consumed.
	if w.Pos() != before+2 {
		t.Errorf("Pos() = %d, want %d", w.Pos(), before+2)
	}

	if _, _, err := w.Walk("["); err == nil {
		t.Error("Walk() with malformed pattern returned nil error")
	}
}

func TestWalkManyPhoneNumber(t *testing.T) {
	w := NewWalker("(+1)123-456-7890")

	matches, err := w.WalkMany([]string{
		`(\(\+[0-9]+\))?`,
		"[0-9]{3,3}",
		`\-`,
		"[0-9]{3,3}",
		`\-`,
		"[0-9]{4,4}",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"(+1)", "123", "-", "456", "-", "7890"}
	if len(matches) != len(want) {
		t.Fatalf("WalkMany() = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("WalkMany()[%d] = %q, want %q", i, matches[i], want[i])
		}
	}
}

func TestWalkManyOptionalAbsent(t *testing.T) {
	// The same pattern list works when the optional country code is
	// missing: the first pattern matches empty and consumes nothing.
	w := NewWalker("123-456-7890")

	matches, err := w.WalkMany([]string{
		`(\(\+[0-9]+\))?`,
		"[0-9]{3,3}",
	})
	if err != nil {
		t.Fatal(err)
	}
	if matches[0] != "" || matches[1] != "123" {
		t.Errorf("WalkMany() = %v, want [\"\" \"123\"]", matches)
	}
}

func TestWalkManyNoMatchPlaceholder(t *testing.T) {
	w := NewWalker("abc")

	matches, err := w.WalkMany([]string{"[0-9]+", "[a-z]+"})
	if err != nil {
		t.Fatal(err)
	}
	if matches[0] != "" || matches[1] != "abc" {
		t.Errorf("WalkMany() = %v, want [\"\" \"abc\"]", matches)
	}
}

func TestWalkUntil(t *testing.T) {
	w := newWalkerNoSkip(t, "hello (name)")

	skipped, m, err := w.WalkUntil(`\([a-z]+\)`)
	if err != nil {
		t.Fatal(err)
	}
	if skipped != "hello " || m != "(name)" {
		t.Errorf("WalkUntil() = (%q, %q), want (%q, %q)", skipped, m, "hello ", "(name)")
	}
	// Cursor rests at the match start; the match is not consumed.
	if w.Rest() != "(name)" {
		t.Errorf("Rest() = %q, want %q", w.Rest(), "(name)")
	}

	m2, ok, err := w.Walk(`\([a-z]+\)`)
	if err != nil || !ok || m2 != "(name)" {
		t.Errorf("Walk() after WalkUntil = (%q, %v, %v)", m2, ok, err)
	}
}

func TestWalkUntilNoMatch(t *testing.T) {
	w := NewWalker("no digits here")

	skipped, m, err := w.WalkUntil("[0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	if m != "" || skipped != "no digits here" {
		t.Errorf("WalkUntil() = (%q, %q), want whole text skipped", skipped, m)
	}
	if w.Rest() != "" {
		t.Errorf("Rest() = %q, want empty", w.Rest())
	}
}

// TestWalkUntilPrefilter exercises the candidate-jumping path with a pattern
// whose required prefix occurs before its first real match.
func TestWalkUntilPrefilter(t *testing.T) {
	text := "xx foo9 fooabc yy"
	w := newWalkerNoSkip(t, text)

	p := MustCompile("foo[a-z]+")
	if p.pf == nil {
		t.Fatal("pattern should carry a prefilter")
	}

	skipped, m, err := w.WalkUntil("foo[a-z]+")
	if err != nil {
		t.Fatal(err)
	}
	if skipped != "xx foo9 " || m != "fooabc" {
		t.Errorf("WalkUntil() = (%q, %q), want (%q, %q)", skipped, m, "xx foo9 ", "fooabc")
	}
}

// TestWalkUntilScanParity: the prefilter fast path and the rune-by-rune slow
// path must land at the same place.
func TestWalkUntilScanParity(t *testing.T) {
	text := strings.Repeat("ab9 ", 50) + "abz tail"
	const pattern = "ab[a-z]"

	fast := newWalkerNoSkip(t, text)
	fs, fm, err := fast.WalkUntil(pattern)
	if err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.EnablePrefilter = false
	slow, err := NewWalkerConfig(text, "", config)
	if err != nil {
		t.Fatal(err)
	}
	ss, sm, err := slow.WalkUntil(pattern)
	if err != nil {
		t.Fatal(err)
	}

	if fs != ss || fm != sm || fast.Pos() != slow.Pos() {
		t.Errorf("fast = (%q, %q, pos %d), slow = (%q, %q, pos %d)",
			fs, fm, fast.Pos(), ss, sm, slow.Pos())
	}
	if fm != "abz" {
		t.Errorf("match = %q, want %q", fm, "abz")
	}
}

func TestWalkerCustomDelim(t *testing.T) {
	w, err := NewWalkerDelim("a,b,,c", `\,`)
	if err != nil {
		t.Fatal(err)
	}

	var fields []string
	for i := 0; i < 3; i++ {
		f, ok, err := w.Walk("[a-z]")
		if err != nil || !ok {
			t.Fatalf("Walk() = (%q, %v, %v)", f, ok, err)
		}
		fields = append(fields, f)
	}
	if fields[0] != "a" || fields[1] != "b" || fields[2] != "c" {
		t.Errorf("fields = %v, want [a b c]", fields)
	}
}

func TestWalkerEmptyDelim(t *testing.T) {
	w, err := NewWalkerDelim("  ab", "")
	if err != nil {
		t.Fatal(err)
	}

	// No delimiter skipping: leading spaces block the match.
	if _, ok, _ := w.Walk("[a-z]+"); ok {
		t.Error("Walk() matched despite unskipped leading spaces")
	}
	if w.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", w.Pos())
	}
}

// TestWalkerZeroLengthDelim: a delimiter that can match empty must not spin
// the skip loop.
func TestWalkerZeroLengthDelim(t *testing.T) {
	w, err := NewWalkerDelim("abc", "x?")
	if err != nil {
		t.Fatal(err)
	}
	m, ok, err := w.Walk("[a-z]+")
	if err != nil || !ok || m != "abc" {
		t.Errorf("Walk() = (%q, %v, %v), want (%q, true, nil)", m, ok, err, "abc")
	}
}

func TestWalkerBadDelim(t *testing.T) {
	if _, err := NewWalkerDelim("text", "["); err == nil {
		t.Error("NewWalkerDelim() with malformed delimiter returned nil error")
	}
}

func TestWalkerPosRest(t *testing.T) {
	w := NewWalker("ab cd")
	if w.Pos() != 0 || w.Rest() != "ab cd" {
		t.Fatalf("fresh walker Pos=%d Rest=%q", w.Pos(), w.Rest())
	}
	if _, _, err := w.Walk("[a-z]+"); err != nil {
		t.Fatal(err)
	}
	if w.Pos() != 2 || w.Rest() != " cd" {
		t.Errorf("Pos=%d Rest=%q, want 2 %q", w.Pos(), w.Rest(), " cd")
	}
}

// newWalkerNoSkip builds a walker with delimiter skipping disabled so
// WalkUntil's skipped prefix is byte exact.
func newWalkerNoSkip(t *testing.T, text string) *Walker {
	t.Helper()
	w, err := NewWalkerDelim(text, "")
	if err != nil {
		t.Fatal(err)
	}
	return w
}
