package prefilter

import (
	"testing"

	"github.com/coregx/textwalker/literal"
)

func seqOf(lits ...string) *literal.Seq {
	s := literal.NewSeq()
	for _, l := range lits {
		s.Push([]byte(l))
	}
	return s
}

func TestBuildSelection(t *testing.T) {
	if pf := Build(nil); pf != nil {
		t.Error("Build(nil) != nil")
	}
	if pf := Build(literal.NewSeq()); pf != nil {
		t.Error("Build(empty) != nil")
	}
	if _, ok := Build(seqOf("abc")).(*Index); !ok {
		t.Error("single literal should build *Index")
	}
	if _, ok := Build(seqOf("abc", "xy")).(*AhoCorasick); !ok {
		t.Error("multiple literals should build *AhoCorasick")
	}
}

func TestIndexFind(t *testing.T) {
	pf := Build(seqOf("cd"))
	haystack := []byte("abcdabcd")

	tests := []struct {
		start int
		want  int
	}{
		{0, 2},
		{2, 2},
		{3, 6},
		{7, -1},
		{8, -1},
		{9, -1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := pf.Find(haystack, tt.start); got != tt.want {
			t.Errorf("Find(%d) = %d, want %d", tt.start, got, tt.want)
		}
	}
}

func TestAhoCorasickFind(t *testing.T) {
	pf := Build(seqOf("foo", "ba"))
	if pf == nil {
		t.Fatal("Build returned nil")
	}
	haystack := []byte("xxbazfoo")

	if got := pf.Find(haystack, 0); got != 2 {
		t.Errorf("Find(0) = %d, want 2", got)
	}
	if got := pf.Find(haystack, 3); got != 5 {
		t.Errorf("Find(3) = %d, want 5", got)
	}
	if got := pf.Find(haystack, 6); got != -1 {
		t.Errorf("Find(6) = %d, want -1", got)
	}
}

// TestFindNeverSkipsCandidate: every occurrence of a literal at or after
// start must be at or after the returned candidate.
func TestFindNeverSkipsCandidate(t *testing.T) {
	pf := Build(seqOf("ab", "cd"))
	haystack := []byte("zzabzcdzab")

	pos := 0
	var candidates []int
	for {
		c := pf.Find(haystack, pos)
		if c < 0 {
			break
		}
		candidates = append(candidates, c)
		pos = c + 1
	}

	want := []int{2, 5, 8}
	if len(candidates) != len(want) {
		t.Fatalf("candidates = %v, want %v", candidates, want)
	}
	for i := range want {
		if candidates[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", candidates, want)
		}
	}
}
