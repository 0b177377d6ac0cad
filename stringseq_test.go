package lazy

import (
	"testing"

	"github.com/dlclark/regexp2"
)

func TestStringSeqCharAtLength(t *testing.T) {
	s := NewStringSeq("hello")
	if s.Length() != 5 {
		t.Fatalf("expected length 5, got %d", s.Length())
	}
	if s.CharAt(1) != 'e' {
		t.Fatalf("expected 'e' at index 1, got %q", s.CharAt(1))
	}
	if s.String() != "hello" {
		t.Fatalf("unexpected String(): %q", s.String())
	}
}

func TestStringSeqEach(t *testing.T) {
	var got []rune
	NewStringSeq("abc").Each(func(r rune, _ int) bool {
		got = append(got, r)
		return true
	})
	if string(got) != "abc" {
		t.Fatalf("unexpected each result: %q", string(got))
	}
}

func TestStringSeqSplitEmptyDelimiter(t *testing.T) {
	s := NewStringSeq("abc")
	got := ToSlice[string](s.Split(""))
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("unexpected split: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected split order: %v", got)
		}
	}
}

func TestStringSeqSplitDelimiter(t *testing.T) {
	s := NewStringSeq("a,b,,c")
	got := ToSlice[string](s.Split(","))
	want := []string{"a", "b", "", "c"}
	if len(got) != len(want) {
		t.Fatalf("unexpected split: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected split values: %v", got)
		}
	}
}

func TestStringSeqMatch(t *testing.T) {
	pattern := regexp2.MustCompile(`\d+`, regexp2.None)
	s := NewStringSeq("a1 b22 c333")
	got := ToSlice[string](s.Match(pattern))
	want := []string{"1", "22", "333"}
	if len(got) != len(want) {
		t.Fatalf("unexpected matches: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected match values: %v", got)
		}
	}
}

func TestStringSeqMatchDoesNotMutateCallerPattern(t *testing.T) {
	pattern := regexp2.MustCompile(`\d+`, regexp2.None)
	s := NewStringSeq("1 2 3")
	_ = ToSlice[string](s.Match(pattern))
	// The caller's compiled pattern must still be usable independently
	// afterward (globalPattern clones rather than mutating it).
	m, err := pattern.FindStringMatch("42")
	if err != nil || m == nil || m.String() != "42" {
		t.Fatalf("caller's pattern was corrupted by Match: %v %v", m, err)
	}
}

func TestStringSeqSplitRegex(t *testing.T) {
	pattern := regexp2.MustCompile(`\s*,\s*`, regexp2.None)
	s := NewStringSeq("a, b ,c")
	got := ToSlice[string](s.SplitRegex(pattern))
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("unexpected regex split: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected regex split values: %v", got)
		}
	}
}
