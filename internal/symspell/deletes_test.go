package symspell

import "testing"

func TestGenerateDeletesIncludesWordItself(t *testing.T) {
	variants := generateDeletes("abc", 2)
	if _, ok := variants["abc"]; !ok {
		t.Error("generateDeletes must include the original word")
	}
}

func TestGenerateDeletesDepthOne(t *testing.T) {
	variants := generateDeletes("abc", 1)
	want := map[string]bool{"abc": true, "bc": true, "ac": true, "ab": true}
	if len(variants) != len(want) {
		t.Fatalf("got %d variants, want %d: %v", len(variants), len(want), variants)
	}
	for v := range want {
		if _, ok := variants[v]; !ok {
			t.Errorf("missing variant %q", v)
		}
	}
}

func TestGenerateDeletesDeduplicates(t *testing.T) {
	// "abb": deleting index 1 and deleting index 2 both yield "ab".
	variants := generateDeletes("abb", 1)
	if _, ok := variants["ab"]; !ok {
		t.Fatal("expected deduplicated variant \"ab\"")
	}
	count := 0
	for v := range variants {
		if v == "ab" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate entries for \"ab\" in result set")
	}
}

func TestGenerateDeletesZeroDistance(t *testing.T) {
	variants := generateDeletes("hello", 0)
	if len(variants) != 1 {
		t.Fatalf("maxDistance=0 should only yield the word itself, got %v", variants)
	}
}

func TestGenerateDeletesSingleCharWord(t *testing.T) {
	variants := generateDeletes("a", 2)
	if len(variants) != 1 {
		t.Fatalf("single-character word has no further deletions, got %v", variants)
	}
}

func TestGenerateDeletesDepthTwo(t *testing.T) {
	variants := generateDeletes("abcd", 2)
	// depth 0: abcd
	// depth 1: bcd, acd, abd, abc
	// depth 2: every depth-1 variant missing one more char
	if _, ok := variants["cd"]; !ok {
		t.Error("expected two-deletion variant \"cd\"")
	}
	if _, ok := variants["ab"]; !ok {
		t.Error("expected two-deletion variant \"ab\"")
	}
}
