package symspell

import (
	"strings"
	"testing"
)

func TestLoadDictionaryParsesTermAndCount(t *testing.T) {
	data := "the 1000\nquick 50\nfox 30\n"
	d := NewDictionary(DefaultConfig())

	ok := d.LoadDictionary(strings.NewReader(data), 0, 1)
	if !ok {
		t.Fatal("LoadDictionary should succeed on a well-formed stream")
	}

	c := d.Build()
	if c.WordCount() != 3 {
		t.Errorf("WordCount() = %d, want 3", c.WordCount())
	}
	suggestions, err := c.Lookup("the", Top, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Count != 1000 {
		t.Errorf("expected the:1000, got %+v", suggestions)
	}
}

func TestLoadDictionarySkipsMalformedLines(t *testing.T) {
	data := "the 1000\nmalformed\nfox notanumber\nquick 50\n\n"
	d := NewDictionary(DefaultConfig())

	d.LoadDictionary(strings.NewReader(data), 0, 1)

	if d.ix.skippedLines != 2 {
		t.Errorf("skippedLines = %d, want 2", d.ix.skippedLines)
	}
	if d.ix.wordCount() != 2 {
		t.Errorf("wordCount = %d, want 2 (the, quick)", d.ix.wordCount())
	}
}

func TestLoadDictionaryRespectsColumnOrder(t *testing.T) {
	data := "1000 the\n50 quick\n"
	d := NewDictionary(DefaultConfig())

	d.LoadDictionary(strings.NewReader(data), 1, 0)

	c := d.Build()
	suggestions, err := c.Lookup("the", Top, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Count != 1000 {
		t.Errorf("expected the:1000 with swapped columns, got %+v", suggestions)
	}
}

func TestCreateDictionaryTokenizesLetterRuns(t *testing.T) {
	text := "The quick, brown fox -- jumps! Over the lazy dog. 123 The."
	d := NewDictionary(DefaultConfig())

	d.CreateDictionary(strings.NewReader(text))

	c := d.Build()
	// "the" appears 3 times (case-folded).
	suggestions, err := c.Lookup("the", Top, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Count != 3 {
		t.Errorf("expected the:3, got %+v", suggestions)
	}
}

func TestCreateDictionaryEntryReturnsFreshness(t *testing.T) {
	d := NewDictionary(DefaultConfig())
	if fresh := d.CreateDictionaryEntry("word", 1); !fresh {
		t.Error("first call should report fresh insertion")
	}
	if fresh := d.CreateDictionaryEntry("word", 1); fresh {
		t.Error("second call on same term should not report fresh insertion")
	}
}

func TestCreateDictionaryEntryRejectsEmptyTerm(t *testing.T) {
	d := NewDictionary(DefaultConfig())
	if fresh := d.CreateDictionaryEntry("", 1); fresh {
		t.Error("empty term should not be added")
	}
}

func TestBuildIdempotentWordCountAndEntryCount(t *testing.T) {
	entries := []DictionaryEntry{
		{Term: "alpha", Count: 5}, {Term: "beta", Count: 3}, {Term: "gamma", Count: 8},
	}

	build := func() (int, int) {
		d := NewDictionary(DefaultConfig())
		for _, e := range entries {
			d.CreateDictionaryEntry(e.Term, e.Count)
		}
		c := d.Build()
		return c.WordCount(), c.EntryCount()
	}

	w1, e1 := build()
	w2, e2 := build()
	if w1 != w2 || e1 != e2 {
		t.Errorf("rebuilding from the same stream should be idempotent: (%d,%d) vs (%d,%d)", w1, e1, w2, e2)
	}
}

func TestLoadSourceDrainsTermSource(t *testing.T) {
	d := NewDictionary(DefaultConfig())
	src := SliceTermSource{{Term: "one", Count: 1}, {Term: "two", Count: 2}}

	if err := d.LoadSource(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ix.wordCount() != 2 {
		t.Errorf("wordCount = %d, want 2", d.ix.wordCount())
	}
}
