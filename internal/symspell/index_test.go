package symspell

import (
	"math"
	"testing"
)

func TestCreateEntryBelowThresholdNotIndexed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CountThreshold = 10
	ix := newIndex(cfg)

	ix.createEntry("pawn", 5)

	if ix.wordCount() != 0 {
		t.Fatalf("term below threshold should not be indexed, wordCount = %d", ix.wordCount())
	}
	entry, ok := ix.canonical["pawn"]
	if !ok || entry.count != 5 {
		t.Fatalf("expected accumulator entry with count 5, got %+v", entry)
	}
}

func TestCreateEntryPromotedOnThresholdReached(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CountThreshold = 10
	ix := newIndex(cfg)

	ix.createEntry("pawn", 6)
	if ix.wordCount() != 0 {
		t.Fatal("should not be promoted yet")
	}
	ix.createEntry("pawn", 4)
	if ix.wordCount() != 1 {
		t.Fatalf("expected promotion once threshold reached, wordCount = %d", ix.wordCount())
	}
}

func TestCreateEntryFreshlyAddedReport(t *testing.T) {
	ix := newIndex(DefaultConfig())
	if fresh := ix.createEntry("word", 1); !fresh {
		t.Error("first insert should report fresh = true")
	}
	if fresh := ix.createEntry("word", 1); fresh {
		t.Error("second insert of same term should report fresh = false")
	}
}

func TestCreateEntryAdditiveEquivalence(t *testing.T) {
	ixA := newIndex(DefaultConfig())
	ixA.createEntry("term", 3)
	ixA.createEntry("term", 4)

	ixB := newIndex(DefaultConfig())
	ixB.createEntry("term", 7)

	if ixA.canonical["term"].count != ixB.canonical["term"].count {
		t.Errorf("CreateDictionaryEntry(t,3);CreateDictionaryEntry(t,4) should equal CreateDictionaryEntry(t,7): got %d vs %d",
			ixA.canonical["term"].count, ixB.canonical["term"].count)
	}
}

func TestCreateEntrySaturatesAtMax(t *testing.T) {
	ix := newIndex(DefaultConfig())
	ix.createEntry("term", math.MaxUint64-1)
	ix.createEntry("term", 10)

	if ix.canonical["term"].count != math.MaxUint64 {
		t.Errorf("expected saturation at MaxUint64, got %d", ix.canonical["term"].count)
	}
}

func TestCreateEntryCaseFolded(t *testing.T) {
	ix := newIndex(DefaultConfig())
	ix.createEntry("Hello", 1)
	ix.createEntry("HELLO", 1)

	if ix.wordCount() != 1 {
		t.Fatalf("case variants of the same term should collide, wordCount = %d", ix.wordCount())
	}
	if ix.counts[0] != 2 {
		t.Errorf("expected combined count 2, got %d", ix.counts[0])
	}
}

func TestIndexTermExactMatchIsFingerprinted(t *testing.T) {
	ix := newIndex(DefaultConfig())
	ix.createEntry("hello", 1)

	h := fingerprintHash("hello")
	entry, ok := ix.fingerprints[h]
	if !ok {
		t.Fatal("zero-deletion fingerprint for the term itself must exist")
	}
	found := false
	for _, id := range entry.ids() {
		if ix.terms[id] == "hello" {
			found = true
		}
	}
	if !found {
		t.Error("fingerprint entry does not point back to the term")
	}
}

func TestFingerprintEntryCollision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrefixLength = 7
	ix := newIndex(cfg)

	// "steama" and "steamb" both delete to "steam" at distance 1.
	ix.createEntry("steama", 1)
	ix.createEntry("steamb", 1)

	h := fingerprintHash("steam")
	entry, ok := ix.fingerprints[h]
	if !ok {
		t.Fatal("expected collision fingerprint for \"steam\"")
	}
	if len(entry.ids()) != 2 {
		t.Fatalf("expected two colliding terms, got %d: %v", len(entry.ids()), entry.ids())
	}
}
