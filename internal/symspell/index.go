package symspell

import (
	"math"

	"github.com/zeebo/xxh3"
)

// canonicalEntry tracks one case-folded term. id is -1 until the term's
// count reaches cfg.CountThreshold, during which it is only an accumulator
// (spec section 4.4, step 2) and never appears in the fingerprint map.
type canonicalEntry struct {
	id    int32
	count uint64
}

// fingerprintEntry is the tagged single-id/list representation spec section
// 4.3 and 9 require: the overwhelming majority of fingerprints collide with
// exactly one term, so that case costs nothing beyond the struct's two
// fields; only colliding fingerprints pay for the extra slice.
type fingerprintEntry struct {
	id    int32
	extra []int32
}

func (e *fingerprintEntry) ids() []int32 {
	if len(e.extra) == 0 {
		return []int32{e.id}
	}
	out := make([]int32, 0, len(e.extra)+1)
	out = append(out, e.id)
	out = append(out, e.extra...)
	return out
}

func (e *fingerprintEntry) add(id int32) {
	if e.id == id {
		return
	}
	for _, x := range e.extra {
		if x == id {
			return
		}
	}
	e.extra = append(e.extra, id)
}

// index is the immutable-after-build core data structure: a canonical store
// of case-folded terms plus a fingerprint map from delete-variant hash to
// the term(s) whose delete-set contains it (spec section 4.3).
type index struct {
	cfg Config

	canonical map[string]*canonicalEntry // folded term -> entry (below-threshold and indexed both live here)
	terms     []string                   // id -> folded term text
	counts    []uint64                   // id -> count, parallel to terms

	fingerprints map[uint64]*fingerprintEntry // xxh3(fingerprint text) -> origin

	totalCount    uint64 // sum of counts over indexed (surfaced) terms
	maxWordLength int    // longest indexed term, in runes
	skippedLines  int
}

func newIndex(cfg Config) *index {
	return &index{
		cfg:          cfg,
		canonical:    make(map[string]*canonicalEntry, cfg.InitialCapacity),
		terms:        make([]string, 0, cfg.InitialCapacity),
		counts:       make([]uint64, 0, cfg.InitialCapacity),
		fingerprints: make(map[uint64]*fingerprintEntry, cfg.InitialCapacity*4),
	}
}

func fingerprintHash(s string) uint64 {
	return xxh3.HashString(s)
}

// saturatingAdd adds b to a, clamping at math.MaxUint64 instead of
// wrapping (spec invariant: "Counts ... saturate at the type maximum").
func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func runePrefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// createEntry folds term, locates or inserts its canonical entry, applies a
// saturating count increment, and promotes the term to the fingerprint
// index the first time its count reaches cfg.CountThreshold. It reports
// whether the canonical store gained a brand new entry (spec section 6,
// CreateDictionaryEntry -> bool).
func (ix *index) createEntry(term string, increment uint64) bool {
	folded := foldCase(term)

	entry, exists := ix.canonical[folded]
	if !exists {
		entry = &canonicalEntry{id: -1}
		ix.canonical[folded] = entry
	}
	entry.count = saturatingAdd(entry.count, increment)

	switch {
	case entry.id == -1 && entry.count >= ix.cfg.CountThreshold:
		id := int32(len(ix.terms))
		entry.id = id
		ix.terms = append(ix.terms, folded)
		ix.counts = append(ix.counts, entry.count)
		if n := len([]rune(folded)); n > ix.maxWordLength {
			ix.maxWordLength = n
		}
		ix.totalCount = saturatingAdd(ix.totalCount, entry.count)
		ix.indexTerm(folded, id)
	case entry.id != -1:
		delta := entry.count - ix.counts[entry.id]
		ix.counts[entry.id] = entry.count
		ix.totalCount = saturatingAdd(ix.totalCount, delta)
	}

	return !exists
}

// indexTerm populates the fingerprint map with every delete-variant of
// term's indexing prefix (spec section 4.4, step 3).
func (ix *index) indexTerm(term string, id int32) {
	prefix := runePrefix(term, ix.cfg.PrefixLength)
	for variant := range generateDeletes(prefix, ix.cfg.MaxDictionaryEditDistance) {
		h := fingerprintHash(variant)
		if e, ok := ix.fingerprints[h]; ok {
			e.add(id)
		} else {
			ix.fingerprints[h] = &fingerprintEntry{id: id}
		}
	}
}

// wordCount returns the number of canonical terms at or above CountThreshold.
func (ix *index) wordCount() int {
	return len(ix.terms)
}

// entryCount returns the number of distinct fingerprints in the index.
func (ix *index) entryCount() int {
	return len(ix.fingerprints)
}

func (ix *index) stats() DictionaryStats {
	stats := DictionaryStats{
		TermCount:    len(ix.terms),
		EntryCount:   len(ix.fingerprints),
		TotalCount:   ix.totalCount,
		SkippedLines: ix.skippedLines,
	}
	for _, c := range ix.counts {
		if c > stats.MaxCount {
			stats.MaxCount = c
		}
	}
	return stats
}
