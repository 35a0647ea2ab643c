// Package symspell implements the Symmetric Delete spelling correction
// algorithm over a frequency-weighted vocabulary: bounded Damerau-Levenshtein
// lookup backed by a pre-computed delete-variant index, plus compound
// (multi-word) correction built on top of single-word lookup.
package symspell

import (
	"errors"
	"time"
)

// Verbosity controls how many suggestions a Lookup call returns.
type Verbosity int

const (
	// Top returns at most one suggestion: the lowest distance, highest
	// count, lexicographically smallest term.
	Top Verbosity = iota
	// Closest returns every suggestion tied at the minimal observed distance.
	Closest
	// All returns every suggestion within the requested edit distance.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "top"
	case Closest:
		return "closest"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// ParseVerbosity parses the CLI/HTTP spelling of a verbosity level.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "top", "":
		return Top, nil
	case "closest":
		return Closest, nil
	case "all":
		return All, nil
	default:
		return Top, errInvalidVerbosity(s)
	}
}

type errInvalidVerbosity string

func (e errInvalidVerbosity) Error() string {
	return "symspell: unknown verbosity " + string(e)
}

// ErrInvalidEditDistance is returned when a caller requests a maxEditDistance
// outside [0, Config.MaxDictionaryEditDistance].
var ErrInvalidEditDistance = errors.New("symspell: maxEditDistance out of range")

// Config holds the parameters fixed at corrector construction time (spec
// section 3, "Configuration"). The zero value is not valid; use DefaultConfig.
type Config struct {
	// MaxDictionaryEditDistance bounds the k supported by the index.
	MaxDictionaryEditDistance int

	// PrefixLength is the number of leading runes of a term that
	// participate in delete-set generation. Must be >= MaxDictionaryEditDistance.
	PrefixLength int

	// CountThreshold is the minimum count for a term to be indexed and
	// surfaced by lookups; terms below it are recorded only as accumulators.
	CountThreshold uint64

	// InitialCapacity hints how many canonical terms to expect, used to
	// pre-size the fingerprint map.
	InitialCapacity int

	// CorpusSize is the "N" in the classic Naive-Bayes P(word) = count / N
	// estimate used while scoring compound split/merge candidates. The
	// default reproduces the corpus-size constant used by the reference
	// SymSpell ports (see DESIGN.md, Open Question 3).
	CorpusSize float64
}

const defaultCorpusSize = 1024908267229.0

// DefaultConfig returns the conventional SymSpell defaults.
func DefaultConfig() Config {
	return Config{
		MaxDictionaryEditDistance: 2,
		PrefixLength:              7,
		CountThreshold:            1,
		InitialCapacity:           16,
		CorpusSize:                defaultCorpusSize,
	}
}

// Suggestion is one result of Lookup, or a component of LookupCompound.
type Suggestion struct {
	Term     string
	Distance int
	Count    uint64
}

// CompoundResult is the outcome of LookupCompound: a single corrected
// sentence, the sum of per-token distances, and a composite log-probability
// score (spec section 4.6).
type CompoundResult struct {
	Text     string
	Distance int
	Score    float64
}

// DictionaryEntry is a (term, count) pair as ingested by the builder.
type DictionaryEntry struct {
	Term  string
	Count uint64
}

// DictionaryStats summarizes a built index, for CLI/ops observability.
type DictionaryStats struct {
	TermCount    int
	EntryCount   int
	TotalCount   uint64
	MaxCount     uint64
	BuildTime    time.Duration
	SkippedLines int
}
