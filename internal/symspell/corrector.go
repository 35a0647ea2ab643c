package symspell

import (
	"sync"
	"time"
)

// Corrector is the read-only, concurrency-safe facade over a built index
// (spec section 5). Construction is the only writing phase; every method
// here takes the read lock, so a Corrector may be queried from many
// goroutines once its Dictionary has finished ingesting.
type Corrector struct {
	mu        sync.RWMutex
	ix        *index
	buildTime time.Duration
}

// Lookup is spec section 4.5 and 6's public operation.
func (c *Corrector) Lookup(input string, verbosity Verbosity, maxEditDistance int) ([]Suggestion, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ix.lookup(input, verbosity, maxEditDistance)
}

// LookupCompound is spec section 4.6 and 6's public operation.
func (c *Corrector) LookupCompound(sentence string, maxEditDistance int, ignore IgnoreTokenFunc) (CompoundResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ix.lookupCompound(sentence, maxEditDistance, ignore)
}

// WordCount is the number of canonical terms at or above CountThreshold
// (spec section 6, read-only accessors).
func (c *Corrector) WordCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ix.wordCount()
}

// EntryCount is the number of distinct fingerprints in the index.
func (c *Corrector) EntryCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ix.entryCount()
}

// MaxDictionaryEditDistance is the k the index was built to support.
func (c *Corrector) MaxDictionaryEditDistance() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ix.cfg.MaxDictionaryEditDistance
}

// Stats summarizes the built index for CLI/ops observability.
func (c *Corrector) Stats() DictionaryStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := c.ix.stats()
	stats.BuildTime = c.buildTime
	return stats
}

// Global corrector singleton, mirroring the single-process, single-loaded-
// dictionary deployment shape most CLI and HTTP callers want.
var (
	globalCorrector     *Corrector
	globalCorrectorOnce sync.Once
	globalCorrectorErr  error
)

// GetCorrector returns the global corrector instance, or nil if it has not
// been initialized.
func GetCorrector() *Corrector {
	return globalCorrector
}

// InitGlobalCorrector builds the global corrector exactly once, from the
// given sources and configuration. Subsequent calls are no-ops that return
// the first call's error, if any.
func InitGlobalCorrector(cfg Config, sources ...TermSource) error {
	globalCorrectorOnce.Do(func() {
		c, err := BuildDictionary(cfg, sources...)
		if err != nil {
			globalCorrectorErr = err
			return
		}
		globalCorrector = c
	})
	return globalCorrectorErr
}

// InitWithEntries builds and installs the global corrector from a fixed
// slice of entries, bypassing any external source. Intended for tests.
func InitWithEntries(entries []DictionaryEntry, cfg Config) *Corrector {
	c, err := BuildDictionary(cfg, SliceTermSource(entries))
	if err != nil {
		// SliceTermSource.Terms never errors; this path is unreachable.
		panic(err)
	}
	globalCorrector = c
	return c
}
