package symspell

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/lexicheck/symspell/internal/obslog"
)

// TermSource produces (term, count) pairs for bulk ingestion, e.g. a file
// reader, a database query, or an in-memory slice. It is the single
// extension point named in spec section 1's "external collaborators"
// list: parsing and I/O live outside the corrector.
type TermSource interface {
	Terms() ([]DictionaryEntry, error)
}

// SliceTermSource adapts a pre-built []DictionaryEntry for BuildDictionary
// and InitWithEntries, most useful in tests.
type SliceTermSource []DictionaryEntry

func (s SliceTermSource) Terms() ([]DictionaryEntry, error) {
	return []DictionaryEntry(s), nil
}

// Dictionary owns the index being built and exposes the bulk-ingestion
// operations of spec section 4.4 and 6. It is the mutation-only half of
// the corrector: once building is done, Dictionary.ix is handed to a
// Corrector and treated as read-only.
type Dictionary struct {
	ix *index
}

// NewDictionary allocates an empty dictionary ready for ingestion.
func NewDictionary(cfg Config) *Dictionary {
	return &Dictionary{ix: newIndex(cfg)}
}

// CreateDictionaryEntry is spec section 4.4's core operation: fold, locate
// or insert the canonical entry, saturate-increment its count, and index it
// the first time the count threshold is reached. Reports whether the term
// was freshly added to the canonical store (spec section 6).
func (d *Dictionary) CreateDictionaryEntry(term string, countIncrement uint64) bool {
	if term == "" {
		return false
	}
	return d.ix.createEntry(term, countIncrement)
}

// LoadDictionary parses whitespace-separated records from r, one per line,
// taking the term from column termCol and the count from column countCol
// (both zero-indexed). Lines with too few columns, or a non-numeric count,
// are skipped and counted (spec section 6 and 7, MalformedRecord).
func (d *Dictionary) LoadDictionary(r io.Reader, termCol, countCol int) bool {
	maxCol := termCol
	if countCol > maxCol {
		maxCol = countCol
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	any := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) <= maxCol {
			d.ix.skippedLines++
			obslog.L().Debug("skipping malformed dictionary line", zap.String("line", line))
			continue
		}
		count, err := strconv.ParseUint(cols[countCol], 10, 64)
		if err != nil {
			d.ix.skippedLines++
			obslog.L().Debug("skipping dictionary line with non-numeric count",
				zap.String("line", line), zap.Error(err))
			continue
		}
		d.CreateDictionaryEntry(cols[termCol], count)
		any = true
	}
	if err := scanner.Err(); err != nil {
		return false
	}
	obslog.L().Info("loaded dictionary source",
		zap.Int("skipped", d.ix.skippedLines), zap.Bool("any", any))
	return any || d.ix.skippedLines == 0
}

// CreateDictionary tokenizes r into runs of Unicode letters, case-folds
// each token, and increments its count by 1 (spec section 4.4 and 6,
// corpus ingestion).
func (d *Dictionary) CreateDictionary(r io.Reader) bool {
	reader := bufio.NewReaderSize(r, 64*1024)
	var token strings.Builder

	flush := func() {
		if token.Len() > 0 {
			d.CreateDictionaryEntry(token.String(), 1)
			token.Reset()
		}
	}

	for {
		ch, _, err := reader.ReadRune()
		if err != nil {
			flush()
			return err == io.EOF
		}
		if unicode.IsLetter(ch) {
			token.WriteRune(ch)
		} else {
			flush()
		}
	}
}

// LoadSource drains a TermSource and ingests every entry it produces.
func (d *Dictionary) LoadSource(src TermSource) error {
	entries, err := src.Terms()
	if err != nil {
		return err
	}
	for _, e := range entries {
		d.CreateDictionaryEntry(e.Term, e.Count)
	}
	return nil
}

// Build finalizes the dictionary into a read-only Corrector. Once called,
// the returned Corrector is safe for concurrent lookups from many
// goroutines (spec section 5): the underlying index is never mutated again.
func (d *Dictionary) Build() *Corrector {
	return &Corrector{ix: d.ix}
}

// BuildDictionary is a convenience wrapper: construct a Dictionary, load
// every source in order, and finalize it into a Corrector, timing the
// whole operation into the resulting DictionaryStats.
func BuildDictionary(cfg Config, sources ...TermSource) (*Corrector, error) {
	start := time.Now()
	d := NewDictionary(cfg)
	for _, src := range sources {
		if err := d.LoadSource(src); err != nil {
			return nil, err
		}
	}
	c := d.Build()
	c.buildTime = time.Since(start)
	return c, nil
}
