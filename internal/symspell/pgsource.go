package symspell

import (
	"database/sql"
	"fmt"
)

// PostgresTermSource is a TermSource backed by a SQL query returning two
// columns: a term and its count. Grounded on the dictionary builder's
// pattern of a parameterized GROUP BY ... HAVING query against a
// vocabulary table, generalized from address tokens to any term column.
//
// The anonymous import of github.com/lib/pq in internal/config (see
// config.Postgres.Open) registers the "postgres" sql.DB driver;
// PostgresTermSource itself only needs a live *sql.DB and is driver-agnostic.
type PostgresTermSource struct {
	DB    *sql.DB
	Query string // must SELECT (term, count); may contain $1 = minCount
	Args  []any
}

// NewPostgresTermSource builds a source that runs query with args and
// treats each row as (term, count).
func NewPostgresTermSource(db *sql.DB, query string, args ...any) *PostgresTermSource {
	return &PostgresTermSource{DB: db, Query: query, Args: args}
}

func (s *PostgresTermSource) Terms() ([]DictionaryEntry, error) {
	rows, err := s.DB.Query(s.Query, s.Args...)
	if err != nil {
		return nil, fmt.Errorf("symspell: querying term source: %w", err)
	}
	defer rows.Close()

	var entries []DictionaryEntry
	for rows.Next() {
		var entry DictionaryEntry
		var count int64
		if err := rows.Scan(&entry.Term, &count); err != nil {
			return nil, fmt.Errorf("symspell: scanning term row: %w", err)
		}
		if count < 0 {
			count = 0
		}
		entry.Count = uint64(count)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DefaultVocabularyQuery is a starting point for counting token frequency
// from a free-text column: replace the table/column names to fit a given
// schema. $1 binds the minimum row count (HAVING clause) used to suppress
// rare, likely-noise terms before they ever reach CreateDictionaryEntry.
const DefaultVocabularyQuery = `
SELECT term, COUNT(*) AS freq
FROM vocabulary_tokens
GROUP BY term
HAVING COUNT(*) >= $1
ORDER BY freq DESC
`
