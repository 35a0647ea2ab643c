package symspell

import "golang.org/x/text/cases"

// foldCaser performs full Unicode case folding (not byte-wise ToLower), so
// that e.g. "Å" and "å" collide the same way at ingest and at lookup (spec
// section 9, "Case-folding").
var foldCaser = cases.Fold()

// foldCase is the single case-folding boundary used by both ingestion and
// lookup; every string that becomes a map key in the index passes through
// this function exactly once.
func foldCase(s string) string {
	return foldCaser.String(s)
}
