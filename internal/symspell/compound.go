package symspell

import (
	"math"
	"strings"
)

// boundaryInsertionCost is the heuristic "+1" spec section 4.6 assigns to a
// split-and-rejoin candidate's combined distance: a stand-in for the
// insertion of the space the split introduces. See DESIGN.md, Open
// Question 1 for why it is a named constant rather than a literal.
const boundaryInsertionCost = 1

// unknownTermPriorBase is the Zipfian pseudo-count numerator spec section
// 4.6 uses for tokens with no dictionary entry: probability ~= base / 10^len.
const unknownTermPriorBase = 10.0

// IgnoreTokenFunc decides whether a raw token should pass through
// LookupCompound unchanged, e.g. to skip numbers (spec section 4.6, step 2).
type IgnoreTokenFunc func(token string) bool

type compoundTerm struct {
	text     string
	distance int
	count    uint64
	isSplit  bool
}

// lookupCompound implements spec section 4.6: per-token correction with
// split-and-rejoin and single-step merge-with-previous, emitting one
// corrected sentence plus a summed distance and log-probability score.
func (ix *index) lookupCompound(sentence string, maxEditDistance int, ignore IgnoreTokenFunc) (CompoundResult, error) {
	if maxEditDistance < 0 || maxEditDistance > ix.cfg.MaxDictionaryEditDistance {
		return CompoundResult{}, ErrInvalidEditDistance
	}

	tokens := strings.Fields(sentence)
	if len(tokens) == 0 {
		return CompoundResult{}, nil
	}

	emitted := make([]compoundTerm, 0, len(tokens))

	for _, token := range tokens {
		if ignore != nil && ignore(token) {
			emitted = append(emitted, compoundTerm{text: token, distance: 0, count: 0})
			continue
		}

		cur := ix.bestSingleSuggestion(token, maxEditDistance)
		split, hasSplit := ix.bestSplit(token, maxEditDistance)

		chosen := cur
		if hasSplit {
			switch {
			case split.distance < chosen.distance:
				chosen = split
			case split.distance == chosen.distance && ix.splitScore(split) > ix.splitScore(chosen):
				chosen = split
			}
		}

		emitted = append(emitted, chosen)

		if len(emitted) >= 2 {
			ix.tryMerge(&emitted, maxEditDistance)
		}
	}

	text := make([]string, len(emitted))
	totalDistance := 0
	score := 0.0
	for i, t := range emitted {
		text[i] = t.text
		totalDistance += t.distance
		score += ix.logProbability(t.text, t.count)
	}

	return CompoundResult{
		Text:     strings.Join(text, " "),
		Distance: totalDistance,
		Score:    score,
	}, nil
}

// bestSingleSuggestion runs Lookup(token, Top, maxEditDistance) and falls
// back to the unverified token with a penalty distance/score when nothing
// qualifies (spec section 4.6, edge cases).
func (ix *index) bestSingleSuggestion(token string, maxEditDistance int) compoundTerm {
	folded := foldCase(token)
	suggestions, err := ix.lookup(token, Top, maxEditDistance)
	if err == nil && len(suggestions) > 0 {
		best := suggestions[0]
		return compoundTerm{text: best.Term, distance: best.Distance, count: best.Count}
	}
	return compoundTerm{text: folded, distance: maxEditDistance + 1, count: 0}
}

// bestSplit evaluates every left/right split of token, keeping the one with
// the lowest combined distance and, among those, the best combined score
// (spec section 4.6, step 2, "split-and-rejoin").
func (ix *index) bestSplit(token string, maxEditDistance int) (compoundTerm, bool) {
	runes := []rune(token)
	if len(runes) < 2 {
		return compoundTerm{}, false
	}

	var best compoundTerm
	var bestScore float64
	found := false

	for i := 1; i < len(runes); i++ {
		left := string(runes[:i])
		right := string(runes[i:])

		leftSug := ix.bestSingleSuggestion(left, maxEditDistance)
		rightSug := ix.bestSingleSuggestion(right, maxEditDistance)

		dist := leftSug.distance
		if rightSug.distance > dist {
			dist = rightSug.distance
		}
		dist += boundaryInsertionCost

		candidate := compoundTerm{
			text:     leftSug.text + " " + rightSug.text,
			distance: dist,
			count:    minUint64(leftSug.count, rightSug.count),
			isSplit:  true,
		}

		score := ix.splitScore(candidate)
		if !found || candidate.distance < best.distance || (candidate.distance == best.distance && score > bestScore) {
			best = candidate
			bestScore = score
			found = true
		}
	}

	return best, found
}

// splitScore is the product-of-probabilities-over-bigram-prior score spec
// section 4.6 defines for ranking split candidates against each other and
// against the unsplit suggestion.
func (ix *index) splitScore(t compoundTerm) float64 {
	parts := strings.Fields(t.text)
	if len(parts) == 0 {
		return math.Inf(-1)
	}
	p := 1.0
	for _, part := range parts {
		p *= ix.termProbability(part)
	}
	if len(parts) > 1 {
		p /= ix.cfg.CorpusSize
	}
	return p
}

// tryMerge folds the last emitted term into its predecessor when the
// combined correction is no farther from the input than the two terms'
// summed distance and scores strictly better than keeping them separate
// (spec section 4.6, step 2, "Merge with previous"; spec section 9, single
// merge step only, no chained bigram merges).
func (ix *index) tryMerge(emitted *[]compoundTerm, maxEditDistance int) {
	n := len(*emitted)
	prev := (*emitted)[n-2]
	cur := (*emitted)[n-1]

	if prev.isSplit || cur.isSplit {
		return
	}

	merged := ix.bestSingleSuggestion(prev.text+cur.text, maxEditDistance)

	separateScore := ix.logProbability(prev.text, prev.count) + ix.logProbability(cur.text, cur.count)
	mergedScore := ix.logProbability(merged.text, merged.count)

	if merged.distance <= prev.distance+cur.distance && mergedScore > separateScore {
		(*emitted)[n-2] = merged
		*emitted = (*emitted)[:n-1]
	}
}

// termProbability is the Naive-Bayes P(word) estimate spec section 4.6
// step 3 defines: count/corpusSize for known terms, a Zipfian pseudo-count
// for terms absent from the index.
func (ix *index) termProbability(term string) float64 {
	folded := foldCase(term)
	if entry, ok := ix.canonical[folded]; ok && entry.id != -1 {
		return float64(ix.counts[entry.id]) / ix.cfg.CorpusSize
	}
	return unknownTermPriorBase / math.Pow(10, float64(len([]rune(folded))))
}

// logProbability is termProbability's log, evaluated against the index's
// own accumulated totalCount rather than the fixed CorpusSize prior, so the
// final composite score reflects what was actually built (spec section
// 4.6, step 3: "a term's probability is count / Sum counts").
func (ix *index) logProbability(term string, count uint64) float64 {
	folded := foldCase(term)
	if entry, ok := ix.canonical[folded]; ok && entry.id != -1 && ix.totalCount > 0 {
		return math.Log(float64(ix.counts[entry.id]) / float64(ix.totalCount))
	}
	p := unknownTermPriorBase / math.Pow(10, float64(len([]rune(folded))))
	return math.Log(p)
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
