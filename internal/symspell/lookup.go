package symspell

import "sort"

// lookup implements spec section 4.5: bounded candidate enumeration over
// delete-variants of the (prefix-truncated) input, verified against the
// canonical store by the distance kernel, shaped by verbosity.
func (ix *index) lookup(input string, v Verbosity, maxEditDistance int) ([]Suggestion, error) {
	if maxEditDistance < 0 || maxEditDistance > ix.cfg.MaxDictionaryEditDistance {
		return nil, ErrInvalidEditDistance
	}

	in := foldCase(input)
	inLen := len([]rune(in))
	prefixIn := runePrefix(in, ix.cfg.PrefixLength)
	prefixInLen := len([]rune(prefixIn))

	var results []Suggestion
	reported := make(map[int32]struct{}, 8)

	// Exact hit: distance 0 always qualifies, independent of prefixLength.
	if entry, ok := ix.canonical[in]; ok && entry.id != -1 {
		results = append(results, Suggestion{Term: in, Distance: 0, Count: ix.counts[entry.id]})
		reported[entry.id] = struct{}{}
		if v == Top {
			return results, nil
		}
	}

	bestDistance := maxEditDistance

	emit := func(id int32, d int) {
		term := ix.terms[id]
		count := ix.counts[id]
		switch v {
		case Top:
			if len(results) == 0 {
				results = append(results, Suggestion{Term: term, Distance: d, Count: count})
				return
			}
			best := results[0]
			if d < best.Distance || (d == best.Distance && (count > best.Count || (count == best.Count && term < best.Term))) {
				results[0] = Suggestion{Term: term, Distance: d, Count: count}
			}
		case Closest:
			if d < bestDistance {
				bestDistance = d
				kept := results[:0]
				for _, s := range results {
					if s.Distance <= bestDistance {
						kept = append(kept, s)
					}
				}
				results = kept
			}
			if d <= bestDistance {
				results = append(results, Suggestion{Term: term, Distance: d, Count: count})
			}
		default: // All
			results = append(results, Suggestion{Term: term, Distance: d, Count: count})
		}
	}

	considerTermID := func(id int32) {
		if _, done := reported[id]; done {
			return
		}
		reported[id] = struct{}{}
		candidateTerm := ix.terms[id]

		lowerBound := inLen - len([]rune(candidateTerm))
		if lowerBound < 0 {
			lowerBound = -lowerBound
		}
		if lowerBound > bestDistance {
			return
		}

		d := damerauLevenshtein(in, candidateTerm, bestDistance)
		if d < 0 || d > maxEditDistance {
			return
		}
		emit(id, d)
	}

	candidates := []string{prefixIn}
	examined := map[string]struct{}{prefixIn: {}}

	for i := 0; i < len(candidates); i++ {
		candidate := candidates[i]
		candidateLen := len([]rune(candidate))
		stopDepth := prefixInLen - candidateLen

		if stopDepth > bestDistance {
			break // BFS order: every remaining candidate has depth >= this one
		}

		if fp, ok := ix.fingerprints[fingerprintHash(candidate)]; ok {
			for _, id := range fp.ids() {
				considerTermID(id)
			}
		}

		if candidateLen <= 1 {
			continue
		}

		runes := []rune(candidate)
		for k := range runes {
			variant := make([]rune, 0, len(runes)-1)
			variant = append(variant, runes[:k]...)
			variant = append(variant, runes[k+1:]...)
			s := string(variant)
			if _, seen := examined[s]; seen {
				continue
			}
			examined[s] = struct{}{}
			enqueueDepth := prefixInLen - len(variant)
			if enqueueDepth > bestDistance || enqueueDepth > maxEditDistance {
				continue
			}
			candidates = append(candidates, s)
		}
	}

	sortSuggestions(results)
	return results, nil
}

// sortSuggestions applies the deterministic ordering spec section 4.5 and
// 9 require: ascending distance, descending count, ascending term.
func sortSuggestions(s []Suggestion) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Distance != s[j].Distance {
			return s[i].Distance < s[j].Distance
		}
		if s[i].Count != s[j].Count {
			return s[i].Count > s[j].Count
		}
		return s[i].Term < s[j].Term
	})
}
