package symspell

// damerauLevenshtein computes the bounded Damerau-Levenshtein distance
// (with adjacent transposition as a unit edit) between s1 and s2, returning
// -1 if the true distance exceeds maxDistance (spec section 4.1).
//
// Operates on runes so multi-byte UTF-8 characters are never split across a
// substitution/transposition boundary. Equal prefixes and suffixes are
// stripped before the DP table is built, and the table itself is one
// rolling row of costs plus one array holding the previous row's diagonal
// costs (needed for transposition), never the full O(n*m) matrix.
func damerauLevenshtein(s1, s2 string, maxDistance int) int {
	if s1 == s2 {
		return 0
	}
	if maxDistance < 0 {
		maxDistance = 0
	}

	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2)-len(r1) > maxDistance {
		return -1
	}
	if len(r1) == 0 {
		if len(r2) <= maxDistance {
			return len(r2)
		}
		return -1
	}

	start := 0
	for start < len(r1) && r1[start] == r2[start] {
		start++
	}
	r1, r2 = r1[start:], r2[start:]
	for len(r1) > 0 && len(r2) > 0 && r1[len(r1)-1] == r2[len(r2)-1] {
		r1 = r1[:len(r1)-1]
		r2 = r2[:len(r2)-1]
	}

	len1, len2 := len(r1), len(r2)
	if len1 == 0 {
		if len2 <= maxDistance {
			return len2
		}
		return -1
	}

	if maxDistance < len2 {
		return damerauLevenshteinBounded(r1, r2, maxDistance)
	}
	return damerauLevenshteinFull(r1, r2)
}

// damerauLevenshteinFull runs the full-width DP with no early termination;
// used when maxDistance >= len2, where the banded version offers no savings.
func damerauLevenshteinFull(r1, r2 []rune) int {
	len1, len2 := len(r1), len(r2)
	charCosts := make([]int, len2)
	prevCharCosts := make([]int, len2)
	for j := 0; j < len2; j++ {
		charCosts[j] = j + 1
	}

	var char1, prevChar1 rune
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[i]
		var char2, prevChar2 rune
		leftCost := i
		aboveCost := i
		nextTransCost := 0
		for j := 0; j < len2; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCharCosts[j]
			prevCharCosts[j] = leftCost
			currentCost = leftCost
			leftCost = charCosts[j]
			prevChar2 = char2
			char2 = r2[j]
			if char1 != char2 {
				if aboveCost < currentCost {
					currentCost = aboveCost // deletion
				}
				if leftCost < currentCost {
					currentCost = leftCost // insertion
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1 // transposition
				}
			}
			charCosts[j] = currentCost
			aboveCost = currentCost
		}
	}
	return currentCost
}

// damerauLevenshteinBounded runs the banded DP, tracking only a window of
// width 2*maxDistance+1 around the diagonal and returning -1 as soon as the
// current row's cell on the diagonal that ends at the final cell exceeds
// maxDistance (spec's "early termination").
func damerauLevenshteinBounded(r1, r2 []rune, maxDistance int) int {
	len1, len2 := len(r1), len(r2)
	charCosts := make([]int, len2)
	prevCharCosts := make([]int, len2)
	for j := 0; j < maxDistance; j++ {
		charCosts[j] = j + 1
	}
	for j := maxDistance; j < len2; j++ {
		charCosts[j] = maxDistance + 1
	}

	lenDiff := len2 - len1
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance

	var char1, prevChar1 rune
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[i]
		var char2, prevChar2 rune
		leftCost := i
		aboveCost := i
		nextTransCost := 0

		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}

		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCharCosts[j]
			prevCharCosts[j] = leftCost
			currentCost = leftCost
			leftCost = charCosts[j]
			prevChar2 = char2
			char2 = r2[j]
			if char1 != char2 {
				if aboveCost < currentCost {
					currentCost = aboveCost
				}
				if leftCost < currentCost {
					currentCost = leftCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			charCosts[j] = currentCost
			aboveCost = currentCost
		}

		if charCosts[i+lenDiff] > maxDistance {
			return -1
		}
	}

	if currentCost <= maxDistance {
		return currentCost
	}
	return -1
}
