package symspell

// generateDeletes produces every string obtainable by deleting 1 to
// maxDistance runes from word, plus word itself, deduplicated (spec section
// 4.2). It is a depth-first enumeration: at each depth d <= maxDistance it
// removes one rune at each position and recurses on the result.
// Deletion stops at one remaining rune: the empty string is never produced,
// so a word of one rune yields only itself.
//
// The builder calls this only on the already-truncated prefix of a term
// (word[:min(len(word), prefixLength)]); this function has no notion of
// prefixLength itself.
func generateDeletes(word string, maxDistance int) map[string]struct{} {
	result := make(map[string]struct{}, 4)
	result[word] = struct{}{}
	if maxDistance <= 0 {
		return result
	}

	runes := []rune(word)
	if len(runes) <= 1 {
		return result
	}

	var recurse func(w []rune, depth int)
	recurse = func(w []rune, depth int) {
		if depth >= maxDistance {
			return
		}
		for i := range w {
			variant := make([]rune, 0, len(w)-1)
			variant = append(variant, w[:i]...)
			variant = append(variant, w[i+1:]...)
			s := string(variant)
			if _, seen := result[s]; seen {
				continue
			}
			result[s] = struct{}{}
			if len(variant) > 1 {
				recurse(variant, depth+1)
			}
		}
	}
	recurse(runes, 0)
	return result
}
