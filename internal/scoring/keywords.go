package scoring

import "strings"

// matchKeywords partitions terms into those contained in text (case-insensitive
// substring) and those absent. Both slices keep the order of terms.
func matchKeywords(text string, terms []string) (found, absent []string) {
	lower := strings.ToLower(text)
	found = make([]string, 0, len(terms))
	absent = make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		} else {
			absent = append(absent, term)
		}
	}
	return found, absent
}
