package scoring

import "strings"

const (
	bulletPoints     = 40
	multipleSections = 40
	baseFormat       = 20
	minSections      = 4
)

func formatScore(text string) int {
	score := baseFormat
	if hasBulletPoints(text) {
		score += bulletPoints
	}
	if countSections(text) >= minSections {
		score += multipleSections
	}
	return score
}

func hasBulletPoints(text string) bool {
	return strings.ContainsAny(text, "•*-")
}

// countSections counts blank-line separated segments. CRLF input is normalized first.
func countSections(text string) int {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return len(strings.Split(normalized, "\n\n"))
}
