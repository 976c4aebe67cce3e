package scoring

import (
	"math"
	"regexp"
	"strings"
)

const idealSentenceLength = 15

var sentenceTerminator = regexp.MustCompile(`[.!?]+`)

// readabilityScore penalizes deviation of the mean sentence length from 15 words,
// five points per word, floored at 50. Text without sentences scores 100.
func readabilityScore(text string) int {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 100
	}
	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s))
	}
	avg := float64(words) / float64(len(sentences))
	penalty := math.Min(math.Abs(avg-idealSentenceLength)*5, 50)
	return roundHalfUp(100 - penalty)
}

func splitSentences(text string) []string {
	parts := sentenceTerminator.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
