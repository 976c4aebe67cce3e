package scoring

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	idealKeywordCount  = 10
	maxMissingKeywords = 5

	keywordWeight     = 0.4
	readabilityWeight = 0.3
	formatWeight      = 0.3
)

// Engine computes ATS scores. The zero value is not usable; construct with NewEngine.
// An Engine is safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the pseudo-random source used to sample missing keywords.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed pins missing-keyword sampling to a deterministic sequence.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewEngine constructs an Engine. Without options the random source is seeded from
// system entropy, so Keywords.Missing varies between calls on identical input.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return e
}

var defaultEngine = NewEngine()

// Analyze scores text with the package default engine.
func Analyze(text string) Result {
	return defaultEngine.Analyze(text)
}

// Analyze scores resume text. It never fails; degenerate input such as the empty
// string yields the documented fallback values.
func (e *Engine) Analyze(text string) Result {
	found, absent := matchKeywords(text, vocabulary)
	keywordMatch := keywordMatchScore(len(found))
	readability := readabilityScore(text)
	format := formatScore(text)
	ats := roundHalfUp(keywordWeight*float64(keywordMatch) +
		readabilityWeight*float64(readability) +
		formatWeight*float64(format))

	sig := signals{
		ats:          ats,
		keywordMatch: keywordMatch,
		readability:  readability,
		format:       format,
		found:        found,
		missing:      e.sample(absent, maxMissingKeywords),
		foundSet:     make(map[string]bool, len(found)),
	}
	for _, kw := range found {
		sig.foundSet[kw] = true
	}

	return Result{
		ATSScore:     ats,
		KeywordMatch: keywordMatch,
		Readability:  readability,
		FormatScore:  format,
		Feedback: Feedback{
			Strengths:    strengths(sig),
			Weaknesses:   weaknesses(sig),
			Improvements: improvements(sig),
		},
		Keywords: Keywords{
			Found:   found,
			Missing: sig.missing,
		},
	}
}

// sample returns up to n terms from a uniform random permutation of terms.
func (e *Engine) sample(terms []string, n int) []string {
	shuffled := make([]string, len(terms))
	copy(shuffled, terms)
	e.mu.Lock()
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	e.mu.Unlock()
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

func keywordMatchScore(found int) int {
	score := roundHalfUp(float64(found) / idealKeywordCount * 100)
	if score > 100 {
		return 100
	}
	return score
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
