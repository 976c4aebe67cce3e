package scoring

// Result is the structured score report produced for one resume text.
type Result struct {
	ATSScore     int      `json:"atsScore"`
	KeywordMatch int      `json:"keywordMatch"`
	Readability  int      `json:"readability"`
	FormatScore  int      `json:"formatScore"`
	Feedback     Feedback `json:"feedback"`
	Keywords     Keywords `json:"keywords"`
}

// Feedback groups the generated feedback lines.
type Feedback struct {
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Improvements []string `json:"improvements"`
}

// Keywords lists vocabulary terms found in the text and a sample of absent ones.
type Keywords struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// signals are the intermediate values the feedback rules are evaluated against.
type signals struct {
	ats          int
	keywordMatch int
	readability  int
	format       int
	found        []string
	missing      []string
	foundSet     map[string]bool
}

func (s signals) has(term string) bool {
	return s.foundSet[term]
}
