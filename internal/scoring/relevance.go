package scoring

const neutralRelevance = 50

// RelevanceResult describes how well a resume covers the keywords of a job description.
type RelevanceResult struct {
	Score       int      `json:"score"`
	JobKeywords []string `json:"jobKeywords"`
	Matched     []string `json:"matched"`
	Missing     []string `json:"missing"`
}

// Relevance compares resume text against a job description using the job vocabulary.
// A job description that mentions none of the vocabulary scores a neutral 50.
func Relevance(resumeText, jobDescription string) RelevanceResult {
	jobKeywords, _ := matchKeywords(jobDescription, jobVocabulary)
	inResume, _ := matchKeywords(resumeText, jobKeywords)

	res := RelevanceResult{
		Score:       neutralRelevance,
		JobKeywords: jobKeywords,
		Matched:     inResume,
		Missing:     make([]string, 0, len(jobKeywords)-len(inResume)),
	}
	matched := make(map[string]bool, len(inResume))
	for _, kw := range inResume {
		matched[kw] = true
	}
	for _, kw := range jobKeywords {
		if !matched[kw] {
			res.Missing = append(res.Missing, kw)
		}
	}
	if len(jobKeywords) > 0 {
		res.Score = roundHalfUp(float64(len(inResume)) / float64(len(jobKeywords)) * 100)
	}
	return res
}
