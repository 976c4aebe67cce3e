package scoring

import (
	"fmt"
	"strings"
)

const (
	minStrengths  = 3
	minWeaknesses = 2
	suggestedKeys = 3
)

// feedbackRule contributes zero or more lines when applies reports true.
// Rules are evaluated in slice order.
type feedbackRule struct {
	id      string
	applies func(signals) bool
	lines   func(signals) []string
}

func fixed(lines ...string) func(signals) []string {
	return func(signals) []string { return lines }
}

var strengthRules = []feedbackRule{
	{
		id:      "ats-compatible",
		applies: func(s signals) bool { return s.ats > 70 },
		lines:   fixed("Your resume has good overall ATS compatibility."),
	},
	{
		id:      "keyword-presence",
		applies: func(s signals) bool { return len(s.found) > 5 },
		lines: func(s signals) []string {
			return []string{fmt.Sprintf("Strong keyword presence with %d relevant industry terms.", len(s.found))}
		},
	},
	{
		id:      "frontend-stack",
		applies: func(s signals) bool { return s.has("javascript") && s.has("react") },
		lines:   fixed("Good demonstration of frontend technology stack."),
	},
	{
		id:      "backend-stack",
		applies: func(s signals) bool { return s.has("node") || s.has("python") },
		lines:   fixed("Backend technologies well represented."),
	},
	{
		id:      "process-knowledge",
		applies: func(s signals) bool { return s.has("agile") || s.has("project management") },
		lines:   fixed("Strong indication of process knowledge and project experience."),
	},
}

var strengthFillers = []string{
	"Resume has a clear structure that ATS systems can process.",
	"Content appears to be relevant to the technology industry.",
	"Length and depth of content is appropriate for ATS scanning.",
}

var weaknessRules = []feedbackRule{
	{
		id:      "ats-risk",
		applies: func(s signals) bool { return s.ats < 70 },
		lines:   fixed("Your resume may struggle to pass through some ATS systems."),
	},
	{
		id:      "keyword-gap",
		applies: func(s signals) bool { return s.keywordMatch < 60 },
		lines:   fixed("Limited presence of industry-relevant keywords."),
	},
	{
		id:      "readability-gap",
		applies: func(s signals) bool { return s.readability < 65 },
		lines:   fixed("Sentence structure and complexity may reduce readability."),
	},
	{
		id:      "format-gap",
		applies: func(s signals) bool { return s.format < 70 },
		lines:   fixed("Resume format is not optimized for ATS scanning."),
	},
}

var weaknessFillers = []string{
	"Could benefit from more specific achievements with measurable results.",
	"Experience descriptions may lack sufficient detail for keyword matching.",
}

var improvementRules = []feedbackRule{
	{
		id:      "add-keywords",
		applies: func(s signals) bool { return s.keywordMatch < 75 && len(s.missing) > 0 },
		lines: func(s signals) []string {
			top := s.missing
			if len(top) > suggestedKeys {
				top = top[:suggestedKeys]
			}
			return []string{fmt.Sprintf("Add industry-specific keywords like: %s.", strings.Join(top, ", "))}
		},
	},
	{
		id:      "shorter-sentences",
		applies: func(s signals) bool { return s.readability < 70 },
		lines: fixed(
			"Use shorter, clearer sentences to improve readability.",
			"Break down complex descriptions into bullet points.",
		),
	},
	{
		id:      "clear-sections",
		applies: func(s signals) bool { return s.format < 80 },
		lines: fixed(
			"Ensure distinct sections with clear headings for experience, education, and skills.",
			"Use standard section titles that ATS systems can recognize.",
		),
	},
	{
		id:      "closing",
		applies: func(signals) bool { return true },
		lines: fixed(
			"Quantify achievements with specific metrics and results.",
			"Tailor your resume keywords to match the job description.",
			"Avoid complex tables, graphics, or unusual formatting that ATS might not process correctly.",
		),
	},
}

func evaluate(rules []feedbackRule, s signals) []string {
	out := make([]string, 0, len(rules)+2)
	for _, rule := range rules {
		if rule.applies(s) {
			out = append(out, rule.lines(s)...)
		}
	}
	return out
}

// padded appends every filler line when fewer than min lines were produced.
func padded(lines []string, min int, fillers []string) []string {
	if len(lines) < min {
		lines = append(lines, fillers...)
	}
	return lines
}

func strengths(s signals) []string {
	return padded(evaluate(strengthRules, s), minStrengths, strengthFillers)
}

func weaknesses(s signals) []string {
	return padded(evaluate(weaknessRules, s), minWeaknesses, weaknessFillers)
}

func improvements(s signals) []string {
	return evaluate(improvementRules, s)
}
