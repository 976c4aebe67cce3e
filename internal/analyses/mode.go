package analyses

import (
	"fmt"
	"strings"
)

// AnalysisMode selects what an upload is scored for.
type AnalysisMode string

const (
	// ModeATS scores the resume on its own.
	ModeATS AnalysisMode = "ATS"
	// ModeJobMatch also scores relevance against a job description.
	ModeJobMatch AnalysisMode = "JOB_MATCH"
)

var modes = map[string]AnalysisMode{
	string(ModeATS):      ModeATS,
	string(ModeJobMatch): ModeJobMatch,
}

// ParseMode normalizes a mode string. Empty input means ModeATS.
func ParseMode(raw string) (AnalysisMode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return ModeATS, nil
	}
	if mode, ok := modes[normalized]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("analysis mode %q is invalid", raw)
}
