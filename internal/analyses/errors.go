package analyses

import "errors"

var (
	ErrAnalysisFailed = errors.New("failed to analyze resume")
	ErrInvalidInput   = errors.New("invalid input")
)

const (
	ErrorCodeValidation     = "VALIDATION_ERROR"
	ErrorCodeAnalysisFailed = "ANALYSIS_FAILED"
	ErrorCodeInternal       = "INTERNAL_ERROR"
)
