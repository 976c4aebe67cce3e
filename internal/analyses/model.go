package analyses

import (
	"resume-ats/internal/documents"
	"resume-ats/internal/scoring"
)

// ResumeAnalysis is the rendered text of a builder resume and its score.
type ResumeAnalysis struct {
	Text     string
	Analysis scoring.Result
}

// JobMatch pairs the relevance of a resume to a job description with its ATS analysis.
type JobMatch struct {
	Relevance scoring.RelevanceResult
	Analysis  scoring.Result
}

// UploadInput describes an uploaded file to analyze.
type UploadInput struct {
	FileName       string
	MimeType       string
	Mode           AnalysisMode
	JobDescription string
}

// UploadAnalysis is the outcome of analyzing an uploaded file.
type UploadAnalysis struct {
	Document  documents.Document
	Mode      AnalysisMode
	Analysis  scoring.Result
	Relevance *scoring.RelevanceResult
}
