package analyses

import (
	"resume-ats/internal/documents"
	"resume-ats/internal/scoring"
	"resume-ats/resume/sections"
)

type analyzeRequest struct {
	Text string  `json:"text"`
	Seed *uint64 `json:"seed,omitempty"`
}

type jobMatchRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

type sectionsRequest struct {
	Text string `json:"text"`
}

type uploadResponse struct {
	Document  documents.DocumentResponse `json:"document"`
	Mode      AnalysisMode               `json:"mode"`
	Analysis  scoring.Result             `json:"analysis"`
	Relevance *scoring.RelevanceResult   `json:"relevance,omitempty"`
}

type jobMatchResponse struct {
	Relevance scoring.RelevanceResult `json:"relevance"`
	Analysis  scoring.Result          `json:"analysis"`
}

type resumeTextResponse struct {
	Text string `json:"text"`
}

type resumeAnalysisResponse struct {
	Text     string         `json:"text"`
	Analysis scoring.Result `json:"analysis"`
}

type sectionsResponse struct {
	Sections sections.Sections `json:"sections"`
}
