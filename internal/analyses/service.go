package analyses

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-ats/internal/documents"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/resume/contract"
	"resume-ats/resume/model"
	"resume-ats/resume/render"
	"resume-ats/resume/sections"
)

// Service runs resume analyses. It holds no per-request state.
type Service struct {
	Engine    *scoring.Engine
	Documents *documents.Service

	// AnalysisDelay is waited before scoring; GenerationDelay before rendering builder data.
	AnalysisDelay   time.Duration
	GenerationDelay time.Duration

	// CheckContract validates every result against the published JSON schema.
	CheckContract bool
}

// NewService constructs a Service. A nil engine uses a randomly seeded one.
func NewService(engine *scoring.Engine, docs *documents.Service) *Service {
	if engine == nil {
		engine = scoring.NewEngine()
	}
	return &Service{Engine: engine, Documents: docs}
}

// Analyze scores text with the service engine.
func (s *Service) Analyze(ctx context.Context, text string) (scoring.Result, error) {
	return s.AnalyzeWith(ctx, s.Engine, text)
}

// AnalyzeWith scores text with the given engine, honoring the analysis delay.
func (s *Service) AnalyzeWith(ctx context.Context, engine *scoring.Engine, text string) (result scoring.Result, err error) {
	if engine == nil {
		engine = s.Engine
	}
	if engine == nil {
		engine = scoring.NewEngine()
	}

	start := time.Now()
	metrics.IncAnalysisStarted()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrAnalysisFailed, rec)
		}
		if err != nil {
			metrics.IncAnalysisFailed()
			telemetry.Error("analysis.failed", logFields(ctx, map[string]any{
				"error": err.Error(),
			}))
		}
	}()

	if err := wait(ctx, s.AnalysisDelay); err != nil {
		return scoring.Result{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	result = engine.Analyze(text)
	if s.CheckContract {
		if err := contract.ValidateAnalysis(result); err != nil {
			return scoring.Result{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
		}
	}

	elapsed := metrics.SinceMillis(start)
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(elapsed)
	metrics.ObserveATSScore(result.ATSScore)
	telemetry.Info("analysis.complete", logFields(ctx, map[string]any{
		"ats_score":     result.ATSScore,
		"keyword_match": result.KeywordMatch,
		"readability":   result.Readability,
		"format_score":  result.FormatScore,
		"found":         len(result.Keywords.Found),
		"duration_ms":   elapsed,
	}))
	return result, nil
}

// RenderResume validates builder data and renders it as plain text.
func (s *Service) RenderResume(ctx context.Context, data model.ResumeData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	if err := wait(ctx, s.GenerationDelay); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	return render.ToText(data), nil
}

// AnalyzeResume renders builder data and scores the resulting text.
func (s *Service) AnalyzeResume(ctx context.Context, data model.ResumeData) (ResumeAnalysis, error) {
	text, err := s.RenderResume(ctx, data)
	if err != nil {
		return ResumeAnalysis{}, err
	}
	result, err := s.Analyze(ctx, text)
	if err != nil {
		return ResumeAnalysis{}, err
	}
	return ResumeAnalysis{Text: text, Analysis: result}, nil
}

// AnalyzeUpload obtains the text of an uploaded file and scores it. In
// JOB_MATCH mode the relevance against in.JobDescription is computed as well.
// Type and read failures are returned as documents errors before any scoring.
func (s *Service) AnalyzeUpload(ctx context.Context, in UploadInput, r io.Reader) (UploadAnalysis, error) {
	mode := in.Mode
	if mode == "" {
		mode = ModeATS
	}
	if mode == ModeJobMatch && strings.TrimSpace(in.JobDescription) == "" {
		return UploadAnalysis{}, fmt.Errorf("%w: jobDescription is required for %s", ErrInvalidInput, ModeJobMatch)
	}

	docs := s.Documents
	if docs == nil {
		docs = documents.NewService(documents.ModePlaceholder, documents.DefaultMaxBytes)
	}
	doc, err := docs.Read(ctx, in.FileName, in.MimeType, r)
	if err != nil {
		return UploadAnalysis{}, err
	}

	out := UploadAnalysis{Document: doc, Mode: mode}
	if mode == ModeJobMatch {
		match, err := s.MatchJob(ctx, doc.Text, in.JobDescription)
		if err != nil {
			return UploadAnalysis{}, err
		}
		out.Analysis = match.Analysis
		out.Relevance = &match.Relevance
		return out, nil
	}

	out.Analysis, err = s.Analyze(ctx, doc.Text)
	if err != nil {
		return UploadAnalysis{}, err
	}
	return out, nil
}

// MatchJob scores resumeText and its relevance to jobDescription.
func (s *Service) MatchJob(ctx context.Context, resumeText, jobDescription string) (JobMatch, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return JobMatch{}, fmt.Errorf("%w: jobDescription is required", ErrInvalidInput)
	}
	result, err := s.Analyze(ctx, resumeText)
	if err != nil {
		return JobMatch{}, err
	}
	relevance := scoring.Relevance(resumeText, jobDescription)
	metrics.IncJobMatch()
	telemetry.Info("analysis.job_match", logFields(ctx, map[string]any{
		"relevance":    relevance.Score,
		"job_keywords": len(relevance.JobKeywords),
		"matched":      len(relevance.Matched),
	}))
	return JobMatch{Relevance: relevance, Analysis: result}, nil
}

// Sections splits resume text into headed sections.
func (s *Service) Sections(text string) sections.Sections {
	return sections.Extract(text)
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
