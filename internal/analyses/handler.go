package analyses

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/documents"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
	"resume-ats/resume/model"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/analyze/upload", h.analyzeUpload)
	rg.POST("/analyze/job-match", h.jobMatch)
	rg.POST("/resumes/text", h.resumeText)
	rg.POST("/resumes/analyze", h.resumeAnalyze)
	rg.POST("/resumes/sections", h.resumeSections)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}

	var engine *scoring.Engine
	if req.Seed != nil {
		engine = scoring.NewEngine(scoring.WithSeed(*req.Seed))
	}
	result, err := h.Svc.AnalyzeWith(h.ctx(c), engine, req.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("atsScore", result.ATSScore)
	respond.OK(c, result)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	mode, err := ParseMode(c.PostForm("mode"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), []map[string]string{
			{"field": "mode", "issue": "invalid"},
		})
		return
	}

	var maxBytes int64
	if h.Svc.Documents != nil {
		maxBytes = h.Svc.Documents.MaxBytes
	}
	fileHeader, file, ok := documents.OpenUpload(c, maxBytes)
	if !ok {
		return
	}
	defer file.Close()

	out, err := h.Svc.AnalyzeUpload(h.ctx(c), UploadInput{
		FileName:       fileHeader.Filename,
		MimeType:       fileHeader.Header.Get("Content-Type"),
		Mode:           mode,
		JobDescription: c.PostForm("jobDescription"),
	}, file)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Set("documentId", out.Document.ID)
	c.Set("atsScore", out.Analysis.ATSScore)
	respond.OK(c, uploadResponse{
		Document:  documents.ToResponse(out.Document),
		Mode:      out.Mode,
		Analysis:  out.Analysis,
		Relevance: out.Relevance,
	})
}

func (h *Handler) jobMatch(c *gin.Context) {
	var req jobMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}

	match, err := h.Svc.MatchJob(h.ctx(c), req.ResumeText, req.JobDescription)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("atsScore", match.Analysis.ATSScore)
	respond.OK(c, jobMatchResponse{Relevance: match.Relevance, Analysis: match.Analysis})
}

func (h *Handler) resumeText(c *gin.Context) {
	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}
	text, err := h.Svc.RenderResume(h.ctx(c), data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, resumeTextResponse{Text: text})
}

func (h *Handler) resumeAnalyze(c *gin.Context) {
	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}
	out, err := h.Svc.AnalyzeResume(h.ctx(c), data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("atsScore", out.Analysis.ATSScore)
	respond.OK(c, resumeAnalysisResponse{Text: out.Text, Analysis: out.Analysis})
}

func (h *Handler) resumeSections(c *gin.Context) {
	var req sectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}
	respond.OK(c, sectionsResponse{Sections: h.Svc.Sections(req.Text)})
}

func (h *Handler) ctx(c *gin.Context) context.Context {
	return WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume data is invalid", verr.Fields)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": "), nil)
	case errors.Is(err, documents.ErrInvalidFileType),
		errors.Is(err, documents.ErrReadFailed),
		errors.Is(err, documents.ErrTooLarge),
		errors.Is(err, documents.ErrInvalidInput):
		status, code, msg := documents.HTTPError(err)
		respond.Error(c, status, code, msg, nil)
	case errors.Is(err, ErrAnalysisFailed):
		respond.Error(c, http.StatusInternalServerError, ErrorCodeAnalysisFailed, "Failed to analyze resume", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Unexpected server error", nil)
	}
}
