package documents

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/extract", h.extract)
}

type extractResponse struct {
	Document DocumentResponse `json:"document"`
	Text     string           `json:"text"`
}

func (h *Handler) extract(c *gin.Context) {
	doc, ok := ReadUpload(c, h.Svc)
	if !ok {
		return
	}
	c.Set("documentId", doc.ID)
	respond.OK(c, extractResponse{Document: ToResponse(doc), Text: doc.Text})
}

// OpenUpload caps the request body and opens the multipart "file" field. On
// failure it writes the error response and reports false.
func OpenUpload(c *gin.Context, maxBytes int64) (*multipart.FileHeader, multipart.File, bool) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	// Leave headroom for the multipart envelope; the service enforces the exact cap.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status, code, msg := HTTPError(ErrTooLarge)
			respond.Error(c, status, code, msg, nil)
			return nil, nil, false
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", nil)
		return nil, nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeFileRead, "unable to read file", nil)
		return nil, nil, false
	}
	return fileHeader, file, true
}

// ReadUpload reads the multipart "file" field through svc. On failure it writes
// the error response and reports false.
func ReadUpload(c *gin.Context, svc *Service) (Document, bool) {
	fileHeader, file, ok := OpenUpload(c, svc.MaxBytes)
	if !ok {
		return Document{}, false
	}
	defer file.Close()

	doc, err := svc.Read(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		status, code, msg := HTTPError(err)
		respond.Error(c, status, code, msg, nil)
		return Document{}, false
	}
	return doc, true
}
