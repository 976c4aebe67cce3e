package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-ats/internal/extract"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/shared/util"
)

// DefaultMaxBytes caps uploads when the service is not configured otherwise.
const DefaultMaxBytes int64 = 10 << 20

var acceptedTypes = map[string]bool{
	extract.MimePlain: true,
	extract.MimePDF:   true,
	extract.MimeDOCX:  true,
}

// Service turns uploaded files into text for scoring. It keeps nothing between calls.
type Service struct {
	Mode     ExtractMode
	MaxBytes int64
	Now      func() time.Time
}

// NewService constructs a Service.
func NewService(mode ExtractMode, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Service{Mode: mode, MaxBytes: maxBytes, Now: time.Now}
}

// Read validates the declared type, reads the payload and obtains its text.
// Plain text is always decoded. PDF and DOCX are parsed in ModeExtract and
// replaced by a placeholder in ModePlaceholder.
func (s *Service) Read(ctx context.Context, fileName, mimeType string, r io.Reader) (Document, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if int64(len(data)) > limit {
		return Document{}, ErrTooLarge
	}

	normalized := extract.NormalizeMimeType(mimeType, name, data)
	if !acceptedTypes[normalized] {
		return Document{}, ErrInvalidFileType
	}

	doc := Document{
		ID:         uuid.NewString(),
		FileName:   name,
		MimeType:   normalized,
		SizeBytes:  int64(len(data)),
		SHA256:     util.ContentDigest(data),
		ReceivedAt: s.now(),
	}

	switch {
	case normalized == extract.MimePlain:
		doc.Source = SourcePlain
	case s.Mode != ModeExtract:
		doc.Source = SourcePlaceholder
		doc.Text = PlaceholderText(name)
		metrics.IncDocumentRead(string(doc.Source))
		return doc, nil
	case normalized == extract.MimePDF:
		doc.Source = SourcePDF
	default:
		doc.Source = SourceDOCX
	}

	text, err := extract.TextFromBytes(ctx, data, normalized, name)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Document{}, err
		}
		telemetry.Error("document.read_failed", map[string]any{
			"document_id": doc.ID,
			"sha256":      doc.SHA256,
			"mime_type":   normalized,
			"size_bytes":  doc.SizeBytes,
			"error":       err.Error(),
		})
		return Document{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	doc.Text = text
	metrics.IncDocumentRead(string(doc.Source))
	return doc, nil
}

// PlaceholderText is the synthetic text used for binary formats that are not parsed.
func PlaceholderText(fileName string) string {
	return fmt.Sprintf("This is placeholder text for %s. In a real application, we would extract text from the PDF or DOCX file.", fileName)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
