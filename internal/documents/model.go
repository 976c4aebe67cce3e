package documents

import "time"

// Source reports how a document's text was obtained.
type Source string

const (
	SourcePlain       Source = "plain"
	SourcePlaceholder Source = "placeholder"
	SourcePDF         Source = "pdf"
	SourceDOCX        Source = "docx"
)

// ExtractMode selects how binary formats are handled.
type ExtractMode string

const (
	// ModePlaceholder returns a synthetic text naming the file instead of parsing it.
	ModePlaceholder ExtractMode = "placeholder"
	// ModeExtract parses PDF and DOCX content.
	ModeExtract ExtractMode = "extract"
)

// ParseExtractMode maps a config value to an ExtractMode, defaulting to placeholder.
func ParseExtractMode(raw string) ExtractMode {
	if ExtractMode(raw) == ModeExtract {
		return ModeExtract
	}
	return ModePlaceholder
}

// Document is an uploaded resume together with the text that will be scored.
// It only lives for the duration of a request.
type Document struct {
	ID         string
	FileName   string
	MimeType   string
	SizeBytes  int64
	SHA256     string
	Text       string
	Source     Source
	ReceivedAt time.Time
}
