package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePlain = "text/plain"
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	mimeZip = "application/zip"
)

var (
	ErrUnsupportedMime = errors.New("unsupported mime type")
	ErrEmptyDocument   = errors.New("empty document")
)

// TextFromBytes extracts text from an in-memory payload. Libraries used:
// github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func TextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalized := NormalizeMimeType(mimeType, fileName, data); normalized {
	case MimePlain:
		return plainText(data), nil
	case MimePDF:
		if len(data) == 0 {
			return "", ErrEmptyDocument
		}
		return pdfText(data)
	case MimeDOCX:
		if len(data) == 0 {
			return "", ErrEmptyDocument
		}
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMime, normalized)
	}
}

// plainText decodes bytes as UTF-8. Invalid sequences become U+FFFD so that
// a mis-encoded upload still scores on its readable parts.
func plainText(data []byte) string {
	return strings.ToValidUTF8(strings.TrimPrefix(string(data), "\uFEFF"), "\uFFFD")
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps character data and turns paragraph and break ends into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// NormalizeMimeType lower-cases the declared type and drops parameters. A zip
// payload that is really a Word document is reported as DOCX; an empty declared
// type falls back to the file extension.
func NormalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimeZip:
		if isDocxArchive(data) || strings.EqualFold(filepath.Ext(fileName), ".docx") {
			return MimeDOCX
		}
		return clean
	case "", "application/octet-stream":
		if byExt := mimeFromExt(fileName); byExt != "" {
			return byExt
		}
	}
	return clean
}

func mimeFromExt(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return MimePlain
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	default:
		return ""
	}
}

func isDocxArchive(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
