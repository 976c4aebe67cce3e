package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID string    `json:"documentId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	SHA256     string    `json:"sha256"`
	Source     Source    `json:"source"`
	Characters int       `json:"characters"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// ToResponse maps a Document to its response shape.
func ToResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		MimeType:   doc.MimeType,
		SizeBytes:  doc.SizeBytes,
		SHA256:     doc.SHA256,
		Source:     doc.Source,
		Characters: len([]rune(doc.Text)),
		ReceivedAt: doc.ReceivedAt,
	}
}
