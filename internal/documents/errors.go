package documents

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrReadFailed      = errors.New("error reading file")
	ErrTooLarge        = errors.New("file too large")
)

const (
	ErrorCodeValidation      = "VALIDATION_ERROR"
	ErrorCodeInvalidFileType = "INVALID_FILE_TYPE"
	ErrorCodeFileRead        = "FILE_READ_ERROR"
	ErrorCodeTooLarge        = "FILE_TOO_LARGE"
)

// HTTPError maps a Read error to a status, error code and user-facing message.
func HTTPError(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrInvalidFileType):
		return http.StatusUnsupportedMediaType, ErrorCodeInvalidFileType, "Invalid file type. Please upload a PDF, DOCX, or TXT file."
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "File exceeds the upload size limit."
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, ErrorCodeValidation, "Invalid file name."
	default:
		return http.StatusBadRequest, ErrorCodeFileRead, "Error reading file. There was an error reading the file. Please try again."
	}
}
