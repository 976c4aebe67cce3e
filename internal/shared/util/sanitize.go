package util

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxFileNameBytes = 255

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens path separators, drops control characters and caps
// the length while keeping the extension. Bare "." and ".." are rejected.
func SanitizeFileName(name string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(name))
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "", errInvalidFileName
	}
	if len(cleaned) > maxFileNameBytes {
		ext := ""
		if i := strings.LastIndexByte(cleaned, '.'); i > 0 && len(cleaned)-i <= 16 {
			ext = cleaned[i:]
		}
		base := cleaned[:maxFileNameBytes-len(ext)]
		for !utf8.ValidString(base) {
			base = base[:len(base)-1]
		}
		cleaned = base + ext
	}
	return cleaned, nil
}
