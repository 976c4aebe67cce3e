// Package contract holds the JSON schema of the analysis report returned to clients.
package contract

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/analysis_result.schema.json
var analysisResultSchema []byte

// FieldError is a single schema violation.
type FieldError struct {
	Field   string
	Message string
}

// ViolationError lists every schema violation of a document.
type ViolationError struct {
	Errors []FieldError
}

func (e *ViolationError) Error() string {
	var sb strings.Builder
	sb.WriteString("analysis result violates contract:")
	for _, fe := range e.Errors {
		fmt.Fprintf(&sb, " %s: %s;", fe.Field, fe.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func analysisSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(analysisResultSchema))
	})
	return schema, schemaErr
}

// ValidateAnalysis checks a report value against the analysis result schema.
func ValidateAnalysis(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	return ValidateAnalysisJSON(raw)
}

// ValidateAnalysisJSON checks an encoded report against the analysis result schema.
func ValidateAnalysisJSON(raw []byte) error {
	s, err := analysisSchema()
	if err != nil {
		return fmt.Errorf("load analysis schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate analysis: %w", err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ViolationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
