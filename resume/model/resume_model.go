package model

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ResumeData is the structured input of the resume builder.
type ResumeData struct {
	Basics    Basics      `json:"basics"`
	Work      []Work      `json:"work" validate:"min=1,dive"`
	Education []Education `json:"education" validate:"min=1,dive"`
	Skills    []Skill     `json:"skills" validate:"min=1,dive"`
}

// Basics captures contact details and the professional summary.
type Basics struct {
	Name     string `json:"name" validate:"min=2"`
	Email    string `json:"email" validate:"email"`
	Phone    string `json:"phone" validate:"min=10"`
	Location string `json:"location" validate:"min=2"`
	Summary  string `json:"summary" validate:"min=50,max=500"`
}

// Work is a single job entry. Highlights is free text, usually one line per achievement.
type Work struct {
	Company    string `json:"company" validate:"min=2"`
	Position   string `json:"position" validate:"min=2"`
	StartDate  string `json:"startDate" validate:"min=2"`
	EndDate    string `json:"endDate,omitempty"`
	Highlights string `json:"highlights" validate:"min=10"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution" validate:"min=2"`
	Area        string `json:"area" validate:"min=2"`
	StudyType   string `json:"studyType" validate:"min=2"`
	StartDate   string `json:"startDate" validate:"min=2"`
	EndDate     string `json:"endDate,omitempty"`
}

// Skill is a named skill with an optional free-text level.
type Skill struct {
	Name  string `json:"name" validate:"min=2"`
	Level string `json:"level,omitempty"`
}

// FieldError describes one rejected field by its JSON path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid resume data: " + strings.Join(parts, "; ")
}

var fieldMessages = map[string]string{
	"basics.name":           "Name must be at least 2 characters.",
	"basics.email":          "Please enter a valid email address.",
	"basics.phone":          "Please enter a valid phone number.",
	"basics.location":       "Location is required.",
	"basics.summary|min":    "Summary should be at least 50 characters.",
	"basics.summary|max":    "Summary should be less than 500 characters.",
	"work":                  "At least one work experience is required.",
	"work.company":          "Company name is required.",
	"work.position":         "Position is required.",
	"work.startDate":        "Start date is required.",
	"work.highlights":       "Please add some highlights of your work.",
	"skills":                "At least one skill is required.",
	"skills.name":           "Skill name is required.",
	"education":             "At least one education entry is required.",
	"education.institution": "Institution name is required.",
	"education.area":        "Area of study is required.",
	"education.studyType":   "Degree type is required.",
	"education.startDate":   "Start date is required.",
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	indexPattern = regexp.MustCompile(`\[\d+\]`)
)

func resumeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate applies the builder form rules. Rendering never requires it.
func (d ResumeData) Validate() error {
	err := resumeValidator().Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		out.Fields = append(out.Fields, FieldError{Field: path, Message: messageFor(path, fe)})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(path string, fe validator.FieldError) string {
	key := indexPattern.ReplaceAllString(path, "")
	if msg, ok := fieldMessages[key+"|"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[key]; ok {
		return msg
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
