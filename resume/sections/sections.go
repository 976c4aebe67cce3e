// Package sections splits plain resume text into its conventional sections.
package sections

import "strings"

// Other holds content that appears before the first recognized header.
const Other = "OTHER"

var knownHeaders = []string{
	"SUMMARY", "PROFILE", "OBJECTIVE",
	"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT",
	"EDUCATION", "ACADEMIC BACKGROUND",
	"SKILLS", "TECHNICAL SKILLS", "COMPETENCIES",
	"PROJECTS", "CERTIFICATIONS", "AWARDS", "REFERENCES",
}

var headerLookup = buildHeaderLookup()

func buildHeaderLookup() map[string]string {
	out := make(map[string]string, len(knownHeaders)*4)
	for _, h := range knownHeaders {
		out[h] = h
		out[h+":"] = h
		out["## "+h] = h
		out["### "+h] = h
	}
	return out
}

// Section is a named block of resume text.
type Section struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Sections keeps sections in the order they first appear.
type Sections []Section

// Map returns the sections keyed by name.
func (s Sections) Map() map[string]string {
	out := make(map[string]string, len(s))
	for _, sec := range s {
		out[sec.Name] = sec.Content
	}
	return out
}

// Get returns the content of the named section.
func (s Sections) Get(name string) (string, bool) {
	for _, sec := range s {
		if sec.Name == name {
			return sec.Content, true
		}
	}
	return "", false
}

// Extract assigns every non-blank line to the most recent header. A header line
// matches a known name exactly (case-insensitive), with a trailing colon, or after a
// "## " or "### " prefix. A repeated header starts its section over. Sections without
// content are omitted.
func Extract(text string) Sections {
	order := []string{Other}
	content := map[string]*strings.Builder{Other: {}}
	current := Other

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if header, ok := headerLookup[strings.ToUpper(trimmed)]; ok {
			if _, seen := content[header]; !seen {
				order = append(order, header)
			}
			content[header] = &strings.Builder{}
			current = header
			continue
		}
		if trimmed == "" {
			continue
		}
		content[current].WriteString(line + "\n")
	}

	out := make(Sections, 0, len(order))
	for _, name := range order {
		body := strings.TrimSpace(content[name].String())
		if body == "" {
			continue
		}
		out = append(out, Section{Name: name, Content: body})
	}
	return out
}
