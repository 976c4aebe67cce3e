package render

import (
	"fmt"
	"strings"

	"resume-ats/resume/model"
)

const presentLabel = "Present"

// ToText renders builder data into the markdown-like plain text consumed by the
// scoring engine. Fields are written as given; no validation happens here.
func ToText(data model.ResumeData) string {
	var b strings.Builder
	b.WriteString("# " + data.Basics.Name + "\n")
	fmt.Fprintf(&b, "%s | %s | %s\n\n", data.Basics.Email, data.Basics.Phone, data.Basics.Location)

	b.WriteString("## Professional Summary\n")
	b.WriteString(data.Basics.Summary + "\n\n")

	b.WriteString("## Work Experience\n")
	for _, w := range data.Work {
		fmt.Fprintf(&b, "\n### %s | %s | %s - %s\n%s\n", w.Position, w.Company, w.StartDate, endOrPresent(w.EndDate), w.Highlights)
	}
	b.WriteString("\n\n## Education\n")
	for _, e := range data.Education {
		fmt.Fprintf(&b, "\n### %s in %s | %s | %s - %s\n", e.StudyType, e.Area, e.Institution, e.StartDate, endOrPresent(e.EndDate))
	}

	b.WriteString("\n\n## Skills\n")
	skills := make([]string, 0, len(data.Skills))
	for _, s := range data.Skills {
		line := "- " + s.Name
		if s.Level != "" {
			line += " (" + s.Level + ")"
		}
		skills = append(skills, line)
	}
	b.WriteString(strings.Join(skills, "\n"))

	return strings.TrimSpace(b.String())
}

func endOrPresent(end string) string {
	if end == "" {
		return presentLabel
	}
	return end
}
