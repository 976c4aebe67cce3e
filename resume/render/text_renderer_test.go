package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-ats/resume/model"
)

func sampleData() model.ResumeData {
	return model.ResumeData{
		Basics: model.Basics{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "5550102030",
			Location: "Berlin",
			Summary:  "Backend engineer.",
		},
		Work: []model.Work{
			{Company: "Acme", Position: "Engineer", StartDate: "2020", EndDate: "2022", Highlights: "Built APIs."},
			{Company: "Globex", Position: "Lead", StartDate: "2022", Highlights: "Led a team."},
		},
		Education: []model.Education{
			{Institution: "TU Berlin", Area: "Computer Science", StudyType: "BSc", StartDate: "2014", EndDate: "2018"},
		},
		Skills: []model.Skill{{Name: "Go", Level: "Expert"}, {Name: "SQL"}},
	}
}

func TestToText_Layout(t *testing.T) {
	want := "# Jane Doe\n" +
		"jane@example.com | 5550102030 | Berlin\n" +
		"\n" +
		"## Professional Summary\n" +
		"Backend engineer.\n" +
		"\n" +
		"## Work Experience\n" +
		"\n" +
		"### Engineer | Acme | 2020 - 2022\n" +
		"Built APIs.\n" +
		"\n" +
		"### Lead | Globex | 2022 - Present\n" +
		"Led a team.\n" +
		"\n" +
		"\n" +
		"## Education\n" +
		"\n" +
		"### BSc in Computer Science | TU Berlin | 2014 - 2018\n" +
		"\n" +
		"\n" +
		"## Skills\n" +
		"- Go (Expert)\n" +
		"- SQL"

	assert.Equal(t, want, ToText(sampleData()))
}

func TestToText_EmptyLists(t *testing.T) {
	got := ToText(model.ResumeData{Basics: model.Basics{Name: "X"}})

	assert.Contains(t, got, "## Work Experience\n\n\n## Education\n\n\n## Skills")
	assert.Equal(t, "# X", got[:3])
}

func TestToText_Deterministic(t *testing.T) {
	assert.Equal(t, ToText(sampleData()), ToText(sampleData()))
}
