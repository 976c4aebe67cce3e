package scoring

// vocabulary is the canonical keyword list used for ATS matching. Order is significant:
// Result.Keywords.Found preserves it.
var vocabulary = []string{
	"javascript", "react", "node", "typescript", "python", "java", "c#",
	"software engineer", "developer", "frontend", "backend", "fullstack",
	"web", "mobile", "app", "cloud", "aws", "azure", "devops", "agile",
	"project management", "team lead", "architect", "machine learning", "ai",
}

// jobVocabulary is matched against both the resume and a job description
// when computing keyword relevance.
var jobVocabulary = []string{
	"javascript", "typescript", "react", "node.js", "html", "css",
	"python", "java", "c#", "cloud", "aws", "azure", "docker",
	"kubernetes", "agile", "scrum", "project management", "team lead",
	"fullstack", "frontend", "backend", "mobile", "database", "sql",
	"nosql", "mongodb",
}

// Vocabulary returns a copy of the canonical keyword list.
func Vocabulary() []string {
	return append([]string(nil), vocabulary...)
}

// JobVocabulary returns a copy of the keyword list used by Relevance.
func JobVocabulary() []string {
	return append([]string(nil), jobVocabulary...)
}
