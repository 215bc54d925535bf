package prompts

import (
	"bytes"
	"unicode/utf8"
)

// MaxPostingLength bounds the raw posting text embedded in the prompt.
const MaxPostingLength = 20000

const jobPostingSchema = `{
  "company_name": "hiring company",
  "role_title": "job title",
  "location": "city, country or Remote",
  "description": "plain-text summary of responsibilities and requirements",
  "tech_stack": ["technologies mentioned"],
  "salary_range": "salary string when stated, otherwise null"
}`

// BuildJobExtraction asks for the structured fields of a raw job posting.
func BuildJobExtraction(rawPosting string) string {
	rawPosting = truncate(rawPosting, MaxPostingLength)

	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE", "You extract structured data from a job posting copied from a web page.")
	writeSection(&buf, "INPUT", rawPosting)
	writeSection(&buf, "OUTPUT SCHEMA", jobPostingSchema)
	writeSection(&buf, "CONSTRAINTS", formatList([]string{
		"Ignore navigation menus, footers, advertisements and lists of similar jobs.",
		"Strip HTML tags from every field.",
		"Use null for salary_range unless the posting states one.",
	}))
	writeSection(&buf, "OUTPUT FORMAT", "A single JSON object matching the schema.\n"+ReturnOnlyJSON)
	return finish(&buf)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
