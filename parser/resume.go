package parser

import (
	"strings"

	"github.com/gamma-omg/resume-parser/analysis"
	"github.com/gamma-omg/resume-parser/scoring"
)

const previewLength = 1000

// ParsedResume is the result of parsing one document. Fields that were not
// found are nil.
type ParsedResume struct {
	Name           *string           `json:"name"`
	Email          *string           `json:"email"`
	Phone          *string           `json:"phone"`
	Emails         []string          `json:"emails"`
	Phones         []string          `json:"phone_numbers"`
	Skills         []string          `json:"skills"`
	PredictedField string            `json:"predicted_field"`
	Rubric         string            `json:"rubric"`
	TotalScore     int               `json:"total_score"`
	SectionScores  map[string]bool   `json:"section_scores"`
	Sections       []scoring.Verdict `json:"sections"`
	Suggestions    []string          `json:"suggestions"`
	Tokens         []string          `json:"tokens"`
	Preview        string            `json:"preview"`
}

// resumeDocument exposes the text and the structured fields to the scoring
// engine.
type resumeDocument struct {
	text     string
	contact  analysis.Contact
	skills   []string
	sections map[string][]string
}

func (d *resumeDocument) Text() string {
	return d.text
}

// HasField reports whether a contact field, the skill list or a section
// named name was found. Names are case-insensitive.
func (d *resumeDocument) HasField(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "name":
		return nonEmpty(d.contact.Name)
	case "email":
		return nonEmpty(d.contact.Email)
	case "phone":
		return nonEmpty(d.contact.Phone)
	case "skills":
		return len(d.skills) > 0
	default:
		return len(d.sections[name]) > 0
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= previewLength {
		return text
	}

	return string(r[:previewLength])
}
