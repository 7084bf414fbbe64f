package analysis

import (
	"strings"
	"unicode"
)

// Section names produced by SplitSections.
const (
	SectionAchievements   = "achievements"
	SectionCertifications = "certifications"
	SectionContact        = "contact"
	SectionDeclaration    = "declaration"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionHobbies        = "hobbies"
	SectionObjective      = "objective"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionSummary        = "summary"
)

var sectionHeadings = map[string]string{
	"academic background":     SectionEducation,
	"academics":               SectionEducation,
	"achievements":            SectionAchievements,
	"awards":                  SectionAchievements,
	"career objective":        SectionObjective,
	"certifications":          SectionCertifications,
	"contact":                 SectionContact,
	"contact information":     SectionContact,
	"declaration":             SectionDeclaration,
	"education":               SectionEducation,
	"employment":              SectionExperience,
	"employment history":      SectionExperience,
	"experience":              SectionExperience,
	"hobbies":                 SectionHobbies,
	"interests":               SectionHobbies,
	"objective":               SectionObjective,
	"professional experience": SectionExperience,
	"profile":                 SectionSummary,
	"projects":                SectionProjects,
	"skills":                  SectionSkills,
	"summary":                 SectionSummary,
	"technical skills":        SectionSkills,
	"work experience":         SectionExperience,
}

// SplitSections groups the lines of a resume under the headings they follow.
// A heading is a line consisting of a known section title, optionally
// followed by a colon and inline content. Lines before the first heading are
// dropped, as are headings without content.
func SplitSections(text string) map[string][]string {
	sections := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name, rest, ok := parseHeading(line); ok {
			current = name
			if rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}

		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	return sections
}

func parseHeading(line string) (name string, rest string, ok bool) {
	head, rest, _ := strings.Cut(line, ":")
	head = strings.ToLower(strings.TrimFunc(head, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	}))

	name, ok = sectionHeadings[head]
	if !ok {
		return "", "", false
	}

	return name, strings.TrimSpace(rest), true
}
