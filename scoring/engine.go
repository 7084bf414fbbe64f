package scoring

import (
	"fmt"
	"strings"
)

const MaxScore = 100

// Document is what a rubric is evaluated against: the raw text and the
// structured fields recovered from it.
type Document interface {
	Text() string
	HasField(name string) bool
}

type Verdict struct {
	Section string `json:"section"`
	Present bool   `json:"present"`
	Points  int    `json:"points"`
}

type Result struct {
	Total    int
	Sections []Verdict
	Present  map[string]bool
}

// Score evaluates every rubric section on its own and sums the points of the
// sections found, clamped to MaxScore.
func Score(doc Document, rubric Rubric) Result {
	res := Result{
		Sections: make([]Verdict, 0, len(rubric.Sections)),
		Present:  make(map[string]bool, len(rubric.Sections)),
	}

	for _, s := range rubric.Sections {
		v := Verdict{Section: s.Name, Present: isPresent(doc, s)}
		if v.Present {
			v.Points = max(s.Points, 0)
			res.Total += v.Points
		}

		res.Sections = append(res.Sections, v)
		res.Present[s.Name] = v.Present
	}
	res.Total = min(res.Total, MaxScore)

	return res
}

func isPresent(doc Document, s Section) bool {
	switch s.Test.Mode {
	case ModeSubstring:
		keyword := s.Test.Keyword
		if keyword == "" {
			keyword = s.Name
		}
		text := doc.Text()
		if s.Test.IgnoreCase {
			text, keyword = strings.ToLower(text), strings.ToLower(keyword)
		}
		return strings.Contains(text, keyword)
	case ModeField:
		return doc.HasField(s.Test.Field)
	default:
		return false
	}
}

// Suggestions renders one message per section, praising present sections
// and recommending missing ones.
func (r Result) Suggestions() []string {
	res := make([]string, 0, len(r.Sections))
	for _, v := range r.Sections {
		if v.Present {
			res = append(res, fmt.Sprintf("Great! You have included %s", v.Section))
		} else {
			res = append(res, fmt.Sprintf("Consider adding %s to improve your score", v.Section))
		}
	}

	return res
}
