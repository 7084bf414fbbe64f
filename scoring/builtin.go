package scoring

import (
	"fmt"
	"sort"
)

const (
	SectionsRubricName   = "sections"
	StructuredRubricName = "structured"
)

// SectionsRubric awards 20 points for each of five headings found verbatim
// in the text.
func SectionsRubric() Rubric {
	names := []string{"Objective", "Declaration", "Hobbies", "Achievements", "Projects"}
	sections := make([]Section, 0, len(names))
	for _, n := range names {
		sections = append(sections, Section{
			Name:   n,
			Points: 20,
			Test:   Test{Mode: ModeSubstring},
		})
	}

	return Rubric{Name: SectionsRubricName, Sections: sections}
}

// StructuredRubric awards 25 points for each of four structured fields
// recovered from the text.
func StructuredRubric() Rubric {
	return Rubric{
		Name: StructuredRubricName,
		Sections: []Section{
			{Name: "Contact", Points: 25, Test: Test{Mode: ModeField, Field: "email"}},
			{Name: "Skills", Points: 25, Test: Test{Mode: ModeField, Field: "skills"}},
			{Name: "Education", Points: 25, Test: Test{Mode: ModeField, Field: "education"}},
			{Name: "Experience", Points: 25, Test: Test{Mode: ModeField, Field: "experience"}},
		},
	}
}

var builtins = map[string]func() Rubric{
	SectionsRubricName:   SectionsRubric,
	StructuredRubricName: StructuredRubric,
}

func Builtin(name string) (Rubric, error) {
	f, ok := builtins[name]
	if !ok {
		return Rubric{}, fmt.Errorf("unknown rubric %q, known rubrics: %v", name, BuiltinNames())
	}

	return f(), nil
}

func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
