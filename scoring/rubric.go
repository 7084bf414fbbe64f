// Package scoring evaluates how complete a resume is against a configurable
// rubric of named sections.
package scoring

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Mode string

const (
	// ModeSubstring marks a section present when its keyword occurs in the
	// raw text.
	ModeSubstring Mode = "substring"
	// ModeField marks a section present when a structured field produced
	// upstream is non-empty.
	ModeField Mode = "field"
)

type Test struct {
	Mode       Mode   `yaml:"mode" validate:"required,oneof=substring field"`
	Keyword    string `yaml:"keyword,omitempty"`
	Field      string `yaml:"field,omitempty" validate:"required_if=Mode field"`
	IgnoreCase bool   `yaml:"ignore_case,omitempty"`
}

type Section struct {
	Name   string `yaml:"name" validate:"required"`
	Points int    `yaml:"points" validate:"min=0,max=100"`
	Test   Test   `yaml:"test"`
}

type Rubric struct {
	Name     string    `yaml:"name" validate:"required"`
	Sections []Section `yaml:"sections" validate:"required,min=1,unique=Name,dive"`
}

var validate = validator.New()

func (r Rubric) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rubric %q: %w", r.Name, err)
	}

	return nil
}

// MaxPoints is the score of a resume that has every section, before
// clamping.
func (r Rubric) MaxPoints() int {
	total := 0
	for _, s := range r.Sections {
		total += s.Points
	}

	return total
}

func ParseRubric(data []byte) (Rubric, error) {
	var r Rubric
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rubric{}, fmt.Errorf("unable to parse rubric: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rubric{}, err
	}

	return r, nil
}

func LoadRubric(path string) (Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rubric{}, fmt.Errorf("unable to read rubric file: %w", err)
	}

	return ParseRubric(data)
}
