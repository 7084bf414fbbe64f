package analysis

import "strings"

const GeneralField = "General"

type FieldRule struct {
	Keyword string `yaml:"keyword" validate:"required"`
	Label   string `yaml:"label" validate:"required"`
}

// Classifier predicts a job field by testing keywords against the text in
// order. The first rule whose keyword occurs wins.
type Classifier struct {
	rules    []FieldRule
	fallback string
}

func NewClassifier(rules []FieldRule, fallback string) *Classifier {
	if fallback == "" {
		fallback = GeneralField
	}

	c := &Classifier{
		rules:    make([]FieldRule, 0, len(rules)),
		fallback: fallback,
	}
	for _, r := range rules {
		c.rules = append(c.rules, FieldRule{
			Keyword: strings.ToLower(r.Keyword),
			Label:   r.Label,
		})
	}

	return c
}

func DefaultClassifier() *Classifier {
	return NewClassifier([]FieldRule{
		{Keyword: "software", Label: "Software Engineering"},
		{Keyword: "data", Label: "Data Science"},
		{Keyword: "devops", Label: "DevOps"},
	}, GeneralField)
}

func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)
	for _, r := range c.rules {
		if r.Keyword != "" && strings.Contains(lower, r.Keyword) {
			return r.Label
		}
	}

	return c.fallback
}
