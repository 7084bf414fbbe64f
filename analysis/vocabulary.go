// Package analysis turns raw resume text into tokens and the fields derived
// from them: contact details, skills, job field and resume sections.
package analysis

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// Vocabulary holds the known skills and the stopwords removed during
// tokenization. It is immutable once built and safe for concurrent use.
type Vocabulary struct {
	skills    map[string]struct{}
	stopwords map[string]struct{}
}

type vocabularyFile struct {
	Skills    []string `yaml:"skills"`
	Stopwords []string `yaml:"stopwords"`
}

func NewVocabulary(skills, stopwords []string) *Vocabulary {
	return &Vocabulary{
		skills:    toSet(skills),
		stopwords: toSet(stopwords),
	}
}

var defaultVocabulary = sync.OnceValue(func() *Vocabulary {
	v, err := ParseVocabulary(defaultVocabularyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary is invalid: %s", err))
	}
	return v
})

// DefaultVocabulary returns the vocabulary shipped with the binary.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary()
}

func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unable to parse vocabulary: %w", err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary has no skills")
	}

	return NewVocabulary(f.Skills, f.Stopwords), nil
}

func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read vocabulary file: %w", err)
	}

	return ParseVocabulary(data)
}

func (v *Vocabulary) IsSkill(token string) bool {
	if v == nil {
		return false
	}
	_, ok := v.skills[strings.ToLower(token)]
	return ok
}

func (v *Vocabulary) IsStopword(token string) bool {
	if v == nil {
		return false
	}
	_, ok := v.stopwords[strings.ToLower(token)]
	return ok
}

// Skills returns the known skills in ascending order.
func (v *Vocabulary) Skills() []string {
	if v == nil {
		return []string{}
	}

	res := make([]string, 0, len(v.skills))
	for s := range v.skills {
		res = append(res, s)
	}
	sort.Strings(res)

	return res
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}

	return set
}
