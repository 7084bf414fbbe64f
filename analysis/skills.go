package analysis

import (
	"sort"
	"strings"
)

// ExtractSkills returns the distinct tokens that are known skills, sorted.
func ExtractSkills(tokens []string, vocab *Vocabulary) []string {
	seen := make(map[string]struct{})
	skills := make([]string, 0)

	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if !vocab.IsSkill(tok) {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}

		seen[tok] = struct{}{}
		skills = append(skills, tok)
	}
	sort.Strings(skills)

	return skills
}
