package analysis

import (
	"strings"
	"unicode"
)

// separators split words in addition to whitespace.
const separators = ",;:()[]{}<>\"|/\\!?•·"

// Tokenize splits text into lowercase word tokens, dropping punctuation-only
// tokens and stopwords. Leading and trailing punctuation is trimmed, except
// '+' and '#' so that names like c++ and c# survive.
func Tokenize(text string, vocab *Vocabulary) []string {
	tokens := make([]string, 0)

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
	})
	for _, f := range fields {
		tok := strings.ToLower(strings.TrimFunc(f, isTrimmable))
		if !hasWordRune(tok) || vocab.IsStopword(tok) {
			continue
		}

		tokens = append(tokens, tok)
	}

	return tokens
}

func isTrimmable(r rune) bool {
	if r == '+' || r == '#' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func hasWordRune(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
