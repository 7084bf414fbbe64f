package analysis

import "regexp"

var (
	// Two consecutive capitalized words, any script. Any such phrase matches,
	// not only person names. RE2 has no Unicode \b, so the boundaries are
	// matched explicitly and the name is the first group.
	namePattern  = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(\p{Lu}\p{Ll}+ \p{Lu}\p{Ll}+)(?:[^\p{L}\p{N}_]|$)`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,2}[\s.-]?(?:\(\d{3}\)|\d{3})|\(\d{3}\)|\b\d{3})[\s.-]?\d{3}[\s.-]?\d{4}\b`)
)

// Contact holds the identity fields found in a resume. A nil field was not
// found. Emails and Phones list every match in document order.
type Contact struct {
	Name   *string
	Email  *string
	Phone  *string
	Emails []string
	Phones []string
}

type ContactExtractor interface {
	ExtractContact(text string) Contact
}

// PatternExtractor finds contact fields with regular expressions, taking the
// first match of each.
type PatternExtractor struct{}

func (PatternExtractor) ExtractContact(text string) Contact {
	return Contact{
		Name:   ExtractName(text),
		Email:  ExtractEmail(text),
		Phone:  ExtractPhone(text),
		Emails: ExtractEmails(text),
		Phones: ExtractPhones(text),
	}
}

func ExtractName(text string) *string {
	return firstMatch(namePattern, text)
}

func ExtractEmail(text string) *string {
	return firstMatch(emailPattern, text)
}

func ExtractPhone(text string) *string {
	return firstMatch(phonePattern, text)
}

func ExtractEmails(text string) []string {
	return allMatches(emailPattern, text)
}

func ExtractPhones(text string) []string {
	return allMatches(phonePattern, text)
}

func firstMatch(re *regexp.Regexp, text string) *string {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	if len(loc) > 2 {
		loc = loc[2:4]
	}

	m := text[loc[0]:loc[1]]
	return &m
}

func allMatches(re *regexp.Regexp, text string) []string {
	m := re.FindAllString(text, -1)
	if m == nil {
		return []string{}
	}

	return m
}
