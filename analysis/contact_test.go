package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactLine = "Contact: John Smith, john.smith@example.com, (555) 123-4567. Skills: Python, React."

func Test_PatternExtractor_ExtractContact(t *testing.T) {
	c := PatternExtractor{}.ExtractContact(contactLine)

	require.NotNil(t, c.Name)
	require.NotNil(t, c.Email)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "John Smith", *c.Name)
	assert.Equal(t, "john.smith@example.com", *c.Email)
	assert.Equal(t, "(555) 123-4567", *c.Phone)
}

func Test_PatternExtractor_ExtractContact_Empty(t *testing.T) {
	c := PatternExtractor{}.ExtractContact("")
	assert.Nil(t, c.Name)
	assert.Nil(t, c.Email)
	assert.Nil(t, c.Phone)
	assert.Empty(t, c.Emails)
	assert.Empty(t, c.Phones)
	assert.NotNil(t, c.Emails)
	assert.NotNil(t, c.Phones)
}

func Test_PatternExtractor_ExtractContact_All(t *testing.T) {
	text := "Jane Doe, jane@work.io, (555) 123-4567\nPersonal: jane.doe@home.org, +1-555-999-0000"
	c := PatternExtractor{}.ExtractContact(text)

	require.NotNil(t, c.Email)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "jane@work.io", *c.Email)
	assert.Equal(t, "(555) 123-4567", *c.Phone)
	assert.Equal(t, []string{"jane@work.io", "jane.doe@home.org"}, c.Emails)
	assert.Equal(t, []string{"(555) 123-4567", "+1-555-999-0000"}, c.Phones)
}

func Test_ExtractName(t *testing.T) {
	var cases = []struct {
		input  string
		output *string
	}{
		{input: "jane doe", output: nil},
		{input: "JANE DOE", output: nil},
		{input: "Jane", output: nil},
		{input: "resume of Jane Doe and Max Mustermann", output: ptr("Jane Doe")},
		{input: "Software Engineer Jane Doe", output: ptr("Software Engineer")},
		{input: "Jane Doe2", output: nil},
		{input: "Phone: +1-555-123-4567, Jos\u00e9 Garc\u00eda, Work Experience", output: ptr("Jos\u00e9 Garc\u00eda")},
		{input: "\u00c9mile Zola", output: ptr("\u00c9mile Zola")},
		{input: "by Ren\u00e9 Dupr\u00e9, Paris", output: ptr("Ren\u00e9 Dupr\u00e9")},
		{input: "\u0410\u043d\u043d\u0430 \u041f\u0435\u0442\u0440\u043e\u0432\u0430", output: ptr("\u0410\u043d\u043d\u0430 \u041f\u0435\u0442\u0440\u043e\u0432\u0430")},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.output, ExtractName(c.input))
		})
	}
}

func Test_ExtractEmail(t *testing.T) {
	var cases = []struct {
		input  string
		output *string
	}{
		{input: "no email here", output: nil},
		{input: "user@localhost", output: nil},
		{input: "mail: a.b+c@mail.example.org.", output: ptr("a.b+c@mail.example.org")},
		{input: "first@a.io second@b.io", output: ptr("first@a.io")},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.output, ExtractEmail(c.input))
		})
	}
}

func Test_ExtractPhone(t *testing.T) {
	var cases = []struct {
		input  string
		output *string
	}{
		{input: "call me", output: nil},
		{input: "12345", output: nil},
		{input: "tel (555) 123-4567", output: ptr("(555) 123-4567")},
		{input: "tel 555-123-4567", output: ptr("555-123-4567")},
		{input: "tel 555.123.4567", output: ptr("555.123.4567")},
		{input: "tel 5551234567", output: ptr("5551234567")},
		{input: "tel +1 555 123 4567", output: ptr("+1 555 123 4567")},
		{input: "tel +15551234567", output: ptr("+15551234567")},
		{input: "tel +44 (555) 123-4567", output: ptr("+44 (555) 123-4567")},
		{input: "Phone: +1-555-123-4567", output: ptr("+1-555-123-4567")},
		{input: "tel +1.555.123.4567", output: ptr("+1.555.123.4567")},
		{input: "555-123-4567 or 555-999-0000", output: ptr("555-123-4567")},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.output, ExtractPhone(c.input))
		})
	}
}

func ptr(s string) *string {
	return &s
}
