// Package parser runs the resume pipeline: text extraction, tokenization,
// contact and skill extraction, job field classification and scoring.
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/gamma-omg/resume-parser/analysis"
	"github.com/gamma-omg/resume-parser/readers"
	"github.com/gamma-omg/resume-parser/scoring"
)

type TextExtractor interface {
	Extract(data []byte, filename string) (string, error)
}

type FieldClassifier interface {
	Classify(text string) string
}

// Parser is immutable after New and safe for concurrent use.
type Parser struct {
	log        *slog.Logger
	extractor  TextExtractor
	vocab      *analysis.Vocabulary
	contact    analysis.ContactExtractor
	classifier FieldClassifier
	rubric     scoring.Rubric
}

type Option func(*Parser)

func WithExtractor(e TextExtractor) Option {
	return func(p *Parser) { p.extractor = e }
}

func WithVocabulary(v *analysis.Vocabulary) Option {
	return func(p *Parser) { p.vocab = v }
}

func WithContactExtractor(c analysis.ContactExtractor) Option {
	return func(p *Parser) { p.contact = c }
}

func WithClassifier(c FieldClassifier) Option {
	return func(p *Parser) { p.classifier = c }
}

func WithRubric(r scoring.Rubric) Option {
	r.Sections = slices.Clone(r.Sections)
	return func(p *Parser) { p.rubric = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

func New(opts ...Option) (*Parser, error) {
	p := &Parser{
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		extractor:  readers.DefaultExtractor(),
		vocab:      analysis.DefaultVocabulary(),
		contact:    analysis.PatternExtractor{},
		classifier: analysis.DefaultClassifier(),
		rubric:     scoring.SectionsRubric(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.extractor == nil || p.vocab == nil || p.contact == nil || p.classifier == nil || p.log == nil {
		return nil, fmt.Errorf("parser is missing a component")
	}
	if err := p.rubric.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Parse extracts the text of a document and analyses it. Only extraction can
// fail: the error matches readers.ErrUnsupportedFormat or
// readers.ErrExtractionFailed.
func (p *Parser) Parse(data []byte, filename string) (*ParsedResume, error) {
	text, err := p.extractor.Extract(data, filename)
	if err != nil {
		p.log.Warn("failed to extract resume text",
			slog.String("file", filename),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	res := p.ParseText(text)
	p.log.Debug("parsed resume",
		slog.String("file", filename),
		slog.Int("size", len(data)),
		slog.Int("text_length", len(text)),
		slog.Int("tokens", len(res.Tokens)),
		slog.Int("skills", len(res.Skills)),
		slog.Int("score", res.TotalScore))

	return res, nil
}

// ParseText analyses already extracted text. It never fails.
func (p *Parser) ParseText(text string) *ParsedResume {
	tokens := analysis.Tokenize(text, p.vocab)
	doc := &resumeDocument{
		text:     text,
		contact:  p.contact.ExtractContact(text),
		skills:   analysis.ExtractSkills(tokens, p.vocab),
		sections: analysis.SplitSections(text),
	}
	score := scoring.Score(doc, p.rubric)

	return &ParsedResume{
		Name:           doc.contact.Name,
		Email:          doc.contact.Email,
		Phone:          doc.contact.Phone,
		Emails:         nonNil(doc.contact.Emails),
		Phones:         nonNil(doc.contact.Phones),
		Skills:         doc.skills,
		PredictedField: p.classifier.Classify(text),
		Rubric:         p.rubric.Name,
		TotalScore:     score.Total,
		SectionScores:  score.Present,
		Sections:       score.Sections,
		Suggestions:    score.Suggestions(),
		Tokens:         tokens,
		Preview:        preview(text),
	}
}
