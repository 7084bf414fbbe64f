package readers

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type FileReader interface {
	Ext() string
	ReadText(data []byte) (string, error)
}

// Extractor picks a reader by file extension and turns document bytes into
// normalized UTF-8 text.
type Extractor struct {
	readers map[string]FileReader
}

func NewExtractor(readers ...FileReader) (*Extractor, error) {
	e := &Extractor{readers: make(map[string]FileReader)}
	if err := e.Register(readers...); err != nil {
		return nil, err
	}

	return e, nil
}

// DefaultExtractor handles .pdf, .doc and .docx.
func DefaultExtractor() *Extractor {
	pdfReader, docReader, docxReader := &PdfReader{}, &DocReader{}, &DocxReader{}
	return &Extractor{readers: map[string]FileReader{
		pdfReader.Ext():  pdfReader,
		docReader.Ext():  docReader,
		docxReader.Ext(): docxReader,
	}}
}

func (e *Extractor) Register(readers ...FileReader) error {
	for _, r := range readers {
		ext := strings.ToLower(r.Ext())
		if _, ok := e.readers[ext]; ok {
			return fmt.Errorf("reader already registered for type %s", ext)
		}

		e.readers[ext] = r
	}

	return nil
}

func (e *Extractor) Supports(filename string) bool {
	_, ok := e.readers[strings.ToLower(filepath.Ext(filename))]
	return ok
}

func (e *Extractor) Extract(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	reader, ok := e.readers[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}

	text, err := reader.ReadText(data)
	if err != nil {
		return "", &ExtractionError{File: filename, Ext: ext, Err: err}
	}

	return norm.NFC.String(strings.ToValidUTF8(text, "\uFFFD")), nil
}
