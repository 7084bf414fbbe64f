package readers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PdfReader struct{}

func (r *PdfReader) Ext() string {
	return ".pdf"
}

func (r *PdfReader) ReadText(data []byte) (text string, err error) {
	// the pdf package panics on some malformed streams
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed pdf document: %v", p)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf document: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		txt, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}

		sb.WriteString(txt)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
