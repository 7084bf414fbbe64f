package readers

import (
	"bytes"
	"fmt"

	"code.sajari.com/docconv/v2"
)

const docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type DocxReader struct{}

func (r *DocxReader) Ext() string {
	return ".docx"
}

func (r *DocxReader) ReadText(data []byte) (text string, err error) {
	// docconv dereferences missing archive parts without checking
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed docx document: %v", p)
		}
	}()

	res, err := docconv.Convert(bytes.NewReader(data), docxMime, false)
	if err != nil {
		return "", fmt.Errorf("failed to read docx document: %w", err)
	}

	return res.Body, nil
}
