package readers

import (
	"bytes"
	"fmt"

	"code.sajari.com/docconv/v2"
)

const msWordMime = "application/msword"

// DocReader reads legacy binary Word documents. docconv shells out to wvText,
// which has to be installed on the host.
type DocReader struct{}

func (r *DocReader) Ext() string {
	return ".doc"
}

func (r *DocReader) ReadText(data []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), msWordMime, false)
	if err != nil {
		return "", fmt.Errorf("failed to read doc document: %w", err)
	}

	return res.Body, nil
}
