package docstore

import "github.com/gamma-omg/resume-parser/parser"

// Report is the stored outcome of parsing one inbox file. Exactly one of
// Resume and Error is set.
type Report struct {
	File   string               `json:"file"`
	Crc    uint32               `json:"crc"`
	Resume *parser.ParsedResume `json:"resume,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type StoredDoc struct {
	File string
	Crc  uint32
}
