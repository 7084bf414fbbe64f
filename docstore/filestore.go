package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const reportExt = ".json"

// FileStore keeps one JSON report per source file in a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Store(ctx context.Context, r Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report for %s: %w", r.File, err)
	}

	// write then rename so readers never see a partial report
	path := s.reportPath(r.File)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write report for %s: %w", r.File, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write report for %s: %w", r.File, err)
	}

	return nil
}

func (s *FileStore) Load(ctx context.Context, file string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	return readReport(s.reportPath(file))
}

func (s *FileStore) Forget(ctx context.Context, doc StoredDoc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.reportPath(doc.File))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to forget doc %s: %w", doc.File, err)
	}

	return nil
}

func (s *FileStore) GetStored(ctx context.Context) ([]StoredDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	docs := make([]StoredDoc, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != reportExt {
			continue
		}

		r, err := readReport(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, StoredDoc{File: r.File, Crc: r.Crc})
	}

	return docs, nil
}

func (s *FileStore) reportPath(file string) string {
	name := strings.ReplaceAll(filepath.ToSlash(file), "/", "__")
	return filepath.Join(s.dir, name+reportExt)
}

func readReport(path string) (Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return r, nil
}
