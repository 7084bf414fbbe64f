package main

import (
	"context"
	"errors"
	"hash/crc32"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gamma-omg/resume-parser/docstore"
	"github.com/gamma-omg/resume-parser/parser"
	"github.com/gamma-omg/resume-parser/readers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeParser accepts .pdf files and fails on content "corrupt".
type fakeParser struct{}

func (fakeParser) Parse(data []byte, filename string) (*parser.ParsedResume, error) {
	if filepath.Ext(filename) != ".pdf" {
		return nil, readers.ErrUnsupportedFormat
	}
	if string(data) == "corrupt" {
		return nil, &readers.ExtractionError{File: filename, Ext: ".pdf", Err: errors.New("bad xref")}
	}

	return &parser.ParsedResume{Preview: string(data)}, nil
}

type fakeDocStore struct {
	mu          sync.Mutex
	reports     map[string]docstore.Report
	storeCalls  []string
	forgetCalls []string
}

func newFakeDocStore(reports ...docstore.Report) *fakeDocStore {
	s := &fakeDocStore{reports: make(map[string]docstore.Report)}
	for _, r := range reports {
		s.reports[r.File] = r
	}

	return s
}

func (s *fakeDocStore) Store(ctx context.Context, r docstore.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports[r.File] = r
	s.storeCalls = append(s.storeCalls, r.File)
	return nil
}

func (s *fakeDocStore) Forget(ctx context.Context, doc docstore.StoredDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reports, doc.File)
	s.forgetCalls = append(s.forgetCalls, doc.File)
	return nil
}

func (s *fakeDocStore) GetStored(ctx context.Context) ([]docstore.StoredDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]docstore.StoredDoc, 0, len(s.reports))
	for _, r := range s.reports {
		docs = append(docs, docstore.StoredDoc{File: r.File, Crc: r.Crc})
	}
	return docs, nil
}

func (s *fakeDocStore) previews() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make(map[string]string, len(s.reports))
	for f, r := range s.reports {
		if r.Resume != nil {
			res[f] = r.Resume.Preview
		} else {
			res[f] = "error: " + r.Error
		}
	}
	return res
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRegistry(root string, store DocStore) *DocRegistry {
	return &DocRegistry{
		log:              discardLogger(),
		root:             root,
		mergeEventsDelay: 50 * time.Millisecond,
		store:            store,
		parser:           fakeParser{},
	}
}

func Test_Sync(t *testing.T) {
	tmp := t.TempDir()

	createFile := func(name string, content string) DiskDoc {
		buff := []byte(content)
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), buff, 0o644))
		return DiskDoc{
			File: name,
			Crc:  crc32.Checksum(buff, crc32.IEEETable),
		}
	}

	createFile("f1.pdf", "f1")
	createFile("f3.pdf", "f3")
	createFile("notes.txt", "ignored")
	f2 := createFile("f2.pdf", "f2")
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "sub"), 0o755))

	store := newFakeDocStore(
		docstore.Report{File: "f2.pdf", Crc: f2.Crc},
		docstore.Report{File: "f3.pdf", Crc: 0},
		docstore.Report{File: "f4.pdf", Crc: 4},
	)

	reg := newTestRegistry(tmp, store)
	require.NoError(t, reg.Sync(context.Background()))

	assert.ElementsMatch(t, []string{"f1.pdf", "f3.pdf"}, store.storeCalls)
	assert.ElementsMatch(t, []string{"f4.pdf"}, store.forgetCalls)
	assert.Equal(t, "f1", store.previews()["f1.pdf"])
	assert.NotContains(t, store.previews(), "notes.txt")
}

func Test_Sync_MissingInbox(t *testing.T) {
	reg := newTestRegistry(filepath.Join(t.TempDir(), "missing"), newFakeDocStore())
	require.Error(t, reg.Sync(context.Background()))
}

func Test_processFile(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "ok.pdf"), []byte("fine"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "bad.pdf"), []byte("corrupt"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "big.pdf"), make([]byte, 64), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "cv.txt"), []byte("text"), 0o644))

	store := newFakeDocStore()
	reg := newTestRegistry(tmp, store)
	reg.maxFileSize = 32

	ctx := context.Background()
	for _, f := range []string{"ok.pdf", "bad.pdf", "big.pdf", "cv.txt"} {
		require.NoError(t, reg.processFile(ctx, f))
	}
	require.Error(t, reg.processFile(ctx, "missing.pdf"))

	reports := store.previews()
	assert.Equal(t, "fine", reports["ok.pdf"])
	assert.Contains(t, reports["bad.pdf"], "failed to extract document text")
	assert.Equal(t, "error: file is larger than 32 bytes", reports["big.pdf"])
	assert.NotContains(t, reports, "cv.txt")
	assert.Equal(t, crc32.ChecksumIEEE([]byte("fine")), store.reports["ok.pdf"].Crc)
	assert.Zero(t, store.reports["big.pdf"].Crc)
}

func Test_Sync_Oversized(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "big.pdf"), make([]byte, 64), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "ok.pdf"), []byte("fine"), 0o644))

	store := newFakeDocStore()
	reg := newTestRegistry(tmp, store)
	reg.maxFileSize = 32

	docs, err := reg.collectDocs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []DiskDoc{
		{File: "big.pdf"},
		{File: "ok.pdf", Crc: crc32.ChecksumIEEE([]byte("fine"))},
	}, docs)

	ctx := context.Background()
	require.NoError(t, reg.Sync(ctx))
	require.NoError(t, reg.Sync(ctx))

	assert.ElementsMatch(t, []string{"big.pdf", "ok.pdf"}, store.storeCalls)
	assert.Equal(t, "error: file is larger than 32 bytes", store.previews()["big.pdf"])

	require.NoError(t, os.WriteFile(filepath.Join(tmp, "big.pdf"), []byte("small now"), 0o644))
	require.NoError(t, reg.Sync(ctx))
	assert.Equal(t, "small now", store.previews()["big.pdf"])
}

func Test_Watch(t *testing.T) {
	tmp := t.TempDir()

	createFile := func(name string, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte(content), 0o644))
	}
	removeFile := func(name string) {
		require.NoError(t, os.Remove(filepath.Join(tmp, name)))
	}
	renameFile := func(oldname, newname string) {
		require.NoError(t, os.Rename(
			filepath.Join(tmp, oldname),
			filepath.Join(tmp, newname)))
	}

	store := newFakeDocStore()
	reg := newTestRegistry(tmp, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, reg.Watch(ctx))
	time.Sleep(100 * time.Millisecond)

	createFile("f1.pdf", "f1")
	time.Sleep(150 * time.Millisecond)

	createFile("f2.pdf", "f2")
	time.Sleep(150 * time.Millisecond)

	createFile("f1.pdf", "new f1")
	time.Sleep(150 * time.Millisecond)

	renameFile("f1.pdf", "f3.pdf")
	time.Sleep(150 * time.Millisecond)

	removeFile("f2.pdf")

	require.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(map[string]string{"f3.pdf": "new f1"}, store.previews())
	}, 2*time.Second, 20*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Contains(t, store.forgetCalls, "f1.pdf")
	assert.Contains(t, store.forgetCalls, "f2.pdf")
}

func Test_Watch_MergesEvents(t *testing.T) {
	tmp := t.TempDir()
	store := newFakeDocStore()
	reg := newTestRegistry(tmp, store)
	reg.mergeEventsDelay = 200 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, reg.Watch(ctx))
	time.Sleep(50 * time.Millisecond)

	for i := range 5 {
		content := []byte{byte('a' + i)}
		require.NoError(t, os.WriteFile(filepath.Join(tmp, "cv.pdf"), content, 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return store.previews()["cv.pdf"] == "e"
	}, 2*time.Second, 20*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.storeCalls, 1)
}

func Test_Watch_MissingInbox(t *testing.T) {
	reg := newTestRegistry(filepath.Join(t.TempDir(), "missing"), newFakeDocStore())
	require.Error(t, reg.Watch(context.Background()))
}
