package main

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gamma-omg/resume-parser/docstore"
	"github.com/gamma-omg/resume-parser/parser"
	"github.com/gamma-omg/resume-parser/readers"
)

type DocStore interface {
	Store(ctx context.Context, r docstore.Report) error
	Forget(ctx context.Context, doc docstore.StoredDoc) error
	GetStored(ctx context.Context) ([]docstore.StoredDoc, error)
}

type ResumeParser interface {
	Parse(data []byte, filename string) (*parser.ParsedResume, error)
}

// DocRegistry keeps a report in the store for every resume in the inbox
// directory. Subdirectories are not scanned.
type DocRegistry struct {
	log              *slog.Logger
	root             string
	mergeEventsDelay time.Duration
	maxFileSize      int64
	store            DocStore
	parser           ResumeParser
}

type DiskDoc struct {
	File string
	Crc  uint32
}

type diskDocs map[string]DiskDoc
type storedDocs map[string]docstore.StoredDoc

// Sync parses new and changed inbox files and forgets reports whose source
// file is gone.
func (dr *DocRegistry) Sync(ctx context.Context) error {
	disk, err := dr.collectDocs()
	if err != nil {
		return err
	}

	diskMap := make(diskDocs)
	for _, d := range disk {
		diskMap[d.File] = d
	}

	stored, err := dr.store.GetStored(ctx)
	if err != nil {
		return err
	}

	storedMap := make(storedDocs)
	for _, d := range stored {
		storedMap[d.File] = d
	}

	err = dr.parseNewDocuments(ctx, diskMap, storedMap)
	if err != nil {
		return err
	}

	return dr.forgetRemovedDocuments(ctx, diskMap, storedMap)
}

func (dr *DocRegistry) collectDocs() ([]DiskDoc, error) {
	entries, err := os.ReadDir(dr.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox %s: %w", dr.root, err)
	}

	docs := make([]DiskDoc, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", e.Name(), err)
		}

		// oversized files are never read, their reports carry a zero crc
		if dr.tooLarge(info.Size()) {
			docs = append(docs, DiskDoc{File: e.Name()})
			continue
		}

		data, err := os.ReadFile(filepath.Join(dr.root, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}

		docs = append(docs, DiskDoc{
			File: e.Name(),
			Crc:  crc32.Checksum(data, crc32.IEEETable),
		})
	}

	return docs, nil
}

func (dr *DocRegistry) parseNewDocuments(ctx context.Context, disk diskDocs, stored storedDocs) error {
	for _, diskDoc := range disk {
		storedDoc, ok := stored[diskDoc.File]
		if ok && storedDoc.Crc == diskDoc.Crc {
			continue
		}

		if err := dr.processFile(ctx, diskDoc.File); err != nil {
			return err
		}
	}

	return nil
}

func (dr *DocRegistry) forgetRemovedDocuments(ctx context.Context, disk diskDocs, stored storedDocs) error {
	for _, storedDoc := range stored {
		if _, ok := disk[storedDoc.File]; ok {
			continue
		}

		err := dr.store.Forget(ctx, storedDoc)
		if err != nil {
			return fmt.Errorf("failed to remove report of %s from store: %w", storedDoc.File, err)
		}
	}

	return nil
}

// processFile parses one inbox file and stores its report. Parse failures
// are stored as error reports; unsupported files are skipped.
func (dr *DocRegistry) processFile(ctx context.Context, file string) error {
	path := filepath.Join(dr.root, file)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	report := docstore.Report{File: file}

	if dr.tooLarge(info.Size()) {
		report.Error = fmt.Sprintf("file is larger than %d bytes", dr.maxFileSize)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		report.Crc = crc32.Checksum(data, crc32.IEEETable)

		res, err := dr.parser.Parse(data, file)
		switch {
		case errors.Is(err, readers.ErrUnsupportedFormat):
			dr.log.Warn(fmt.Sprintf("unsupported file: %s", file))
			return nil
		case err != nil:
			report.Error = err.Error()
		default:
			report.Resume = res
		}
	}

	if err := dr.store.Store(ctx, report); err != nil {
		return fmt.Errorf("failed to store report of %s: %w", file, err)
	}

	dr.log.Info("resume processed",
		slog.String("file", file),
		slog.Bool("ok", report.Error == ""))

	return nil
}

func (dr *DocRegistry) tooLarge(size int64) bool {
	return dr.maxFileSize > 0 && size > dr.maxFileSize
}

// Watch starts watching the inbox in the background until ctx is done.
// Bursts of events for one file are merged into a single refresh.
func (dr *DocRegistry) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Add(dr.root); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", dr.root, err)
	}

	go dr.watch(ctx, w)
	return nil
}

func (dr *DocRegistry) watch(ctx context.Context, w *fsnotify.Watcher) {
	defer w.Close()

	timers := make(map[string]*time.Timer)
	ready := make(chan string)

	schedule := func(file string) {
		if t, ok := timers[file]; ok {
			t.Reset(dr.mergeEventsDelay)
			return
		}

		timers[file] = time.AfterFunc(dr.mergeEventsDelay, func() {
			select {
			case ready <- file:
			case <-ctx.Done():
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			for _, t := range timers {
				t.Stop()
			}
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}

			file, err := filepath.Rel(dr.root, ev.Name)
			if err != nil {
				dr.log.Warn("event outside of inbox", slog.String("path", ev.Name))
				continue
			}
			schedule(file)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			dr.log.Error("watcher error", slog.String("error", err.Error()))

		case file := <-ready:
			delete(timers, file)
			if err := dr.refresh(ctx, file); err != nil {
				dr.log.Error("failed to refresh document",
					slog.String("file", file),
					slog.String("error", err.Error()))
			}
		}
	}
}

func (dr *DocRegistry) refresh(ctx context.Context, file string) error {
	info, err := os.Stat(filepath.Join(dr.root, file))
	if errors.Is(err, fs.ErrNotExist) {
		return dr.store.Forget(ctx, docstore.StoredDoc{File: file})
	}
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}

	return dr.processFile(ctx, file)
}
