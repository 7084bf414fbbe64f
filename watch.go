package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gamma-omg/resume-parser/docstore"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox directory and keep a JSON report for every resume",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := docstore.NewFileStore(a.cfg.Watch.Outbox)
	if err != nil {
		return err
	}

	reg := &DocRegistry{
		log:              a.log,
		root:             a.cfg.Watch.Inbox,
		mergeEventsDelay: time.Duration(a.cfg.Watch.DebounceMs) * time.Millisecond,
		maxFileSize:      a.cfg.MaxFileSize,
		store:            store,
		parser:           a.parser,
	}

	ctx := cmd.Context()
	if err := reg.Sync(ctx); err != nil {
		return fmt.Errorf("failed to sync inbox: %w", err)
	}
	if err := reg.Watch(ctx); err != nil {
		return err
	}

	a.log.Info("watching inbox",
		slog.String("inbox", a.cfg.Watch.Inbox),
		slog.String("outbox", a.cfg.Watch.Outbox))

	<-ctx.Done()
	a.log.Info("stopped watching inbox")
	return nil
}
