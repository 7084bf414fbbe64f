// Command resume-parser extracts contact details and skills from PDF, DOC and
// DOCX resumes, predicts a job field and scores resume completeness.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gamma-omg/resume-parser/analysis"
	"github.com/gamma-omg/resume-parser/parser"
	"github.com/gamma-omg/resume-parser/scoring"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume-parser",
	Short:         "Resume parsing and scoring",
	Long:          "resume-parser extracts contact details and skills from PDF, DOC and DOCX resumes, predicts a job field and scores how complete the resume is.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var cfgPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Configuration file (overrides "+configPathEnv+", default "+defaultConfigPath+")")
}

// app holds what every command needs once the config is loaded.
type app struct {
	cfg    *Config
	log    *slog.Logger
	parser *parser.Parser
	closer io.Closer
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	if p := os.Getenv(configPathEnv); p != "" {
		return p
	}
	return defaultConfigPath
}

func loadApp() (*app, error) {
	cfg, err := readConfig(configPath())
	if err != nil {
		return nil, err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	p, err := buildParser(cfg, logger)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	return &app{cfg: cfg, log: logger, parser: p, closer: closer}, nil
}

func newLogger(cfg *Config) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: cfg.slogLevel()}
	if cfg.LogFile == "" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil, nil
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(logFile, opts)), logFile, nil
}

func buildParser(cfg *Config, log *slog.Logger) (*parser.Parser, error) {
	opts := []parser.Option{parser.WithLogger(log)}

	if cfg.Vocabulary != "" {
		vocab, err := analysis.LoadVocabulary(cfg.Vocabulary)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parser.WithVocabulary(vocab))
	}

	var (
		rubric scoring.Rubric
		err    error
	)
	if cfg.RubricFile != "" {
		rubric, err = scoring.LoadRubric(cfg.RubricFile)
	} else {
		rubric, err = scoring.Builtin(cfg.Rubric)
	}
	if err != nil {
		return nil, err
	}
	opts = append(opts, parser.WithRubric(rubric))

	if cfg.Classifier != nil {
		opts = append(opts, parser.WithClassifier(
			analysis.NewClassifier(cfg.Classifier.Rules, cfg.Classifier.Default)))
	}

	p, err := parser.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	return p, nil
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
