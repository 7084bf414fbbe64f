package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gamma-omg/resume-parser/analysis"
	"github.com/gamma-omg/resume-parser/scoring"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath  = "cfg/config.yaml"
	configPathEnv      = "RESUME_PARSER_CONFIG"
	defaultMaxFileSize = 10 << 20
)

type WatchConfig struct {
	Inbox      string `yaml:"inbox"`
	Outbox     string `yaml:"outbox"`
	DebounceMs int    `yaml:"debounce_ms" validate:"min=0"`
}

type ServerConfig struct {
	Transport string `yaml:"transport" validate:"oneof=stdio sse"`
	Addr      string `yaml:"addr" validate:"required_if=Transport sse"`
}

type ClassifierConfig struct {
	Rules   []analysis.FieldRule `yaml:"rules" validate:"dive"`
	Default string               `yaml:"default"`
}

type Config struct {
	LogFile     string            `yaml:"log"`
	LogLevel    string            `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Vocabulary  string            `yaml:"vocabulary"`
	Rubric      string            `yaml:"rubric"`
	RubricFile  string            `yaml:"rubric_file"`
	Classifier  *ClassifierConfig `yaml:"classifier"`
	MaxFileSize int64             `yaml:"max_file_size" validate:"min=0"`
	Workers     int               `yaml:"workers" validate:"min=1"`
	Watch       WatchConfig       `yaml:"watch"`
	Server      ServerConfig      `yaml:"server"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		Rubric:      scoring.SectionsRubricName,
		MaxFileSize: defaultMaxFileSize,
		Workers:     4,
		Watch: WatchConfig{
			Inbox:      "inbox",
			Outbox:     "reports",
			DebounceMs: 500,
		},
		Server: ServerConfig{
			Transport: "stdio",
			Addr:      "localhost:8080",
		},
	}
}

// readConfig loads the YAML config on top of the defaults. A missing file is
// not an error.
func readConfig(cfgPath string) (*Config, error) {
	cfg := defaultConfig()

	cfgFile, err := os.Open(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}
	defer cfgFile.Close()

	dec := yaml.NewDecoder(cfgFile)
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", cfgPath, err)
	}

	return cfg, nil
}

func (c *Config) slogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
