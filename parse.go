package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse one resume and print the JSON result",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var parseIndent bool

func init() {
	parseCmd.Flags().BoolVar(&parseIndent, "indent", true, "Indent the JSON output")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return parseFile(a.parser, args[0], a.cfg.MaxFileSize, parseIndent, cmd.OutOrStdout())
}

func readResume(file string, maxFileSize int64) ([]byte, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	if maxFileSize > 0 && info.Size() > maxFileSize {
		return nil, fmt.Errorf("%s is larger than %d bytes", file, maxFileSize)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	return data, nil
}

func parseFile(p ResumeParser, file string, maxFileSize int64, indent bool, out io.Writer) error {
	data, err := readResume(file, maxFileSize)
	if err != nil {
		return err
	}

	res, err := p.Parse(data, file)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
