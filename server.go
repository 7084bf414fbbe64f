package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func NewResumeServer(p ResumeParser, maxFileSize int64, log *slog.Logger) *server.MCPServer {
	tool := mcp.NewTool("parse_resume",
		mcp.WithDescription("Parses a PDF, DOC or DOCX resume and returns contact details, skills, predicted field and a completeness score"),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Original file name, the extension selects the reader"),
		),
		mcp.WithString("content_base64",
			mcp.Required(),
			mcp.Description("Base64 encoded file content"),
		))

	srv := server.NewMCPServer("resume-parser", "0.1.0", server.WithToolCapabilities(false))
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename, err := request.RequireString("filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		content, err := request.RequireString("content_base64")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res, err := parseToolCall(p, filename, content, maxFileSize)
		if err != nil {
			log.Warn("parse_resume failed",
				slog.String("file", filename),
				slog.String("error", err.Error()))
			return mcp.NewToolResultError(err.Error()), nil
		}

		log.Info("parse_resume", slog.String("file", filename))
		return mcp.NewToolResultText(res), nil
	})

	return srv
}

func parseToolCall(p ResumeParser, filename string, content string, maxFileSize int64) (string, error) {
	if maxFileSize > 0 && int64(base64.StdEncoding.DecodedLen(len(content))) > maxFileSize+2 {
		return "", fmt.Errorf("file is larger than %d bytes", maxFileSize)
	}

	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", fmt.Errorf("invalid base64 content: %w", err)
	}
	if maxFileSize > 0 && int64(len(data)) > maxFileSize {
		return "", fmt.Errorf("file is larger than %d bytes", maxFileSize)
	}

	res, err := p.Parse(data, filename)
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	return string(raw), nil
}

func serve(srv *server.MCPServer, cfg ServerConfig, log *slog.Logger) error {
	switch cfg.Transport {
	case "sse":
		log.Info("serving over sse", slog.String("addr", cfg.Addr))
		sse := server.NewSSEServer(srv, server.WithBaseURL(fmt.Sprintf("http://%s", cfg.Addr)))
		return sse.Start(cfg.Addr)
	default:
		log.Info("serving over stdio")
		return server.ServeStdio(srv)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parse_resume MCP tool over stdio or SSE",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	srv := NewResumeServer(a.parser, a.cfg.MaxFileSize, a.log)
	return serve(srv, a.cfg.Server, a.log)
}
