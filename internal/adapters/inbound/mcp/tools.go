package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/artcheck/artcheck/internal/adapters/outbound/config"
	"github.com/artcheck/artcheck/internal/adapters/outbound/gitinfo"
	"github.com/artcheck/artcheck/internal/adapters/outbound/toolexec"
	"github.com/artcheck/artcheck/internal/application"
	"github.com/artcheck/artcheck/internal/domain"
)

// registerTools registers the artcheck MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. artcheck_validate
	s.AddTool(
		mcplib.NewTool("artcheck_validate",
			mcplib.WithDescription("Validate a single Go source file against the compliance article catalog and return the full report as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the Go source file to validate"),
			),
			mcplib.WithBoolean("strict", mcplib.Description("Treat warnings as failures")),
			mcplib.WithString("rules", mcplib.Description("Comma-separated article ids to validate (unknown ids are skipped)")),
		),
		handleValidate(),
	)

	// 2. artcheck_rules
	s.AddTool(
		mcplib.NewTool("artcheck_rules",
			mcplib.WithDescription("Returns the article catalog with ids, titles, weights, and criteria as JSON"),
		),
		handleRules(),
	)
}

func handleValidate() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := config.New().Load(filepath.Dir(file))
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if strict, _ := request.GetArguments()["strict"].(bool); strict {
			cfg.StrictMode = true
		}
		if rules, _ := request.GetArguments()["rules"].(string); rules != "" {
			cfg.RuleFilter = splitIDs(rules)
		}

		svc := application.NewValidateService(
			domain.DefaultCatalog(),
			toolexec.NewInvoker(),
			application.WithCommitResolver(gitinfo.New()),
		)

		report, err := svc.Validate(ctx, file, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.DefaultCatalog())
	}
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
