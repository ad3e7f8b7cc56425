package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/artcheck/artcheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the artcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the artcheck MCP server (stdio)",
		Long:  "Start the artcheck MCP server using stdio transport. This lets AI coding assistants validate artifacts and inspect the article catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewArtcheckMCPServer()
			return server.ServeStdio(s)
		},
	}
}
