package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artcheck/artcheck/internal/adapters/inbound/mcp"
)

func TestNewArtcheckMCPServer(t *testing.T) {
	s := mcp.NewArtcheckMCPServer()
	require.NotNil(t, s)
}
