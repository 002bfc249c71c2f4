package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/pleasure1234/linux-do-mcp/internal/mcp"
)

func TestWriteCatalogYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, mcp.Catalog(), "yaml"))

	var tools []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &tools))
	require.Len(t, tools, len(mcp.Catalog()))
	assert.Equal(t, mcp.ToolLatestTopic, tools[0]["name"])
	assert.Contains(t, buf.String(), "Web Archive")
}

func TestWriteCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, mcp.Catalog(), "json"))

	var tools []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tools))
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool["name"].(string))
	}
	assert.Contains(t, names, mcp.ToolFetchAgain)
}

func TestWriteCatalogUnknownFormat(t *testing.T) {
	assert.Error(t, writeCatalog(&bytes.Buffer{}, mcp.Catalog(), "toml"))
}
