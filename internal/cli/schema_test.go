package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_PrintToStdout(t *testing.T) {
	out := &bytes.Buffer{}

	err := Schema(SchemaParams{Common: Common{Out: out}})
	require.NoError(t, err)

	schemaStr := out.String()
	assert.Contains(t, schemaStr, `"$schema": "http://json-schema.org/draft-07/schema#"`)
	assert.Contains(t, schemaStr, `"title": "hideezctl coin table"`)
	assert.Contains(t, schemaStr, `"slip44"`)
	assert.Contains(t, schemaStr, `"broadcast_url"`)
}

func TestSchema_WriteToFile(t *testing.T) {
	out := &bytes.Buffer{}
	outputFile := filepath.Join(t.TempDir(), "coins-schema.json")

	err := Schema(SchemaParams{Common: Common{Out: out}, OutputPath: outputFile})
	require.NoError(t, err)
	assert.Contains(t, out.String(), outputFile)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"title": "hideezctl coin table"`)
}

func TestSchema_WriteToFile_InvalidPath(t *testing.T) {
	err := Schema(SchemaParams{OutputPath: "/nonexistent/directory/schema.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write schema")
}
