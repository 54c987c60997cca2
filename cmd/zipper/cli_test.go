package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func readDoc(t *testing.T, path string) any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := oj.Parse(data)
	require.NoError(t, err)
	return doc
}

func TestWalkCommand(t *testing.T) {
	path := tempDoc(t, `[1,[2],3]`)
	out := runCLI(t, "walk", path)
	assert.Equal(t, "[1,[2],3]\n  1\n  [2]\n    2\n  3\n", out)
}

func TestGetCommand(t *testing.T) {
	path := tempDoc(t, `[{"name":"a"},{"name":"b"}]`)
	out := runCLI(t, "get", path, "$[*].name")
	assert.Equal(t, "\"a\"\n\"b\"\n", out)
}

func TestSetCommand(t *testing.T) {
	path := tempDoc(t, `[1,[2,3],4]`)
	runCLI(t, "set", path, "1.0", "9")
	assert.Equal(t, []any{int64(1), []any{int64(9), int64(3)}, int64(4)}, readDoc(t, path))
}

func TestInsertCommand(t *testing.T) {
	path := tempDoc(t, `[1,3]`)
	runCLI(t, "insert", "--pos=right", path, "0", "2")
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, readDoc(t, path))
}

func TestRemoveCommand(t *testing.T) {
	path := tempDoc(t, `[1,2,3]`)
	runCLI(t, "remove", path, "1")
	assert.Equal(t, []any{int64(1), int64(3)}, readDoc(t, path))
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`[1,[2,3],4]`), 0o644))
	scriptPath := filepath.Join(dir, "edits.hcl")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
edit "insert-right" {
  at    = "1.0"
  value = "3.5"
}

edit "remove" {
  at = "2"
}
`), 0o644))

	runCLI(t, "apply", docPath, scriptPath)
	assert.Equal(t, []any{int64(1), []any{int64(2), 3.5, int64(3)}}, readDoc(t, docPath))
}

func TestEditFailuresSurface(t *testing.T) {
	path := tempDoc(t, `[1]`)
	rootCmd.SetArgs([]string{"remove", path, ""})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	assert.Error(t, rootCmd.Execute())
}
