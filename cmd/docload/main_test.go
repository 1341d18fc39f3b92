package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/docload/docload/cmd/docload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "docload")
	assert.Contains(t, stdout.String(), "root")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--no-such-flag", "docs"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsBadIncludePattern(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-i", "[", t.TempDir()}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_PreviewClassifiesLocalDocs(t *testing.T) {
	t.Parallel()

	// Given: a documentation set with core and excluded links
	root := t.TempDir()
	content := `# Setup

Read the [overview](https://x.io/overview) first.
The [API reference](https://x.io/api/reference) is for later.
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "setup.md"), []byte(content), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running preview with the default core scope
	err := m.Run(context.Background(), []string{"--preview", root}, &stdout, &stderr)

	// Then: links are classified and printed without any fetching
	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "https://x.io/overview")
	assert.Contains(t, output, "P0")
	assert.Contains(t, output, "https://x.io/api/reference")
	assert.Contains(t, output, "excluded")
}

func TestMain_Run_PreviewJSON(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	content := "See https://x.io/quickstart for setup.\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte(content), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--preview", "--json", root}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"links"`)
	assert.Contains(t, stdout.String(), `"https://x.io/quickstart"`)
}

func TestMain_Run_PreviewMissingRoot(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--preview", filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr)

	assert.Error(t, err)
}
