package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

const docsLayout = `version: "1.0"
name: "Docs"
tabs:
  items:
    - id: guide
      label: Guide
      content: "Read the guide first."
    - id: reference
      label: Reference
      content: "Every option explained."
sidebar:
  width: narrow
  hide_on_mobile: true
  content: "Contents"
`

func writeLayout(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	isolateSettings(t)

	path := writeLayout(t, docsLayout)
	out, _, err := executeRoot(t, "render", path, "--width", "140", "--height", "20", "--color", "never")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Contents")
	require.Contains(t, plain, "Guide")
	require.Contains(t, plain, "Reference")
	require.Contains(t, plain, "Read the guide first.")
	require.NotContains(t, plain, "Every option explained.")
}

func TestRenderCommandHidesSidebarWhenNarrow(t *testing.T) {
	isolateSettings(t)

	path := writeLayout(t, docsLayout)
	out, _, err := executeRoot(t, "render", path, "--width", "80", "--height", "20", "--color", "never")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.NotContains(t, plain, "Contents")
	require.Contains(t, plain, "Guide")
}

func TestRenderCommandUsesSettingsViewport(t *testing.T) {
	isolateSettings(t)
	t.Setenv("LAYOUTKIT_VIEWPORT_WIDTH", "80")
	t.Setenv("LAYOUTKIT_VIEWPORT_HEIGHT", "20")

	out, _, err := executeRoot(t, "render", writeLayout(t, docsLayout), "--color", "never")
	require.NoError(t, err)
	require.NotContains(t, ansi.Strip(out), "Contents", "80 columns is below the md breakpoint")
}

func TestRenderCommandErrors(t *testing.T) {
	isolateSettings(t)

	_, _, err := executeRoot(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "does not exist")

	_, _, err = executeRoot(t, "render", t.TempDir())
	require.ErrorContains(t, err, "is a directory")

	_, _, err = executeRoot(t, "render", writeLayout(t, "version: \"1.0\"\nname: empty\n"))
	var validationErr *layouterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, _, err = executeRoot(t, "render")
	require.Error(t, err)
}

func TestRenderCommandAppliesThemeSetting(t *testing.T) {
	isolateSettings(t)

	theme := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(theme, []byte("breakpoints:\n  md: 400\n"), 0o644))
	t.Setenv("LAYOUTKIT_THEME", theme)

	out, _, err := executeRoot(t, "render", writeLayout(t, docsLayout), "--width", "80", "--height", "20", "--color", "never")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "Contents", "lowered breakpoint keeps the sidebar at 640px")

	require.NoError(t, os.WriteFile(theme, []byte("cell:\n  width: 0\n  height: 2\n"), 0o644))
	_, _, err = executeRoot(t, "render", writeLayout(t, docsLayout))
	require.ErrorContains(t, err, "failed to load theme")
}

func TestRenderCommandGoldenSnapshot(t *testing.T) {
	isolateSettings(t)

	path := writeLayout(t, docsLayout)
	golden := filepath.Join(t.TempDir(), "docs.golden")
	args := []string{"render", path, "--width", "140", "--height", "20", "--color", "never", "--golden", golden}

	_, _, err := executeRoot(t, args...)
	require.ErrorContains(t, err, "read snapshot")

	out, _, err := executeRoot(t, append(args, "--update")...)
	require.NoError(t, err)
	require.Contains(t, out, "updated")

	out, _, err = executeRoot(t, args...)
	require.NoError(t, err)
	require.Contains(t, out, "render matches")

	require.NoError(t, os.WriteFile(golden, []byte("something else\n"), 0o644))
	out, _, err = executeRoot(t, args...)
	require.ErrorContains(t, err, "render differs")
	require.Contains(t, out, "-something else")
}
