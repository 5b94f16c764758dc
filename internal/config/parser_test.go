package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui/components"
	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Docs page"
description: "Tabs inside a sidebar"
tabs:
  default_index: 1
  items:
    - id: overview
      label: Overview
      content: "Overview body"
    - id: install
      label: Install
sidebar:
  width: narrow
  collapsible: true
  content: "Navigation"
`

	invalidYAML := `version: [1, 0]
name: "Broken"
`

	noSections := `version: "1.0"
name: "Empty"
`

	badVersion := `version: "beta"
name: "Bad Version"
canvas:
  height: 480
`

	duplicateTabs := `version: "1.0"
name: "Dupes"
tabs:
  items:
    - id: a
    - id: a
`

	badDuration := `version: "1.0"
name: "Canvas"
canvas:
  height: 480
  elements:
    - id: dot
      animation: float
      duration: soon
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "Docs page", doc.Name)
				require.Len(t, doc.Tabs.Items, 2)
				require.Equal(t, 1, doc.Tabs.DefaultIndex)
				require.Equal(t, "narrow", doc.Sidebar.Width)
				require.Nil(t, doc.Canvas)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Nil(t, doc)
				var parseErr *layouterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "document without sections is rejected",
			contents: noSections,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *layouterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "document", validationErr.Field)
			},
		},
		{
			name:     "bad version fails semver validation",
			contents: badVersion,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *layouterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "document.version", validationErr.Field)
				require.Contains(t, validationErr.Message, "semver")
			},
		},
		{
			name:     "duplicate tab ids are rejected",
			contents: duplicateTabs,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *layouterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "tabs.items[1].id", validationErr.Field)
			},
		},
		{
			name:     "unparseable duration fails validation",
			contents: badDuration,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *layouterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "duration")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "layout.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			doc, err := ParseDocument(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *layouterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument("inline.yaml", []byte("version: \"1.0\"\nname: x\ntabs:\n  items: 3\n"))
	var parseErr *layouterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 4, parseErr.Line)

	require.Zero(t, extractLine(nil))
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(good, []byte("spacing_unit: 4\nbreakpoints:\n  md: 1000\ncell:\n  width: 10\n  height: 20\n"), 0o644))

	spec, err := ParseTheme(good)
	require.NoError(t, err)
	theme := spec.Apply(components.DefaultTheme())
	require.Equal(t, 4, theme.SpacingUnit)
	require.Equal(t, 1000, theme.Breakpoints[components.BreakpointMD])
	require.Equal(t, components.CellMetric{Width: 10, Height: 20}, theme.Cell)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("spacing_unit: 0\ncell:\n  width: 0\n  height: 4\n"), 0o644))
	_, err = ParseTheme(bad)
	var validationErr *layouterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "themespec.cell.width", validationErr.Field)
}
