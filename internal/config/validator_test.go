package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	layouterrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

func validDocument() *Document {
	return &Document{
		Version: "1.0.0",
		Name:    "Valid",
		Tabs: &TabsSpec{
			Items: []TabSpec{{ID: "one", Label: "One"}, {ID: "two", Label: "Two"}},
		},
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	intPtr := func(v int) *int { return &v }

	cases := []struct {
		name      string
		mutate    func(d *Document)
		wantField string
	}{
		{name: "valid document", mutate: func(*Document) {}},
		{
			name:      "missing name",
			mutate:    func(d *Document) { d.Name = "" },
			wantField: "document.name",
		},
		{
			name:      "tab id must be a layout id",
			mutate:    func(d *Document) { d.Tabs.Items[0].ID = "Has Spaces" },
			wantField: "document.tabs.items[0].id",
		},
		{
			name:      "unknown orientation",
			mutate:    func(d *Document) { d.Tabs.Orientation = "diagonal" },
			wantField: "document.tabs.orientation",
		},
		{
			name:      "unknown tab variant",
			mutate:    func(d *Document) { d.Tabs.Variant = "fancy" },
			wantField: "document.tabs.variant",
		},
		{
			name: "sidebar preset words pass validation",
			mutate: func(d *Document) {
				d.Sidebar = &SidebarSpec{Width: "huge"}
			},
		},
		{
			name: "sidebar pixel width with suffix",
			mutate: func(d *Document) {
				d.Sidebar = &SidebarSpec{Width: "240px", Gap: intPtr(0)}
			},
		},
		{
			name: "sidebar width garbage",
			mutate: func(d *Document) {
				d.Sidebar = &SidebarSpec{Width: "12 apples"}
			},
			wantField: "document.sidebar.width",
		},
		{
			name: "sidebar role must be a landmark",
			mutate: func(d *Document) {
				d.Sidebar = &SidebarSpec{Role: "button"}
			},
			wantField: "document.sidebar.role",
		},
		{
			name: "canvas height is required",
			mutate: func(d *Document) {
				d.Canvas = &CanvasSpec{}
			},
			wantField: "document.canvas.height",
		},
		{
			name: "canvas element size class",
			mutate: func(d *Document) {
				d.Canvas = &CanvasSpec{Height: 100, Elements: []ElementSpec{{Size: "giant"}}}
			},
			wantField: "document.canvas.elements[0].size",
		},
		{
			name: "element opacity above one",
			mutate: func(d *Document) {
				d.Canvas = &CanvasSpec{Height: 100, Elements: []ElementSpec{{Style: ElementStyleSpec{Opacity: 1.5}}}}
			},
			wantField: "document.canvas.elements[0].style.opacity",
		},
		{
			name: "negative duration",
			mutate: func(d *Document) {
				d.Canvas = &CanvasSpec{Height: 100, Elements: []ElementSpec{{Duration: "-2s"}}}
			},
			wantField: "document.canvas.elements[0].duration",
		},
		{
			name: "breakpoint keys must be tokens",
			mutate: func(d *Document) {
				d.Theme.Breakpoints = map[string]int{"Not Valid": 10}
			},
		},
		{
			name: "cell metric requires both sides",
			mutate: func(d *Document) {
				d.Theme.Cell = &CellSpec{Width: 8}
			},
			wantField: "document.theme.cell.height",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := validDocument()
			tc.mutate(doc)
			err := ValidateDocument(doc)

			switch {
			case tc.name == "breakpoint keys must be tokens":
				var validationErr *layouterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "document.theme.breakpoints")
			case tc.wantField == "":
				require.NoError(t, err)
			default:
				var validationErr *layouterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, tc.wantField, validationErr.Field)
			}
		})
	}
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	err := ValidateDocument(nil)
	var validationErr *layouterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "document", validationErr.Field)
}

func TestValidatorInstanceIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, validatorInstance(), validatorInstance())
}
