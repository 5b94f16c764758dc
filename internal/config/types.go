package config

// Document is a declarative page built from the three layouts. At least one
// of Tabs, Sidebar, or Canvas must be present.
type Document struct {
	Version     string       `yaml:"version" validate:"required,semver"`
	Name        string       `yaml:"name" validate:"required,min=1,max=100"`
	Description string       `yaml:"description,omitempty"`
	Theme       ThemeSpec    `yaml:"theme,omitempty"`
	Tabs        *TabsSpec    `yaml:"tabs,omitempty"`
	Sidebar     *SidebarSpec `yaml:"sidebar,omitempty"`
	Canvas      *CanvasSpec  `yaml:"canvas,omitempty"`
}

// ThemeSpec overrides parts of the default theme.
type ThemeSpec struct {
	SpacingUnit int            `yaml:"spacing_unit,omitempty" validate:"omitempty,min=1,max=64"`
	Breakpoints map[string]int `yaml:"breakpoints,omitempty" validate:"omitempty,dive,keys,layout_id,endkeys,min=0"`
	Cell        *CellSpec      `yaml:"cell,omitempty"`
}

// CellSpec is the pixel size of one terminal cell.
type CellSpec struct {
	Width  int `yaml:"width" validate:"required,min=1,max=64"`
	Height int `yaml:"height" validate:"required,min=1,max=128"`
}

// TabsSpec configures a tab switcher.
type TabsSpec struct {
	Orientation  string    `yaml:"orientation,omitempty" validate:"omitempty,oneof=horizontal vertical"`
	Variant      string    `yaml:"variant,omitempty" validate:"omitempty,tab_variant"`
	DefaultIndex int       `yaml:"default_index,omitempty"`
	Items        []TabSpec `yaml:"items" validate:"dive"`
}

// TabSpec is one tab.
type TabSpec struct {
	ID       string `yaml:"id" validate:"required,layout_id"`
	Label    string `yaml:"label,omitempty" validate:"max=64"`
	Icon     string `yaml:"icon,omitempty"`
	IconOnly bool   `yaml:"icon_only,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Content  string `yaml:"content,omitempty"`
}

// SidebarSpec configures a sidebar composer. Width is a preset name or a
// pixel count.
type SidebarSpec struct {
	Width          string `yaml:"width,omitempty" validate:"omitempty,width_policy"`
	Collapsible    bool   `yaml:"collapsible,omitempty"`
	CollapsedWidth *int   `yaml:"collapsed_width,omitempty"`
	Collapsed      bool   `yaml:"collapsed,omitempty"`
	HideOnMobile   bool   `yaml:"hide_on_mobile,omitempty"`
	Breakpoint     string `yaml:"breakpoint,omitempty" validate:"omitempty,layout_id"`
	Gap            *int   `yaml:"gap,omitempty" validate:"omitempty,min=0,max=16"`
	Side           string `yaml:"side,omitempty" validate:"omitempty,oneof=left right"`
	Role           string `yaml:"role,omitempty" validate:"omitempty,oneof=complementary navigation"`
	Content        string `yaml:"content,omitempty"`
	Main           string `yaml:"main,omitempty"`
}

// CanvasSpec configures a scattered canvas. Heights and widths are pixels.
type CanvasSpec struct {
	Height     int             `yaml:"height" validate:"required,min=1"`
	Width      int             `yaml:"width,omitempty" validate:"omitempty,min=1"`
	Background string          `yaml:"background,omitempty"`
	Animated   *bool           `yaml:"animated,omitempty"`
	Elements   []ElementSpec   `yaml:"elements,omitempty" validate:"dive"`
	Main       *CanvasMainSpec `yaml:"main,omitempty"`
}

// ElementSpec is one floating element. X and Y are percentages and may lie
// outside 0..100.
type ElementSpec struct {
	ID        string           `yaml:"id,omitempty" validate:"omitempty,layout_id"`
	Content   string           `yaml:"content,omitempty"`
	X         float64          `yaml:"x"`
	Y         float64          `yaml:"y"`
	Size      string           `yaml:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Style     ElementStyleSpec `yaml:"style,omitempty"`
	Rotation  float64          `yaml:"rotation,omitempty"`
	Animation string           `yaml:"animation,omitempty" validate:"omitempty,oneof=none float pulse rotate"`
	Duration  string           `yaml:"duration,omitempty" validate:"omitempty,duration"`
	Z         int              `yaml:"z,omitempty"`
}

// ElementStyleSpec is passed through to the element renderer.
type ElementStyleSpec struct {
	Background string  `yaml:"background,omitempty"`
	Color      string  `yaml:"color,omitempty"`
	Radius     int     `yaml:"radius,omitempty" validate:"min=0"`
	Opacity    float64 `yaml:"opacity,omitempty" validate:"min=0,max=1"`
}

// CanvasMainSpec is the centered block of a canvas.
type CanvasMainSpec struct {
	Title string `yaml:"title,omitempty"`
	Body  string `yaml:"body,omitempty"`
	CTA   string `yaml:"cta,omitempty"`
	Width int    `yaml:"width,omitempty" validate:"min=0"`
}
