package config

import (
	"fmt"
	"slices"
	"sort"

	"github.com/alexisbeaulieu97/layoutkit/internal/suggest"
	"github.com/alexisbeaulieu97/layoutkit/internal/ui/layout"
)

// Warning is a non-fatal document issue. The layout still builds, using the
// documented fallback.
type Warning struct {
	Field      string
	Message    string
	Suggestion string
}

func (w Warning) String() string {
	if w.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", w.Field, w.Message, w.Suggestion)
	}
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// Lint reports settings that the layouts will silently correct.
func (d *Document) Lint() []Warning {
	if d == nil {
		return nil
	}

	var warnings []Warning

	if t := d.Tabs; t != nil && len(t.Items) > 0 {
		if t.DefaultIndex < 0 || t.DefaultIndex >= len(t.Items) {
			warnings = append(warnings, Warning{
				Field:   "tabs.default_index",
				Message: fmt.Sprintf("index %d is out of range and will be clamped", t.DefaultIndex),
			})
		}
	}

	if s := d.Sidebar; s != nil {
		policy := layout.ParseWidthPolicy(s.Width)
		switch {
		case s.Width == "":
		case policy.IsExplicit() && policy.Resolve() <= 0:
			warnings = append(warnings, Warning{
				Field:   "sidebar.width",
				Message: fmt.Sprintf("width %s is used as given", policy),
			})
		case !policy.IsExplicit() && !policy.Preset().Valid():
			warnings = append(warnings, Warning{
				Field:      "sidebar.width",
				Message:    fmt.Sprintf("unknown preset %q, using %s", s.Width, layout.PresetStandard),
				Suggestion: suggest.Closest(s.Width, presetNames()),
			})
		}

		if s.Breakpoint != "" {
			tokens := d.breakpointTokens()
			if !slices.Contains(tokens, s.Breakpoint) {
				warnings = append(warnings, Warning{
					Field:      "sidebar.breakpoint",
					Message:    fmt.Sprintf("unknown breakpoint %q, using md", s.Breakpoint),
					Suggestion: suggest.Closest(s.Breakpoint, tokens),
				})
			}
		}

		if !s.Collapsible && s.Collapsed {
			warnings = append(warnings, Warning{
				Field:   "sidebar.collapsed",
				Message: "ignored because the sidebar is not collapsible",
			})
		}
	}

	if c := d.Canvas; c != nil {
		seen := make(map[string]int, len(c.Elements))
		for i, el := range c.Elements {
			if el.ID == "" {
				continue
			}
			if first, ok := seen[el.ID]; ok {
				warnings = append(warnings, Warning{
					Field:   fieldForElement(i, "id"),
					Message: fmt.Sprintf("duplicate element id %q; clicks go to canvas.elements[%d]", el.ID, first),
				})
				continue
			}
			seen[el.ID] = i
		}
	}

	return warnings
}

func (d *Document) breakpointTokens() []string {
	theme := d.BuildTheme()
	tokens := make([]string, 0, len(theme.Breakpoints))
	for token := range theme.Breakpoints {
		tokens = append(tokens, string(token))
	}
	sort.Strings(tokens)
	return tokens
}

func presetNames() []string {
	presets := layout.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return names
}
