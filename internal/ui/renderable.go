// Package ui holds the rendering contract shared by every component and layout.
package ui

// Renderable is any piece of content that can produce a terminal view.
// Layouts treat Renderables as opaque: they place and clip the output but
// never inspect it.
type Renderable interface {
	View() string
}

// Text is a plain string payload.
type Text string

// View returns the text unchanged.
func (t Text) View() string {
	return string(t)
}

// RenderFunc adapts an ordinary function to Renderable.
type RenderFunc func() string

// View calls the function. A nil RenderFunc renders nothing.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// ViewOf renders r, treating a nil Renderable as empty content.
func ViewOf(r Renderable) string {
	if r == nil {
		return ""
	}
	return r.View()
}
