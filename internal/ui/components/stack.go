package components

import (
	"strings"

	"github.com/alexisbeaulieu97/layoutkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign Alignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    AlignStart,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context. Children receive
// the parent's constraints unchanged; nil children and empty views are
// skipped so gaps only separate visible content.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	if s.direction == DirectionHorizontal {
		return style.Render(s.joinHorizontal(views))
	}
	return style.Render(s.joinVertical(views))
}

func (s *Stack) joinVertical(views []string) string {
	pos := s.crossAlign.ToLipglossPosition()
	if s.gap <= 0 {
		return lipgloss.JoinVertical(pos, views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(pos, result...)
}

func (s *Stack) joinHorizontal(views []string) string {
	pos := lipgloss.Top
	switch s.crossAlign {
	case AlignCenter:
		pos = lipgloss.Center
	case AlignEnd:
		pos = lipgloss.Bottom
	}
	if s.gap <= 0 {
		return lipgloss.JoinHorizontal(pos, views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinHorizontal(pos, result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross-axis alignment.
func (s *Stack) WithCrossAlign(align Alignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
