package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is an activatable label. Press invokes the handler unless the
// button is disabled.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	focused  bool
	onPress  func()
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// PrimaryButton creates a primary call-to-action button.
func PrimaryButton(label string, onPress func()) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary).OnPress(onPress)
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// Press activates the button. It reports whether the handler ran.
func (b *Button) Press() bool {
	if b.disabled || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// OnPress sets the activation handler.
func (b *Button) OnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused marks the button as holding keyboard focus.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}
