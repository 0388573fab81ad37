package components

import (
	"github.com/dshills/goterm"
)

// Button is a focusable button rendered as "[ label ]".
type Button struct {
	label   string
	x       int
	y       int
	width   int
	focused bool
	onClick func()
	style   ButtonStyle
}

// ButtonStyle defines visual appearance of a button.
type ButtonStyle struct {
	NormalFg  goterm.Color
	NormalBg  goterm.Color
	FocusedFg goterm.Color
	FocusedBg goterm.Color
}

// DefaultButtonStyle returns the default button style.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		NormalFg:  goterm.ColorRGB(255, 255, 255),
		NormalBg:  goterm.ColorRGB(60, 60, 60),
		FocusedFg: goterm.ColorRGB(0, 0, 0),
		FocusedBg: goterm.ColorRGB(100, 200, 255),
	}
}

// NewButton creates a button component.
func NewButton(label string, onClick func()) *Button {
	return &Button{
		label:   label,
		width:   len(label) + 4,
		onClick: onClick,
		style:   DefaultButtonStyle(),
	}
}

// SetPosition sets the button position.
func (b *Button) SetPosition(x, y int) {
	b.x = x
	b.y = y
}

// SetFocused sets the focused state.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}

// SetStyle sets the button style.
func (b *Button) SetStyle(style ButtonStyle) {
	b.style = style
}

// Width returns the rendered width.
func (b *Button) Width() int {
	return b.width
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Activate triggers the button's onClick callback.
func (b *Button) Activate() {
	if b.onClick != nil {
		b.onClick()
	}
}

// Render draws the button to the screen.
func (b *Button) Render(screen *goterm.Screen) {
	if screen == nil {
		return
	}

	fg, bg := b.style.NormalFg, b.style.NormalBg
	if b.focused {
		fg, bg = b.style.FocusedFg, b.style.FocusedBg
	}

	text := "[ " + b.label + " ]"
	width, height := screen.Size()
	for i, ch := range text {
		if b.x+i >= width || b.y >= height {
			break
		}
		screen.SetCell(b.x+i, b.y, goterm.NewCell(ch, fg, bg, goterm.StyleNone))
	}
}
