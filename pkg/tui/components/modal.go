package components

import (
	"strings"

	"github.com/dshills/goterm"
)

// ChoiceResult reports how a choice modal was closed.
type ChoiceResult struct {
	Confirmed bool
	Choice    string
}

// ChoiceModal is a centered dialog offering a fixed set of labeled choices.
// It backs both yes/no confirmations and decision label selection. Escape
// always closes with Confirmed false.
type ChoiceModal struct {
	title      string
	message    string
	width      int
	height     int
	visible    bool
	focusedBtn int
	buttons    []*Button
	choices    []string
	onClose    func(ChoiceResult)
	style      ModalStyle
}

// ModalStyle defines visual appearance of a modal.
type ModalStyle struct {
	TitleFg    goterm.Color
	TitleBg    goterm.Color
	BorderFg   goterm.Color
	BorderBg   goterm.Color
	MessageFg  goterm.Color
	MessageBg  goterm.Color
	BackdropFg goterm.Color
	BackdropBg goterm.Color
}

// DefaultModalStyle returns the default modal style.
func DefaultModalStyle() ModalStyle {
	return ModalStyle{
		TitleFg:    goterm.ColorRGB(255, 255, 255),
		TitleBg:    goterm.ColorRGB(40, 80, 120),
		BorderFg:   goterm.ColorRGB(150, 150, 200),
		BorderBg:   goterm.ColorDefault(),
		MessageFg:  goterm.ColorRGB(220, 220, 220),
		MessageBg:  goterm.ColorDefault(),
		BackdropFg: goterm.ColorRGB(0, 0, 0),
		BackdropBg: goterm.ColorRGB(0, 0, 0),
	}
}

// NewChoiceModal creates a modal offering the given choices. Closing via a
// choice button reports Confirmed true and the chosen label.
func NewChoiceModal(title, message string, choices []string, onClose func(ChoiceResult)) *ChoiceModal {
	m := &ChoiceModal{
		title:   title,
		message: message,
		width:   50,
		height:  10,
		choices: choices,
		onClose: onClose,
		style:   DefaultModalStyle(),
	}
	for _, choice := range choices {
		choice := choice
		m.buttons = append(m.buttons, NewButton(choice, func() {
			m.Close(ChoiceResult{Confirmed: true, Choice: choice})
		}))
	}
	if len(m.buttons) > 0 {
		m.buttons[0].SetFocused(true)
	}
	return m
}

// NewConfirmModal creates a yes/no confirmation modal.
func NewConfirmModal(title, message string, onConfirm func(bool)) *ChoiceModal {
	return NewChoiceModal(title, message, []string{"Yes", "Cancel"}, func(result ChoiceResult) {
		if onConfirm != nil {
			onConfirm(result.Confirmed && result.Choice == "Yes")
		}
	})
}

// Show displays the modal.
func (m *ChoiceModal) Show() {
	m.visible = true
	m.focusedBtn = 0
}

// Hide hides the modal without triggering the callback.
func (m *ChoiceModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is visible.
func (m *ChoiceModal) IsVisible() bool {
	return m.visible
}

// Close hides the modal and triggers the callback.
func (m *ChoiceModal) Close(result ChoiceResult) {
	m.Hide()
	if m.onClose != nil {
		m.onClose(result)
	}
}

// SetMessage sets the modal message.
func (m *ChoiceModal) SetMessage(message string) {
	m.message = message
}

// Render draws the modal centered on the screen.
func (m *ChoiceModal) Render(screen *goterm.Screen) {
	if !m.visible || screen == nil {
		return
	}

	width, height := screen.Size()
	x := (width - m.width) / 2
	y := (height - m.height) / 2

	m.drawBackdrop(screen)
	m.drawBorder(screen, x, y)
	m.drawTitle(screen, x, y)
	m.drawMessage(screen, x, y)
	m.drawButtons(screen, x, y)
}

func (m *ChoiceModal) drawBackdrop(screen *goterm.Screen) {
	width, height := screen.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := screen.GetCell(x, y)
			screen.SetCell(x, y, goterm.NewCell(cell.Ch, m.style.BackdropFg, m.style.BackdropBg, goterm.StyleDim))
		}
	}
}

func (m *ChoiceModal) drawBorder(screen *goterm.Screen, x, y int) {
	fg := m.style.BorderFg
	bg := m.style.BorderBg

	screen.SetCell(x, y, goterm.NewCell('┌', fg, bg, goterm.StyleNone))
	screen.SetCell(x+m.width-1, y, goterm.NewCell('┐', fg, bg, goterm.StyleNone))
	screen.SetCell(x, y+m.height-1, goterm.NewCell('└', fg, bg, goterm.StyleNone))
	screen.SetCell(x+m.width-1, y+m.height-1, goterm.NewCell('┘', fg, bg, goterm.StyleNone))

	for i := 1; i < m.width-1; i++ {
		screen.SetCell(x+i, y, goterm.NewCell('─', fg, bg, goterm.StyleNone))
		screen.SetCell(x+i, y+m.height-1, goterm.NewCell('─', fg, bg, goterm.StyleNone))
	}
	for i := 1; i < m.height-1; i++ {
		screen.SetCell(x, y+i, goterm.NewCell('│', fg, bg, goterm.StyleNone))
		screen.SetCell(x+m.width-1, y+i, goterm.NewCell('│', fg, bg, goterm.StyleNone))
	}

	for i := 1; i < m.height-1; i++ {
		for j := 1; j < m.width-1; j++ {
			screen.SetCell(x+j, y+i, goterm.NewCell(' ', fg, bg, goterm.StyleNone))
		}
	}
}

func (m *ChoiceModal) drawTitle(screen *goterm.Screen, x, y int) {
	if m.title == "" {
		return
	}

	title := " " + m.title + " "
	maxLen := m.width - 4
	if len(title) > maxLen {
		title = title[:maxLen]
	}

	for i, ch := range title {
		screen.SetCell(x+2+i, y, goterm.NewCell(ch, m.style.TitleFg, m.style.TitleBg, goterm.StyleBold))
	}
}

func (m *ChoiceModal) drawMessage(screen *goterm.Screen, x, y int) {
	contentWidth := m.width - 4
	lines := wrapText(m.message, contentWidth)

	for i, line := range lines {
		if i >= m.height-5 {
			break
		}
		for j, ch := range line {
			screen.SetCell(x+2+j, y+2+i, goterm.NewCell(ch, m.style.MessageFg, m.style.MessageBg, goterm.StyleNone))
		}
	}
}

func (m *ChoiceModal) drawButtons(screen *goterm.Screen, x, y int) {
	buttonY := y + m.height - 3

	total := 0
	for _, b := range m.buttons {
		total += b.Width()
	}
	total += 4 * (len(m.buttons) - 1)

	btnX := x + (m.width-total)/2
	for i, b := range m.buttons {
		b.SetPosition(btnX, buttonY)
		b.SetFocused(i == m.focusedBtn)
		b.Render(screen)
		btnX += b.Width() + 4
	}
}

// HandleKey handles keyboard input for the modal.
// Returns true if the key was handled.
func (m *ChoiceModal) HandleKey(key string) bool {
	if !m.visible {
		return false
	}

	switch key {
	case "Esc", "Escape":
		m.Close(ChoiceResult{Confirmed: false})
		return true
	case "Tab", "Right", "l":
		m.focusedBtn = (m.focusedBtn + 1) % len(m.buttons)
		return true
	case "Left", "h":
		m.focusedBtn--
		if m.focusedBtn < 0 {
			m.focusedBtn = len(m.buttons) - 1
		}
		return true
	case "Enter":
		m.buttons[m.focusedBtn].Activate()
		return true
	}

	return false
}

// wrapText wraps text to fit within a given width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
