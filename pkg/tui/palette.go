package tui

import (
	"fmt"
	"strings"

	"github.com/dshills/goterm"

	"github.com/dshills/flowcanvas/pkg/flow"
)

// Palette lists the draggable node types from the catalog, grouped into flow
// steps and logic blocks, with search filtering.
type Palette struct {
	registry      *flow.Registry
	selectedIndex int
	filterText    string
	visible       bool
}

// NewPalette creates a palette backed by the node type catalog.
func NewPalette(registry *flow.Registry) *Palette {
	return &Palette{registry: registry}
}

// Show opens the palette with selection and filter reset.
func (p *Palette) Show() {
	p.visible = true
	p.selectedIndex = 0
	p.filterText = ""
}

// Hide closes the palette.
func (p *Palette) Hide() {
	p.visible = false
}

// IsVisible returns whether the palette is open.
func (p *Palette) IsVisible() bool {
	return p.visible
}

// Next moves selection to the next entry with wrap-around.
func (p *Palette) Next() {
	entries := p.Filter(p.filterText)
	if len(entries) == 0 {
		return
	}
	p.selectedIndex = (p.selectedIndex + 1) % len(entries)
}

// Previous moves selection to the previous entry with wrap-around.
func (p *Palette) Previous() {
	entries := p.Filter(p.filterText)
	if len(entries) == 0 {
		return
	}
	p.selectedIndex--
	if p.selectedIndex < 0 {
		p.selectedIndex = len(entries) - 1
	}
}

// Filter updates the search filter and returns the matching catalog entries
// in palette order. Matching is case-insensitive on the display label.
func (p *Palette) Filter(text string) []flow.NodeConfig {
	p.filterText = text

	configs := p.registry.Configs()
	if text == "" {
		return configs
	}

	lower := strings.ToLower(text)
	filtered := make([]flow.NodeConfig, 0, len(configs))
	for _, cfg := range configs {
		if strings.Contains(strings.ToLower(cfg.Label), lower) {
			filtered = append(filtered, cfg)
		}
	}

	if p.selectedIndex >= len(filtered) {
		p.selectedIndex = 0
	}
	return filtered
}

// Selected returns the highlighted catalog entry. The second return is false
// when the filter matches nothing.
func (p *Palette) Selected() (flow.NodeConfig, bool) {
	entries := p.Filter(p.filterText)
	if len(entries) == 0 {
		return flow.NodeConfig{}, false
	}
	if p.selectedIndex >= len(entries) {
		p.selectedIndex = 0
	}
	return entries[p.selectedIndex], true
}

// AppendFilter adds a typed character to the search filter.
func (p *Palette) AppendFilter(ch rune) {
	p.filterText += string(ch)
	p.selectedIndex = 0
}

// BackspaceFilter removes the last character of the search filter.
func (p *Palette) BackspaceFilter() {
	if p.filterText != "" {
		p.filterText = p.filterText[:len(p.filterText)-1]
	}
}

// Render draws the palette into the region at (x, y) with the given size.
func (p *Palette) Render(screen *goterm.Screen, x, y, width, height int) {
	if !p.visible || screen == nil {
		return
	}

	fgColor := goterm.ColorRGB(255, 255, 255)
	bgColor := goterm.ColorRGB(30, 30, 30)
	selectedBg := goterm.ColorRGB(58, 58, 58)
	sectionFg := goterm.ColorRGB(136, 136, 136)
	borderFg := goterm.ColorRGB(136, 136, 136)

	drawBox(screen, x, y, width, height, borderFg, bgColor)

	title := "Add Step"
	if p.filterText != "" {
		title = fmt.Sprintf("Add Step [%s]", p.filterText)
	}
	pad := (width - 2 - len(title)) / 2
	for i, ch := range title {
		if i+pad+1 < width-1 {
			screen.SetCell(x+1+pad+i, y, goterm.NewCell(ch, fgColor, bgColor, goterm.StyleBold))
		}
	}

	entries := p.Filter(p.filterText)
	currentY := y + 1
	lastSection := ""
	for i, cfg := range entries {
		section := "Flow Steps"
		if flow.IsLogicType(cfg.Type) {
			section = "Logic Blocks"
		}
		if section != lastSection {
			if currentY >= y+height-1 {
				break
			}
			for j, ch := range " " + section {
				if 1+j < width-1 {
					screen.SetCell(x+1+j, currentY, goterm.NewCell(ch, sectionFg, bgColor, goterm.StyleBold))
				}
			}
			lastSection = section
			currentY++
		}
		if currentY >= y+height-1 {
			break
		}

		rowBg := bgColor
		if i == p.selectedIndex {
			rowBg = selectedBg
		}

		content := fmt.Sprintf(" %s %s - %s", cfg.Icon, cfg.Label, cfg.Description)
		if len(content) > width-2 {
			content = content[:width-5] + "..."
		}
		for j := 1; j < width-1; j++ {
			ch := ' '
			if j-1 < len(content) {
				ch = rune(content[j-1])
			}
			screen.SetCell(x+j, currentY, goterm.NewCell(ch, fgColor, rowBg, goterm.StyleNone))
		}
		currentY++
	}
}

// drawBox draws a bordered rectangle with a filled interior.
func drawBox(screen *goterm.Screen, x, y, width, height int, fg, bg goterm.Color) {
	screen.SetCell(x, y, goterm.NewCell('┌', fg, bg, goterm.StyleNone))
	screen.SetCell(x+width-1, y, goterm.NewCell('┐', fg, bg, goterm.StyleNone))
	screen.SetCell(x, y+height-1, goterm.NewCell('└', fg, bg, goterm.StyleNone))
	screen.SetCell(x+width-1, y+height-1, goterm.NewCell('┘', fg, bg, goterm.StyleNone))
	for i := 1; i < width-1; i++ {
		screen.SetCell(x+i, y, goterm.NewCell('─', fg, bg, goterm.StyleNone))
		screen.SetCell(x+i, y+height-1, goterm.NewCell('─', fg, bg, goterm.StyleNone))
	}
	for i := 1; i < height-1; i++ {
		screen.SetCell(x, y+i, goterm.NewCell('│', fg, bg, goterm.StyleNone))
		screen.SetCell(x+width-1, y+i, goterm.NewCell('│', fg, bg, goterm.StyleNone))
		for j := 1; j < width-1; j++ {
			screen.SetCell(x+j, y+i, goterm.NewCell(' ', fg, bg, goterm.StyleNone))
		}
	}
}
