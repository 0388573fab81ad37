package tui

import (
	"fmt"

	"github.com/dshills/goterm"

	"github.com/dshills/flowcanvas/pkg/flow"
)

// StatsPanel shows the live canvas statistics: node and edge totals plus a
// per-type breakdown. It holds the latest snapshot pushed by the editing
// session and renders it on demand.
type StatsPanel struct {
	stats flow.FlowStats
}

// NewStatsPanel creates an empty stats panel.
func NewStatsPanel() *StatsPanel {
	return &StatsPanel{}
}

// Update replaces the displayed snapshot.
func (s *StatsPanel) Update(stats flow.FlowStats) {
	s.stats = stats
}

// Stats returns the displayed snapshot.
func (s *StatsPanel) Stats() flow.FlowStats {
	return s.stats
}

// Render draws the panel into the region at (x, y) with the given size.
func (s *StatsPanel) Render(screen *goterm.Screen, x, y, width, height int) {
	if screen == nil {
		return
	}

	fg := goterm.ColorRGB(220, 220, 220)
	bg := goterm.ColorDefault()
	borderFg := goterm.ColorRGB(136, 136, 136)

	drawBox(screen, x, y, width, height, borderFg, bg)

	title := " Canvas "
	for i, ch := range title {
		if i+2 < width-1 {
			screen.SetCell(x+2+i, y, goterm.NewCell(ch, fg, bg, goterm.StyleBold))
		}
	}

	lines := []string{
		fmt.Sprintf("Nodes: %d", s.stats.TotalNodes),
		fmt.Sprintf("Edges: %d", s.stats.TotalEdges),
	}
	for _, t := range flow.AllNodeTypes() {
		if count := s.stats.NodesByType[t]; count > 0 {
			lines = append(lines, fmt.Sprintf("  %s: %d", t, count))
		}
	}

	for i, line := range lines {
		if y+1+i >= y+height-1 {
			break
		}
		for j, ch := range line {
			if 1+j < width-1 {
				screen.SetCell(x+1+j, y+1+i, goterm.NewCell(ch, fg, bg, goterm.StyleNone))
			}
		}
	}
}
