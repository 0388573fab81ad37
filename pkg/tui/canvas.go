package tui

import (
	"strconv"

	"github.com/dshills/goterm"

	"github.com/dshills/flowcanvas/pkg/editor"
	"github.com/dshills/flowcanvas/pkg/flow"
)

// Canvas cell geometry. Node positions are kept in a continuous coordinate
// space; terminal cells are taller than wide, so the two axes scale
// differently when projecting to the screen.
const (
	cellScaleX = 8.0
	cellScaleY = 16.0

	nodeBoxWidth  = 22
	nodeBoxHeight = 3
)

// Canvas renders the node graph into a rectangular screen region using the
// editing session's pan/zoom transform.
type Canvas struct {
	graph    *flow.Graph
	viewport func() editor.Viewport
	selected string
}

// NewCanvas creates a canvas bound to a graph and viewport source.
func NewCanvas(graph *flow.Graph, viewport func() editor.Viewport) *Canvas {
	return &Canvas{graph: graph, viewport: viewport}
}

// Select highlights a node by ID. Empty clears the highlight.
func (c *Canvas) Select(nodeID string) {
	c.selected = nodeID
}

// Selected returns the highlighted node ID.
func (c *Canvas) Selected() string {
	return c.selected
}

// project converts a node's canvas position to a terminal cell inside the
// render region.
func (c *Canvas) project(p flow.Position, x, y int) (int, int) {
	s := c.viewport().ToScreen(p)
	return x + int(s.X/cellScaleX), y + int(s.Y/cellScaleY)
}

// Render draws all nodes and edges into the region at (x, y) with the given
// size.
func (c *Canvas) Render(screen *goterm.Screen, x, y, width, height int) {
	for _, edge := range c.graph.Edges() {
		c.renderEdge(screen, edge, x, y, width, height)
	}
	for _, node := range c.graph.Nodes() {
		c.renderNode(screen, node, x, y, width, height)
	}
}

// renderNode draws one node as a bordered box tinted with its type color.
func (c *Canvas) renderNode(screen *goterm.Screen, node *flow.GraphNode, x, y, width, height int) {
	nx, ny := c.project(node.Position, x, y)
	if nx < x || ny < y || nx+nodeBoxWidth > x+width || ny+nodeBoxHeight > y+height {
		return
	}

	fg := hexColor(flow.TypeColor(node.Data.Type))
	bg := goterm.ColorDefault()
	style := goterm.StyleNone
	if node.ID == c.selected {
		style = goterm.StyleReverse
	}

	screen.SetCell(nx, ny, goterm.NewCell('┌', fg, bg, style))
	screen.SetCell(nx+nodeBoxWidth-1, ny, goterm.NewCell('┐', fg, bg, style))
	screen.SetCell(nx, ny+2, goterm.NewCell('└', fg, bg, style))
	screen.SetCell(nx+nodeBoxWidth-1, ny+2, goterm.NewCell('┘', fg, bg, style))
	for i := 1; i < nodeBoxWidth-1; i++ {
		screen.SetCell(nx+i, ny, goterm.NewCell('─', fg, bg, style))
		screen.SetCell(nx+i, ny+2, goterm.NewCell('─', fg, bg, style))
	}
	screen.SetCell(nx, ny+1, goterm.NewCell('│', fg, bg, style))
	screen.SetCell(nx+nodeBoxWidth-1, ny+1, goterm.NewCell('│', fg, bg, style))

	label := node.Data.Label
	if len(label) > nodeBoxWidth-4 {
		label = label[:nodeBoxWidth-7] + "..."
	}
	pad := (nodeBoxWidth - 2 - len(label)) / 2
	for i := 1; i < nodeBoxWidth-1; i++ {
		ch := ' '
		if j := i - 1 - pad; j >= 0 && j < len(label) {
			ch = rune(label[j])
		}
		screen.SetCell(nx+i, ny+1, goterm.NewCell(ch, fg, bg, style))
	}
}

// renderEdge draws a connection as an elbow path from the source box to the
// target box, with the edge label at the elbow.
func (c *Canvas) renderEdge(screen *goterm.Screen, edge *flow.GraphEdge, x, y, width, height int) {
	src, ok := c.graph.FindNode(edge.Source)
	if !ok {
		return
	}
	dst, ok := c.graph.FindNode(edge.Target)
	if !ok {
		return
	}

	sx, sy := c.project(src.Position, x, y)
	tx, ty := c.project(dst.Position, x, y)

	// Anchor at the source box's right edge and the target box's left edge.
	sx += nodeBoxWidth
	sy++
	ty++

	fg := goterm.ColorRGB(150, 150, 150)
	bg := goterm.ColorDefault()
	style := goterm.StyleNone
	if edge.Animated {
		style = goterm.StyleDim
	}

	inBounds := func(cx, cy int) bool {
		return cx >= x && cx < x+width && cy >= y && cy < y+height
	}

	midX := (sx + tx) / 2
	for cx := sx; cx < midX; cx++ {
		if inBounds(cx, sy) {
			screen.SetCell(cx, sy, goterm.NewCell('─', fg, bg, style))
		}
	}
	step := 1
	if ty < sy {
		step = -1
	}
	for cy := sy; cy != ty; cy += step {
		if inBounds(midX, cy) {
			screen.SetCell(midX, cy, goterm.NewCell('│', fg, bg, style))
		}
	}
	for cx := midX; cx < tx; cx++ {
		if inBounds(cx, ty) {
			screen.SetCell(cx, ty, goterm.NewCell('─', fg, bg, style))
		}
	}
	if inBounds(tx-1, ty) {
		screen.SetCell(tx-1, ty, goterm.NewCell('▶', fg, bg, style))
	}

	if edge.Label != "" {
		labelFg := fg
		labelStyle := goterm.StyleNone
		if edge.LabelStyle != nil {
			labelFg = hexColor(edge.LabelStyle.Fill)
			if edge.LabelStyle.FontWeight >= 700 {
				labelStyle = goterm.StyleBold
			}
		}
		ly := (sy + ty) / 2
		for i, ch := range edge.Label {
			if inBounds(midX+1+i, ly) {
				screen.SetCell(midX+1+i, ly, goterm.NewCell(ch, labelFg, bg, labelStyle))
			}
		}
	}
}

// hexColor parses a "#rrggbb" string into a terminal color. Malformed input
// falls back to the default color.
func hexColor(hex string) goterm.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return goterm.ColorDefault()
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return goterm.ColorDefault()
	}
	return goterm.ColorRGB(uint8(r), uint8(g), uint8(b))
}
