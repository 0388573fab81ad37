package editor

import "github.com/dshills/flowcanvas/pkg/flow"

// Viewport is the canvas pan/zoom transform. Screen coordinates arriving from
// the platform (pointer events) are converted to canvas space before any node
// is placed.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// NewViewport returns an identity viewport (no pan, zoom 1).
func NewViewport() Viewport {
	return Viewport{Zoom: 1.0}
}

// ToCanvas converts a screen-space position to canvas space, reversing the
// zoom scaling and pan offset.
func (v Viewport) ToCanvas(p flow.Position) flow.Position {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return flow.Position{
		X: p.X/zoom + v.OffsetX,
		Y: p.Y/zoom + v.OffsetY,
	}
}

// ToScreen converts a canvas-space position to screen space.
func (v Viewport) ToScreen(p flow.Position) flow.Position {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return flow.Position{
		X: (p.X - v.OffsetX) * zoom,
		Y: (p.Y - v.OffsetY) * zoom,
	}
}

// Pan shifts the viewport offset.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}
