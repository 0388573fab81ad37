package editor

import (
	"log"

	"github.com/dshills/flowcanvas/pkg/flow"
)

// DragDataTransferKey is the agreed transfer-channel key under which the
// palette publishes the dragged node type identifier.
const DragDataTransferKey = "application/flowcanvas"

// DragOverEvent is a platform drag-over notification. The bridge always
// accepts so the drop target stays live.
type DragOverEvent struct {
	Accepted   bool
	DropEffect string
}

// Bridge translates pointer drags carrying a type identifier into factory
// calls against the graph. Invalid payloads are logged and dropped; nothing
// here is fatal.
type Bridge struct {
	graph    *flow.Graph
	factory  *flow.Factory
	viewport func() Viewport
}

// NewBridge creates a drag-drop bridge. viewport supplies the current
// pan/zoom transform at drop time.
func NewBridge(graph *flow.Graph, factory *flow.Factory, viewport func() Viewport) *Bridge {
	return &Bridge{graph: graph, factory: factory, viewport: viewport}
}

// OnDragOver accepts the drag and declares "move" as the intended effect.
func (b *Bridge) OnDragOver(ev *DragOverEvent) {
	ev.Accepted = true
	ev.DropEffect = "move"
}

// OnDrop validates the dragged type identifier, converts the drop position
// from screen to canvas space, creates the node and appends it to the graph.
// Returns the created node, or nil when the payload was invalid.
func (b *Bridge) OnDrop(rawType string, screen flow.Position) *flow.GraphNode {
	if !flow.ValidateNodeType(rawType) {
		log.Printf("drop ignored: invalid node type %q", rawType)
		return nil
	}

	pos := b.viewport().ToCanvas(screen)
	node, err := b.factory.CreateNode(flow.FlowNodeType(rawType), pos)
	if err != nil {
		log.Printf("drop ignored: %v", err)
		return nil
	}

	b.graph.AddNode(node)
	return node
}
