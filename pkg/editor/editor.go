package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/flowcanvas/pkg/flow"
)

// Editor is one interactive editing session: the graph, the services that
// mutate it, and the gates the presentation layer talks to. All operations
// run as discrete handlers on a single event loop; at most one modal and one
// pending connection exist at a time by construction.
type Editor struct {
	sessionID    uuid.UUID
	registry     *flow.Registry
	graph        *flow.Graph
	factory      *flow.Factory
	bridge       *Bridge
	connector    *Connector
	dispatcher   *Dispatcher
	viewport     Viewport
	pendingClear bool
	clearPrompt  func()
	onStats      func(flow.FlowStats)
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator overrides the node ID generator, letting tests supply a
// deterministic stub.
func WithIDGenerator(ids flow.IDGenerator) Option {
	return func(e *Editor) {
		e.factory = flow.NewFactory(e.registry, ids)
	}
}

// WithRegistry overrides the default node type catalog.
func WithRegistry(registry *flow.Registry) Option {
	return func(e *Editor) {
		e.registry = registry
	}
}

// WithLabelPrompt wires the presentation callback that opens the edge label
// choice dialog.
func WithLabelPrompt(prompt LabelPromptFunc) Option {
	return func(e *Editor) {
		e.connector = NewConnector(e.graph, prompt)
	}
}

// WithClearPrompt wires the presentation callback that opens the clear-canvas
// confirmation dialog.
func WithClearPrompt(prompt func()) Option {
	return func(e *Editor) {
		e.clearPrompt = prompt
	}
}

// New creates an editing session with an empty graph.
func New(opts ...Option) *Editor {
	e := &Editor{
		sessionID: uuid.New(),
		registry:  flow.NewRegistry(),
		graph:     flow.NewGraph(),
		viewport:  NewViewport(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.factory == nil {
		e.factory = flow.NewFactory(e.registry, flow.NewCounterIDGenerator())
	}
	if e.connector == nil {
		e.connector = NewConnector(e.graph, nil)
	}
	e.bridge = NewBridge(e.graph, e.factory, func() Viewport { return e.viewport })
	e.dispatcher = NewDispatcher(e.graph, e.registry)
	return e
}

// SessionID identifies this editing session in logs.
func (e *Editor) SessionID() uuid.UUID {
	return e.sessionID
}

// Graph returns the graph state store.
func (e *Editor) Graph() *flow.Graph {
	return e.graph
}

// Registry returns the node type catalog.
func (e *Editor) Registry() *flow.Registry {
	return e.registry
}

// Bridge returns the drag-drop bridge.
func (e *Editor) Bridge() *Bridge {
	return e.bridge
}

// Connector returns the connection policy.
func (e *Editor) Connector() *Connector {
	return e.connector
}

// Dispatcher returns the modal dispatcher.
func (e *Editor) Dispatcher() *Dispatcher {
	return e.dispatcher
}

// Viewport returns the current pan/zoom transform.
func (e *Editor) Viewport() Viewport {
	return e.viewport
}

// SetViewport replaces the pan/zoom transform.
func (e *Editor) SetViewport(v Viewport) {
	e.viewport = v
}

// OnStats registers the statistics listener and subscribes it to graph
// changes. The listener receives a fresh snapshot after every mutation and
// once immediately on registration.
func (e *Editor) OnStats(fn func(flow.FlowStats)) {
	e.onStats = fn
	e.graph.Subscribe(func() {
		if e.onStats != nil {
			e.onStats(e.graph.Stats())
		}
	})
	fn(e.graph.Stats())
}

// SeedWelcomeNode places the starter node shown on an empty canvas.
func (e *Editor) SeedWelcomeNode() {
	e.graph.AddNode(&flow.GraphNode{
		ID:       "welcome-node",
		Type:     flow.RenderType,
		Position: flow.Position{X: 250, Y: 100},
		Data: flow.NodeData{
			Label: "Welcome! Start building...",
			Type:  flow.NodeInput,
		},
	})
}

// NodeClick opens the configuration dialog for a clicked node when its type
// has one. Returns the session for the presentation layer to render, or
// false when no dialog applies.
func (e *Editor) NodeClick(nodeID string) (*ModalSession, bool) {
	node, ok := e.graph.FindNode(nodeID)
	if !ok || !e.registry.HasModal(node.Data.Type) {
		return nil, false
	}
	session, err := e.dispatcher.Open(nodeID)
	if err != nil {
		return nil, false
	}
	return session, true
}

// RequestClear asks for a full-canvas clear. The clear itself waits for
// explicit confirmation via ConfirmClear.
func (e *Editor) RequestClear() {
	e.pendingClear = true
	if e.clearPrompt != nil {
		e.clearPrompt()
	}
}

// ClearPending reports whether a clear request awaits confirmation.
func (e *Editor) ClearPending() bool {
	return e.pendingClear
}

// ConfirmClear empties the canvas. Ignored unless a clear was requested.
func (e *Editor) ConfirmClear() {
	if !e.pendingClear {
		return
	}
	e.pendingClear = false
	e.graph.Clear()
}

// CancelClear abandons a pending clear request.
func (e *Editor) CancelClear() {
	e.pendingClear = false
}
