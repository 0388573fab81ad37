package editor

import (
	"log"

	"github.com/dshills/flowcanvas/pkg/flow"
)

// ConnState is the connection policy state.
type ConnState int

const (
	// StateIdle means no connection is awaiting disambiguation.
	StateIdle ConnState = iota
	// StateAwaitingLabel means a team-approval connection is pending a
	// label choice before its edge is created.
	StateAwaitingLabel
)

// Connection is a proposed edge between two nodes, as delivered by a connect
// gesture. Handles identify sub-ports on multi-port nodes.
type Connection struct {
	Source       string
	Target       string
	SourceHandle string
	TargetHandle string
}

// LabelPromptFunc asks the presentation layer to open the edge label choice
// dialog for a pending connection.
type LabelPromptFunc func(Connection)

// Connector decides what a connect gesture produces: a plain edge
// immediately, or a pending connection that must first be labeled. Edges from
// team-approval nodes carry an Approval/Deny decision and are not created
// until the label is chosen.
type Connector struct {
	graph   *flow.Graph
	prompt  LabelPromptFunc
	state   ConnState
	pending *Connection
}

// NewConnector creates a connection policy bound to the graph. prompt may be
// nil when no presentation layer is attached (tests drive ChooseLabel
// directly).
func NewConnector(graph *flow.Graph, prompt LabelPromptFunc) *Connector {
	return &Connector{graph: graph, prompt: prompt, state: StateIdle}
}

// State returns the current policy state.
func (c *Connector) State() ConnState {
	return c.state
}

// Pending returns the connection awaiting a label, if any.
func (c *Connector) Pending() (Connection, bool) {
	if c.pending == nil {
		return Connection{}, false
	}
	return *c.pending, true
}

// Connect handles a connect gesture. Invalid gestures (missing endpoint) are
// logged and ignored. A gesture arriving while a label choice is still
// pending replaces the pending connection.
func (c *Connector) Connect(conn Connection) {
	if conn.Source == "" || conn.Target == "" {
		log.Printf("invalid connection: source or target is empty")
		return
	}

	source, ok := c.graph.FindNode(conn.Source)
	if ok && source.Data.Type == flow.NodeTeamApproval {
		c.pending = &conn
		c.state = StateAwaitingLabel
		if c.prompt != nil {
			c.prompt(conn)
		}
		return
	}

	c.graph.AddEdge(flow.NewEdge(conn.Source, conn.Target, conn.SourceHandle, conn.TargetHandle))
}

// ChooseLabel resolves the pending connection with the chosen decision label,
// creating the labeled edge and returning to idle. Ignored when nothing is
// pending.
func (c *Connector) ChooseLabel(label string) {
	if c.state != StateAwaitingLabel || c.pending == nil {
		log.Printf("edge label %q ignored: no pending connection", label)
		return
	}

	conn := *c.pending
	c.pending = nil
	c.state = StateIdle
	c.graph.AddEdge(flow.NewLabeledEdge(conn.Source, conn.Target, conn.SourceHandle, conn.TargetHandle, label))
}

// CancelLabel discards the pending connection without creating an edge.
func (c *Connector) CancelLabel() {
	c.pending = nil
	c.state = StateIdle
}
