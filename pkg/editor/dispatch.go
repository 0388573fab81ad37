package editor

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dshills/flowcanvas/pkg/flow"
)

// ModalKind selects which configuration dialog applies to a clicked node.
type ModalKind int

const (
	// ModalKindNone means no dialog applies; render nothing, never crash.
	ModalKindNone ModalKind = iota
	ModalKindInput
	ModalKindProcess
	ModalKindOutput
	ModalKindApproval
	ModalKindEmail
	ModalKindSign
	ModalKindTeamApproval
	ModalKindCondition
	ModalKindBranch
	ModalKindPDF
)

// String returns a short name for the modal kind.
func (k ModalKind) String() string {
	switch k {
	case ModalKindInput:
		return "input"
	case ModalKindProcess:
		return "process"
	case ModalKindOutput:
		return "output"
	case ModalKindApproval:
		return "approval"
	case ModalKindEmail:
		return "email"
	case ModalKindSign:
		return "sign"
	case ModalKindTeamApproval:
		return "teamApproval"
	case ModalKindCondition:
		return "condition"
	case ModalKindBranch:
		return "branch"
	case ModalKindPDF:
		return "pdf"
	default:
		return "none"
	}
}

// ResolveModal maps a node type to its configuration dialog. Total over the
// closed enumeration; anything else resolves to ModalKindNone.
func ResolveModal(t flow.FlowNodeType) ModalKind {
	switch t {
	case flow.NodeInput:
		return ModalKindInput
	case flow.NodeDefault:
		return ModalKindProcess
	case flow.NodeOutput:
		return ModalKindOutput
	case flow.NodeApproval:
		return ModalKindApproval
	case flow.NodeEmail:
		return ModalKindEmail
	case flow.NodeSign:
		return ModalKindSign
	case flow.NodeTeamApproval:
		return ModalKindTeamApproval
	case flow.NodeCondition:
		return ModalKindCondition
	case flow.NodeBranch:
		return ModalKindBranch
	case flow.NodePDF:
		return ModalKindPDF
	default:
		return ModalKindNone
	}
}

// ModalSession describes one open configuration dialog. The ticket guards
// against stale asynchronous saves: a save carrying a ticket that is no
// longer current is discarded.
type ModalSession struct {
	Ticket   uuid.UUID
	NodeID   string
	NodeType flow.FlowNodeType
	Kind     ModalKind
	Current  json.RawMessage
}

// Dispatcher owns the single open modal session and relays dialog results
// into the graph. Dialogs never mutate the store directly; every mutation
// flows through Save.
type Dispatcher struct {
	graph    *flow.Graph
	registry *flow.Registry
	current  *ModalSession
}

// NewDispatcher creates a modal dispatcher bound to the graph and registry.
func NewDispatcher(graph *flow.Graph, registry *flow.Registry) *Dispatcher {
	return &Dispatcher{graph: graph, registry: registry}
}

// Open starts a modal session for a clicked node. Opening while another
// session is active replaces it, invalidating the earlier ticket. Returns an
// error when the node is missing or its type has no dialog.
func (d *Dispatcher) Open(nodeID string) (*ModalSession, error) {
	node, ok := d.graph.FindNode(nodeID)
	if !ok {
		return nil, fmt.Errorf("node not found: %s", nodeID)
	}
	if !d.registry.HasModal(node.Data.Type) {
		return nil, fmt.Errorf("node type %s has no configuration dialog", node.Data.Type)
	}

	d.current = &ModalSession{
		Ticket:   uuid.New(),
		NodeID:   node.ID,
		NodeType: node.Data.Type,
		Kind:     ResolveModal(node.Data.Type),
		Current:  node.Data.ModalData,
	}
	return d.current, nil
}

// Current returns the open session, if any.
func (d *Dispatcher) Current() (*ModalSession, bool) {
	if d.current == nil {
		return nil, false
	}
	return d.current, true
}

// IsOpen reports whether a modal session is active.
func (d *Dispatcher) IsOpen() bool {
	return d.current != nil
}

// Save applies a typed dialog payload against the session identified by
// ticket. Reports whether the save was applied; a stale ticket (session
// cancelled, closed, or replaced while the save was in flight) is discarded
// without touching the graph.
func (d *Dispatcher) Save(ticket uuid.UUID, payload ModalPayload) (bool, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to encode modal payload: %w", err)
	}
	return d.SaveRaw(ticket, data), nil
}

// SaveRaw applies an opaque dialog payload: the node's modalData is replaced,
// its display label rederived, and for branch nodes the branch list lifted
// out of the payload. Closes the session on success.
func (d *Dispatcher) SaveRaw(ticket uuid.UUID, data json.RawMessage) bool {
	if d.current == nil || d.current.Ticket != ticket {
		log.Printf("discarding stale modal save")
		return false
	}

	session := d.current
	d.current = nil

	label := flow.DeriveLabel(session.NodeType, d.currentLabel(session.NodeID), data)
	patch := flow.NodeDataPatch{
		Label:     &label,
		ModalData: data,
	}
	if session.NodeType == flow.NodeBranch {
		patch.Branches = decodeBranches(data)
	}

	// A missing node here means the canvas was cleared while the dialog
	// was open; PatchNodeData treats that as a benign no-op.
	d.graph.PatchNodeData(session.NodeID, patch)
	return true
}

// Cancel discards the session identified by ticket without mutating the
// graph. A stale ticket is ignored.
func (d *Dispatcher) Cancel(ticket uuid.UUID) {
	if d.current != nil && d.current.Ticket == ticket {
		d.current = nil
	}
}

func (d *Dispatcher) currentLabel(nodeID string) string {
	if node, ok := d.graph.FindNode(nodeID); ok {
		return node.Data.Label
	}
	return ""
}

func decodeBranches(data json.RawMessage) []flow.Branch {
	raw := gjson.GetBytes(data, "branches")
	if !raw.IsArray() {
		return nil
	}
	var branches []flow.Branch
	if err := json.Unmarshal([]byte(raw.Raw), &branches); err != nil {
		log.Printf("ignoring malformed branches payload: %v", err)
		return nil
	}
	return branches
}
