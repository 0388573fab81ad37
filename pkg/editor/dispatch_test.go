package editor

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/flowcanvas/pkg/flow"
)

func dispatchFixture(t *testing.T) (*flow.Graph, *Dispatcher, *flow.Factory) {
	t.Helper()
	g := flow.NewGraph()
	registry := flow.NewRegistry()
	factory := flow.NewFactory(registry, flow.NewCounterIDGenerator())
	return g, NewDispatcher(g, registry), factory
}

func addNode(t *testing.T, g *flow.Graph, f *flow.Factory, nodeType flow.FlowNodeType) *flow.GraphNode {
	t.Helper()
	node, err := f.CreateNode(nodeType, flow.Position{})
	if err != nil {
		t.Fatalf("CreateNode(%s): %v", nodeType, err)
	}
	g.AddNode(node)
	return node
}

func TestResolveModalTotality(t *testing.T) {
	want := map[flow.FlowNodeType]ModalKind{
		flow.NodeInput:        ModalKindInput,
		flow.NodeDefault:      ModalKindProcess,
		flow.NodeOutput:       ModalKindOutput,
		flow.NodeApproval:     ModalKindApproval,
		flow.NodeEmail:        ModalKindEmail,
		flow.NodeSign:         ModalKindSign,
		flow.NodeTeamApproval: ModalKindTeamApproval,
		flow.NodeCondition:    ModalKindCondition,
		flow.NodeBranch:       ModalKindBranch,
		flow.NodePDF:          ModalKindPDF,
	}

	for nodeType, kind := range want {
		if got := ResolveModal(nodeType); got != kind {
			t.Errorf("ResolveModal(%s) = %v, want %v", nodeType, got, kind)
		}
	}

	if got := ResolveModal("robot"); got != ModalKindNone {
		t.Errorf("unknown type resolved to %v, want none", got)
	}
	if got := ResolveModal(""); got != ModalKindNone {
		t.Errorf("empty type resolved to %v, want none", got)
	}
}

func TestDispatcherOpen(t *testing.T) {
	g, d, f := dispatchFixture(t)
	node := addNode(t, g, f, flow.NodeApproval)

	session, err := d.Open(node.ID)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if session.Kind != ModalKindApproval {
		t.Errorf("Kind = %v", session.Kind)
	}
	if session.NodeID != node.ID {
		t.Errorf("NodeID = %q", session.NodeID)
	}
	if !d.IsOpen() {
		t.Error("dispatcher should report an open session")
	}
}

func TestDispatcherOpenMissingNode(t *testing.T) {
	_, d, _ := dispatchFixture(t)
	if _, err := d.Open("ghost"); err == nil {
		t.Fatal("expected error for missing node")
	}
}

func TestDispatcherSaveAppliesPayloadAndLabel(t *testing.T) {
	g, d, f := dispatchFixture(t)
	node := addNode(t, g, f, flow.NodeApproval)

	session, err := d.Open(node.ID)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	applied, err := d.Save(session.Ticket, ApprovalPayload{Approvers: []string{"alice@co.com"}})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !applied {
		t.Fatal("save not applied")
	}

	got, _ := g.FindNode(node.ID)
	if got.Data.Label != "Approval: alice@co.com" {
		t.Errorf("label = %q", got.Data.Label)
	}
	if len(got.Data.ModalData) == 0 {
		t.Error("modalData not stored")
	}
	if d.IsOpen() {
		t.Error("session should close on save")
	}
}

func TestDispatcherStaleTicketDiscarded(t *testing.T) {
	g, d, f := dispatchFixture(t)
	node := addNode(t, g, f, flow.NodeInput)

	first, _ := d.Open(node.ID)
	// Reopening replaces the session and invalidates the first ticket.
	second, _ := d.Open(node.ID)

	if applied, _ := d.Save(first.Ticket, InputPayload{Source: "stale"}); applied {
		t.Fatal("stale ticket must be discarded")
	}
	got, _ := g.FindNode(node.ID)
	if got.Data.Label != "API Endpoint" {
		t.Errorf("stale save mutated the node: %q", got.Data.Label)
	}

	if applied, _ := d.Save(second.Ticket, InputPayload{Source: "orders"}); !applied {
		t.Fatal("current ticket rejected")
	}
	got, _ = g.FindNode(node.ID)
	if got.Data.Label != "Input: ORDERS" {
		t.Errorf("label = %q", got.Data.Label)
	}
}

func TestDispatcherSaveWithNoSession(t *testing.T) {
	_, d, _ := dispatchFixture(t)
	if applied, _ := d.Save(uuid.New(), InputPayload{Source: "x"}); applied {
		t.Fatal("save without a session must be discarded")
	}
}

func TestDispatcherCancel(t *testing.T) {
	g, d, f := dispatchFixture(t)
	node := addNode(t, g, f, flow.NodeEmail)

	session, _ := d.Open(node.ID)
	d.Cancel(session.Ticket)

	if d.IsOpen() {
		t.Error("cancel should close the session")
	}
	got, _ := g.FindNode(node.ID)
	if got.Data.ModalData != nil {
		t.Error("cancel must not mutate the node")
	}

	// Cancelling a stale ticket is ignored.
	next, _ := d.Open(node.ID)
	d.Cancel(session.Ticket)
	if !d.IsOpen() {
		t.Error("stale cancel closed the live session")
	}
	d.Cancel(next.Ticket)
}

func TestDispatcherBranchSaveLiftsBranches(t *testing.T) {
	g, d, f := dispatchFixture(t)
	node := addNode(t, g, f, flow.NodeBranch)

	session, _ := d.Open(node.ID)
	payload := BranchPayload{Branches: []flow.Branch{
		{ID: "1", Label: "Paid"},
		{ID: "2", Label: "Unpaid"},
	}}
	if applied, err := d.Save(session.Ticket, payload); err != nil || !applied {
		t.Fatalf("Save = %v, %v", applied, err)
	}

	got, _ := g.FindNode(node.ID)
	if len(got.Data.Branches) != 2 || got.Data.Branches[1].Label != "Unpaid" {
		t.Errorf("branches = %+v", got.Data.Branches)
	}
}

func TestDispatcherSaveAfterClearIsBenign(t *testing.T) {
	g, d, f := dispatchFixture(t)
	node := addNode(t, g, f, flow.NodeInput)

	session, _ := d.Open(node.ID)
	g.Clear()

	// The ticket is still current, so the save is accepted; the patch lands
	// on a node that no longer exists and is dropped quietly.
	if applied, err := d.Save(session.Ticket, InputPayload{Source: "late"}); err != nil || !applied {
		t.Fatalf("Save = %v, %v", applied, err)
	}
	if g.NodeCount() != 0 {
		t.Error("late save resurrected graph state")
	}
}
