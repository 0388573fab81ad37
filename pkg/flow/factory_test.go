package flow

import "testing"

func TestCounterIDGenerator(t *testing.T) {
	gen := NewCounterIDGenerator()
	for i, want := range []string{"node_1", "node_2", "node_3"} {
		if got := gen.NextNodeID(); got != want {
			t.Errorf("call %d: got %q, want %q", i+1, got, want)
		}
	}
}

func TestFactoryCreateNode(t *testing.T) {
	f := NewFactory(NewRegistry(), NewCounterIDGenerator())

	node, err := f.CreateNode(NodeInput, Position{X: 100, Y: 50})
	if err != nil {
		t.Fatalf("CreateNode failed: %v", err)
	}

	if node.ID != "node_1" {
		t.Errorf("ID = %q, want node_1", node.ID)
	}
	if node.Type != RenderType {
		t.Errorf("render type = %q, want %q", node.Type, RenderType)
	}
	if node.Data.Type != NodeInput {
		t.Errorf("semantic type = %q, want input", node.Data.Type)
	}
	if node.Data.Label != "API Endpoint" {
		t.Errorf("label = %q, want catalog default", node.Data.Label)
	}
	if node.Position != (Position{X: 100, Y: 50}) {
		t.Errorf("position = %+v", node.Position)
	}
	if node.Data.Branches != nil {
		t.Errorf("non-branch node seeded with branches: %+v", node.Data.Branches)
	}
}

func TestFactoryCreateNodeUnknownType(t *testing.T) {
	f := NewFactory(NewRegistry(), NewCounterIDGenerator())
	if _, err := f.CreateNode("robot", Position{}); err == nil {
		t.Fatal("expected error for unknown node type")
	}
}

func TestFactorySeedsBranchNode(t *testing.T) {
	f := NewFactory(NewRegistry(), NewCounterIDGenerator())
	node, err := f.CreateNode(NodeBranch, Position{})
	if err != nil {
		t.Fatalf("CreateNode failed: %v", err)
	}
	if len(node.Data.Branches) != 1 || node.Data.Branches[0].ID != "1" {
		t.Errorf("branch node must start with its mandatory branch, got %+v", node.Data.Branches)
	}
}

func TestFactoryIDsNeverReused(t *testing.T) {
	graph := NewGraph()
	f := NewFactory(NewRegistry(), NewCounterIDGenerator())

	n1, _ := f.CreateNode(NodeInput, Position{})
	graph.AddNode(n1)
	graph.Clear()

	// Clearing the canvas must not reset the counter.
	n2, _ := f.CreateNode(NodeOutput, Position{})
	if n2.ID != "node_2" {
		t.Errorf("ID after clear = %q, want node_2", n2.ID)
	}
}
