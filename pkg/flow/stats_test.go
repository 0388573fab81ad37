package flow

import "testing"

func TestComputeStats(t *testing.T) {
	nodes := []*GraphNode{
		testNode("node_1", NodeInput),
		testNode("node_2", NodeApproval),
		testNode("node_3", NodeApproval),
	}
	edges := []*GraphEdge{
		NewEdge("node_1", "node_2", "", ""),
	}

	stats := ComputeStats(nodes, edges)

	if stats.TotalNodes != 3 {
		t.Errorf("TotalNodes = %d, want 3", stats.TotalNodes)
	}
	if stats.TotalEdges != 1 {
		t.Errorf("TotalEdges = %d, want 1", stats.TotalEdges)
	}
	if stats.NodesByType[NodeApproval] != 2 {
		t.Errorf("approval count = %d, want 2", stats.NodesByType[NodeApproval])
	}
	if _, present := stats.NodesByType[NodeEmail]; present {
		t.Error("zero counts must be omitted from the histogram")
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, nil)
	if stats.TotalNodes != 0 || stats.TotalEdges != 0 || len(stats.NodesByType) != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestGraphStatsFreshPerMutation(t *testing.T) {
	g := NewGraph()
	g.AddNode(testNode("node_1", NodeInput))

	before := g.Stats()
	g.AddNode(testNode("node_2", NodeInput))
	after := g.Stats()

	if before.NodesByType[NodeInput] != 1 {
		t.Errorf("earlier snapshot mutated: %+v", before)
	}
	if after.NodesByType[NodeInput] != 2 {
		t.Errorf("after = %+v", after)
	}
}
