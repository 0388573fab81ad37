package flow

// FlowStats is the derived read-only statistics view. It is recomputed fresh
// from the node/edge sequences on every change; nothing here is cached.
type FlowStats struct {
	TotalNodes  int
	TotalEdges  int
	NodesByType map[FlowNodeType]int
}

// ComputeStats builds statistics from the given sequences. The histogram only
// contains types actually present; zero counts are omitted.
func ComputeStats(nodes []*GraphNode, edges []*GraphEdge) FlowStats {
	byType := make(map[FlowNodeType]int)
	for _, n := range nodes {
		byType[n.Data.Type]++
	}
	return FlowStats{
		TotalNodes:  len(nodes),
		TotalEdges:  len(edges),
		NodesByType: byType,
	}
}
