package flow

// Graph is the authoritative store of nodes and edges. All mutations notify
// subscribers synchronously before returning, so derived views (renderer,
// stats panel) are current before the next user interaction.
//
// The graph is single-writer: every mutation runs as a discrete handler on
// the editor event loop, so no locking is needed.
type Graph struct {
	nodes       []*GraphNode
	edges       []*GraphEdge
	subscribers []func()
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]*GraphNode, 0),
		edges: make([]*GraphEdge, 0),
	}
}

// Subscribe registers a change observer, invoked synchronously after every
// mutation.
func (g *Graph) Subscribe(fn func()) {
	g.subscribers = append(g.subscribers, fn)
}

func (g *Graph) notify() {
	for _, fn := range g.subscribers {
		fn()
	}
}

// AddNode appends a node. Never rejects.
func (g *Graph) AddNode(node *GraphNode) {
	g.nodes = append(g.nodes, node)
	g.notify()
}

// FindNode returns the node with the given ID.
func (g *Graph) FindNode(id string) (*GraphNode, bool) {
	for _, n := range g.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// PatchNodeData shallow-merges a patch into the matching node's data. A
// missing node is a benign race (the canvas may have been cleared while a
// dialog was open) and reports false without mutating anything.
func (g *Graph) PatchNodeData(id string, patch NodeDataPatch) bool {
	node, ok := g.FindNode(id)
	if !ok {
		return false
	}
	patch.apply(&node.Data)
	g.notify()
	return true
}

// MoveNode updates a node's canvas position. Missing nodes are ignored.
func (g *Graph) MoveNode(id string, pos Position) {
	node, ok := g.FindNode(id)
	if !ok {
		return
	}
	node.Position = pos
	g.notify()
}

// AddEdge appends an edge. When an edge with the same derived ID already
// exists the new edge replaces it in place, last write wins.
func (g *Graph) AddEdge(edge *GraphEdge) {
	for i, existing := range g.edges {
		if existing.ID == edge.ID {
			g.edges[i] = edge
			g.notify()
			return
		}
	}
	g.edges = append(g.edges, edge)
	g.notify()
}

// FindEdge returns the edge with the given ID.
func (g *Graph) FindEdge(id string) (*GraphEdge, bool) {
	for _, e := range g.edges {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Clear empties both collections. Observers are notified once, after both
// sequences are reset, so no observer ever sees a half-cleared graph.
func (g *Graph) Clear() {
	g.nodes = g.nodes[:0]
	g.edges = g.edges[:0]
	g.notify()
}

// Nodes returns the node sequence in insertion order.
func (g *Graph) Nodes() []*GraphNode {
	out := make([]*GraphNode, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the edge sequence in insertion order.
func (g *Graph) Edges() []*GraphEdge {
	out := make([]*GraphEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Stats recomputes the derived statistics view from the current sequences.
func (g *Graph) Stats() FlowStats {
	return ComputeStats(g.nodes, g.edges)
}
