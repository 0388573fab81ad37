package flow

import (
	"fmt"
	"strconv"
)

// IDGenerator produces node identifiers. The production generator is a
// monotonic counter; tests can inject a deterministic stub.
type IDGenerator interface {
	NextNodeID() string
}

// CounterIDGenerator yields node_1, node_2, ... for the lifetime of the
// generator. IDs are never reused, and clearing the canvas does not reset the
// counter. Mutations run on the single editor event loop, so the counter
// needs no synchronization.
type CounterIDGenerator struct {
	next int
}

// NewCounterIDGenerator creates a generator starting at node_1.
func NewCounterIDGenerator() *CounterIDGenerator {
	return &CounterIDGenerator{}
}

// NextNodeID returns the next identifier in sequence.
func (g *CounterIDGenerator) NextNodeID() string {
	g.next++
	return "node_" + strconv.Itoa(g.next)
}

// Factory creates graph nodes from a node type and a canvas position,
// seeding display state from the registry.
type Factory struct {
	registry *Registry
	ids      IDGenerator
}

// NewFactory creates a node factory backed by the given registry and ID
// generator.
func NewFactory(registry *Registry, ids IDGenerator) *Factory {
	return &Factory{registry: registry, ids: ids}
}

// CreateNode creates a new node of the given semantic type at a canvas
// position. Branch nodes are seeded with their mandatory first branch.
func (f *Factory) CreateNode(t FlowNodeType, pos Position) (*GraphNode, error) {
	if !ValidateNodeType(string(t)) {
		return nil, fmt.Errorf("unknown node type: %s", t)
	}

	cfg := f.registry.Lookup(t)
	node := &GraphNode{
		ID:       f.ids.NextNodeID(),
		Type:     RenderType,
		Position: pos,
		Data: NodeData{
			Label:       cfg.Label,
			Description: cfg.Description,
			Type:        t,
		},
	}
	if t == NodeBranch {
		node.Data.Branches = DefaultBranches()
	}
	return node, nil
}
