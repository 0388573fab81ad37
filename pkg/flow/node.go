package flow

import (
	"encoding/json"
	"strconv"
)

// GraphNode is a placed, positioned unit of workflow. Type is always
// RenderType; Data.Type carries the semantic node type and is immutable after
// creation.
type GraphNode struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// NodeData holds the display state and configuration of a node. ModalData is
// the opaque payload saved by the node's configuration dialog; the core only
// inspects the handful of fields the label derivation rule names.
type NodeData struct {
	Label       string          `json:"label"`
	Description string          `json:"description,omitempty"`
	Type        FlowNodeType    `json:"type"`
	ModalData   json.RawMessage `json:"modalData,omitempty"`
	Branches    []Branch        `json:"branches,omitempty"`
}

// Branch is a named sub-output of a branch-type node. IDs are assigned
// sequentially within the node and survive removal of siblings.
type Branch struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NodeDataPatch is a shallow merge applied to NodeData. Nil fields are left
// untouched.
type NodeDataPatch struct {
	Label       *string
	Description *string
	ModalData   json.RawMessage
	Branches    []Branch
}

// apply merges the patch into data.
func (p NodeDataPatch) apply(data *NodeData) {
	if p.Label != nil {
		data.Label = *p.Label
	}
	if p.Description != nil {
		data.Description = *p.Description
	}
	if p.ModalData != nil {
		data.ModalData = p.ModalData
	}
	if p.Branches != nil {
		data.Branches = p.Branches
	}
}

// DefaultBranches returns the seed branch list for a new branch-type node.
// A branch node owns at least one branch at all times.
func DefaultBranches() []Branch {
	return []Branch{{ID: "1", Label: "Branch 1"}}
}

// NextBranchID returns the next sequential branch ID for a node. IDs are
// stable: removing a branch never renumbers survivors, so the next ID is one
// past the highest ever assigned among those remaining.
func NextBranchID(branches []Branch) string {
	max := 0
	for _, b := range branches {
		if n, err := strconv.Atoi(b.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// AddBranch appends a new branch with a sequential ID and a default label.
func AddBranch(branches []Branch) []Branch {
	id := NextBranchID(branches)
	return append(branches, Branch{ID: id, Label: "Branch " + id})
}

// RemoveBranch removes the branch at index i, refusing to drop below one
// branch. Returns the (possibly unchanged) list and whether a removal
// happened.
func RemoveBranch(branches []Branch, i int) ([]Branch, bool) {
	if len(branches) <= 1 || i < 0 || i >= len(branches) {
		return branches, false
	}
	out := make([]Branch, 0, len(branches)-1)
	out = append(out, branches[:i]...)
	out = append(out, branches[i+1:]...)
	return out, true
}
