package flow

// FlowNodeType identifies the semantic kind of a placed node. The rendering
// discriminator on GraphNode is always "custom"; the semantic type lives in
// NodeData.Type.
type FlowNodeType string

// Workflow step types (placeable, connectable).
const (
	NodeInput        FlowNodeType = "input"
	NodeDefault      FlowNodeType = "default"
	NodeOutput       FlowNodeType = "output"
	NodeApproval     FlowNodeType = "approval"
	NodeEmail        FlowNodeType = "email"
	NodeSign         FlowNodeType = "sign"
	NodeTeamApproval FlowNodeType = "teamApproval"
)

// Logic element types (decision/utility).
const (
	NodeCondition FlowNodeType = "condition"
	NodeBranch    FlowNodeType = "branch"
	NodePDF       FlowNodeType = "pdf"
)

// RenderType is the rendering discriminator shared by every graph node.
const RenderType = "custom"

// nodeTypeOrder is the closed enumeration in palette display order.
var nodeTypeOrder = []FlowNodeType{
	NodeInput,
	NodeDefault,
	NodeOutput,
	NodeApproval,
	NodeEmail,
	NodeSign,
	NodeTeamApproval,
	NodeCondition,
	NodeBranch,
	NodePDF,
}

// ValidateNodeType reports whether s names a member of the closed node type
// enumeration. Drag payloads carry raw strings; everything else in the core
// assumes this check already happened.
func ValidateNodeType(s string) bool {
	for _, t := range nodeTypeOrder {
		if string(t) == s {
			return true
		}
	}
	return false
}

// IsLogicType reports whether t is a decision/utility element rather than a
// workflow step.
func IsLogicType(t FlowNodeType) bool {
	switch t {
	case NodeCondition, NodeBranch, NodePDF:
		return true
	}
	return false
}

// AllNodeTypes returns the closed enumeration in palette display order.
func AllNodeTypes() []FlowNodeType {
	out := make([]FlowNodeType, len(nodeTypeOrder))
	copy(out, nodeTypeOrder)
	return out
}

// Position is a coordinate in canvas space. Canvas coordinates are continuous;
// the presentation layer maps them to device cells or pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
