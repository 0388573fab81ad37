package flow

// Decision edge labels offered when connecting from a team approval node.
const (
	EdgeLabelApproval = "Approval"
	EdgeLabelDeny     = "Deny"
)

// Label fill colors, green for approval and red for denial.
const (
	approvalFill = "#22c55e"
	denyFill     = "#ef4444"
)

// GraphEdge is a directed connection between two nodes, optionally carrying a
// decision label. The ID is derived from the source/target pair, so a later
// connect with the same pair replaces the earlier edge.
type GraphEdge struct {
	ID           string      `json:"id"`
	Source       string      `json:"source"`
	Target       string      `json:"target"`
	SourceHandle string      `json:"sourceHandle,omitempty"`
	TargetHandle string      `json:"targetHandle,omitempty"`
	Label        string      `json:"label"`
	LabelStyle   *LabelStyle `json:"labelStyle,omitempty"`
	Animated     bool        `json:"animated"`
}

// LabelStyle is cosmetic styling derived from the label value.
type LabelStyle struct {
	Fill       string `json:"fill"`
	FontWeight int    `json:"fontWeight"`
}

// EdgeID derives the deterministic edge identifier for an ordered
// source/target pair.
func EdgeID(source, target string) string {
	return source + "-" + target
}

// NewEdge creates a plain, unlabeled edge. Edges are animated by default.
func NewEdge(source, target, sourceHandle, targetHandle string) *GraphEdge {
	return &GraphEdge{
		ID:           EdgeID(source, target),
		Source:       source,
		Target:       target,
		SourceHandle: sourceHandle,
		TargetHandle: targetHandle,
		Label:        "",
		Animated:     true,
	}
}

// NewLabeledEdge creates a decision edge with a label and its derived style:
// green fill for approval, red otherwise.
func NewLabeledEdge(source, target, sourceHandle, targetHandle, label string) *GraphEdge {
	fill := denyFill
	if label == EdgeLabelApproval {
		fill = approvalFill
	}
	e := NewEdge(source, target, sourceHandle, targetHandle)
	e.Label = label
	e.LabelStyle = &LabelStyle{Fill: fill, FontWeight: 700}
	return e
}
