package tui

import (
	"github.com/dshills/flowcanvas/pkg/flow"
	"github.com/dshills/flowcanvas/pkg/tui/components"
)

// newEdgeLabelModal opens the decision label choice shown when connecting
// from a team-approval node.
func newEdgeLabelModal(onClose func(confirmed bool, label string)) *components.ChoiceModal {
	m := components.NewChoiceModal(
		"Label Connection",
		"Choose the decision this connection represents.",
		[]string{flow.EdgeLabelApproval, flow.EdgeLabelDeny},
		func(result components.ChoiceResult) {
			onClose(result.Confirmed, result.Choice)
		},
	)
	m.Show()
	return m
}

// newClearModal opens the clear-canvas confirmation.
func newClearModal(onConfirm func(bool)) *components.ChoiceModal {
	m := components.NewConfirmModal(
		"Clear Canvas",
		"Remove all steps and connections? This cannot be undone.",
		onConfirm,
	)
	m.Show()
	return m
}
