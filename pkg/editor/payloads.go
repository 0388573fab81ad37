package editor

import "github.com/dshills/flowcanvas/pkg/flow"

// ModalPayload is the tagged union of per-dialog save payloads. Each payload
// knows its modal kind; the dispatcher marshals it into the node's opaque
// modalData. Field names line up with what the label derivation rules
// inspect.
type ModalPayload interface {
	Kind() ModalKind
}

// InputPayload configures an input node.
type InputPayload struct {
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

// Kind returns the modal kind for this payload.
func (InputPayload) Kind() ModalKind { return ModalKindInput }

// ProcessPayload configures a default (process) node.
type ProcessPayload struct {
	Description string `json:"description,omitempty"`
}

// Kind returns the modal kind for this payload.
func (ProcessPayload) Kind() ModalKind { return ModalKindProcess }

// OutputPayload configures an output node.
type OutputPayload struct {
	Destination string `json:"destination"`
	Description string `json:"description,omitempty"`
}

// Kind returns the modal kind for this payload.
func (OutputPayload) Kind() ModalKind { return ModalKindOutput }

// ApprovalPayload configures an approval node.
type ApprovalPayload struct {
	Approvers   []string `json:"approvers"`
	Description string   `json:"description,omitempty"`
}

// Kind returns the modal kind for this payload.
func (ApprovalPayload) Kind() ModalKind { return ModalKindApproval }

// EmailPayload configures an email node. CredentialKey references a secret in
// the credential store; the secret itself never enters graph state.
type EmailPayload struct {
	Label         string   `json:"label"`
	Recipients    []string `json:"recipients,omitempty"`
	Subject       string   `json:"subject,omitempty"`
	Body          string   `json:"body,omitempty"`
	CredentialKey string   `json:"credentialKey,omitempty"`
}

// Kind returns the modal kind for this payload.
func (EmailPayload) Kind() ModalKind { return ModalKindEmail }

// SignPayload configures a signature node.
type SignPayload struct {
	Signer      string `json:"signer"`
	Description string `json:"description,omitempty"`
}

// Kind returns the modal kind for this payload.
func (SignPayload) Kind() ModalKind { return ModalKindSign }

// TeamOutcomes names the follow-up for each team decision.
type TeamOutcomes struct {
	Approve string `json:"approve,omitempty"`
	Deny    string `json:"deny,omitempty"`
}

// TeamApprovalPayload configures a team approval node.
type TeamApprovalPayload struct {
	TeamMembers []string     `json:"teamMembers"`
	Description string       `json:"description,omitempty"`
	Outcomes    TeamOutcomes `json:"outcomes,omitempty"`
}

// Kind returns the modal kind for this payload.
func (TeamApprovalPayload) Kind() ModalKind { return ModalKindTeamApproval }

// ConditionPayload configures a condition node. The condition text is opaque
// to the core; the dialog layer checks its syntax, nothing evaluates it.
type ConditionPayload struct {
	Condition   string `json:"condition"`
	Description string `json:"description,omitempty"`
}

// Kind returns the modal kind for this payload.
func (ConditionPayload) Kind() ModalKind { return ModalKindCondition }

// BranchPayload configures a branch node's named sub-outputs.
type BranchPayload struct {
	Branches []flow.Branch `json:"branches"`
}

// Kind returns the modal kind for this payload.
func (BranchPayload) Kind() ModalKind { return ModalKindBranch }

// PDFPayload configures a PDF export node. Export itself is stubbed; the
// dialog is view-only in the reference presentation, but saves flow through
// the uniform contract like every other kind.
type PDFPayload struct {
	FileName    string `json:"fileName,omitempty"`
	Description string `json:"description,omitempty"`
}

// Kind returns the modal kind for this payload.
func (PDFPayload) Kind() ModalKind { return ModalKindPDF }
