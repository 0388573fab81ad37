package tui

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/flowcanvas/pkg/dialog"
	"github.com/dshills/flowcanvas/pkg/editor"
	"github.com/dshills/flowcanvas/pkg/flow"
)

func formFixture(t *testing.T, nodeType flow.FlowNodeType) (*editor.Editor, *ConfigForm) {
	t.Helper()
	e := editor.New()
	node := e.Bridge().OnDrop(string(nodeType), flow.Position{})
	if node == nil {
		t.Fatalf("drop of %s rejected", nodeType)
	}
	session, ok := e.NodeClick(node.ID)
	if !ok {
		t.Fatal("node click did not open a session")
	}
	validator, err := dialog.NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return e, NewConfigForm(session, e.Dispatcher(), validator)
}

func setField(t *testing.T, f *ConfigForm, name, value string) {
	t.Helper()
	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i].value = value
			return
		}
	}
	t.Fatalf("no field named %q", name)
}

func TestConfigFormSaveInput(t *testing.T) {
	e, f := formFixture(t, flow.NodeInput)
	setField(t, f, "source", "orders api")

	if !f.Save() {
		t.Fatalf("save failed: %s", f.errText)
	}
	if f.IsVisible() {
		t.Error("form should close on save")
	}

	node := e.Graph().Nodes()[0]
	if node.Data.Label != "Input: ORDERS API" {
		t.Errorf("label = %q", node.Data.Label)
	}
	if gjson.GetBytes(node.Data.ModalData, "source").String() != "orders api" {
		t.Errorf("modalData = %s", node.Data.ModalData)
	}
}

func TestConfigFormValidationKeepsFormOpen(t *testing.T) {
	e, f := formFixture(t, flow.NodeApproval)
	setField(t, f, "approvers", "not-an-email")

	if f.Save() {
		t.Fatal("invalid payload saved")
	}
	if !f.IsVisible() {
		t.Error("form should stay open on validation failure")
	}
	if f.errText == "" {
		t.Error("validation error not surfaced")
	}

	node := e.Graph().Nodes()[0]
	if node.Data.ModalData != nil {
		t.Error("failed save mutated the node")
	}
}

func TestConfigFormListEncoding(t *testing.T) {
	e, f := formFixture(t, flow.NodeApproval)
	setField(t, f, "approvers", "alice@co.com, bob@co.com")

	if !f.Save() {
		t.Fatalf("save failed: %s", f.errText)
	}

	node := e.Graph().Nodes()[0]
	approvers := gjson.GetBytes(node.Data.ModalData, "approvers").Array()
	if len(approvers) != 2 || approvers[1].String() != "bob@co.com" {
		t.Errorf("approvers = %s", gjson.GetBytes(node.Data.ModalData, "approvers").Raw)
	}
	if node.Data.Label != "Approval: alice@co.com, bob@co.com" {
		t.Errorf("label = %q", node.Data.Label)
	}
}

func TestConfigFormNestedFields(t *testing.T) {
	e, f := formFixture(t, flow.NodeTeamApproval)
	setField(t, f, "teamMembers", "ann, ben")
	setField(t, f, "outcomes.approve", "notify finance")

	if !f.Save() {
		t.Fatalf("save failed: %s", f.errText)
	}

	node := e.Graph().Nodes()[0]
	if got := gjson.GetBytes(node.Data.ModalData, "outcomes.approve").String(); got != "notify finance" {
		t.Errorf("nested field = %q", got)
	}
}

func TestConfigFormBranchEditing(t *testing.T) {
	e, f := formFixture(t, flow.NodeBranch)
	setField(t, f, "branches", "Paid, Unpaid, Disputed")

	if !f.Save() {
		t.Fatalf("save failed: %s", f.errText)
	}

	node := e.Graph().Nodes()[0]
	branches := node.Data.Branches
	if len(branches) != 3 {
		t.Fatalf("branches = %+v", branches)
	}
	// The first keeps the seeded ID; additions get sequential fresh IDs.
	if branches[0].ID != "1" || branches[0].Label != "Paid" {
		t.Errorf("branch 0 = %+v", branches[0])
	}
	if branches[1].ID != "2" || branches[2].ID != "3" {
		t.Errorf("added branch IDs = %q, %q", branches[1].ID, branches[2].ID)
	}
}

func TestConfigFormCancelLeavesNodeUntouched(t *testing.T) {
	e, f := formFixture(t, flow.NodeEmail)
	setField(t, f, "label", "Invoice")

	f.Cancel()
	if f.IsVisible() {
		t.Error("form should close on cancel")
	}
	node := e.Graph().Nodes()[0]
	if node.Data.ModalData != nil {
		t.Error("cancel mutated the node")
	}
	if e.Dispatcher().IsOpen() {
		t.Error("cancel left the session open")
	}
}

func TestConfigFormPrefill(t *testing.T) {
	e := editor.New()
	node := e.Bridge().OnDrop("input", flow.Position{})
	e.Graph().PatchNodeData(node.ID, flow.NodeDataPatch{
		ModalData: []byte(`{"source":"orders","description":"sync"}`),
	})

	session, _ := e.NodeClick(node.ID)
	validator, _ := dialog.NewValidator()
	f := NewConfigForm(session, e.Dispatcher(), validator)

	for _, field := range f.fields {
		switch field.name {
		case "source":
			if field.value != "orders" {
				t.Errorf("source prefill = %q", field.value)
			}
		case "description":
			if field.value != "sync" {
				t.Errorf("description prefill = %q", field.value)
			}
		}
	}
}

func TestKindFieldsCoverAllKinds(t *testing.T) {
	kinds := []editor.ModalKind{
		editor.ModalKindInput, editor.ModalKindProcess, editor.ModalKindOutput,
		editor.ModalKindApproval, editor.ModalKindEmail, editor.ModalKindSign,
		editor.ModalKindTeamApproval, editor.ModalKindCondition,
		editor.ModalKindBranch, editor.ModalKindPDF,
	}
	for _, kind := range kinds {
		if len(kindFields(kind)) == 0 {
			t.Errorf("kind %v has no form layout", kind)
		}
	}
	if kindFields(editor.ModalKindNone) != nil {
		t.Error("none kind should have no layout")
	}
}
