package flow

import "testing"

func TestDefaultBranches(t *testing.T) {
	branches := DefaultBranches()
	if len(branches) != 1 {
		t.Fatalf("expected 1 default branch, got %d", len(branches))
	}
	if branches[0].ID != "1" || branches[0].Label != "Branch 1" {
		t.Errorf("default branch = %+v, want {1 Branch 1}", branches[0])
	}
}

func TestNextBranchID(t *testing.T) {
	tests := []struct {
		name     string
		branches []Branch
		want     string
	}{
		{"empty", nil, "1"},
		{"single", []Branch{{ID: "1"}}, "2"},
		{"sequential", []Branch{{ID: "1"}, {ID: "2"}, {ID: "3"}}, "4"},
		{"gap after removal", []Branch{{ID: "1"}, {ID: "3"}}, "4"},
		{"non-numeric ignored", []Branch{{ID: "x"}, {ID: "2"}}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextBranchID(tt.branches); got != tt.want {
				t.Errorf("NextBranchID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddBranch(t *testing.T) {
	branches := DefaultBranches()
	branches = AddBranch(branches)
	branches = AddBranch(branches)

	if len(branches) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(branches))
	}
	if branches[2].ID != "3" || branches[2].Label != "Branch 3" {
		t.Errorf("third branch = %+v, want {3 Branch 3}", branches[2])
	}
}

func TestBranchIDsStableAcrossRemoval(t *testing.T) {
	branches := DefaultBranches()
	branches = AddBranch(branches) // id 2
	branches = AddBranch(branches) // id 3

	branches, removed := RemoveBranch(branches, 1)
	if !removed {
		t.Fatal("expected removal to succeed")
	}
	if branches[0].ID != "1" || branches[1].ID != "3" {
		t.Errorf("survivor IDs renumbered: %+v", branches)
	}

	// Next ID continues past the highest survivor, not the count.
	branches = AddBranch(branches)
	if branches[2].ID != "4" {
		t.Errorf("new branch ID = %q, want %q", branches[2].ID, "4")
	}
}

func TestRemoveBranchRefusesLast(t *testing.T) {
	branches := DefaultBranches()
	got, removed := RemoveBranch(branches, 0)
	if removed {
		t.Fatal("removing the last branch must be refused")
	}
	if len(got) != 1 {
		t.Errorf("branch list changed: %+v", got)
	}
}

func TestRemoveBranchOutOfRange(t *testing.T) {
	branches := AddBranch(DefaultBranches())
	if _, removed := RemoveBranch(branches, -1); removed {
		t.Error("negative index should be refused")
	}
	if _, removed := RemoveBranch(branches, 2); removed {
		t.Error("out of range index should be refused")
	}
}

func TestNodeDataPatchApply(t *testing.T) {
	data := NodeData{
		Label:       "Approval",
		Description: "original",
		Type:        NodeApproval,
	}

	label := "Approval: ALICE"
	patch := NodeDataPatch{Label: &label, ModalData: []byte(`{"approvers":["alice"]}`)}
	patch.apply(&data)

	if data.Label != "Approval: ALICE" {
		t.Errorf("label = %q", data.Label)
	}
	if data.Description != "original" {
		t.Errorf("nil patch field must leave description untouched, got %q", data.Description)
	}
	if string(data.ModalData) != `{"approvers":["alice"]}` {
		t.Errorf("modalData = %s", data.ModalData)
	}
	if data.Type != NodeApproval {
		t.Errorf("type must never change, got %s", data.Type)
	}
}
