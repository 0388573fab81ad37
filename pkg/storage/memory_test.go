package storage

import "testing"

func TestMemoryCredentialStore(t *testing.T) {
	s := NewMemoryCredentialStore()

	if err := s.Set("smtp-password", "hunter2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := s.Get("smtp-password")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "hunter2" {
		t.Errorf("Get = %q", value)
	}

	if err := s.Delete("smtp-password"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get("smtp-password"); err == nil {
		t.Error("Get after Delete should fail")
	}
}

func TestMemoryCredentialStoreErrors(t *testing.T) {
	s := NewMemoryCredentialStore()

	if err := s.Set("", "v"); err == nil {
		t.Error("empty key accepted")
	}
	if _, err := s.Get("missing"); err == nil {
		t.Error("Get of missing key succeeded")
	}
	if err := s.Delete("missing"); err == nil {
		t.Error("Delete of missing key succeeded")
	}
}

// The memory store must satisfy the interface dialogs depend on.
var _ CredentialStore = (*MemoryCredentialStore)(nil)
var _ CredentialStore = (*KeyringCredentialStore)(nil)
