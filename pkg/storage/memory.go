package storage

import "fmt"

// MemoryCredentialStore is an in-memory CredentialStore for tests and
// environments without a system keyring.
type MemoryCredentialStore struct {
	values map[string]string
}

// NewMemoryCredentialStore creates an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{values: make(map[string]string)}
}

// Set stores a credential in memory.
func (s *MemoryCredentialStore) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("credential key cannot be empty")
	}
	s.values[key] = value
	return nil
}

// Get retrieves a credential from memory.
func (s *MemoryCredentialStore) Get(key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("credential not found: %s", key)
	}
	return value, nil
}

// Delete removes a credential from memory.
func (s *MemoryCredentialStore) Delete(key string) error {
	if _, ok := s.values[key]; !ok {
		return fmt.Errorf("credential not found: %s", key)
	}
	delete(s.values, key)
	return nil
}
