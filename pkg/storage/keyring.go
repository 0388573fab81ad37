// Package storage provides secure storage for dialog configuration secrets.
// Email and signature dialogs reference credentials by key; the secrets
// themselves live in the system keyring and never enter graph state.
package storage

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

// ServiceName is the identifier used for all FlowCanvas credentials in the
// system keyring.
const ServiceName = "flowcanvas"

// CredentialStore is the interface dialogs use to resolve credential keys.
type CredentialStore interface {
	// Set stores a credential under key.
	Set(key, value string) error
	// Get retrieves the credential stored under key.
	Get(key string) (string, error)
	// Delete removes the credential stored under key.
	Delete(key string) error
}

// KeyringCredentialStore backs CredentialStore with the system keyring:
// Keychain on macOS, Credential Manager on Windows, Secret Service on Linux.
type KeyringCredentialStore struct {
	service string
}

// NewKeyringCredentialStore creates a keyring-backed credential store.
func NewKeyringCredentialStore() *KeyringCredentialStore {
	return &KeyringCredentialStore{service: ServiceName}
}

// Set stores a credential in the system keyring.
func (s *KeyringCredentialStore) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("credential key cannot be empty")
	}
	if err := keyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// Get retrieves a credential from the system keyring.
func (s *KeyringCredentialStore) Get(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("credential key cannot be empty")
	}
	value, err := keyring.Get(s.service, key)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("credential not found: %s", key)
		}
		return "", fmt.Errorf("failed to retrieve credential: %w", err)
	}
	return value, nil
}

// Delete removes a credential from the system keyring.
func (s *KeyringCredentialStore) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("credential key cannot be empty")
	}
	if err := keyring.Delete(s.service, key); err != nil {
		if err == keyring.ErrNotFound {
			return fmt.Errorf("credential not found: %s", key)
		}
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
