// Package dialog implements the validation that configuration dialogs run
// before delivering a payload to the editor core. The core is never invoked
// until a payload passes its kind's schema, so it carries no partial or
// invalid-state handling.
package dialog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dshills/flowcanvas/pkg/editor"
	"github.com/dshills/flowcanvas/pkg/storage"
)

// kindSchemas holds the JSON Schema source for each modal kind. Kinds absent
// from the map accept any payload.
var kindSchemas = map[editor.ModalKind]string{
	editor.ModalKindInput: `{
		"type": "object",
		"required": ["source"],
		"properties": {
			"source": {"type": "string", "minLength": 1},
			"description": {"type": "string"}
		}
	}`,
	editor.ModalKindOutput: `{
		"type": "object",
		"required": ["destination"],
		"properties": {
			"destination": {"type": "string", "minLength": 1},
			"description": {"type": "string"}
		}
	}`,
	editor.ModalKindApproval: `{
		"type": "object",
		"required": ["approvers"],
		"properties": {
			"approvers": {
				"type": "array",
				"minItems": 1,
				"items": {"type": "string", "format": "email"}
			},
			"description": {"type": "string"}
		}
	}`,
	editor.ModalKindEmail: `{
		"type": "object",
		"required": ["label"],
		"properties": {
			"label": {"type": "string", "minLength": 1},
			"recipients": {
				"type": "array",
				"items": {"type": "string", "format": "email"}
			},
			"subject": {"type": "string"},
			"body": {"type": "string"},
			"credentialKey": {"type": "string"}
		}
	}`,
	editor.ModalKindSign: `{
		"type": "object",
		"required": ["signer"],
		"properties": {
			"signer": {"type": "string", "minLength": 1},
			"description": {"type": "string"}
		}
	}`,
	editor.ModalKindTeamApproval: `{
		"type": "object",
		"required": ["teamMembers"],
		"properties": {
			"teamMembers": {
				"type": "array",
				"minItems": 1,
				"items": {"type": "string", "minLength": 1}
			},
			"description": {"type": "string"},
			"outcomes": {
				"type": "object",
				"properties": {
					"approve": {"type": "string"},
					"deny": {"type": "string"}
				}
			}
		}
	}`,
	editor.ModalKindCondition: `{
		"type": "object",
		"required": ["condition"],
		"properties": {
			"condition": {"type": "string", "minLength": 1},
			"description": {"type": "string"}
		}
	}`,
	editor.ModalKindBranch: `{
		"type": "object",
		"required": ["branches"],
		"properties": {
			"branches": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"required": ["id", "label"],
					"properties": {
						"id": {"type": "string", "minLength": 1},
						"label": {"type": "string", "minLength": 1}
					}
				}
			}
		}
	}`,
}

// Validator checks dialog payloads against their kind's schema before they
// reach the dispatcher. An optional credential store lets the email dialog
// verify that a referenced credential exists.
type Validator struct {
	schemas map[editor.ModalKind]*gojsonschema.Schema
	creds   storage.CredentialStore
}

// NewValidator compiles the per-kind schemas.
func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[editor.ModalKind]*gojsonschema.Schema, len(kindSchemas))}
	for kind, src := range kindSchemas {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s dialog schema: %w", kind, err)
		}
		v.schemas[kind] = schema
	}
	return v, nil
}

// SetCredentialStore wires the store consulted for credentialKey references.
func (v *Validator) SetCredentialStore(creds storage.CredentialStore) {
	v.creds = creds
}

// ValidatePayload checks a typed payload against its kind's schema.
func (v *Validator) ValidatePayload(payload editor.ModalPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	return v.Validate(payload.Kind(), data)
}

// Validate checks an opaque payload against the schema for kind. Kinds with
// no schema (process, pdf) always pass. Condition payloads additionally get
// a syntax check; email payloads referencing a credential key require the
// credential to exist.
func (v *Validator) Validate(kind editor.ModalKind, data json.RawMessage) error {
	schema, ok := v.schemas[kind]
	if ok {
		result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return fmt.Errorf("failed to validate %s payload: %w", kind, err)
		}
		if !result.Valid() {
			msgs := make([]string, 0, len(result.Errors()))
			for _, desc := range result.Errors() {
				msgs = append(msgs, desc.String())
			}
			return errors.New(strings.Join(msgs, "; "))
		}
	}

	switch kind {
	case editor.ModalKindCondition:
		return v.validateCondition(data)
	case editor.ModalKindEmail:
		return v.validateEmailCredential(data)
	}
	return nil
}

func (v *Validator) validateCondition(data json.RawMessage) error {
	var payload editor.ConditionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed condition payload: %w", err)
	}
	return ValidateConditionSyntax(payload.Condition)
}

func (v *Validator) validateEmailCredential(data json.RawMessage) error {
	if v.creds == nil {
		return nil
	}
	var payload editor.EmailPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed email payload: %w", err)
	}
	if payload.CredentialKey == "" {
		return nil
	}
	if _, err := v.creds.Get(payload.CredentialKey); err != nil {
		return fmt.Errorf("credential %q not available: %w", payload.CredentialKey, err)
	}
	return nil
}

// ValidateEdgeLabel checks a decision label choice: exactly one of the two
// offered values is required.
func ValidateEdgeLabel(label string) error {
	if label != "Approval" && label != "Deny" {
		return fmt.Errorf("edge label must be %q or %q, got: %s", "Approval", "Deny", label)
	}
	return nil
}
