package errors

import (
	"fmt"
	"time"
)

// OperationalError wraps an error with editing context: which operation was
// running, which session, and which node was involved. Gesture handlers in
// the presentation layer log these rather than crashing the editor.
type OperationalError struct {
	Operation string    // What operation was being performed
	SessionID string    // Which editing session
	NodeID    string    // Which node (if applicable)
	Timestamp time.Time // When the error occurred
	Cause     error     // Underlying error
}

// NewOperationalError creates an OperationalError wrapping an error.
//
// Returns nil if cause is nil (no error to wrap).
func NewOperationalError(operation, sessionID, nodeID string, cause error) *OperationalError {
	if cause == nil {
		return nil
	}

	return &OperationalError{
		Operation: operation,
		SessionID: sessionID,
		NodeID:    nodeID,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

// Error implements the error interface.
//
// Format: "[timestamp] operation: session={id} node={id}: {cause}"
// If node ID is empty, it's omitted from the message.
func (e *OperationalError) Error() string {
	if e == nil {
		return "<nil OperationalError>"
	}

	timestamp := e.Timestamp.Format(time.RFC3339)

	if e.NodeID != "" {
		return fmt.Sprintf("[%s] %s: session=%s node=%s: %v",
			timestamp, e.Operation, e.SessionID, e.NodeID, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: session=%s: %v",
		timestamp, e.Operation, e.SessionID, e.Cause)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OperationalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
