package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNewOperationalError(t *testing.T) {
	cause := errors.New("boom")
	err := NewOperationalError("saving dialog", "session-1", "node_3", cause)

	msg := err.Error()
	if !strings.Contains(msg, "saving dialog") {
		t.Errorf("message missing operation: %s", msg)
	}
	if !strings.Contains(msg, "session=session-1") {
		t.Errorf("message missing session: %s", msg)
	}
	if !strings.Contains(msg, "node=node_3") {
		t.Errorf("message missing node: %s", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap chain broken")
	}
}

func TestNewOperationalErrorNilCause(t *testing.T) {
	if err := NewOperationalError("op", "s", "n", nil); err != nil {
		t.Errorf("nil cause should yield nil, got %v", err)
	}
}

func TestOperationalErrorOmitsEmptyNode(t *testing.T) {
	err := NewOperationalError("clearing canvas", "session-1", "", errors.New("x"))
	if strings.Contains(err.Error(), "node=") {
		t.Errorf("empty node ID should be omitted: %s", err.Error())
	}
}
