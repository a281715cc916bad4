// internal/session/errors.go
package session

import (
	"errors"
	"fmt"

	"github.com/powerlab/dps150/internal/state"
)

var errAlreadyConnected = errors.New("session already connected")

// ConnectionError indicates the transport was absent or failed while
// an operation needed it.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: not connected", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ArgumentError indicates a caller-supplied value outside the field's
// valid domain. Raised before any bytes are sent.
type ArgumentError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s must be %d-%d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// ProtectionError reports a non-normal protection state. Informational:
// it carries the state but never aborts the session.
type ProtectionError struct {
	State state.ProtectionState
}

func (e *ProtectionError) Error() string {
	return fmt.Sprintf("protection triggered: %s", e.State)
}
