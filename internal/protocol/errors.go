// internal/protocol/errors.go
package protocol

import (
	"errors"
	"fmt"
)

// FrameError reports a malformed inbound frame: bad header, truncated
// length, or checksum mismatch. Always local to one frame; callers drop
// the frame and keep scanning.
type FrameError struct {
	Reason string
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("bad frame: %s", e.Reason)
}

func frameErrorf(format string, args ...interface{}) error {
	return &FrameError{Reason: fmt.Sprintf(format, args...)}
}

// IsFrameError reports whether err is a FrameError.
func IsFrameError(err error) bool {
	var fe *FrameError
	return errors.As(err, &fe)
}

// ErrPayloadTooLarge is returned by Encode when the payload exceeds
// the one-byte length field.
var ErrPayloadTooLarge = errors.New("protocol: payload exceeds 255 bytes")

// ErrShortFloat is returned by BytesToFloat when fewer than 4 bytes
// are supplied.
var ErrShortFloat = errors.New("protocol: need 4 bytes for float")
