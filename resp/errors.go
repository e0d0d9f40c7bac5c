package resp

import "errors"

// Decode/ExpectLength error taxonomy. Only ErrIncomplete is recoverable by
// waiting for more bytes; every other error is fatal to the connection.
var (
	// ErrIncomplete means buf holds a valid prefix of a frame but not all
	// of it yet; the caller should read more bytes and retry.
	ErrIncomplete = errors.New("resp: incomplete frame")
	// ErrInvalidType means the leading byte does not match any known prefix.
	ErrInvalidType = errors.New("resp: invalid frame type")
	// ErrInvalidLength means a declared length is negative outside the two
	// legacy null forms, or disagrees with the bytes that follow it.
	ErrInvalidLength = errors.New("resp: invalid length")
	// ErrInvalidFrame means the frame is structurally malformed, e.g. a
	// Map key that isn't a SimpleString.
	ErrInvalidFrame = errors.New("resp: invalid frame")
	// ErrParse means an integer, float, or UTF-8 payload failed to parse.
	ErrParse = errors.New("resp: parse error")
)
