// Package errs defines the sentinel errors returned by sensorenv packages.
//
// Errors are wrapped with additional context using fmt.Errorf("%w: ..."), so
// callers should compare with errors.Is rather than equality.
package errs

import "errors"

// Envelope building and expansion errors.
var (
	// ErrOutOfBounds is returned when a batch holds more measurements than the
	// envelope capacity. It is detected before any output is modified.
	ErrOutOfBounds = errors.New("measurement count exceeds envelope capacity")

	// ErrIncompleteMetadata is returned when an envelope carries no hoisted
	// metadata and at least one measurement lacks its own metadata.
	ErrIncompleteMetadata = errors.New("incomplete measurement metadata")
)

// Codec errors.
var (
	// ErrEncode wraps every failure of the wire encoder.
	ErrEncode = errors.New("encode failed")

	// ErrDecode wraps every failure of the wire decoder.
	ErrDecode = errors.New("decode failed")

	// ErrBufferTooSmall is returned when the output buffer cannot hold the encoded message.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrMissingValue is returned when a measurement has no value variant set.
	ErrMissingValue = errors.New("measurement value is not set")

	// ErrSchemaMismatch is returned when a frame carries a different message schema than expected.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrTooManyResponses is returned when a response batch exceeds its capacity.
	ErrTooManyResponses = errors.New("response count exceeds capacity")
)

// Frame errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid frame header size")
	ErrInvalidHeaderFlags = errors.New("invalid frame header flags")
	ErrTruncatedFrame     = errors.New("truncated frame payload")
	ErrFrameLength        = errors.New("frame length mismatch")
	ErrChecksumMismatch   = errors.New("frame checksum mismatch")
	ErrPayloadTooLarge    = errors.New("frame payload too large")
)
