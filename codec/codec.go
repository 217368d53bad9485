// Package codec provides the schema-driven binary codec used to serialize
// sensor measurements, envelopes and acknowledgements.
//
// The codec is deliberately opaque to its callers: the envelope and response
// packages only rely on the Codec contract below. A call either fully succeeds,
// producing a complete message, or fails without any usable partial output.
//
// Proto is the default implementation. It writes the protobuf wire format
// that the upload server speaks, using pooled scratch buffers so that encoding
// into a caller-owned buffer does not allocate in the steady state.
package codec

import "github.com/arloliu/sensorenv/format"

// Message is a value with a known schema that can be written to and read from
// the wire.
type Message interface {
	// Schema identifies the wire schema of the message.
	Schema() format.Schema
	// AppendWire appends the encoded message to b and returns the extended slice.
	AppendWire(b []byte) ([]byte, error)
	// UnmarshalWire replaces the message content with the decoded form of b.
	UnmarshalWire(b []byte) error
}

// Encoder serializes messages into caller-owned buffers.
type Encoder interface {
	// Encode writes msg into dst and returns the number of bytes written.
	//
	// Returns an error wrapping ErrEncode if the message cannot be encoded,
	// and additionally ErrBufferTooSmall if dst cannot hold the result.
	Encode(msg Message, dst []byte) (int, error)

	// EncodedSize returns the number of bytes Encode would write for msg.
	EncodedSize(msg Message) (int, error)
}

// Decoder deserializes messages.
type Decoder interface {
	// Decode replaces msg with the message encoded in src.
	//
	// Returns an error wrapping ErrDecode if src is malformed.
	Decode(src []byte, msg Message) error
}

// Codec combines both encoding and decoding capabilities.
type Codec interface {
	Encoder
	Decoder
}
