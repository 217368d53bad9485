package codec

import (
	"fmt"

	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/internal/pool"
)

// Proto encodes messages with the protobuf wire format.
//
// Proto is stateless and safe for concurrent use.
type Proto struct{}

var _ Codec = (*Proto)(nil)

// NewProto creates a new protobuf codec.
func NewProto() Proto {
	return Proto{}
}

// Encode writes msg into dst and returns the number of bytes written.
//
// The message is first encoded into a pooled scratch buffer and copied into
// dst only when it fits, so dst is never left holding a truncated message.
//
// Parameters:
//   - msg: Message to encode
//   - dst: Output buffer; its length is the available capacity
//
// Returns:
//   - int: Number of bytes written to dst
//   - error: ErrEncode, optionally wrapping ErrBufferTooSmall or a message error
func (c Proto) Encode(msg Message, dst []byte) (int, error) {
	bb := pool.GetWireBuffer()
	defer pool.PutWireBuffer(bb)

	out, err := msg.AppendWire(bb.B)
	bb.B = out
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errs.ErrEncode, msg.Schema(), err)
	}

	if len(out) > len(dst) {
		return 0, fmt.Errorf("%w: %s: %w: need %d bytes, have %d",
			errs.ErrEncode, msg.Schema(), errs.ErrBufferTooSmall, len(out), len(dst))
	}

	return copy(dst, out), nil
}

// EncodedSize returns the number of bytes Encode would write for msg.
func (c Proto) EncodedSize(msg Message) (int, error) {
	bb := pool.GetWireBuffer()
	defer pool.PutWireBuffer(bb)

	out, err := msg.AppendWire(bb.B)
	bb.B = out
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errs.ErrEncode, msg.Schema(), err)
	}

	return len(out), nil
}

// Decode replaces msg with the message encoded in src.
func (c Proto) Decode(src []byte, msg Message) error {
	if err := msg.UnmarshalWire(src); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrDecode, msg.Schema(), err)
	}

	return nil
}
