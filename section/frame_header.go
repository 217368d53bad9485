package section

import (
	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
)

// FrameHeader represents the fixed-size header at the start of an upload frame.
type FrameHeader struct {
	// Flag is a packed field for options, schema and compression.
	Flag FrameFlag // byte offset 0-3
	// RawLength is the payload size before compression.
	RawLength uint32 // byte offset 4-7
	// PayloadLength is the payload size as stored after the header.
	PayloadLength uint32 // byte offset 8-11
	// Checksum is the xxHash64 of the raw payload. Zero when the checksum flag is off.
	Checksum uint64 // byte offset 12-19
}

// NewFrameHeader creates a new FrameHeader for the given schema.
// Lengths and checksum are filled in by the frame writer.
func NewFrameHeader(schema format.Schema) *FrameHeader {
	return &FrameHeader{
		Flag: NewFrameFlag(schema),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 20 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 20 bytes, or ErrInvalidHeaderFlags
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian; it tells us the order of everything else
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Schema = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.RawLength = engine.Uint32(data[4:8])
	h.PayloadLength = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	return nil
}

// Bytes serializes the FrameHeader into a byte slice.
func (h *FrameHeader) Bytes() []byte {
	return h.AppendBytes(make([]byte, 0, HeaderSize))
}

// AppendBytes appends the serialized header to b.
func (h *FrameHeader) AppendBytes(b []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	b = append(b, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Schema, h.Flag.CompressionType)
	b = engine.AppendUint32(b, h.RawLength)
	b = engine.AppendUint32(b, h.PayloadLength)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}

// ParseFrameHeader parses a FrameHeader from the start of a byte slice.
//
// Returns:
//   - FrameHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or ErrInvalidHeaderFlags
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < HeaderSize {
		return FrameHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FrameHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}
