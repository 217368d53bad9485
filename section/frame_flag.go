package section

import (
	"github.com/arloliu/sensorenv/endian"
	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
)

// FrameFlag represents the packed flag word at the start of the frame header.
type FrameFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is the checksum flag, 1 means the header carries a payload checksum.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the frame format.
	Options uint16

	// Schema is the format.Schema of the framed message.
	Schema uint8
	// CompressionType is the format.CompressionType applied to the payload.
	CompressionType uint8
}

var (
	validSchemas = map[uint8]struct{}{
		uint8(format.SchemaMeasurement): {},
		uint8(format.SchemaEnvelope):    {},
		uint8(format.SchemaResponses):   {},
	}

	validCompressions = map[uint8]struct{}{
		uint8(format.CompressionNone): {},
		uint8(format.CompressionZstd): {},
		uint8(format.CompressionS2):   {},
		uint8(format.CompressionLZ4):  {},
	}
)

// NewFrameFlag creates a new FrameFlag for the given schema with default
// settings: little-endian, checksum enabled, no compression.
func NewFrameFlag(schema format.Schema) FrameFlag {
	flag := FrameFlag{
		Options:         MagicFrameV1Opt,
		Schema:          uint8(schema),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()
	flag.SetChecksum(true)

	return flag
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasChecksum returns whether the header carries a payload checksum.
func (f FrameFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *FrameFlag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetSchema returns the schema of the framed message.
func (f FrameFlag) GetSchema() format.Schema {
	return format.Schema(f.Schema)
}

// GetCompression returns the payload compression type.
func (f FrameFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *FrameFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks if the flag contains valid values.
func (f FrameFlag) Validate() error {
	if f.GetMagicNumber() != MagicFrameV1Opt {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validSchemas[f.Schema]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
