package section

import "math"

const (
	// Bit masks
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ChecksumMask     = 0x0002 // Mask for checksum presence bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicFrameV1Opt = 0x5E10 // MagicFrameV1Opt is the version 1 magic number of the upload frame.
)

// offsets and sizes in the frame
const (
	HeaderSize     = 20             // fixed header size in bytes
	MaxPayloadSize = math.MaxUint16 // maximum raw or compressed payload size in bytes
)
