// Package section defines the fixed-size binary header of the upload frame.
//
// A frame wraps one encoded codec message (a measurement, an envelope or an
// acknowledgement batch) for transport:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (20 bytes, fixed)                                │
//	│  - Flag (4 bytes): options, schema, compression         │
//	│  - RawLength (4 bytes)                                  │
//	│  - PayloadLength (4 bytes)                              │
//	│  - Checksum (8 bytes): xxHash64 of the raw payload      │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadLength bytes)                           │
//	│  - Encoded message, optionally compressed               │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field         | Type   | Description
//	-------|---------------|--------|----------------------------------------
//	0-1    | Options       | uint16 | endianness, checksum bit, magic number
//	2      | Schema        | uint8  | format.Schema of the payload
//	3      | Compression   | uint8  | format.CompressionType of the payload
//	4-7    | RawLength     | uint32 | payload size before compression
//	8-11   | PayloadLength | uint32 | payload size as stored in the frame
//	12-19  | Checksum      | uint64 | xxHash64 of the raw payload, or 0
//
// The Options word is always stored little-endian so the byte order of the
// remaining fields can be read from it.
package section
