// Package endian provides byte order utilities for the upload frame header.
//
// EndianEngine combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary so a single value can both read fixed-width fields and
// append them to a growing buffer.
//
// Frames default to little-endian, the native order of the field loggers'
// microcontrollers. Big-endian is available for gateways that forward frames
// to big-endian consumers.
//
// All functions in this package are safe for concurrent use; the returned
// engines are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x02
}
