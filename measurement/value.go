package measurement

import "strconv"

// Value is the reading carried by a measurement.
//
// It is a closed set: Decimal, SignedInt and UnsignedInt are the only
// implementations. Use a type switch to access the payload.
type Value interface {
	isValue()
	String() string
}

// Decimal is a floating point reading.
type Decimal float64

// SignedInt is a signed 32-bit integer reading.
type SignedInt int32

// UnsignedInt is an unsigned 32-bit integer reading.
type UnsignedInt uint32

func (Decimal) isValue()     {}
func (SignedInt) isValue()   {}
func (UnsignedInt) isValue() {}

func (v Decimal) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v SignedInt) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v UnsignedInt) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
