package measurement

import (
	"fmt"

	"github.com/arloliu/sensorenv/format"
)

// Measurement is a single typed sensor reading.
type Measurement struct {
	// Type identifies the sensor channel that produced the reading.
	Type format.SensorType
	// Value is the reading itself.
	Value Value
	// Meta is the reading's own metadata. It is only meaningful when HasMeta is true.
	Meta Metadata
	// HasMeta reports whether Meta is present. A measurement without its own
	// metadata inherits the envelope's hoisted metadata.
	HasMeta bool
}

// NewDecimal creates a measurement holding a Decimal value with the given metadata.
func NewDecimal(meta Metadata, typ format.SensorType, v float64) Measurement {
	return Measurement{Type: typ, Value: Decimal(v), Meta: meta, HasMeta: true}
}

// NewSigned creates a measurement holding a SignedInt value with the given metadata.
func NewSigned(meta Metadata, typ format.SensorType, v int32) Measurement {
	return Measurement{Type: typ, Value: SignedInt(v), Meta: meta, HasMeta: true}
}

// NewUnsigned creates a measurement holding an UnsignedInt value with the given metadata.
func NewUnsigned(meta Metadata, typ format.SensorType, v uint32) Measurement {
	return Measurement{Type: typ, Value: UnsignedInt(v), Meta: meta, HasMeta: true}
}

// WithMeta stamps meta onto every measurement in ms and marks it present.
//
// Batch encoding requires each measurement to carry its own metadata; this is
// the explicit way to apply one shared context to a whole batch before encoding.
func WithMeta(ms []Measurement, meta Metadata) {
	for i := range ms {
		ms[i].Meta = meta
		ms[i].HasMeta = true
	}
}

func (m Measurement) String() string {
	if m.HasMeta {
		return fmt.Sprintf("%s=%v meta=%s", m.Type, m.Value, m.Meta)
	}

	return fmt.Sprintf("%s=%v", m.Type, m.Value)
}
