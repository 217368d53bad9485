package measurement

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
)

// Protobuf field numbers for Metadata
const (
	fieldMetaTimestamp protowire.Number = 1
	fieldMetaLoggerID  protowire.Number = 2
	fieldMetaCellID    protowire.Number = 3
)

// Protobuf field numbers for SensorMeasurement
const (
	fieldMeasMeta        protowire.Number = 1
	fieldMeasType        protowire.Number = 2
	fieldMeasDecimal     protowire.Number = 3
	fieldMeasSignedInt   protowire.Number = 4
	fieldMeasUnsignedInt protowire.Number = 5
)

// Protobuf field numbers for RepeatedSensorMeasurements
const (
	fieldEnvMeta         protowire.Number = 1
	fieldEnvMeasurements protowire.Number = 2
)

// Protobuf field numbers for SensorResponse and RepeatedSensorResponses
const (
	fieldRespIndex     protowire.Number = 1
	fieldRespError     protowire.Number = 2
	fieldRespResponses protowire.Number = 1
)

// Metadata

func (m Metadata) wireSize() int {
	n := 0
	if m.Timestamp != 0 {
		n += protowire.SizeTag(fieldMetaTimestamp) + protowire.SizeVarint(m.Timestamp)
	}
	if m.LoggerID != 0 {
		n += protowire.SizeTag(fieldMetaLoggerID) + protowire.SizeVarint(uint64(m.LoggerID))
	}
	if m.CellID != 0 {
		n += protowire.SizeTag(fieldMetaCellID) + protowire.SizeVarint(uint64(m.CellID))
	}

	return n
}

func (m Metadata) appendWire(b []byte) []byte {
	if m.Timestamp != 0 {
		b = protowire.AppendTag(b, fieldMetaTimestamp, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Timestamp)
	}
	if m.LoggerID != 0 {
		b = protowire.AppendTag(b, fieldMetaLoggerID, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.LoggerID))
	}
	if m.CellID != 0 {
		b = protowire.AppendTag(b, fieldMetaCellID, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.CellID))
	}

	return b
}

func (m *Metadata) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.VarintType {
			return skipField(num, typ, b)
		}

		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}

		switch num {
		case fieldMetaTimestamp:
			m.Timestamp = v
		case fieldMetaLoggerID:
			m.LoggerID = uint32(v) //nolint:gosec
		case fieldMetaCellID:
			m.CellID = uint32(v) //nolint:gosec
		}

		return n, nil
	})
}

// Measurement

// Schema implements codec.Message.
func (m *Measurement) Schema() format.Schema {
	return format.SchemaMeasurement
}

func (m *Measurement) wireSize() (int, error) {
	n := 0
	if m.HasMeta {
		n += protowire.SizeTag(fieldMeasMeta) + protowire.SizeBytes(m.Meta.wireSize())
	}
	if m.Type != 0 {
		n += protowire.SizeTag(fieldMeasType) + protowire.SizeVarint(uint64(int64(m.Type)))
	}

	switch v := m.Value.(type) {
	case Decimal:
		n += protowire.SizeTag(fieldMeasDecimal) + protowire.SizeFixed64()
	case SignedInt:
		n += protowire.SizeTag(fieldMeasSignedInt) + protowire.SizeVarint(protowire.EncodeZigZag(int64(v)))
	case UnsignedInt:
		n += protowire.SizeTag(fieldMeasUnsignedInt) + protowire.SizeVarint(uint64(v))
	default:
		return 0, errs.ErrMissingValue
	}

	return n, nil
}

// AppendWire implements codec.Message.
//
// Returns ErrMissingValue if the measurement has no value.
func (m *Measurement) AppendWire(b []byte) ([]byte, error) {
	if m.HasMeta {
		b = protowire.AppendTag(b, fieldMeasMeta, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(m.Meta.wireSize()))
		b = m.Meta.appendWire(b)
	}
	if m.Type != 0 {
		b = protowire.AppendTag(b, fieldMeasType, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(m.Type)))
	}

	switch v := m.Value.(type) {
	case Decimal:
		b = protowire.AppendTag(b, fieldMeasDecimal, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(float64(v)))
	case SignedInt:
		b = protowire.AppendTag(b, fieldMeasSignedInt, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
	case UnsignedInt:
		b = protowire.AppendTag(b, fieldMeasUnsignedInt, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	default:
		return b, errs.ErrMissingValue
	}

	return b, nil
}

// UnmarshalWire implements codec.Message.
//
// The measurement is reset before decoding. A measurement without a value is
// rejected with ErrMissingValue.
func (m *Measurement) UnmarshalWire(b []byte) error {
	*m = Measurement{}

	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldMeasMeta && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			if err := m.Meta.unmarshalWire(v); err != nil {
				return 0, fmt.Errorf("metadata: %w", err)
			}
			m.HasMeta = true

			return n, nil
		case num == fieldMeasType && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			m.Type = format.SensorType(int32(v)) //nolint:gosec

			return n, nil
		case num == fieldMeasDecimal && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			m.Value = Decimal(math.Float64frombits(v))

			return n, nil
		case num == fieldMeasSignedInt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			m.Value = SignedInt(int32(protowire.DecodeZigZag(v))) //nolint:gosec

			return n, nil
		case num == fieldMeasUnsignedInt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			m.Value = UnsignedInt(uint32(v)) //nolint:gosec

			return n, nil
		default:
			return skipField(num, typ, b)
		}
	})
	if err != nil {
		return err
	}

	if m.Value == nil {
		return errs.ErrMissingValue
	}

	return nil
}

// Envelope

// Schema implements codec.Message.
func (e *Envelope) Schema() format.Schema {
	return format.SchemaEnvelope
}

// AppendWire implements codec.Message.
//
// Measurements without their own metadata are written without a metadata
// field; they rely on the hoisted metadata when decoded.
func (e *Envelope) AppendWire(b []byte) ([]byte, error) {
	if e.HasMeta {
		b = protowire.AppendTag(b, fieldEnvMeta, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(e.Meta.wireSize()))
		b = e.Meta.appendWire(b)
	}

	for i := range e.Measurements() {
		m := &e.items[i]
		size, err := m.wireSize()
		if err != nil {
			return b, fmt.Errorf("measurement %d: %w", i, err)
		}

		b = protowire.AppendTag(b, fieldEnvMeasurements, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(size))
		if b, err = m.AppendWire(b); err != nil {
			return b, fmt.Errorf("measurement %d: %w", i, err)
		}
	}

	return b, nil
}

// UnmarshalWire implements codec.Message.
//
// The envelope is reset before decoding. More than MaxMeasurements entries
// is reported as ErrOutOfBounds. Hoisted metadata is not expanded here; see
// envelope.Parse.
func (e *Envelope) UnmarshalWire(b []byte) error {
	e.Reset()

	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return skipField(num, typ, b)
		}

		switch num {
		case fieldEnvMeta:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			if err := e.Meta.unmarshalWire(v); err != nil {
				return 0, fmt.Errorf("metadata: %w", err)
			}
			e.HasMeta = true

			return n, nil
		case fieldEnvMeasurements:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			if e.count >= MaxMeasurements {
				return 0, fmt.Errorf("%w: more than %d measurements", errs.ErrOutOfBounds, MaxMeasurements)
			}
			if err := e.items[e.count].UnmarshalWire(v); err != nil {
				return 0, fmt.Errorf("measurement %d: %w", e.count, err)
			}
			e.count++

			return n, nil
		default:
			return skipField(num, typ, b)
		}
	})
}

// Response

func (r Response) wireSize() int {
	n := 0
	if r.Index != 0 {
		n += protowire.SizeTag(fieldRespIndex) + protowire.SizeVarint(uint64(r.Index))
	}
	if r.Error != 0 {
		n += protowire.SizeTag(fieldRespError) + protowire.SizeVarint(uint64(int64(r.Error)))
	}

	return n
}

func (r Response) appendWire(b []byte) []byte {
	if r.Index != 0 {
		b = protowire.AppendTag(b, fieldRespIndex, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Index))
	}
	if r.Error != 0 {
		b = protowire.AppendTag(b, fieldRespError, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(r.Error)))
	}

	return b
}

func (r *Response) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.VarintType {
			return skipField(num, typ, b)
		}

		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}

		switch num {
		case fieldRespIndex:
			r.Index = uint32(v) //nolint:gosec
		case fieldRespError:
			r.Error = format.SensorError(int32(v)) //nolint:gosec
		}

		return n, nil
	})
}

// Schema implements codec.Message.
func (rs *Responses) Schema() format.Schema {
	return format.SchemaResponses
}

// AppendWire implements codec.Message.
func (rs *Responses) AppendWire(b []byte) ([]byte, error) {
	if len(*rs) > MaxResponses {
		return b, fmt.Errorf("%w: %d responses, capacity %d", errs.ErrTooManyResponses, len(*rs), MaxResponses)
	}

	for _, r := range *rs {
		b = protowire.AppendTag(b, fieldRespResponses, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(r.wireSize()))
		b = r.appendWire(b)
	}

	return b, nil
}

// UnmarshalWire implements codec.Message.
func (rs *Responses) UnmarshalWire(b []byte) error {
	*rs = (*rs)[:0]

	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != fieldRespResponses || typ != protowire.BytesType {
			return skipField(num, typ, b)
		}

		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		if len(*rs) >= MaxResponses {
			return 0, fmt.Errorf("%w: more than %d responses", errs.ErrTooManyResponses, MaxResponses)
		}

		var r Response
		if err := r.unmarshalWire(v); err != nil {
			return 0, fmt.Errorf("response %d: %w", len(*rs), err)
		}
		*rs = append(*rs, r)

		return n, nil
	})
}

// consumeFields walks every field of a protobuf message, calling fn with the
// bytes following each tag. fn returns the number of bytes it consumed.
func consumeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}

	return nil
}

// skipField consumes an unknown field value.
func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	return n, nil
}
