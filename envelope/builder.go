package envelope

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/sensorenv/codec"
	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/internal/options"
	"github.com/arloliu/sensorenv/measurement"
)

// Build copies ms into dst and hoists repeated metadata with Format.
//
// The batch is validated before dst is touched: more than MaxMeasurements
// entries yields ErrOutOfBounds, and a measurement without its own metadata
// yields ErrIncompleteMetadata.
//
// Returns the dedup count reported by Format.
func Build(dst *measurement.Envelope, ms []measurement.Measurement) (int, error) {
	if len(ms) > measurement.MaxMeasurements {
		return 0, fmt.Errorf("%w: %d measurements, capacity %d",
			errs.ErrOutOfBounds, len(ms), measurement.MaxMeasurements)
	}

	for i := range ms {
		if !ms[i].HasMeta {
			return 0, fmt.Errorf("%w: measurement %d has no metadata", errs.ErrIncompleteMetadata, i)
		}
	}

	if err := dst.SetMeasurements(ms); err != nil {
		return 0, err
	}

	return Format(dst), nil
}

// Builder orchestrates envelope building and delegates serialization to a codec.
type Builder struct {
	codec  codec.Codec
	logger zerolog.Logger
}

// BuilderOption represents a functional option for configuring a Builder.
type BuilderOption = options.Option[*Builder]

// WithCodec sets the wire codec. The default is codec.Proto.
func WithCodec(c codec.Codec) BuilderOption {
	return options.New(func(b *Builder) error {
		if c == nil {
			return errors.New("codec must not be nil")
		}
		b.codec = c

		return nil
	})
}

// WithLogger sets the logger used for debug diagnostics. The default discards everything.
func WithLogger(logger zerolog.Logger) BuilderOption {
	return options.NoError(func(b *Builder) {
		b.logger = logger
	})
}

// NewBuilder creates a new Builder.
//
// Parameters:
//   - opts: Optional configuration functions (WithCodec, WithLogger)
//
// Returns:
//   - *Builder: The created builder
//   - error: An error if an option is invalid
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		codec:  codec.NewProto(),
		logger: zerolog.Nop(),
	}

	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Build copies ms into dst and hoists repeated metadata. See the package-level Build.
func (b *Builder) Build(dst *measurement.Envelope, ms []measurement.Measurement) (int, error) {
	dedup, err := Build(dst, ms)
	if err != nil {
		return 0, err
	}

	b.logger.Debug().
		Int("measurements", dst.Len()).
		Int("dedup", dedup).
		Bool("hoisted", dst.HasMeta).
		Msg("envelope built")

	return dedup, nil
}

// EncodeMeasurement encodes a single measurement into buf.
//
// No deduplication is applied; the measurement is written with its own metadata.
//
// Returns:
//   - int: Number of bytes written
//   - error: ErrEncode (possibly wrapping ErrBufferTooSmall) on codec failure
func (b *Builder) EncodeMeasurement(m measurement.Measurement, buf []byte) (int, error) {
	return b.codec.Encode(&m, buf)
}

// EncodeUnsignedMeasurement encodes an UnsignedInt reading with the given metadata.
func (b *Builder) EncodeUnsignedMeasurement(meta measurement.Metadata, typ format.SensorType, v uint32, buf []byte) (int, error) {
	return b.EncodeMeasurement(measurement.NewUnsigned(meta, typ, v), buf)
}

// EncodeSignedMeasurement encodes a SignedInt reading with the given metadata.
func (b *Builder) EncodeSignedMeasurement(meta measurement.Metadata, typ format.SensorType, v int32, buf []byte) (int, error) {
	return b.EncodeMeasurement(measurement.NewSigned(meta, typ, v), buf)
}

// EncodeDecimalMeasurement encodes a Decimal reading with the given metadata.
func (b *Builder) EncodeDecimalMeasurement(meta measurement.Metadata, typ format.SensorType, v float64, buf []byte) (int, error) {
	return b.EncodeMeasurement(measurement.NewDecimal(meta, typ, v), buf)
}

// EncodeBatch builds an envelope from ms and encodes it into buf.
//
// Parameters:
//   - ms: Measurements to encode, each carrying its own metadata
//   - buf: Output buffer
//
// Returns:
//   - int: Number of bytes written
//   - error: ErrOutOfBounds, ErrIncompleteMetadata or ErrEncode
func (b *Builder) EncodeBatch(ms []measurement.Measurement, buf []byte) (int, error) {
	var env measurement.Envelope
	if _, err := b.Build(&env, ms); err != nil {
		return 0, err
	}

	return b.codec.Encode(&env, buf)
}

// EncodedBatchSize returns the number of bytes EncodeBatch would write for ms.
//
// Use it to size transport buffers before encoding.
func (b *Builder) EncodedBatchSize(ms []measurement.Measurement) (int, error) {
	var env measurement.Envelope
	if _, err := b.Build(&env, ms); err != nil {
		return 0, err
	}

	return b.codec.EncodedSize(&env)
}

// DecodeMeasurement decodes a single measurement from buf.
func (b *Builder) DecodeMeasurement(buf []byte) (measurement.Measurement, error) {
	var m measurement.Measurement
	if err := b.codec.Decode(buf, &m); err != nil {
		b.logger.Debug().Err(err).Int("bytes", len(buf)).Msg("measurement decode failed")
		return measurement.Measurement{}, err
	}

	return m, nil
}

// DecodeBatch decodes an envelope from buf and restores per-measurement metadata.
//
// Returns:
//   - *measurement.Envelope: Decoded envelope; every measurement has HasMeta set
//   - error: ErrDecode on codec failure, ErrIncompleteMetadata if metadata cannot be restored
func (b *Builder) DecodeBatch(buf []byte) (*measurement.Envelope, error) {
	env := new(measurement.Envelope)
	if err := b.codec.Decode(buf, env); err != nil {
		b.logger.Debug().Err(err).Int("bytes", len(buf)).Msg("envelope decode failed")
		return nil, err
	}

	if err := Parse(env); err != nil {
		b.logger.Debug().Err(err).Int("measurements", env.Len()).Msg("envelope metadata incomplete")
		return nil, err
	}

	return env, nil
}
