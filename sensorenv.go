// Package sensorenv packages sensor readings into compact upload envelopes and
// interprets the server's acknowledgements.
//
// A field logger collects up to 16 readings, each stamped with the metadata it
// was taken under (timestamp, logger id, cell id). Encoding a batch hoists the
// most repeated metadata to the envelope so it is sent once, and decoding puts
// it back on every reading that relied on it.
//
// # Core Features
//
//   - Metadata deduplication across a batch of up to 16 measurements
//   - Protobuf wire format compatible with the upload server
//   - Decimal, signed and unsigned reading values
//   - Optional upload framing with compression (None, Zstd, S2, LZ4) and xxHash64 checksums
//   - Acknowledgement classification into accept, retry and discard decisions
//
// # Basic Usage
//
// Encoding a batch:
//
//	meta := measurement.Metadata{Timestamp: uint64(time.Now().Unix()), LoggerID: 200, CellID: 200}
//	ms := []measurement.Measurement{
//	    measurement.NewDecimal(meta, format.SensorTeros12VWC, 2124.62),
//	    measurement.NewDecimal(meta, format.SensorTeros12Temp, 21.5),
//	}
//	buf := make([]byte, 256)
//	n, _ := sensorenv.EncodeBatch(ms, buf)
//
// Handling acknowledgements:
//
//	rs, _ := sensorenv.DecodeResponses(ackBytes)
//	decision := sensorenv.Plan(rs, len(ms))
//	if decision.Retry {
//	    // resend the whole envelope
//	}
//
// # Package Structure
//
// This package provides top-level wrappers around the envelope, response and
// frame packages using a shared default builder. For custom codecs or logging
// use envelope.NewBuilder directly.
package sensorenv

import (
	"fmt"

	"github.com/arloliu/sensorenv/codec"
	"github.com/arloliu/sensorenv/envelope"
	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/frame"
	"github.com/arloliu/sensorenv/measurement"
	"github.com/arloliu/sensorenv/response"
)

var defaultBuilder = func() *envelope.Builder {
	b, _ := envelope.NewBuilder()
	return b
}()

// NewBuilder creates an envelope builder.
//
// Without options the builder uses the protobuf codec and discards logs.
func NewBuilder(opts ...envelope.BuilderOption) (*envelope.Builder, error) {
	return envelope.NewBuilder(opts...)
}

// EncodeBatch encodes up to MaxMeasurements measurements into buf as one envelope.
//
// Parameters:
//   - ms: Measurements to encode, each carrying its own metadata
//   - buf: Output buffer
//
// Returns:
//   - int: Number of bytes written
//   - error: ErrOutOfBounds, ErrIncompleteMetadata or ErrEncode
//
// Example:
//
//	measurement.WithMeta(ms, meta)
//	n, err := sensorenv.EncodeBatch(ms, buf)
func EncodeBatch(ms []measurement.Measurement, buf []byte) (int, error) {
	return defaultBuilder.EncodeBatch(ms, buf)
}

// EncodedBatchSize returns the number of bytes EncodeBatch would write for ms.
func EncodedBatchSize(ms []measurement.Measurement) (int, error) {
	return defaultBuilder.EncodedBatchSize(ms)
}

// DecodeBatch decodes an envelope and restores the metadata of every measurement.
func DecodeBatch(buf []byte) (*measurement.Envelope, error) {
	return defaultBuilder.DecodeBatch(buf)
}

// EncodeMeasurement encodes a single measurement with its own metadata.
func EncodeMeasurement(m measurement.Measurement, buf []byte) (int, error) {
	return defaultBuilder.EncodeMeasurement(m, buf)
}

// DecodeMeasurement decodes a single measurement.
func DecodeMeasurement(buf []byte) (measurement.Measurement, error) {
	return defaultBuilder.DecodeMeasurement(buf)
}

// SealBatch encodes ms as an envelope and wraps it in an upload frame.
//
// Parameters:
//   - ms: Measurements to encode, each carrying its own metadata
//   - opts: Frame options (WithCompression, WithBigEndian, WithChecksum)
//
// Returns:
//   - []byte: The framed envelope
//   - error: Any encode or framing error
func SealBatch(ms []measurement.Measurement, opts ...frame.Option) ([]byte, error) {
	size, err := defaultBuilder.EncodedBatchSize(ms)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	n, err := defaultBuilder.EncodeBatch(ms, buf)
	if err != nil {
		return nil, err
	}

	return frame.Seal(format.SchemaEnvelope, buf[:n], opts...)
}

// OpenBatch validates an upload frame and decodes the envelope it carries.
//
// Returns ErrSchemaMismatch if the frame holds something other than an envelope.
func OpenBatch(data []byte) (*measurement.Envelope, error) {
	payload, err := openFrame(data, format.SchemaEnvelope)
	if err != nil {
		return nil, err
	}

	return defaultBuilder.DecodeBatch(payload)
}

// EncodeResponses encodes an acknowledgement batch into buf.
func EncodeResponses(rs measurement.Responses, buf []byte) (int, error) {
	return response.Encode(codec.NewProto(), rs, buf)
}

// DecodeResponses decodes an acknowledgement batch.
func DecodeResponses(buf []byte) (measurement.Responses, error) {
	return response.Decode(codec.NewProto(), buf)
}

// SealResponses encodes rs and wraps it in an upload frame.
func SealResponses(rs measurement.Responses, opts ...frame.Option) ([]byte, error) {
	c := codec.NewProto()

	size, err := c.EncodedSize(&rs)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	n, err := response.Encode(c, rs, buf)
	if err != nil {
		return nil, err
	}

	return frame.Seal(format.SchemaResponses, buf[:n], opts...)
}

// OpenResponses validates an upload frame and decodes the acknowledgements it carries.
func OpenResponses(data []byte) (measurement.Responses, error) {
	payload, err := openFrame(data, format.SchemaResponses)
	if err != nil {
		return nil, err
	}

	return DecodeResponses(payload)
}

// Classify maps a single acknowledgement to the caller's next step.
func Classify(r measurement.Response) response.Action {
	return response.Classify(r)
}

// Plan folds the acknowledgements for a batch of batchLen measurements into one decision.
func Plan(rs measurement.Responses, batchLen int) response.Decision {
	return response.Plan(rs, batchLen)
}

func openFrame(data []byte, want format.Schema) ([]byte, error) {
	schema, payload, err := frame.Open(data)
	if err != nil {
		return nil, err
	}

	if schema != want {
		return nil, fmt.Errorf("%w: frame holds %s, want %s", errs.ErrSchemaMismatch, schema, want)
	}

	return payload, nil
}
