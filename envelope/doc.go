// Package envelope builds, encodes and decodes batches of sensor measurements.
//
// An envelope groups up to measurement.MaxMeasurements readings. Field loggers
// usually sample several channels at the same instant, so most readings in a
// batch share the same metadata (timestamp, logger id, cell id). Before
// encoding, Format hoists the most repeated metadata record to the envelope
// level and clears it from every measurement that matches it exactly; on
// decode, Parse copies the hoisted record back into every measurement that
// does not carry its own.
//
// # Batch Contract
//
// Every measurement passed to Build, EncodeBatch or EncodedBatchSize must carry
// its own metadata (HasMeta set). Use measurement.WithMeta to stamp one shared
// context on a whole batch. Batches that violate this are rejected with
// errs.ErrIncompleteMetadata, and batches larger than the envelope capacity
// with errs.ErrOutOfBounds, in both cases before any output is modified.
//
// # Basic Usage
//
//	builder, _ := envelope.NewBuilder()
//
//	meta := measurement.Metadata{Timestamp: 1769113673, LoggerID: 200, CellID: 200}
//	batch := []measurement.Measurement{
//	    measurement.NewDecimal(meta, format.SensorTeros12VWC, 2000),
//	    measurement.NewDecimal(meta, format.SensorTeros12Temp, 22),
//	}
//
//	buf := make([]byte, 256)
//	n, err := builder.EncodeBatch(batch, buf)
//
//	env, err := builder.DecodeBatch(buf[:n])
//	for _, m := range env.Measurements() {
//	    fmt.Println(m.Type, m.Value, m.Meta)
//	}
//
// # Thread Safety
//
// Format and Parse operate only on the envelope they are given. A Builder holds
// immutable configuration and is safe for concurrent use with independent
// buffers.
package envelope
