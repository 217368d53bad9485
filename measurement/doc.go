// Package measurement defines the sensor telemetry data model exchanged with
// the upload server and its protobuf wire representation.
//
// # Data Model
//
//   - Metadata: the shared context of a reading (timestamp, logger id, cell id)
//   - Value: a sealed sum type holding exactly one of Decimal, SignedInt or UnsignedInt
//   - Measurement: one typed reading plus optional metadata (presence flag HasMeta)
//   - Envelope: a fixed-capacity batch of measurements plus optional hoisted metadata
//   - Response / Responses: server acknowledgements correlated by index
//
// A measurement whose HasMeta flag is false inherits the metadata hoisted to
// the envelope level. The envelope package implements the hoisting (Format) and
// its inverse (Parse).
//
// # Wire Format
//
// Every message type implements the codec.Message contract: Schema, AppendWire
// and UnmarshalWire. The layout follows protobuf (proto3) encoding rules built
// on google.golang.org/protobuf/encoding/protowire; zero scalars are omitted,
// nested messages and the value oneof carry explicit presence, and unknown
// fields are skipped on decode.
package measurement
