package measurement

import (
	"fmt"

	"github.com/arloliu/sensorenv/errs"
)

// MaxMeasurements is the fixed capacity of an Envelope.
const MaxMeasurements = 16

// Envelope is a batch of measurements sharing an optional hoisted metadata record.
//
// Storage is a fixed-size array plus a length counter, so an Envelope never
// holds more than MaxMeasurements entries. Order is significant: the position
// of a measurement determines the index of its acknowledgement.
type Envelope struct {
	// Meta is the hoisted metadata. It is only meaningful when HasMeta is true.
	Meta Metadata
	// HasMeta reports whether metadata has been hoisted to the envelope level.
	HasMeta bool

	items [MaxMeasurements]Measurement
	count int
}

// Len returns the number of measurements in the envelope.
func (e *Envelope) Len() int {
	return e.count
}

// Cap returns the fixed capacity of the envelope.
func (e *Envelope) Cap() int {
	return MaxMeasurements
}

// Measurements returns the stored measurements.
//
// The returned slice aliases the envelope storage; modifying its elements
// modifies the envelope.
func (e *Envelope) Measurements() []Measurement {
	return e.items[:e.count]
}

// At returns a pointer to the i-th measurement. It panics if i is out of range.
func (e *Envelope) At(i int) *Measurement {
	if i < 0 || i >= e.count {
		panic(fmt.Sprintf("measurement: index %d out of range [0:%d]", i, e.count))
	}

	return &e.items[i]
}

// Append adds m to the end of the envelope.
//
// Returns ErrOutOfBounds if the envelope is full.
func (e *Envelope) Append(m Measurement) error {
	if e.count >= MaxMeasurements {
		return fmt.Errorf("%w: capacity %d", errs.ErrOutOfBounds, MaxMeasurements)
	}
	e.items[e.count] = m
	e.count++

	return nil
}

// SetMeasurements replaces the envelope content with a copy of ms and clears
// the hoisted metadata.
//
// Returns ErrOutOfBounds without modifying the envelope if ms exceeds the capacity.
func (e *Envelope) SetMeasurements(ms []Measurement) error {
	if len(ms) > MaxMeasurements {
		return fmt.Errorf("%w: %d measurements, capacity %d", errs.ErrOutOfBounds, len(ms), MaxMeasurements)
	}

	e.Reset()
	e.count = copy(e.items[:], ms)

	return nil
}

// Reset empties the envelope.
func (e *Envelope) Reset() {
	clear(e.items[:e.count])
	e.count = 0
	e.Meta = Metadata{}
	e.HasMeta = false
}
