package measurement

import (
	"fmt"

	"github.com/arloliu/sensorenv/format"
)

// MaxResponses is the capacity of a Responses batch: one envelope-level
// acknowledgement plus one per measurement.
const MaxResponses = MaxMeasurements + 1

// Response is a server acknowledgement.
//
// Index 0 refers to the envelope as a whole; index i >= 1 refers to the
// measurement at position i-1.
type Response struct {
	Index uint32
	Error format.SensorError
}

// IsEnvelope reports whether the response refers to the whole envelope.
func (r Response) IsEnvelope() bool {
	return r.Index == 0
}

// Position returns the zero-based measurement position the response refers to.
// The second result is false for envelope-level responses.
func (r Response) Position() (int, bool) {
	if r.Index == 0 {
		return 0, false
	}

	return int(r.Index - 1), true
}

func (r Response) String() string {
	return fmt.Sprintf("{idx=%d err=%s}", r.Index, r.Error)
}

// Responses is an ordered batch of acknowledgements.
type Responses []Response
