package response

import (
	"slices"

	"github.com/arloliu/sensorenv/measurement"
)

// Decision is the aggregated outcome of an acknowledgement batch.
type Decision struct {
	// Retry reports whether the whole envelope must be resent.
	Retry bool
	// Accepted lists the zero-based positions of stored measurements.
	Accepted []int
	// Discard lists the zero-based positions of permanently rejected measurements.
	Discard []int
}

// Plan folds the acknowledgements for an envelope of batchLen measurements
// into a single Decision.
//
// Any acknowledgement classified as RetryBatch, or one referring to a position
// outside the batch, makes the whole batch a retry; Accepted and Discard are
// then empty. Otherwise a measurement is discarded when its acknowledgement
// says so and accepted when either its own acknowledgement or an OK
// envelope-level acknowledgement covers it. Measurements nobody acknowledged
// are neither accepted nor discarded.
func Plan(rs measurement.Responses, batchLen int) Decision {
	batchLen = max(batchLen, 0)
	envelopeOK := false
	accepted := make([]bool, batchLen)
	discarded := make([]bool, batchLen)

	for _, r := range rs {
		action := Classify(r)
		if action == RetryBatch {
			return Decision{Retry: true}
		}

		pos, ok := r.Position()
		if !ok {
			envelopeOK = true
			continue
		}
		if pos >= batchLen {
			return Decision{Retry: true}
		}

		if action == DiscardMeasurement {
			discarded[pos] = true
		} else {
			accepted[pos] = true
		}
	}

	var d Decision
	for i := range batchLen {
		switch {
		case discarded[i]:
			d.Discard = append(d.Discard, i)
		case accepted[i] || envelopeOK:
			d.Accepted = append(d.Accepted, i)
		}
	}

	return d
}

// Done reports whether the decision leaves nothing to resend.
func (d Decision) Done() bool {
	return !d.Retry
}

// Discarded reports whether the measurement at pos was rejected.
func (d Decision) Discarded(pos int) bool {
	_, found := slices.BinarySearch(d.Discard, pos)
	return found
}
