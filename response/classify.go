// Package response interprets the acknowledgements returned by the upload
// server for an encoded envelope.
//
// Each acknowledgement carries an index and an error code. Index 0 reports on
// the envelope as a whole, index i >= 1 on the measurement at position i-1.
// Classify turns one acknowledgement into the caller's next step and Plan
// folds a whole acknowledgement batch into a single decision.
package response

import (
	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/measurement"
)

// Action is the caller's next step for an acknowledged item.
type Action uint8

const (
	// Accept means the item was stored and can be dropped from the upload queue.
	Accept Action = iota
	// RetryBatch means the whole envelope must be sent again.
	RetryBatch
	// DiscardMeasurement means the measurement was permanently rejected and
	// resending it will not help.
	DiscardMeasurement
)

func (a Action) String() string {
	switch a {
	case Accept:
		return "Accept"
	case RetryBatch:
		return "RetryBatch"
	case DiscardMeasurement:
		return "DiscardMeasurement"
	default:
		return "Unknown"
	}
}

// Classify maps an acknowledgement to an Action.
//
// An envelope-level acknowledgement is accepted only when it reports OK; any
// other code asks for the batch to be resent. A measurement-level
// acknowledgement reporting an unknown logger, unknown cell or unsupported
// sensor type discards that measurement. Every other code, including codes
// this package does not know about, asks for a resend rather than risk
// silently losing data.
func Classify(r measurement.Response) Action {
	if r.Error == format.ErrorOK {
		return Accept
	}

	if r.IsEnvelope() {
		return RetryBatch
	}

	switch r.Error { //nolint:exhaustive
	case format.ErrorLogger, format.ErrorCell, format.ErrorUnsupported:
		return DiscardMeasurement
	default:
		return RetryBatch
	}
}
