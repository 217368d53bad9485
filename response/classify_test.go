package response

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/measurement"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    measurement.Response
		want Action
	}{
		{"envelope ok", measurement.Response{Index: 0, Error: format.ErrorOK}, Accept},
		{"envelope logger", measurement.Response{Index: 0, Error: format.ErrorLogger}, RetryBatch},
		{"envelope cell", measurement.Response{Index: 0, Error: format.ErrorCell}, RetryBatch},
		{"envelope unsupported", measurement.Response{Index: 0, Error: format.ErrorUnsupported}, RetryBatch},
		{"envelope internal", measurement.Response{Index: 0, Error: format.ErrorInternal}, RetryBatch},
		{"measurement ok", measurement.Response{Index: 1, Error: format.ErrorOK}, Accept},
		{"measurement logger", measurement.Response{Index: 3, Error: format.ErrorLogger}, DiscardMeasurement},
		{"measurement cell", measurement.Response{Index: 5, Error: format.ErrorCell}, DiscardMeasurement},
		{"measurement unsupported", measurement.Response{Index: 16, Error: format.ErrorUnsupported}, DiscardMeasurement},
		{"measurement decode", measurement.Response{Index: 2, Error: format.ErrorDecode}, RetryBatch},
		{"measurement timeout", measurement.Response{Index: 2, Error: format.ErrorTimeout}, RetryBatch},
		{"measurement unknown code", measurement.Response{Index: 2, Error: format.SensorError(99)}, RetryBatch},
		{"measurement negative code", measurement.Response{Index: 2, Error: format.SensorError(-1)}, RetryBatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.r))
		})
	}
}

func TestAction_String(t *testing.T) {
	require.Equal(t, "Accept", Accept.String())
	require.Equal(t, "RetryBatch", RetryBatch.String())
	require.Equal(t, "DiscardMeasurement", DiscardMeasurement.String())
	require.Equal(t, "Unknown", Action(9).String())
}
