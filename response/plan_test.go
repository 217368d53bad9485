package response

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/measurement"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		rs       measurement.Responses
		batchLen int
		want     Decision
	}{
		{
			name:     "envelope ok accepts all",
			rs:       measurement.Responses{{Index: 0}},
			batchLen: 3,
			want:     Decision{Accepted: []int{0, 1, 2}},
		},
		{
			name: "envelope ok with discards",
			rs: measurement.Responses{
				{Index: 0},
				{Index: 2, Error: format.ErrorCell},
				{Index: 4, Error: format.ErrorUnsupported},
			},
			batchLen: 4,
			want:     Decision{Accepted: []int{0, 2}, Discard: []int{1, 3}},
		},
		{
			name: "per measurement only",
			rs: measurement.Responses{
				{Index: 1},
				{Index: 3, Error: format.ErrorLogger},
			},
			batchLen: 3,
			want:     Decision{Accepted: []int{0}, Discard: []int{2}},
		},
		{
			name: "envelope failure retries",
			rs: measurement.Responses{
				{Index: 0, Error: format.ErrorInternal},
				{Index: 1, Error: format.ErrorLogger},
			},
			batchLen: 2,
			want:     Decision{Retry: true},
		},
		{
			name: "measurement retry retries",
			rs: measurement.Responses{
				{Index: 1, Error: format.ErrorCell},
				{Index: 2, Error: format.ErrorTimeout},
			},
			batchLen: 2,
			want:     Decision{Retry: true},
		},
		{
			name:     "index beyond batch retries",
			rs:       measurement.Responses{{Index: 0}, {Index: 4}},
			batchLen: 3,
			want:     Decision{Retry: true},
		},
		{
			name:     "no responses",
			batchLen: 2,
			want:     Decision{},
		},
		{
			name:     "negative batch length",
			rs:       measurement.Responses{{Index: 0}},
			batchLen: -1,
			want:     Decision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.rs, tt.batchLen)
			require.Equal(t, tt.want, got)
			require.Equal(t, !tt.want.Retry, got.Done())
		})
	}
}

func TestDecision_Discarded(t *testing.T) {
	d := Decision{Discard: []int{1, 4, 9}}

	require.True(t, d.Discarded(4))
	require.False(t, d.Discarded(0))
	require.False(t, d.Discarded(10))
}
