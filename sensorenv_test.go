package sensorenv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/frame"
	"github.com/arloliu/sensorenv/measurement"
	"github.com/arloliu/sensorenv/response"
)

var testMeta = measurement.Metadata{Timestamp: 1_700_000_000, LoggerID: 200, CellID: 200}

// teros12Batch mirrors a TEROS-12 reading cycle: four channels taken at once.
func teros12Batch() []measurement.Measurement {
	return []measurement.Measurement{
		measurement.NewDecimal(testMeta, format.SensorTeros12VWC, 2124.62),
		measurement.NewDecimal(testMeta, format.SensorTeros12VWCAdj, 0.43),
		measurement.NewDecimal(testMeta, format.SensorTeros12Temp, 24.8),
		measurement.NewUnsigned(testMeta, format.SensorTeros12EC, 123),
	}
}

func TestEncodeDecodeBatch(t *testing.T) {
	ms := teros12Batch()

	size, err := EncodedBatchSize(ms)
	require.NoError(t, err)

	buf := make([]byte, size)
	n, err := EncodeBatch(ms, buf)
	require.NoError(t, err)
	require.Equal(t, size, n)

	env, err := DecodeBatch(buf)
	require.NoError(t, err)
	require.Equal(t, ms, env.Measurements())
}

func TestEncodeDecodeMeasurement(t *testing.T) {
	m := measurement.NewSigned(testMeta, format.SensorTeros21MatricPot, -220)

	buf := make([]byte, 64)
	n, err := EncodeMeasurement(m, buf)
	require.NoError(t, err)

	got, err := DecodeMeasurement(buf[:n])
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestSealOpenBatch(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, comp := range compressions {
		t.Run(comp.String(), func(t *testing.T) {
			ms := teros12Batch()

			data, err := SealBatch(ms, frame.WithCompression(comp))
			require.NoError(t, err)

			env, err := OpenBatch(data)
			require.NoError(t, err)
			require.Equal(t, ms, env.Measurements())
		})
	}
}

func TestSealBatch_Errors(t *testing.T) {
	ms := make([]measurement.Measurement, measurement.MaxMeasurements+1)
	_, err := SealBatch(ms)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	ms = teros12Batch()
	ms[1].HasMeta = false
	_, err = SealBatch(ms)
	require.ErrorIs(t, err, errs.ErrIncompleteMetadata)
}

func TestOpen_SchemaMismatch(t *testing.T) {
	data, err := SealResponses(measurement.Responses{{Index: 0}})
	require.NoError(t, err)

	_, err = OpenBatch(data)
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)

	data, err = SealBatch(teros12Batch())
	require.NoError(t, err)

	_, err = OpenResponses(data)
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestResponsesRoundTrip(t *testing.T) {
	rs := measurement.Responses{
		{Index: 0, Error: format.ErrorOK},
		{Index: 2, Error: format.ErrorCell},
	}

	buf := make([]byte, 64)
	n, err := EncodeResponses(rs, buf)
	require.NoError(t, err)

	got, err := DecodeResponses(buf[:n])
	require.NoError(t, err)
	require.Equal(t, rs, got)

	data, err := SealResponses(rs, frame.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	got, err = OpenResponses(data)
	require.NoError(t, err)
	require.Equal(t, rs, got)
}

func TestClassifyAndPlan(t *testing.T) {
	require.Equal(t, response.Accept, Classify(measurement.Response{Index: 0}))
	require.Equal(t, response.RetryBatch, Classify(measurement.Response{Index: 0, Error: format.ErrorTimeout}))
	require.Equal(t, response.DiscardMeasurement, Classify(measurement.Response{Index: 1, Error: format.ErrorUnsupported}))

	d := Plan(measurement.Responses{{Index: 0}, {Index: 1, Error: format.ErrorLogger}}, 4)
	require.False(t, d.Retry)
	require.Equal(t, []int{1, 2, 3}, d.Accepted)
	require.Equal(t, []int{0}, d.Discard)
}

func TestNewBuilder(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NotNil(t, b)
}
