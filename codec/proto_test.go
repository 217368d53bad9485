package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/measurement"
)

var testMeta = measurement.Metadata{Timestamp: 1_700_000_000, LoggerID: 200, CellID: 200}

func TestProto_EncodeDecodeMeasurement(t *testing.T) {
	c := NewProto()
	m := measurement.NewDecimal(testMeta, format.SensorTeros12VWC, 2124.62)

	size, err := c.EncodedSize(&m)
	require.NoError(t, err)

	buf := make([]byte, 256)
	n, err := c.Encode(&m, buf)
	require.NoError(t, err)
	require.Equal(t, size, n)

	var got measurement.Measurement
	require.NoError(t, c.Decode(buf[:n], &got))
	require.Equal(t, m, got)
}

func TestProto_EncodeExactFit(t *testing.T) {
	c := NewProto()
	m := measurement.NewUnsigned(testMeta, format.SensorPowerVoltage, 3300)

	size, err := c.EncodedSize(&m)
	require.NoError(t, err)

	n, err := c.Encode(&m, make([]byte, size))
	require.NoError(t, err)
	require.Equal(t, size, n)
}

func TestProto_EncodeBufferTooSmall(t *testing.T) {
	c := NewProto()
	m := measurement.NewUnsigned(testMeta, format.SensorPowerVoltage, 3300)

	size, err := c.EncodedSize(&m)
	require.NoError(t, err)

	buf := make([]byte, size-1)
	n, err := c.Encode(&m, buf)
	require.Zero(t, n)
	require.ErrorIs(t, err, errs.ErrEncode)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	require.Equal(t, make([]byte, size-1), buf)
}

func TestProto_EncodeMissingValue(t *testing.T) {
	c := NewProto()
	m := measurement.Measurement{Type: format.SensorPowerVoltage, Meta: testMeta, HasMeta: true}

	_, err := c.Encode(&m, make([]byte, 64))
	require.ErrorIs(t, err, errs.ErrEncode)
	require.ErrorIs(t, err, errs.ErrMissingValue)

	_, err = c.EncodedSize(&m)
	require.ErrorIs(t, err, errs.ErrEncode)
}

func TestProto_DecodeMalformed(t *testing.T) {
	c := NewProto()

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tag", []byte{0x80}},
		{"truncated length", []byte{0x0a, 0x05, 0x08}},
		{"invalid field number", []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env measurement.Envelope
			err := c.Decode(tt.data, &env)
			require.ErrorIs(t, err, errs.ErrDecode)
			require.ErrorContains(t, err, format.SchemaEnvelope.String())
		})
	}
}

func BenchmarkProto_EncodeEnvelope(b *testing.B) {
	c := NewProto()

	var env measurement.Envelope
	for i := range measurement.MaxMeasurements {
		_ = env.Append(measurement.NewDecimal(testMeta, format.SensorTeros12VWC, float64(i)*1.5))
	}
	buf := make([]byte, 1024)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.Encode(&env, buf); err != nil {
			b.Fatal(err)
		}
	}
}
