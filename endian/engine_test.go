package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestIsLittleEndian(t *testing.T) {
	require.True(t, IsLittleEndian(GetLittleEndianEngine()))
	require.False(t, IsLittleEndian(GetBigEndianEngine()))
}

func TestEngine_AppendAndRead(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little endian", GetLittleEndianEngine(), []byte{0x04, 0x03, 0x02, 0x01}},
		{"big endian", GetBigEndianEngine(), []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint32(nil, 0x01020304)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(0x01020304), tt.engine.Uint32(buf))
		})
	}
}
