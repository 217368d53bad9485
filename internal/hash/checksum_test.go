package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty payload", []byte{}, 0xef46db3751d8e999},
		{"nil payload", nil, 0xef46db3751d8e999},
		{"short payload", []byte("test"), 0x4fdcca5ddb678139},
		{"longer payload", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
		})
	}
}

func TestChecksum_DetectsSingleBitFlip(t *testing.T) {
	payload := []byte{0x0a, 0x06, 0x08, 0xc9, 0xb8, 0xc6, 0xcb, 0x06}
	original := Checksum(payload)

	payload[3] ^= 0x01
	assert.NotEqual(t, original, Checksum(payload))
}

func BenchmarkChecksum(b *testing.B) {
	payload := make([]byte, 128)
	for i := range payload {
		payload[i] = byte(i)
	}

	b.ResetTimer()
	for b.Loop() {
		Checksum(payload)
	}
}
