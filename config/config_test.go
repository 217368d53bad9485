package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/frame"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sensorenv.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[frame]
compression = "zstd"
checksum = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "zstd", cfg.Frame.Compression)
	require.False(t, cfg.Frame.Checksum)
	require.Equal(t, ByteOrderLittle, cfg.Frame.ByteOrder)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[frame]
compression = "zstd"

[log]
level = "warn"
`)
	t.Setenv("SENSORENV_FRAME_COMPRESSION", "s2")
	t.Setenv("SENSORENV_FRAME_BYTE_ORDER", "big")
	t.Setenv("SENSORENV_FRAME_CHECKSUM", "false")
	t.Setenv("SENSORENV_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "s2", cfg.Frame.Compression)
	require.Equal(t, ByteOrderBig, cfg.Frame.ByteOrder)
	require.False(t, cfg.Frame.Checksum)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[frame]\nlevel = \"x\"\n"))
		require.ErrorContains(t, err, "unknown key")
	})

	t.Run("bad compression", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[frame]\ncompression = \"brotli\"\n"))
		require.ErrorContains(t, err, "compression")
	})

	t.Run("bad checksum env", func(t *testing.T) {
		t.Setenv("SENSORENV_FRAME_CHECKSUM", "maybe")
		_, err := Load("")
		require.ErrorContains(t, err, "SENSORENV_FRAME_CHECKSUM")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"lz4 upper case", func(c *Config) { c.Frame.Compression = "LZ4" }, false},
		{"bad byte order", func(c *Config) { c.Frame.ByteOrder = "middle" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"empty level", func(c *Config) { c.Log.Level = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFrameOptions_SealsWithConfiguredCodec(t *testing.T) {
	cfg := Default()
	cfg.Frame.Compression = "s2"
	cfg.Frame.ByteOrder = ByteOrderBig

	opts, err := cfg.FrameOptions()
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("teros12 vwc "), 64)
	data, err := frame.Seal(format.SchemaEnvelope, payload, opts...)
	require.NoError(t, err)
	require.Less(t, len(data), len(payload))

	schema, raw, err := frame.Open(data)
	require.NoError(t, err)
	require.Equal(t, format.SchemaEnvelope, schema)
	require.Equal(t, payload, raw)
}

func TestNewBuilder_UsesConfiguredLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"

	var logs bytes.Buffer
	b, err := cfg.NewBuilder(&logs)
	require.NoError(t, err)

	_, err = b.DecodeBatch([]byte{0xff})
	require.Error(t, err)
	require.Contains(t, logs.String(), "envelope decode failed")
}
