// Package config loads sensorenv runtime settings from TOML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"

	"github.com/arloliu/sensorenv/compress"
	"github.com/arloliu/sensorenv/envelope"
	"github.com/arloliu/sensorenv/frame"
	"github.com/arloliu/sensorenv/internal/logging"
)

const (
	ByteOrderLittle = "little"
	ByteOrderBig    = "big"
)

// Config holds the settings shared by encoders and upload tools.
type Config struct {
	Frame FrameConfig
	Log   LogConfig
}

// FrameConfig controls how encoded envelopes are framed for upload.
type FrameConfig struct {
	Compression string
	ByteOrder   string
	Checksum    bool
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string
}

type fileConfig struct {
	Frame struct {
		Compression string `toml:"compression"`
		ByteOrder   string `toml:"byte_order"`
		Checksum    bool   `toml:"checksum"`
	} `toml:"frame"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

type envConfig struct {
	Compression string `env:"SENSORENV_FRAME_COMPRESSION"`
	ByteOrder   string `env:"SENSORENV_FRAME_BYTE_ORDER"`
	Checksum    string `env:"SENSORENV_FRAME_CHECKSUM"`
	LogLevel    string `env:"SENSORENV_LOG_LEVEL"`
}

// Default returns the built-in settings: no compression, little-endian, checksum on, info logs.
func Default() Config {
	return Config{
		Frame: FrameConfig{
			Compression: "none",
			ByteOrder:   ByteOrderLittle,
			Checksum:    true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path over the defaults, applies SENSORENV_*
// environment overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
		}

		if meta.IsDefined("frame", "compression") {
			cfg.Frame.Compression = strings.TrimSpace(raw.Frame.Compression)
		}
		if meta.IsDefined("frame", "byte_order") {
			cfg.Frame.ByteOrder = strings.TrimSpace(raw.Frame.ByteOrder)
		}
		if meta.IsDefined("frame", "checksum") {
			cfg.Frame.Checksum = raw.Frame.Checksum
		}
		if meta.IsDefined("log", "level") {
			cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var env envConfig
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}

		return fmt.Errorf("config env decode failed: %w", err)
	}

	if env.Compression != "" {
		cfg.Frame.Compression = strings.TrimSpace(env.Compression)
	}
	if env.ByteOrder != "" {
		cfg.Frame.ByteOrder = strings.TrimSpace(env.ByteOrder)
	}
	if env.Checksum != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(env.Checksum))
		if err != nil {
			return fmt.Errorf("config env SENSORENV_FRAME_CHECKSUM invalid: %w", err)
		}
		cfg.Frame.Checksum = enabled
	}
	if env.LogLevel != "" {
		cfg.Log.Level = strings.TrimSpace(env.LogLevel)
	}

	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := compress.ParseCompressionType(c.Frame.Compression); err != nil {
		return fmt.Errorf("frame config invalid compression: %w", err)
	}

	switch strings.ToLower(c.Frame.ByteOrder) {
	case ByteOrderLittle, ByteOrderBig:
	default:
		return fmt.Errorf("frame config invalid byte_order %q", c.Frame.ByteOrder)
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("log config invalid level %q", c.Log.Level)
	}

	return nil
}

// FrameOptions converts the frame settings into options for frame.Seal.
func (c Config) FrameOptions() ([]frame.Option, error) {
	comp, err := compress.ParseCompressionType(c.Frame.Compression)
	if err != nil {
		return nil, fmt.Errorf("frame config invalid compression: %w", err)
	}

	opts := []frame.Option{
		frame.WithCompression(comp),
		frame.WithChecksum(c.Frame.Checksum),
	}
	if strings.EqualFold(c.Frame.ByteOrder, ByteOrderBig) {
		opts = append(opts, frame.WithBigEndian())
	} else {
		opts = append(opts, frame.WithLittleEndian())
	}

	return opts, nil
}

// Logger builds a logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	return logging.New(w, c.Log.Level)
}

// NewBuilder creates an envelope.Builder that logs through the configured logger.
func (c Config) NewBuilder(w io.Writer, opts ...envelope.BuilderOption) (*envelope.Builder, error) {
	all := append([]envelope.BuilderOption{envelope.WithLogger(c.Logger(w))}, opts...)
	return envelope.NewBuilder(all...)
}
