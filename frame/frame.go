// Package frame wraps encoded codec messages for transport.
//
// A frame is a 20-byte section.FrameHeader followed by the payload. The header
// records which schema the payload holds, how it is compressed and, unless
// disabled, an xxHash64 checksum of the raw payload so corruption introduced
// by gateways or storage is detected before the codec sees the bytes.
//
// # Usage
//
//	n, _ := builder.EncodeBatch(batch, buf)
//	data, err := frame.Seal(format.SchemaEnvelope, buf[:n], frame.WithCompression(format.CompressionS2))
//
//	schema, payload, err := frame.Open(data)
//	if schema == format.SchemaEnvelope {
//	    env, err := builder.DecodeBatch(payload)
//	}
package frame

import (
	"fmt"

	"github.com/arloliu/sensorenv/compress"
	"github.com/arloliu/sensorenv/errs"
	"github.com/arloliu/sensorenv/format"
	"github.com/arloliu/sensorenv/internal/hash"
	"github.com/arloliu/sensorenv/internal/options"
	"github.com/arloliu/sensorenv/section"
)

// Config holds the frame writer settings.
type Config struct {
	compression format.CompressionType
	bigEndian   bool
	checksum    bool
}

// Option represents a functional option for configuring the frame writer.
type Option = options.Option[*Config]

func newConfig() *Config {
	return &Config{
		compression: format.CompressionNone,
		checksum:    true,
	}
}

// WithCompression sets the payload compression. The default is no compression.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(comp); err != nil {
			return err
		}
		c.compression = comp

		return nil
	})
}

// WithBigEndian writes header fields in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = true
	})
}

// WithLittleEndian writes header fields in little-endian byte order. It is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = false
	})
}

// WithChecksum enables or disables the payload checksum. It is enabled by default.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.checksum = enabled
	})
}

// Seal wraps payload in a frame.
//
// The configured compression is applied only when it makes the payload
// smaller; otherwise the frame records CompressionNone.
//
// Parameters:
//   - schema: Schema of the encoded message in payload
//   - payload: Encoded message
//   - opts: Optional configuration functions
//
// Returns:
//   - []byte: Newly allocated frame
//   - error: ErrPayloadTooLarge, an invalid option, or a compression error
func Seal(schema format.Schema, payload []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(payload) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", errs.ErrPayloadTooLarge, len(payload), section.MaxPayloadSize)
	}

	header := section.NewFrameHeader(schema)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetChecksum(cfg.checksum)
	if err := header.Flag.Validate(); err != nil {
		return nil, fmt.Errorf("%w: schema %s", err, schema)
	}

	body, comp, err := compressPayload(payload, cfg.compression)
	if err != nil {
		return nil, err
	}

	header.Flag.SetCompression(comp)
	header.RawLength = uint32(len(payload))  //nolint:gosec
	header.PayloadLength = uint32(len(body)) //nolint:gosec
	if cfg.checksum {
		header.Checksum = hash.Checksum(payload)
	}

	out := make([]byte, 0, section.HeaderSize+len(body))
	out = header.AppendBytes(out)
	out = append(out, body...)

	return out, nil
}

// Open validates a frame and returns the schema and raw payload it carries.
//
// Returns:
//   - format.Schema: Schema of the framed message
//   - []byte: Raw payload, ready for the codec; aliases data when uncompressed
//   - error: ErrInvalidHeaderSize, ErrInvalidHeaderFlags, ErrTruncatedFrame,
//     ErrFrameLength, ErrChecksumMismatch or a decompression error
func Open(data []byte) (format.Schema, []byte, error) {
	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return 0, nil, err
	}

	if header.RawLength > section.MaxPayloadSize || header.PayloadLength > section.MaxPayloadSize {
		return 0, nil, fmt.Errorf("%w: raw %d, stored %d", errs.ErrPayloadTooLarge, header.RawLength, header.PayloadLength)
	}

	body := data[section.HeaderSize:]
	switch {
	case len(body) < int(header.PayloadLength):
		return 0, nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedFrame, header.PayloadLength, len(body))
	case len(body) > int(header.PayloadLength):
		return 0, nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrFrameLength, len(body)-int(header.PayloadLength))
	}

	codec, err := compress.GetCodec(header.Flag.GetCompression())
	if err != nil {
		return 0, nil, err
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(payload) != int(header.RawLength) {
		return 0, nil, fmt.Errorf("%w: decompressed size %d, expected %d", errs.ErrFrameLength, len(payload), header.RawLength)
	}

	if header.Flag.HasChecksum() && hash.Checksum(payload) != header.Checksum {
		return 0, nil, errs.ErrChecksumMismatch
	}

	return header.Flag.GetSchema(), payload, nil
}

func compressPayload(payload []byte, comp format.CompressionType) ([]byte, format.CompressionType, error) {
	if comp == format.CompressionNone || len(payload) == 0 {
		return payload, format.CompressionNone, nil
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, 0, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to compress payload: %w", err)
	}

	// LZ4 reports incompressible input as an empty block
	if len(compressed) == 0 || len(compressed) >= len(payload) {
		return payload, format.CompressionNone, nil
	}

	return compressed, comp, nil
}
