// Package compress provides the payload compressors available to upload frames.
//
// Envelopes are small, so compression rarely pays off for a single batch on
// the radio link. It becomes useful on gateways that concatenate or forward
// many frames, which is why the frame writer only keeps a compressed payload
// when it is smaller than the raw one.
//
// # Supported Algorithms
//
//   - None: NoOpCompressor, returns the input unchanged
//   - Zstd: ZstdCompressor, best ratio; pure Go (klauspost/compress) by default,
//     cgo (valyala/gozstd) when built with the gozstd tag
//   - S2: S2Compressor, fast Snappy-compatible compression (klauspost/compress/s2)
//   - LZ4: LZ4Compressor, block format (pierrec/lz4)
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by pooled encoders and are
// safe for concurrent use.
package compress
