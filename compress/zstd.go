package compress

// ZstdCompressor provides Zstandard compression for frame payloads.
//
// It gives the best ratio of the built-in codecs and suits gateways that
// forward frames over metered backhaul links. The implementation is selected
// at build time: pure Go (klauspost/compress/zstd) by default, or cgo
// (valyala/gozstd) with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
