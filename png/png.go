// Package png encodes in-memory true-color pixel grids into PNG files.
//
// The encoder supports true color with or without an alpha channel at 8- or
// 16-bit channel depth, the five scanline filters of the format's filter
// method 0, and deflate compression at levels 1 through 9. It is encode-only
// and produces the whole file in memory: signature, IHDR, a single IDAT,
// and IEND.
//
// Indexed color, grayscale, interlacing and ancillary chunks are not
// supported.
package png

import "errors"

// Signature is the fixed 8-byte sequence that opens every PNG file.
const Signature = "\x89PNG\r\n\x1a\n"

// ColorType is the IHDR color type code.
type ColorType uint8

// Color types produced by this encoder.
const (
	ColorTypeTrueColor      ColorType = 2 // RGB
	ColorTypeTrueColorAlpha ColorType = 6 // RGBA
)

// Fixed IHDR method fields. The format defines exactly one compression
// method and one filter method, and the encoder never interlaces.
const (
	CompressionMethodDeflate uint8 = 0
	FilterMethodBasic        uint8 = 0
	InterlaceNone            uint8 = 0
)

// Chunk type tags emitted by the encoder.
const (
	tagIHDR = "IHDR"
	tagIDAT = "IDAT"
	tagIEND = "IEND"
)

// Encoder errors. All are deterministic configuration or input-shape
// faults: they abort the encode call that hit them and leave no state
// behind, so retrying without a fix will fail identically.
var (
	ErrInvalidTag              = errors.New("png: chunk tag must be exactly 4 bytes")
	ErrShapeMismatch           = errors.New("png: pixel grid does not match declared dimensions")
	ErrUnsupportedFilter       = errors.New("png: unsupported filter kind")
	ErrUnsupportedCompression  = errors.New("png: unsupported compression method")
	ErrInvalidDimension        = errors.New("png: width and height must be positive")
	ErrDimensionUnset          = errors.New("png: width or height not set")
	ErrInvalidBitDepth         = errors.New("png: bit depth must be 8 or 16")
	ErrInvalidCompressionLevel = errors.New("png: compression level must be in [1, 9]")
	ErrInvalidFilterType       = errors.New("png: filter type must be in [0, 4]")
)
