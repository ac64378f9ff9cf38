package png

import (
	"io"

	"github.com/mrjoshuak/go-pngwriter/compression"
	"github.com/mrjoshuak/go-pngwriter/internal/nbo"
)

// Writer encodes pixel grids into PNG byte streams for one validated
// configuration. A Writer is immutable after construction and holds no
// per-encode state, so a single Writer may be shared by concurrent
// encodes without synchronization.
type Writer struct {
	cfg Config

	// IHDR method fields. The format defines a single value for each
	// today; they are carried as state so a future method shows up as
	// an explicit unsupported-method failure instead of a silent lie
	// in the header.
	compressionMethod uint8
	filterMethod      uint8
	interlace         uint8
}

// NewWriter validates the configuration and returns a Writer for it.
// Every configuration error is reported here; Encode can only fail on
// the shape of the grid it is handed.
func NewWriter(cfg Config) (*Writer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Writer{
		cfg:               cfg,
		compressionMethod: CompressionMethodDeflate,
		filterMethod:      FilterMethodBasic,
		interlace:         InterlaceNone,
	}, nil
}

// Config returns the validated configuration.
func (w *Writer) Config() Config {
	return w.cfg
}

// Encode serializes the pixel grid into a complete PNG file:
// signature, IHDR, one IDAT holding the compressed filtered scanlines,
// and an empty IEND. The grid must be row-major with exactly
// Height rows of Width pixels.
//
// Any stage failure aborts the encode; no partial output is returned.
func (w *Writer) Encode(pixels [][]Pixel) ([]byte, error) {
	rows, err := packRows(w.cfg, pixels)
	if err != nil {
		return nil, err
	}

	if w.filterMethod != FilterMethodBasic {
		return nil, ErrUnsupportedFilter
	}
	filtered, err := filterRows(rows, w.cfg.Filter, w.cfg.bytesPerPixel())
	if err != nil {
		return nil, err
	}

	if w.compressionMethod != CompressionMethodDeflate {
		return nil, ErrUnsupportedCompression
	}
	idat, err := compression.DeflateLevel(filtered, compression.Level(w.cfg.CompressionLevel))
	if err != nil {
		return nil, err
	}

	// 12 bytes of framing per chunk, 13 bytes of IHDR payload.
	out := nbo.NewBufferWriter(len(Signature) + 3*12 + 13 + len(idat))
	out.WriteString(Signature)
	if err := appendChunk(out, tagIHDR, w.ihdr()); err != nil {
		return nil, err
	}
	if err := appendChunk(out, tagIDAT, idat); err != nil {
		return nil, err
	}
	if err := appendChunk(out, tagIEND, nil); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncodeTo encodes the pixel grid and writes the finished file to dst.
// Nothing is written if any encoding stage fails.
func (w *Writer) EncodeTo(dst io.Writer, pixels [][]Pixel) error {
	buf, err := w.Encode(pixels)
	if err != nil {
		return err
	}
	_, err = dst.Write(buf)
	return err
}

// ihdr builds the 13-byte IHDR payload.
func (w *Writer) ihdr() []byte {
	h := nbo.NewBufferWriter(13)
	h.WriteUint32(uint32(w.cfg.Width))
	h.WriteUint32(uint32(w.cfg.Height))
	h.WriteUint8(uint8(w.cfg.BitDepth))
	h.WriteUint8(uint8(w.cfg.colorType()))
	h.WriteUint8(w.compressionMethod)
	h.WriteUint8(w.filterMethod)
	h.WriteUint8(w.interlace)
	return h.Bytes()
}
