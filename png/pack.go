package png

import (
	"fmt"

	"github.com/mrjoshuak/go-pngwriter/internal/nbo"
)

// Pixel is the channel tuple of one pixel, in R, G, B[, A] order.
// Each value must fit in the configured bit depth; a value above
// 2^bitDepth-1 is truncated to its low-order bits when packed.
type Pixel []uint16

// packRows flattens the pixel grid into scanlines, one fixed-width
// big-endian encoding per channel per pixel. It is the shape gate for
// the whole encode: row count, row width and pixel arity are all
// checked here.
func packRows(cfg Config, pixels [][]Pixel) ([][]byte, error) {
	if len(pixels) != cfg.Height {
		return nil, fmt.Errorf("%w: grid has %d rows, want %d",
			ErrShapeMismatch, len(pixels), cfg.Height)
	}

	channels := cfg.channels()
	wide := cfg.BitDepth == 16

	rows := make([][]byte, 0, cfg.Height)
	for y, row := range pixels {
		if len(row) != cfg.Width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d",
				ErrShapeMismatch, y, len(row), cfg.Width)
		}

		buf := nbo.NewBufferWriter(cfg.rowSize())
		for x, px := range row {
			if len(px) != channels {
				return nil, fmt.Errorf("%w: pixel (%d, %d) has %d channels, want %d",
					ErrShapeMismatch, x, y, len(px), channels)
			}
			for _, v := range px {
				if wide {
					buf.WriteUint16(v)
				} else {
					buf.WriteUint8(uint8(v))
				}
			}
		}
		rows = append(rows, buf.Bytes())
	}

	return rows, nil
}
