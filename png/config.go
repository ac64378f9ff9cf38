package png

import "github.com/mrjoshuak/go-pngwriter/compression"

// Config describes one encoding setup. A Config is validated once by
// NewWriter and never mutated afterwards, so a constructed Writer can
// never observe a half-initialized configuration.
type Config struct {
	// Width and Height are the image dimensions in pixels.
	// Both must be positive.
	Width  int
	Height int

	// Alpha selects RGBA pixels (color type 6) instead of RGB
	// (color type 2).
	Alpha bool

	// BitDepth is the number of bits per channel, 8 or 16.
	BitDepth int

	// CompressionLevel is the deflate effort, 1 (fastest) to 9 (best).
	CompressionLevel int

	// Filter is the scanline filter applied to every row.
	Filter FilterType
}

// validate checks every field. A zero dimension is reported as unset
// rather than invalid: the zero value of Config has simply never been
// given a size.
func (c Config) validate() error {
	if c.Width == 0 || c.Height == 0 {
		return ErrDimensionUnset
	}
	if c.Width < 0 || c.Height < 0 {
		return ErrInvalidDimension
	}
	if c.BitDepth != 8 && c.BitDepth != 16 {
		return ErrInvalidBitDepth
	}
	if !compression.Level(c.CompressionLevel).Valid() {
		return ErrInvalidCompressionLevel
	}
	if c.Filter > FilterPaeth {
		return ErrInvalidFilterType
	}
	return nil
}

// channels returns the number of channels per pixel.
func (c Config) channels() int {
	if c.Alpha {
		return 4
	}
	return 3
}

// colorType returns the IHDR color type code for the configuration.
func (c Config) colorType() ColorType {
	if c.Alpha {
		return ColorTypeTrueColorAlpha
	}
	return ColorTypeTrueColor
}

// bytesPerChannel returns the serialized width of one channel value.
func (c Config) bytesPerChannel() int {
	if c.BitDepth == 16 {
		return 2
	}
	return 1
}

// bytesPerPixel returns the serialized width of one pixel.
func (c Config) bytesPerPixel() int {
	return c.channels() * c.bytesPerChannel()
}

// rowSize returns the packed byte length of one scanline,
// excluding the filter tag.
func (c Config) rowSize() int {
	return c.Width * c.bytesPerPixel()
}
