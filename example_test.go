package pngwriter_test

import (
	"bytes"
	"fmt"

	"github.com/mrjoshuak/go-pngwriter/png"
	"github.com/mrjoshuak/go-pngwriter/pngutil"
)

// Example_minimal encodes the smallest interesting image: two pixels,
// true color, 8 bits per channel.
func Example_minimal() {
	w, err := png.NewWriter(png.Config{
		Width:            2,
		Height:           1,
		BitDepth:         8,
		CompressionLevel: 7,
		Filter:           png.FilterNone,
	})
	if err != nil {
		fmt.Println("config error:", err)
		return
	}

	data, err := w.Encode([][]png.Pixel{
		{{0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}},
	})
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}

	fmt.Println(bytes.HasPrefix(data, []byte(png.Signature)))
	// Output: true
}

// Example_testCard encodes the demo pattern with the Paeth filter,
// the configuration that compresses it best.
func Example_testCard() {
	w, err := png.NewWriter(png.Config{
		Width:            256,
		Height:           256,
		Alpha:            true,
		BitDepth:         8,
		CompressionLevel: 9,
		Filter:           png.FilterPaeth,
	})
	if err != nil {
		fmt.Println("config error:", err)
		return
	}

	var buf bytes.Buffer
	if err := w.EncodeTo(&buf, pngutil.TestCard(256, 256)); err != nil {
		fmt.Println("encode error:", err)
		return
	}

	fmt.Println(buf.Len() > 0)
	// Output: true
}
