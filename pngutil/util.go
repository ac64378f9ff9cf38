// Package pngutil provides convenience helpers around the png encoder.
package pngutil

import "github.com/mrjoshuak/go-pngwriter/png"

// TestCard returns a width x height RGBA pixel grid with the classic
// bitwise-op demo pattern: at (x, y) the channels are
//
//	R = ^(y & x), G = y | ^x, B = ^y & x, A = y ^ x
//
// masked to 8 bits. Useful for eyeballing encoder output and as a
// non-trivial fixture in tests and benchmarks.
func TestCard(width, height int) [][]png.Pixel {
	grid := make([][]png.Pixel, height)
	for y := range grid {
		row := make([]png.Pixel, width)
		for x := range row {
			r := ^(y & x) & 0xff
			g := (y | ^x) & 0xff
			b := (^y & x) & 0xff
			a := (y ^ x) & 0xff
			row[x] = png.Pixel{uint16(r), uint16(g), uint16(b), uint16(a)}
		}
		grid[y] = row
	}
	return grid
}

// Solid returns a width x height grid filled with one pixel value.
func Solid(width, height int, px png.Pixel) [][]png.Pixel {
	grid := make([][]png.Pixel, height)
	for y := range grid {
		row := make([]png.Pixel, width)
		for x := range row {
			row[x] = px
		}
		grid[y] = row
	}
	return grid
}
