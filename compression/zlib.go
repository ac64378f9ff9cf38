// Package compression assembles and dissects the zlib streams carried by
// PNG image-data chunks.
package compression

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// Errors returned by the compression package.
var (
	ErrCorrupted    = errors.New("compression: corrupted zlib data")
	ErrInvalidLevel = errors.New("compression: level out of range")
)

// Level represents a deflate compression level.
// PNG encoders accept the standard zlib range 1 (best speed) to
// 9 (best compression).
type Level int

// Standard compression levels.
const (
	LevelBestSpeed Level = 1 // Best speed
	LevelDefault   Level = 6 // zlib default
	LevelBestSize  Level = 9 // Best compression
)

// Valid reports whether the level is in the accepted [1, 9] range.
func (l Level) Valid() bool {
	return l >= LevelBestSpeed && l <= LevelBestSize
}

// Pool for default-level zlib writers to reduce allocations.
// Each pooled item contains both the writer and its destination buffer.
type zlibWriterPoolItem struct {
	writer *zlib.Writer
	buf    *bytes.Buffer
}

var zlibWriterPool = sync.Pool{
	New: func() any {
		buf := new(bytes.Buffer)
		w, _ := zlib.NewWriterLevel(buf, int(LevelDefault))
		return &zlibWriterPoolItem{writer: w, buf: buf}
	},
}

// Deflate compresses data into a zlib stream at the default level.
func Deflate(src []byte) ([]byte, error) {
	return DeflateLevel(src, LevelDefault)
}

// DeflateLevel compresses data into a zlib stream at the given level.
// The level must be in [1, 9]. Output is deterministic for a fixed
// input and level.
func DeflateLevel(src []byte, level Level) ([]byte, error) {
	if !level.Valid() {
		return nil, ErrInvalidLevel
	}

	// Use the pool for the default level (most common case).
	if level == LevelDefault {
		item := zlibWriterPool.Get().(*zlibWriterPoolItem)
		item.buf.Reset()
		item.writer.Reset(item.buf)

		if _, err := item.writer.Write(src); err != nil {
			item.writer.Close()
			zlibWriterPool.Put(item)
			return nil, err
		}

		if err := item.writer.Close(); err != nil {
			zlibWriterPool.Put(item)
			return nil, err
		}

		result := make([]byte, item.buf.Len())
		copy(result, item.buf.Bytes())
		zlibWriterPool.Put(item)

		return result, nil
	}

	// Non-default level: create a temporary writer.
	buf := new(bytes.Buffer)
	w, err := zlib.NewWriterLevel(buf, int(level))
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(src); err != nil {
		w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Inflate decompresses a zlib stream produced by Deflate.
// The expectedSize parameter is the exact decompressed size.
func Inflate(src []byte, expectedSize int) ([]byte, error) {
	dst := make([]byte, expectedSize)
	if err := InflateTo(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// InflateTo decompresses a zlib stream into the provided buffer.
// The dst buffer must be exactly the right size for the decompressed data.
func InflateTo(dst, src []byte) error {
	if len(src) == 0 {
		if len(dst) != 0 {
			return ErrCorrupted
		}
		return nil
	}

	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return ErrCorrupted
	}
	defer r.Close()

	n, err := io.ReadFull(r, dst)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return ErrCorrupted
	}
	if n != len(dst) {
		return ErrCorrupted
	}

	// Trailing data means the expected size was wrong.
	var tail [1]byte
	if m, _ := r.Read(tail[:]); m != 0 {
		return ErrCorrupted
	}

	return nil
}
