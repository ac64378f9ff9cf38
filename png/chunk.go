package png

import (
	"hash/crc32"

	"github.com/mrjoshuak/go-pngwriter/internal/nbo"
)

// appendChunk frames a tagged payload into dst:
//
//	length(4B) || tag(4B) || payload || crc32(4B)
//
// The length counts payload bytes only; the CRC covers tag plus payload.
// The IEEE polynomial used by hash/crc32 is the one the PNG
// specification mandates. An empty payload is valid (IEND).
func appendChunk(dst *nbo.BufferWriter, tag string, payload []byte) error {
	if len(tag) != 4 {
		return ErrInvalidTag
	}

	dst.WriteUint32(uint32(len(payload)))
	dst.WriteString(tag)
	dst.WriteBytes(payload)

	crc := crc32.NewIEEE()
	crc.Write([]byte(tag))
	crc.Write(payload)
	dst.WriteUint32(crc.Sum32())

	return nil
}
