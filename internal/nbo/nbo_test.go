package nbo

import (
	"bytes"
	"testing"
)

func TestBufferWriterLayout(t *testing.T) {
	w := NewBufferWriter(16)
	w.WriteUint32(0x01020304)
	w.WriteUint16(0x0506)
	w.WriteUint8(0x07)
	w.WriteByte(0x08)
	w.WriteBytes([]byte{0x09, 0x0a})
	w.WriteString("PNG")

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 'P', 'N', 'G'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("layout mismatch:\ngot  %v\nwant %v", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", w.Len(), len(want))
	}

	w.Reset()
	if w.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", w.Len())
	}
}

func TestReaderRoundTrip(t *testing.T) {
	w := NewBufferWriter(16)
	w.WriteUint32(0xdeadbeef)
	w.WriteUint16(0xcafe)
	w.WriteUint8(0x42)
	w.WriteBytes([]byte{1, 2, 3})

	r := NewReader(w.Bytes())

	v32, err := r.ReadUint32()
	if err != nil || v32 != 0xdeadbeef {
		t.Errorf("ReadUint32 = %#x, %v; want 0xdeadbeef, nil", v32, err)
	}
	v16, err := r.ReadUint16()
	if err != nil || v16 != 0xcafe {
		t.Errorf("ReadUint16 = %#x, %v; want 0xcafe, nil", v16, err)
	}
	v8, err := r.ReadUint8()
	if err != nil || v8 != 0x42 {
		t.Errorf("ReadUint8 = %#x, %v; want 0x42, nil", v8, err)
	}
	b, err := r.ReadBytes(3)
	if err != nil || !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("ReadBytes = %v, %v; want [1 2 3], nil", b, err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestReaderBounds(t *testing.T) {
	r := NewReader([]byte{1, 2})

	if _, err := r.ReadUint32(); err != ErrShortBuffer {
		t.Errorf("ReadUint32 past end: err = %v, want ErrShortBuffer", err)
	}
	if _, err := r.ReadBytes(3); err != ErrShortBuffer {
		t.Errorf("ReadBytes past end: err = %v, want ErrShortBuffer", err)
	}
	if _, err := r.ReadBytes(-1); err != ErrNegativeSize {
		t.Errorf("ReadBytes(-1): err = %v, want ErrNegativeSize", err)
	}
	if err := r.Skip(-1); err != ErrNegativeSize {
		t.Errorf("Skip(-1): err = %v, want ErrNegativeSize", err)
	}
	if err := r.Skip(3); err != ErrShortBuffer {
		t.Errorf("Skip past end: err = %v, want ErrShortBuffer", err)
	}

	// The failed reads must not have moved the position.
	if r.Pos() != 0 {
		t.Errorf("Pos() = %d after failed reads, want 0", r.Pos())
	}
	if err := r.Skip(2); err != nil {
		t.Errorf("Skip(2): %v", err)
	}
	if _, err := r.ReadByte(); err != ErrShortBuffer {
		t.Errorf("ReadByte at end: err = %v, want ErrShortBuffer", err)
	}
}
