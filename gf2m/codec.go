package gf2m

import (
	"fmt"

	"github.com/flpborba/rankpke/rankerr"
)

// EncodeElement writes e as f.ByteWidth() big-endian bytes. Elements of F_2
// (m=1) encode as a single byte, 0x00 or 0x01, per spec.
func (f *Field) EncodeElement(e Element) []byte {
	width := f.ByteWidth()
	out := make([]byte, width)

	for i := 0; i < width; i++ {
		shift := uint((width - 1 - i) * 8)
		out[i] = byte(shiftedByte(e, shift))
	}

	return out
}

// shiftedByte extracts the byte at bit offset shift. Byte boundaries always
// align with the lo/hi word boundary (both are multiples of 8), so a byte
// never straddles the two words.
func shiftedByte(e Element, shift uint) uint64 {
	if shift < 64 {
		return (e.lo >> shift) & 0xFF
	}
	return (e.hi >> (shift - 64)) & 0xFF
}

// DecodeElement reads f.ByteWidth() bytes from data and returns the
// corresponding element. It fails with rankerr.ErrDecoding if len(data) is
// not exactly f.ByteWidth().
func (f *Field) DecodeElement(data []byte) (Element, error) {
	width := f.ByteWidth()
	if len(data) != width {
		return Zero, fmt.Errorf("gf2m.Field.DecodeElement: expected %d bytes, got %d: %w", width, len(data), rankerr.ErrDecoding)
	}

	var e Element
	for i := 0; i < width; i++ {
		shift := uint((width - 1 - i) * 8)
		e = orByteAt(e, data[i], shift)
	}

	return f.mask(e), nil
}

func orByteAt(e Element, b byte, shift uint) Element {
	v := uint64(b)
	if shift < 64 {
		e.lo |= v << shift
		return e
	}
	e.hi |= v << (shift - 64)
	return e
}

// EncodeVector concatenates the element encodings of v in order.
func (f *Field) EncodeVector(v Vector) []byte {
	out := make([]byte, 0, len(v)*f.ByteWidth())
	for _, e := range v {
		out = append(out, f.EncodeElement(e)...)
	}
	return out
}

// DecodeVector splits data into f.ByteWidth()-byte chunks and decodes each
// into the corresponding element of a length-n vector. It fails with
// rankerr.ErrDecoding if len(data) is not n*f.ByteWidth().
func (f *Field) DecodeVector(data []byte, n int) (Vector, error) {
	width := f.ByteWidth()
	if len(data) != n*width {
		return nil, fmt.Errorf("gf2m.Field.DecodeVector: expected %d bytes for length %d, got %d: %w", n*width, n, len(data), rankerr.ErrDecoding)
	}

	v := make(Vector, n)
	for i := range v {
		e, err := f.DecodeElement(data[i*width : (i+1)*width])
		if err != nil {
			return nil, err
		}
		v[i] = e
	}

	return v, nil
}

// EncodeMatrix concatenates the element encodings of m in row-major order.
func (f *Field) EncodeMatrix(m Matrix) []byte {
	out := make([]byte, 0, m.Rows()*m.Cols()*f.ByteWidth())
	for _, row := range m {
		out = append(out, f.EncodeVector(row)...)
	}
	return out
}

// DecodeMatrix splits data into rows*cols elements, row-major, and fails
// with rankerr.ErrDecoding if the byte length is inconsistent.
func (f *Field) DecodeMatrix(data []byte, rows, cols int) (Matrix, error) {
	width := f.ByteWidth()
	expected := rows * cols * width
	if len(data) != expected {
		return nil, fmt.Errorf("gf2m.Field.DecodeMatrix: expected %d bytes for %dx%d, got %d: %w", expected, rows, cols, len(data), rankerr.ErrDecoding)
	}

	rowBytes := cols * width
	m := make(Matrix, rows)
	for i := range m {
		row, err := f.DecodeVector(data[i*rowBytes:(i+1)*rowBytes], cols)
		if err != nil {
			return nil, err
		}
		m[i] = row
	}

	return m, nil
}
