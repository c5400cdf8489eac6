// Package gf2m implements arithmetic over the binary extension fields
// F_{2^m} used throughout the rank-metric cryptosystem, along with the
// fixed-width byte codec for elements, vectors and matrices (spec
// components A and B).
//
// Elements are represented as integers in [0, 2^m) interpreted as
// polynomials over F_2 in big-endian bit order: e = Sum c_i x^i maps to
// the integer Sum c_i 2^i. Addition is XOR; multiplication is polynomial
// product modulo a fixed irreducible polynomial f_m of degree m. Two
// peers must agree on f_m for a given m for any serialized object to be
// portable between them; the choice made by this package is fixed in
// irreducibles.go and MUST NOT be changed without breaking wire
// compatibility with already-serialized keys and ciphertexts.
package gf2m

import (
	"fmt"

	"github.com/flpborba/rankpke/rankerr"
)

// Element is a value of F_{2^m} for any supported m <= 128, held as a
// 128-bit bit-vector split into two machine words: bit i of the field
// element is bit (i mod 64) of lo if i < 64, else bit (i-64) of hi.
type Element struct {
	hi, lo uint64
}

// Zero is the additive identity, common to every field.
var Zero = Element{}

// One is the multiplicative identity, common to every field.
var One = Element{lo: 1}

// Field is an instance of F_{2^m} for a fixed, supported degree m.
//
// Field values are immutable and safe for concurrent use; the same Field
// value may back many Elements, Vectors and Matrices simultaneously.
type Field struct {
	m         int
	reduction Element // low-order terms of the degree-m irreducible polynomial
}

// ForDegree returns the Field F_{2^m} for one of the supported degrees.
// It fails with rankerr.ErrParameter for unsupported degrees.
func ForDegree(m int) (*Field, error) {
	if m <= 0 || m > 128 {
		return nil, fmt.Errorf("gf2m.ForDegree: m=%d out of range: %w", m, rankerr.ErrParameter)
	}

	red, ok := irreducibles[m]
	if !ok {
		return nil, fmt.Errorf("gf2m.ForDegree: no registered irreducible polynomial for m=%d: %w", m, rankerr.ErrParameter)
	}

	return &Field{m: m, reduction: red}, nil
}

// Degree returns m, the extension degree of the field.
func (f *Field) Degree() int { return f.m }

// ByteWidth returns the fixed per-element encoding width in bytes, ceil(m/8).
func (f *Field) ByteWidth() int { return (f.m + 7) / 8 }

// Add returns a+b, which in characteristic two is the bitwise XOR of a and b.
func (f *Field) Add(a, b Element) Element {
	return Element{hi: a.hi ^ b.hi, lo: a.lo ^ b.lo}
}

// Equal reports whether a and b represent the same element.
func (f *Field) Equal(a, b Element) bool {
	return a.hi == b.hi && a.lo == b.lo
}

// IsZero reports whether e is the additive identity.
func (f *Field) IsZero(e Element) bool {
	return e.hi == 0 && e.lo == 0
}

// bitAt reports bit i of e (0 = low bit of lo).
func bitAt(e Element, i int) uint64 {
	if i < 64 {
		return (e.lo >> uint(i)) & 1
	}
	return (e.hi >> uint(i-64)) & 1
}

// setBit returns e with bit i set to 1.
func setBit(e Element, i int) Element {
	if i < 64 {
		e.lo |= 1 << uint(i)
	} else {
		e.hi |= 1 << uint(i-64)
	}
	return e
}

// double returns e*x, reducing modulo the field's irreducible polynomial
// whenever the shift overflows past degree m-1.
func (f *Field) double(e Element) Element {
	carry := bitAt(e, f.m-1)

	out := Element{
		hi: (e.hi << 1) | (e.lo >> 63),
		lo: e.lo << 1,
	}
	out = f.mask(out)

	if carry == 1 {
		out = f.Add(out, f.reduction)
	}

	return out
}

// mask clears any bits at or above position m, bringing a raw bit pattern
// (the shifted accumulator in double, or the caller-supplied bits taken by
// FromUint64, FromBits and DecodeElement) into the field's range [0, 2^m).
func (f *Field) mask(e Element) Element {
	if f.m >= 128 {
		return e
	}
	if f.m >= 64 {
		hiBits := uint(f.m - 64)
		e.hi &= (uint64(1) << hiBits) - 1
		return e
	}
	e.hi = 0
	e.lo &= (uint64(1) << uint(f.m)) - 1
	return e
}

// Mul returns a*b using left-to-right shift-and-add multiplication: at each
// step the accumulator is doubled (multiplied by x, reduced if needed) and
// then a is conditionally added in, one bit of b at a time from the top.
//
// mulFast is used in place of this generic routine whenever the running
// process can benefit from it (see mul_dispatch.go); the two must always
// agree bit-for-bit, the choice between them affects only throughput.
func (f *Field) Mul(a, b Element) Element {
	if mulFast != nil {
		return mulFast(f, a, b)
	}
	return f.mulGeneric(a, b)
}

func (f *Field) mulGeneric(a, b Element) Element {
	var result Element

	for i := f.m - 1; i >= 0; i-- {
		result = f.double(result)
		if bitAt(b, i) == 1 {
			result = f.Add(result, a)
		}
	}

	return result
}

// Square returns a*a.
func (f *Field) Square(a Element) Element {
	return f.Mul(a, a)
}

// Frobenius returns a^(2^j), the j-fold application of the Frobenius
// automorphism x -> x^2.
func (f *Field) Frobenius(a Element, j int) Element {
	for i := 0; i < j; i++ {
		a = f.Square(a)
	}
	return a
}

// Inv returns a^-1. It fails with rankerr.ErrParameter if a is zero,
// since zero has no inverse.
//
// The inverse is computed as a^(2^m - 2), via repeated Frobenius/multiply,
// which is the standard extended-exponent approach for binary fields and
// avoids needing a separate extended-Euclidean implementation.
func (f *Field) Inv(a Element) (Element, error) {
	if f.IsZero(a) {
		return Zero, fmt.Errorf("gf2m.Field.Inv: zero has no inverse: %w", rankerr.ErrParameter)
	}

	// a^(2^m-2) = product over i=1..m-1 of a^(2^i), computed by repeated
	// squaring with an accumulating product (square-and-multiply on the
	// exponent 2^m-2 = 0b111...10).
	result := One
	base := a

	for i := 0; i < f.m-1; i++ {
		base = f.Square(base)
		result = f.Mul(result, base)
	}

	return result, nil
}

// FromUint64 builds the element whose integer representation is v,
// truncated to m bits. It is primarily a convenience for tests and for
// reconstructing small, known constants.
func (f *Field) FromUint64(v uint64) Element {
	return f.mask(Element{lo: v})
}

// Uint64 returns the low 64 bits of the element's integer representation;
// callers must ensure m <= 64 or that the value is known to fit.
func (e Element) Uint64() uint64 { return e.lo }
