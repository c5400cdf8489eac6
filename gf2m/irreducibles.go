package gf2m

// irreducibles maps a supported extension degree m to the low-order terms
// of a fixed irreducible polynomial f_m(x) of degree m over F_2 (the x^m
// term itself is implicit and not stored). These choices are taken from
// Seroussi's table of low-weight binary irreducible polynomials and from
// the trinomial standardized for GHASH/GCM at degree 128; they are fixed
// for wire compatibility and MUST NOT be changed.
//
// Degrees 2, 3 and 4 back the small subfields used as F_2-subspace
// representations by the column-scrambler sampler (gf2m/linalg); degrees
// 64, 96 and 128 back the three recognized security levels.
var irreducibles = map[int]Element{
	1: {lo: 0}, // F_2 itself: x has no proper reduction, Mul is AND.
	2: {lo: 0b11},
	3: {lo: 0b011},
	4: {lo: 0b0011},
	5: {lo: 0b00101},
	6: {lo: 0b000011},
	7: {lo: 0b0000011},
	8: {lo: 0x1B}, // x^8+x^4+x^3+x+1, the AES/Rijndael field.
	12: {lo: 0b1001}, // x^12+x^3+1

	16: {lo: 0x2B},       // x^16+x^5+x^3+x+1
	32: {lo: 0x8D},       // x^32+x^7+x^3+x^2+1
	64: {lo: 0x1B},       // x^64+x^4+x^3+x+1
	96: {lo: 0x641},      // x^96+x^10+x^9+x^6+1
	128: {lo: 0x87},      // x^128+x^7+x^2+x+1, the GCM polynomial.
}
