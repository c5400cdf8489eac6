package gabidulin

import "github.com/flpborba/rankpke/gf2m"

// skewPoly holds the coefficients of a linearized polynomial
// L(x) = Sum_i p[i] * x^(2^i), equivalently the element Sum_i p[i] X^i of
// the skew polynomial ring F_{2^m}[X;sigma] with sigma the Frobenius
// x -> x^2. Composition of linearized polynomials corresponds to
// multiplication in this ring: (L after M)(x) = L(M(x)) is represented by
// the skew product p_L * p_M, where the commutation rule is X*c =
// sigma(c)*X for c in F_{2^m}.
type skewPoly gf2m.Vector

// skewDegree returns the highest index with a non-zero coefficient, or -1 for
// the zero polynomial.
func skewDegree(field *gf2m.Field, p skewPoly) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !field.IsZero(p[i]) {
			return i
		}
	}
	return -1
}

// skewEval evaluates p at x: Sum_i p[i] * Frobenius^i(x).
func skewEval(field *gf2m.Field, p skewPoly, x gf2m.Element) gf2m.Element {
	var sum gf2m.Element
	for i, a := range p {
		sum = field.Add(sum, field.Mul(a, field.Frobenius(x, i)))
	}
	return sum
}

// skewAdd returns p+q (entrywise XOR, padded to the longer length).
func skewAdd(field *gf2m.Field, p, q skewPoly) skewPoly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(skewPoly, n)
	for i := 0; i < n; i++ {
		var a, b gf2m.Element
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i] = field.Add(a, b)
	}
	return out
}

// skewMulMonomial returns w * (c*X^shift), the skew product of w with the
// monomial c*X^shift: term i+shift gets w[i]*sigma^i(c).
func skewMulMonomial(field *gf2m.Field, c gf2m.Element, shift int, w skewPoly) skewPoly {
	out := make(skewPoly, shift+len(w))
	for i, wi := range w {
		out[shift+i] = field.Mul(wi, field.Frobenius(c, i))
	}
	return out
}

// skewDivLeft computes quotient q and remainder r such that
// n = w*q + r with skewDegree(r) < skewDegree(w) (w divides n from the
// left), mirroring ordinary Euclidean polynomial long division but
// cancelling leading terms with the Frobenius-twisted inverse of w's
// leading coefficient. w must be non-zero.
func skewDivLeft(field *gf2m.Field, n, w skewPoly) (quotient, remainder skewPoly, err error) {
	dw := skewDegree(field, w)
	if dw < 0 {
		return nil, nil, errZeroDivisor
	}

	wLeadInv, err := field.Inv(w[dw])
	if err != nil {
		return nil, nil, errZeroDivisor
	}

	rem := append(skewPoly(nil), n...)
	quotLen := skewDegree(field, n) - dw + 1
	if quotLen < 1 {
		quotLen = 1
	}
	quot := make(skewPoly, quotLen)

	for {
		dn := skewDegree(field, rem)
		if dn < dw {
			break
		}

		shift := dn - dw
		m := field.Degree()
		c := field.Frobenius(field.Mul(rem[dn], wLeadInv), (m-dw%m)%m) // sigma^-dw

		if shift >= len(quot) {
			grown := make(skewPoly, shift+1)
			copy(grown, quot)
			quot = grown
		}
		quot[shift] = field.Add(quot[shift], c)

		term := skewMulMonomial(field, c, shift, w)
		rem = skewAdd(field, rem, term)
	}

	return quot, rem, nil
}
