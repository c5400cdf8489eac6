package gabidulin

import (
	"fmt"

	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/rankerr"
)

var errZeroDivisor = fmt.Errorf("gabidulin: zero divisor in skew division: %w", rankerr.ErrDecoding)

// DecodeToCode corrects a received word y = c+e back to the transmitted
// codeword c, via linearized Welch-Berlekamp reconstruction: it finds a
// non-zero linearized pair (N, W) of bounded q-degree interpolating the
// received word through the code's evaluation points, left-divides N by W
// to recover the message's linearized polynomial, and re-evaluates it at
// the evaluation points. Fails with rankerr.ErrDecoding if the word is
// uncorrectable: the syndrome system is degenerate, or division is
// inexact, which happens precisely when the error exceeds the code's
// decoding radius.
func (c *Code) DecodeToCode(word gf2m.Vector) (gf2m.Vector, error) {
	n, k := c.N(), c.k
	if len(word) != n {
		return nil, fmt.Errorf("gabidulin.Code.DecodeToCode: word has length %d, want %d: %w", len(word), n, rankerr.ErrParameter)
	}

	tau := (n - k) / 2
	nLen := k + tau // deg_q(N) <= k-1+tau => k+tau coefficients
	wLen := tau + 1 // deg_q(W) <= tau => tau+1 coefficients

	sys := make(gf2m.Matrix, n)
	for j := 0; j < n; j++ {
		row := make(gf2m.Vector, nLen+wLen)
		g, y := c.points[j], word[j]
		for i := 0; i < nLen; i++ {
			row[i] = c.field.Frobenius(g, i)
		}
		for i := 0; i < wLen; i++ {
			row[nLen+i] = c.field.Frobenius(y, i)
		}
		sys[j] = row
	}

	sol, err := c.nullVector(sys)
	if err != nil {
		return nil, fmt.Errorf("gabidulin.Code.DecodeToCode: %w", err)
	}

	N := skewPoly(sol[:nLen])
	W := skewPoly(sol[nLen:])

	if skewDegree(c.field, W) < 0 {
		return nil, fmt.Errorf("gabidulin.Code.DecodeToCode: degenerate syndrome system: %w", rankerr.ErrDecoding)
	}

	f, rem, err := skewDivLeft(c.field, N, W)
	if err != nil {
		return nil, fmt.Errorf("gabidulin.Code.DecodeToCode: %w", err)
	}
	if skewDegree(c.field, rem) >= 0 {
		return nil, fmt.Errorf("gabidulin.Code.DecodeToCode: uncorrectable word, inexact division: %w", rankerr.ErrDecoding)
	}
	if skewDegree(c.field, f) > k-1 {
		return nil, fmt.Errorf("gabidulin.Code.DecodeToCode: uncorrectable word, message degree too high: %w", rankerr.ErrDecoding)
	}

	msg := make(gf2m.Vector, k)
	copy(msg, gf2m.Vector(f))

	return c.Encode(msg)
}

// nullVector returns a non-zero solution x to sys*x = 0 (each row of sys
// dotted with x is zero), by row-reducing sys and back-solving pivot
// variables in terms of one free variable set to One. It fails if sys has
// full column rank (no free variable exists).
func (c *Code) nullVector(sys gf2m.Matrix) (gf2m.Vector, error) {
	reduced, _, pivots := c.field.RowReduce(sys)
	cols := sys.Cols()

	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}

	free := -1
	for col := cols - 1; col >= 0; col-- {
		if !isPivot[col] {
			free = col
			break
		}
	}
	if free < 0 {
		return nil, fmt.Errorf("decoding system has full column rank: %w", rankerr.ErrDecoding)
	}

	x := make(gf2m.Vector, cols)
	x[free] = gf2m.One

	for i, pc := range pivots {
		var sum gf2m.Element
		for col := 0; col < cols; col++ {
			if col == pc || c.field.IsZero(reduced[i][col]) {
				continue
			}
			sum = c.field.Add(sum, c.field.Mul(reduced[i][col], x[col]))
		}
		x[pc] = sum
	}

	return x, nil
}
