/**
 * Polynomial algebra over an 8-bit Galois Field
 *
 * Copyright 2025, the fecgo authors.
 */

package reedsolomon

// Polynomials are []byte coefficient sequences ordered highest degree
// first. Leading zeros are significant except where a caller strips them.

// polyScale multiplies every coefficient of p by the scalar x.
func (f *Field) polyScale(p []byte, x byte) []byte {
	out := make([]byte, len(p))
	for i, c := range p {
		out[i] = f.Multiply(c, x)
	}
	return out
}

// polyAdd adds p and q aligned at the lowest degree. The shorter operand
// is treated as zero-padded on the left.
func (f *Field) polyAdd(p, q []byte) []byte {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make([]byte, n)
	copy(out[n-len(p):], p)
	for i, c := range q {
		out[i+n-len(q)] ^= c
	}
	return out
}

// polyMul returns the full convolution of p and q, length
// len(p)+len(q)-1.
func (f *Field) polyMul(p, q []byte) []byte {
	out := make([]byte, len(p)+len(q)-1)
	for j, qc := range q {
		if qc == 0 {
			continue
		}
		for i, pc := range p {
			out[i+j] ^= f.Multiply(pc, qc)
		}
	}
	return out
}

// polyEval evaluates p at x using Horner's method. p must not be empty.
func (f *Field) polyEval(p []byte, x byte) byte {
	y := p[0]
	for _, c := range p[1:] {
		y = f.Multiply(y, x) ^ c
	}
	return y
}

// polyDiv divides dividend by divisor using synthetic long division and
// returns the quotient and a remainder of exactly len(divisor)-1
// coefficients. The divisor must be monic.
func (f *Field) polyDiv(dividend, divisor []byte) (quotient, remainder []byte) {
	out := make([]byte, len(dividend))
	copy(out, dividend)
	for i := 0; i < len(dividend)-len(divisor)+1; i++ {
		coef := out[i]
		if coef == 0 {
			continue
		}
		for j := 1; j < len(divisor); j++ {
			if divisor[j] != 0 {
				out[i+j] ^= f.Multiply(divisor[j], coef)
			}
		}
	}
	sep := len(out) - (len(divisor) - 1)
	return out[:sep], out[sep:]
}

// reverse returns a copy of p with the coefficient order flipped.
func reverse(p []byte) []byte {
	out := make([]byte, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}
	return out
}
