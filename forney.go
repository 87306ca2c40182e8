/**
 * Forney error magnitude computation.
 *
 * Copyright 2025, the fecgo authors.
 */

package reedsolomon

// erasureLocator builds the locator polynomial for a set of known
// coefficient positions, the product of the (1 + 2^p*x) factors.
func (c *rsCodec) erasureLocator(coefPositions []int) []byte {
	loc := []byte{1}
	for _, p := range coefPositions {
		loc = c.f.polyMul(loc, c.f.polyAdd([]byte{1}, []byte{c.f.Power(2, p), 0}))
	}
	return loc
}

// errorEvaluator multiplies the reversed syndrome polynomial by the
// locator and reduces modulo x^(degree+1), yielding the evaluator
// polynomial for the Forney magnitude formula.
func (c *rsCodec) errorEvaluator(syndRev, locator []byte, degree int) []byte {
	divisor := make([]byte, degree+2)
	divisor[0] = 1
	_, rem := c.f.polyDiv(c.f.polyMul(syndRev, locator), divisor)
	return rem
}

// correct computes the error magnitude at every given codeword position
// and XORs the corrections into a copy of the codeword. The position set
// is the union of the known erasures and the located errors.
func (c *rsCodec) correct(codeword, synd []byte, positions []int) ([]byte, error) {
	n := len(codeword)
	coefPos := make([]int, len(positions))
	for i, p := range positions {
		coefPos[i] = n - 1 - p
	}

	locator := c.erasureLocator(coefPos)
	omega := c.errorEvaluator(reverse(synd), locator, len(locator)-1)

	// xs[i] is the field element marking position i, 2 raised to the
	// position power through the normalized negative-exponent path.
	xs := make([]byte, len(coefPos))
	for i, p := range coefPos {
		xs[i] = c.f.Power(2, -(255 - p))
	}

	magnitudes := make([]byte, n)
	for i, xi := range xs {
		xiInv := c.f.inv(xi)

		// Formal derivative of the locator at 1/Xi, taken as the
		// running product over the other error locations.
		derivative := byte(1)
		for j, xj := range xs {
			if j != i {
				derivative = c.f.Multiply(derivative, 1^c.f.Multiply(xiInv, xj))
			}
		}
		if derivative == 0 {
			// Degenerate locator; any magnitude would be a guess.
			return nil, ErrTooManyErrors
		}

		y := c.f.Multiply(xi, c.f.polyEval(omega, xiInv))
		magnitudes[positions[i]] = c.f.div(y, derivative)
	}

	return c.f.polyAdd(codeword, magnitudes), nil
}
