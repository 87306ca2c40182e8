/**
 * Berlekamp-Massey error locator synthesis.
 *
 * Copyright 2025, the fecgo authors.
 */

package reedsolomon

import "errors"

// ErrErrorCountMismatch is returned when the locator root search finds a
// different number of error positions than the locator degree implies.
var ErrErrorCountMismatch = errors.New("reedsolomon: error positions do not match locator degree")

// berlekampMassey synthesizes the minimal LFSR reproducing the syndrome
// sequence; its connection polynomial is the error locator. When the
// erasure positions are known in advance, the synthesis can be seeded
// with their locator polynomial so only the unknown errors remain to be
// resolved.
//
// Leading zero coefficients are stripped from the result. The capacity
// bound on the locator degree is the caller's concern.
func (c *rsCodec) berlekampMassey(synd, eraseLoc []byte, eraseCount int) []byte {
	errLoc := []byte{1}
	oldLoc := []byte{1}
	if eraseLoc != nil {
		errLoc = append([]byte(nil), eraseLoc...)
		oldLoc = append([]byte(nil), eraseLoc...)
	}

	for i := 0; i < c.parity-eraseCount; i++ {
		k := i + len(synd) - c.parity
		if eraseLoc != nil {
			k += eraseCount
		}

		// The discrepancy: the locator's prediction of syndrome k,
		// XOR-accumulated against the actual value.
		delta := synd[k]
		for j := 1; j < len(errLoc); j++ {
			delta ^= c.f.Multiply(errLoc[len(errLoc)-1-j], synd[k-j])
		}

		oldLoc = append(oldLoc, 0)
		if delta != 0 {
			if len(oldLoc) > len(errLoc) {
				// Degree change: swap in the scaled shadow register.
				newLoc := c.f.polyScale(oldLoc, delta)
				oldLoc = c.f.polyScale(errLoc, c.f.inv(delta))
				errLoc = newLoc
			}
			errLoc = c.f.polyAdd(errLoc, c.f.polyScale(oldLoc, delta))
		}
	}

	for len(errLoc) > 0 && errLoc[0] == 0 {
		errLoc = errLoc[1:]
	}
	return errLoc
}

// errorPositions converts a locator polynomial into codeword indices by
// evaluating its reverse at every field position, a brute-force Chien
// search (n is at most 255). The root at 2^i marks codeword position
// n-1-i.
func (c *rsCodec) errorPositions(locator []byte, n int) ([]int, error) {
	if len(locator) == 0 {
		return nil, ErrErrorCountMismatch
	}
	errCount := len(locator) - 1
	rev := reverse(locator)
	positions := make([]int, 0, errCount)
	for i := 0; i < n; i++ {
		if c.f.polyEval(rev, c.f.Power(2, i)) == 0 {
			positions = append(positions, n-1-i)
		}
	}
	if len(positions) != errCount {
		// An inconsistent locator means the codeword is corrupted
		// beyond what the syndromes can describe.
		return nil, ErrErrorCountMismatch
	}
	return positions, nil
}
