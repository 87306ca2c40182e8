/**
 * Syndrome decoding of Reed-Solomon codewords.
 *
 * Copyright 2025, the fecgo authors.
 */

package reedsolomon

import "errors"

// ErrTooManyErasures is returned when more positions are marked erased
// than there are parity symbols.
var ErrTooManyErasures = errors.New("reedsolomon: more erasures than parity symbols")

// ErrErasureOutOfRange is returned when an erasure index does not fall
// inside the codeword.
var ErrErasureOutOfRange = errors.New("reedsolomon: erasure position outside codeword")

// ErrTooManyErrors is returned when the codeword holds more corruption
// than the parity symbols can repair.
var ErrTooManyErrors = errors.New("reedsolomon: too many errors to correct")

// ErrCorrectionFailed is returned when the corrected codeword still has
// nonzero syndromes.
var ErrCorrectionFailed = errors.New("reedsolomon: syndromes nonzero after correction")

// Decode repairs codeword and returns its message and parity parts.
//
// The pipeline: validate, zero out the erased positions, compute
// syndromes (all zero means the codeword is already valid), fold the
// erasures out into Forney syndromes, synthesize the error locator,
// bound-check it, search its roots for the error positions, compute and
// apply the Forney magnitudes over the combined position set, and
// re-verify the syndromes before returning.
func (c *rsCodec) Decode(codeword []byte, erasures []int) ([]byte, []byte, error) {
	if err := c.checkCodeword(codeword); err != nil {
		return nil, nil, err
	}
	erasures, err := c.checkErasures(erasures, len(codeword))
	if err != nil {
		return nil, nil, err
	}

	out := make([]byte, len(codeword))
	copy(out, codeword)
	for _, pos := range erasures {
		out[pos] = 0
	}

	k := len(out) - c.parity
	synd := c.syndromes(out)
	if allZero(synd) {
		return out[:k], out[k:], nil
	}

	fsynd := c.forneySyndromes(synd, erasures, len(out))
	locator := c.berlekampMassey(fsynd, nil, len(erasures))
	errCount := len(locator) - 1
	if (errCount-len(erasures))*2+len(erasures) > c.parity {
		return nil, nil, ErrTooManyErrors
	}

	positions, err := c.errorPositions(locator, len(out))
	if err != nil {
		return nil, nil, err
	}

	out, err = c.correct(out, synd, append(erasures, positions...))
	if err != nil {
		return nil, nil, err
	}
	if !allZero(c.syndromes(out)) {
		return nil, nil, ErrCorrectionFailed
	}
	return out[:k], out[k:], nil
}

// checkErasures bounds-checks the erasure set and drops duplicates. The
// result is a fresh slice; the caller's slice is never modified.
func (c *rsCodec) checkErasures(erasures []int, n int) ([]int, error) {
	if len(erasures) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(erasures))
	seen := make(map[int]bool, len(erasures))
	for _, pos := range erasures {
		if pos < 0 || pos >= n {
			return nil, ErrErasureOutOfRange
		}
		if seen[pos] {
			continue
		}
		seen[pos] = true
		out = append(out, pos)
	}
	if len(out) > c.parity {
		return nil, ErrTooManyErasures
	}
	return out, nil
}

// syndromes evaluates the codeword at each generator root 2^0..2^(r-1).
// The result carries a leading zero so syndrome i sits at index i,
// keeping the locator synthesis windows aligned.
func (c *rsCodec) syndromes(codeword []byte) []byte {
	synd := make([]byte, c.parity+1)
	for i := 0; i < c.parity; i++ {
		synd[i+1] = c.f.polyEval(codeword, c.f.Power(2, i))
	}
	return synd
}

// forneySyndromes folds the known erasures out of the syndrome sequence
// so the locator synthesis only has to resolve the unknown errors. Each
// erasure's field power is folded in with a running multiply-and-XOR
// recurrence.
func (c *rsCodec) forneySyndromes(synd []byte, erasures []int, n int) []byte {
	fsynd := make([]byte, len(synd)-1)
	copy(fsynd, synd[1:])
	for _, pos := range erasures {
		x := c.f.Power(2, n-1-pos)
		for j := 0; j < len(fsynd)-1; j++ {
			fsynd[j] = c.f.Multiply(fsynd[j], x) ^ fsynd[j+1]
		}
	}
	return fsynd
}

func allZero(p []byte) bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}
