/**
 * Reed-Solomon Coding over 8-bit values.
 *
 * Copyright 2025, the fecgo authors.
 */

// Package reedsolomon implements a systematic Reed-Solomon codec over
// GF(2^8).
//
// A codeword holds up to 255 symbols: the message followed by r parity
// symbols. The decoder repairs any mix of known erasures and unknown
// symbol errors as long as 2*errors + erasures does not exceed r, using
// Berlekamp-Massey locator synthesis and Forney magnitude correction.
package reedsolomon

import "errors"

// Codec is an interface to encode and repair Reed-Solomon codewords.
// Implementations returned by New are immutable and safe for concurrent
// use.
type Codec interface {
	// Encode appends parity to msg and returns the codeword.
	// The code is systematic: the first len(msg) symbols of the output
	// equal msg unchanged. The combined length must not exceed 255
	// symbols.
	Encode(msg []byte) ([]byte, error)

	// Verify returns true if the codeword carries no detectable
	// corruption, that is, if all its syndromes are zero.
	// No data is modified.
	Verify(codeword []byte) (bool, error)

	// Decode repairs codeword and returns its message and parity parts.
	// erasures lists symbol positions known to be unreliable; their
	// current content is ignored. Unknown errors are located and
	// corrected as long as 2*errors + erasures does not exceed the
	// parity count. The input slices are not modified.
	Decode(codeword []byte, erasures []int) (msg, parity []byte, err error)
}

// ErrInvParityCount will be returned by New, if you attempt to create
// a Codec with fewer than 1 or more than 254 parity symbols.
var ErrInvParityCount = errors.New("reedsolomon: parity symbol count must be between 1 and 254")

// ErrEmptyMessage is returned by Encode when the message holds no
// symbols.
var ErrEmptyMessage = errors.New("reedsolomon: message is empty")

// ErrInputTooLong is returned when a message plus its parity, or a
// received codeword, exceeds the 255-symbol field limit.
var ErrInputTooLong = errors.New("reedsolomon: codeword exceeds 255 symbols")

// ErrTooFewSymbols is returned when a codeword is too short to contain
// any message symbols beside the parity.
var ErrTooFewSymbols = errors.New("reedsolomon: codeword has no message symbols")

// rsCodec ties a parity count to a field and the generator polynomial
// derived from it. Construct it using New().
type rsCodec struct {
	parity int    // Number of parity symbols, should not be modified.
	f      *Field // Shared read-only field tables.
	gen    []byte // Generator polynomial of degree parity.
}

// New creates a codec producing and repairing codewords with the given
// number of parity symbols. You can reuse the codec for any number of
// codewords, concurrently if needed.
func New(parity int, opts ...Option) (Codec, error) {
	if parity < 1 || parity > 254 {
		return nil, ErrInvParityCount
	}
	o := defaultCodecOptions
	for _, opt := range opts {
		opt(&o)
	}
	f := o.field
	if f == nil {
		if o.prim == DefaultPrimitivePolynomial {
			f = defaultField()
		} else {
			var err error
			f, err = NewField(o.prim)
			if err != nil {
				return nil, err
			}
		}
	}
	return &rsCodec{
		parity: parity,
		f:      f,
		gen:    generatorPoly(f, parity),
	}, nil
}

// generatorPoly returns the degree-r generator polynomial, the product
// of (x + 2^i) for i in [0,r). Codewords are exactly its multiples.
func generatorPoly(f *Field, r int) []byte {
	g := []byte{1}
	for i := 0; i < r; i++ {
		g = f.polyMul(g, []byte{1, f.Power(2, i)})
	}
	return g
}

// Encode appends parity to msg and returns the codeword. The parity is
// the remainder of the zero-padded message divided by the generator
// polynomial, which makes every output a generator multiple while
// keeping the message symbols in place.
func (c *rsCodec) Encode(msg []byte) ([]byte, error) {
	if len(msg) == 0 {
		return nil, ErrEmptyMessage
	}
	if len(msg)+c.parity > 255 {
		return nil, ErrInputTooLong
	}
	padded := make([]byte, len(msg)+c.parity)
	copy(padded, msg)
	_, rem := c.f.polyDiv(padded, c.gen)

	out := make([]byte, 0, len(msg)+c.parity)
	out = append(out, msg...)
	out = append(out, rem...)
	return out, nil
}

// Verify returns true if all syndromes of the codeword are zero.
func (c *rsCodec) Verify(codeword []byte) (bool, error) {
	if err := c.checkCodeword(codeword); err != nil {
		return false, err
	}
	return allZero(c.syndromes(codeword)), nil
}

// checkCodeword validates the length bounds shared by Verify and Decode.
func (c *rsCodec) checkCodeword(codeword []byte) error {
	if len(codeword) > 255 {
		return ErrInputTooLong
	}
	if len(codeword) <= c.parity {
		return ErrTooFewSymbols
	}
	return nil
}
