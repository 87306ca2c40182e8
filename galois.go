/**
 * Galois Field arithmetic over GF(2^8).
 *
 * Copyright 2025, the fecgo authors.
 */

package reedsolomon

import (
	"errors"
	"math/bits"
	"sync"
)

// DefaultPrimitivePolynomial is x^8 + x^4 + x^3 + x^2 + 1 (0x11d), the
// polynomial most GF(2^8) Reed-Solomon deployments build their field on.
const DefaultPrimitivePolynomial = 0x11d

// ErrDivideByZero is returned by Divide and Inverse when the divisor is
// zero.
var ErrDivideByZero = errors.New("reedsolomon: division by zero in GF(2^8)")

// ErrInvalidPolynomial is returned by NewField when the polynomial is not
// a degree-8 polynomial for which 2 generates the full multiplicative
// group.
var ErrInvalidPolynomial = errors.New("reedsolomon: polynomial is not primitive of degree 8")

// Field holds the exponent and logarithm tables defining one GF(2^8)
// multiplication structure. A Field is immutable once built and safe for
// concurrent use from any number of goroutines.
type Field struct {
	prim uint32

	// exp[i] = 2^i. The upper half repeats the lower, so a sum of two
	// logarithms (at most 254+254) indexes directly without a modulo.
	exp [512]byte
	// log[x] is the discrete logarithm of x base 2. Zero has no
	// logarithm; log[0] must never be read.
	log [256]byte
}

// mulNoTable multiplies a and b as polynomials over GF(2) and reduces the
// product modulo prim by long division. Only used to bootstrap the
// tables, which cannot be consulted while they are being built.
func mulNoTable(a, b, prim uint32) uint32 {
	var product uint32
	for i := 0; b>>i > 0; i++ {
		if b&(1<<i) != 0 {
			product ^= a << i
		}
	}
	if prim == 0 {
		return product
	}
	// XOR-subtract the divisor degree by degree until the remainder
	// drops below it.
	divBits := bits.Len32(prim)
	for i := bits.Len32(product) - divBits; i >= 0; i-- {
		if product&(1<<uint(i+divBits-1)) != 0 {
			product ^= prim << uint(i)
		}
	}
	return product
}

// NewField builds the lookup tables for the field defined by the given
// primitive polynomial. Pass DefaultPrimitivePolynomial unless the
// deployment dictates another one; both ends of a link must agree.
func NewField(prim uint32) (*Field, error) {
	if prim < 0x100 || prim > 0x1ff {
		return nil, ErrInvalidPolynomial
	}
	f := &Field{prim: prim}
	x := uint32(1)
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			// The generator cycled before covering all 255 nonzero
			// elements, so the tables would be corrupt.
			return nil, ErrInvalidPolynomial
		}
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x = mulNoTable(x, 2, prim)
	}
	if x != 1 {
		return nil, ErrInvalidPolynomial
	}
	for i := 255; i < 512; i++ {
		f.exp[i] = f.exp[i-255]
	}
	return f, nil
}

// defaultField shares one table set for the default polynomial. The
// build runs exactly once; afterwards the tables are read-only.
var defaultField = sync.OnceValue(func() *Field {
	f, err := NewField(DefaultPrimitivePolynomial)
	if err != nil {
		panic(err)
	}
	return f
})

// PrimitivePolynomial returns the polynomial the field was built from.
func (f *Field) PrimitivePolynomial() uint32 {
	return f.prim
}

// Multiply returns the product of a and b in the field.
func (f *Field) Multiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[int(f.log[a])+int(f.log[b])]
}

// Divide returns a divided by b, or ErrDivideByZero when b is zero.
func (f *Field) Divide(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return f.div(a, b), nil
}

// div is Divide for callers that have already excluded a zero divisor.
func (f *Field) div(a, b byte) byte {
	if a == 0 {
		return 0
	}
	return f.exp[(int(f.log[a])+255-int(f.log[b]))%255]
}

// Power returns a raised to e. The exponent may be negative; it is taken
// modulo the multiplicative group order and normalized into [0,254], so
// Power(a, -1) is the inverse of a nonzero a.
func (f *Field) Power(a byte, e int) byte {
	if a == 0 {
		if e == 0 {
			return 1
		}
		return 0
	}
	idx := (int(f.log[a]) * e) % 255
	if idx < 0 {
		idx += 255
	}
	return f.exp[idx]
}

// Inverse returns the multiplicative inverse of a, or ErrDivideByZero
// when a is zero.
func (f *Field) Inverse(a byte) (byte, error) {
	return f.Divide(1, a)
}

// inv is Inverse for callers that have already excluded zero.
func (f *Field) inv(a byte) byte {
	return f.div(1, a)
}

// Add returns the sum of a and b. The field has characteristic 2, so
// addition and subtraction are both XOR.
func (f *Field) Add(a, b byte) byte {
	return a ^ b
}
