/**
 * Unit tests for polynomial algebra
 *
 * Copyright 2025, the fecgo authors.
 */

package reedsolomon

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestPolyScale(t *testing.T) {
	f := defaultField()
	p := []byte{1, 2, 3, 0, 255}
	if !bytes.Equal(f.polyScale(p, 1), p) {
		t.Fatal("scaling by one should not change the polynomial")
	}
	if !bytes.Equal(f.polyScale(p, 0), make([]byte, len(p))) {
		t.Fatal("scaling by zero should zero the polynomial")
	}
	// Scaling twice composes multiplicatively.
	a := f.polyScale(f.polyScale(p, 7), 11)
	b := f.polyScale(p, f.Multiply(7, 11))
	if !bytes.Equal(a, b) {
		t.Fatal("repeated scaling does not compose:", a, "!=", b)
	}
}

func TestPolyAdd(t *testing.T) {
	f := defaultField()
	// Alignment is at the lowest degree; the shorter operand pads left.
	got := f.polyAdd([]byte{1, 2}, []byte{1})
	if !bytes.Equal(got, []byte{1, 3}) {
		t.Fatal("polyAdd misaligned:", got)
	}
	got = f.polyAdd([]byte{0x12}, []byte{0x45, 0x00})
	if !bytes.Equal(got, []byte{0x45, 0x12}) {
		t.Fatal("polyAdd misaligned:", got)
	}
	// Characteristic 2: adding a polynomial to itself gives zero.
	p := []byte{9, 8, 7, 6}
	if !allZero(f.polyAdd(p, p)) {
		t.Fatal("p+p should be zero")
	}
}

func TestPolyMulDiv(t *testing.T) {
	f := defaultField()
	rng := rand.New(rand.NewSource(0x5eed))
	for trial := 0; trial < 100; trial++ {
		p := randomPoly(rng, 1+rng.Intn(20))
		// Synthetic division requires a monic divisor; the codec only
		// divides by generator polynomials and x^k, which are monic.
		q := randomPoly(rng, 1+rng.Intn(10))
		q[0] = 1

		prod := f.polyMul(p, q)
		if len(prod) != len(p)+len(q)-1 {
			t.Fatal("product length", len(prod), "for", len(p), "x", len(q))
		}
		quot, rem := f.polyDiv(prod, q)
		if !allZero(rem) {
			t.Fatal("dividing an exact product left a remainder:", rem)
		}
		if !bytes.Equal(quot, p) {
			t.Fatal("multiply and divide do not cancel:", quot, "!=", p)
		}
		if len(rem) != len(q)-1 {
			t.Fatal("remainder length", len(rem), "!=", len(q)-1)
		}
	}
}

func TestPolyEval(t *testing.T) {
	f := defaultField()
	// p(x) = x evaluates to the point itself.
	for i := 0; i < 256; i++ {
		if got := f.polyEval([]byte{1, 0}, byte(i)); got != byte(i) {
			t.Fatal("eval of x at", i, "gave", got)
		}
	}
	// Constants ignore the point.
	if got := f.polyEval([]byte{42}, 17); got != 42 {
		t.Fatal("eval of constant gave", got)
	}
	// Evaluation is linear: (p+q)(x) == p(x) ^ q(x).
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(16)
		p := randomPoly(rng, n)
		q := randomPoly(rng, n)
		x := byte(rng.Intn(256))
		sum := f.polyEval(f.polyAdd(p, q), x)
		if sum != f.polyEval(p, x)^f.polyEval(q, x) {
			t.Fatal("evaluation is not additive")
		}
	}
}

func TestGeneratorRoots(t *testing.T) {
	// The generator polynomial must vanish at every root 2^i it was
	// built from, and nowhere else among the field elements.
	f := defaultField()
	for _, r := range []int{1, 2, 4, 12, 32} {
		gen := generatorPoly(f, r)
		if len(gen) != r+1 {
			t.Fatal("generator degree", len(gen)-1, "!=", r)
		}
		roots := 0
		for i := 0; i < 255; i++ {
			if f.polyEval(gen, f.exp[i]) == 0 {
				roots++
			}
		}
		if roots != r {
			t.Fatal("generator of degree", r, "has", roots, "roots")
		}
		for i := 0; i < r; i++ {
			if f.polyEval(gen, f.Power(2, i)) != 0 {
				t.Fatal("generator does not vanish at 2^", i)
			}
		}
	}
}

func TestReverse(t *testing.T) {
	got := reverse([]byte{1, 2, 3})
	if !bytes.Equal(got, []byte{3, 2, 1}) {
		t.Fatal("reverse:", got)
	}
	if !bytes.Equal(reverse(reverse([]byte{5, 0, 9, 1})), []byte{5, 0, 9, 1}) {
		t.Fatal("double reverse should be identity")
	}
}

func randomPoly(rng *rand.Rand, n int) []byte {
	p := make([]byte, n)
	rng.Read(p)
	if p[0] == 0 {
		p[0] = 1
	}
	return p
}
