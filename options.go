/**
 * Reed-Solomon Coding over 8-bit values.
 *
 * Copyright 2025, the fecgo authors.
 */

package reedsolomon

// options captures construction-time configuration for a Codec.
type options struct {
	prim  uint32
	field *Field
}

var defaultCodecOptions = options{
	prim: DefaultPrimitivePolynomial,
}

// Option configures how New builds a Codec.
type Option func(*options)

// WithPrimitivePolynomial selects the primitive polynomial the codec's
// field tables are built from. It defines the field's multiplication
// structure, so both the encoding and decoding side must use the same
// value. The default is DefaultPrimitivePolynomial.
func WithPrimitivePolynomial(prim uint32) Option {
	return func(o *options) {
		o.prim = prim
		o.field = nil
	}
}

// WithField supplies a pre-built Field. The codec shares its tables
// instead of building a fresh set, which is useful when many codecs with
// different parity counts run over the same field.
func WithField(f *Field) Option {
	return func(o *options) {
		o.field = f
	}
}
