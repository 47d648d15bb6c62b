// Package gvariant answers the static questions of the GVariant wire format:
// whether a signature is fixed-size, its size and alignment, and the width and
// encoding of the framing offsets that follow variable-size containers.
package gvariant

import "github.com/oy3o/gvariant/signature"

// Sizer is implemented by types that can report their fixed encoded size.
type Sizer interface {
	// FixedSize returns the encoded size in bytes, or an error wrapping
	// ErrVariableSize when the size depends on the value.
	FixedSize() (int, error)
}

// Aligner is implemented by types that know the boundary their values start on.
type Aligner interface {
	Alignment() (int, error)
}

// Type aggregates the static questions a marshaler asks before choosing an
// encoding strategy.
type Type interface {
	Sizer
	Aligner
	IsFixedSize() (bool, error)
}

// Signature is a type signature such as "a{sv}" or "(yx)".
type Signature string

// Statically assert that Signature implements Type.
var _ Type = Signature("")

func (s Signature) FixedSize() (int, error)    { return FixedSize(string(s)) }
func (s Signature) Alignment() (int, error)    { return Alignment(string(s)) }
func (s Signature) IsFixedSize() (bool, error) { return IsFixedSize(string(s)) }
func (s Signature) String() string             { return string(s) }

// Validate checks the whole signature, including its length limit.
func (s Signature) Validate() error { return signature.Validate(string(s)) }

// Elements splits the signature into its top-level elements.
func (s Signature) Elements() ([]Signature, error) {
	parts, err := signature.Split(string(s))
	if err != nil {
		return nil, err
	}
	out := make([]Signature, len(parts))
	for i, p := range parts {
		out[i] = Signature(p)
	}
	return out, nil
}
