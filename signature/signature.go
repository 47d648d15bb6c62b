// Package signature classifies the elements of a bus type signature.
//
// A signature is a sequence of complete type elements. Classify reports the
// textual length, fixed-size flag and alignment of the element at the start
// of a signature; the gvariant package builds its size and alignment
// calculations on top of it.
package signature

import (
	"errors"
	"fmt"
)

// Type codes of the bus type system.
const (
	TypeByte       byte = 'y'
	TypeBoolean    byte = 'b'
	TypeInt16      byte = 'n'
	TypeUint16     byte = 'q'
	TypeInt32      byte = 'i'
	TypeUint32     byte = 'u'
	TypeInt64      byte = 'x'
	TypeUint64     byte = 't'
	TypeDouble     byte = 'd'
	TypeUnixFD     byte = 'h'
	TypeString     byte = 's'
	TypeObjectPath byte = 'o'
	TypeSignature  byte = 'g'
	TypeVariant    byte = 'v'
	TypeArray      byte = 'a'

	TypeStructBegin    byte = '('
	TypeStructEnd      byte = ')'
	TypeDictEntryBegin byte = '{'
	TypeDictEntryEnd   byte = '}'
)

const (
	// MaxLength is the longest signature the wire format can carry.
	MaxLength = 255
	// MaxDepth bounds array nesting and struct/dict-entry nesting separately.
	MaxDepth = 32
)

// ErrInvalid is matched by every classification failure.
var ErrInvalid = errors.New("signature: invalid signature")

// SyntaxError describes where a signature stopped making sense.
type SyntaxError struct {
	Signature string
	Offset    int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("signature: %s at offset %d in %q", e.Msg, e.Offset, e.Signature)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrInvalid }

// Element describes a single complete type element.
type Element struct {
	// Length is the number of signature bytes the element spans.
	Length int
	// Fixed reports whether every value of the element encodes to the same size.
	Fixed bool
	// Alignment is 1, 2, 4 or 8.
	Alignment int
}

// IsBasic reports whether c is a basic (non-container) type code.
func IsBasic(c byte) bool {
	switch c {
	case TypeByte, TypeBoolean, TypeInt16, TypeUint16, TypeInt32, TypeUint32,
		TypeInt64, TypeUint64, TypeDouble, TypeUnixFD,
		TypeString, TypeObjectPath, TypeSignature:
		return true
	}
	return false
}

// IsFixedBasic reports whether c is a basic type with a fixed encoded size.
func IsFixedBasic(c byte) bool {
	return IsBasic(c) && c != TypeString && c != TypeObjectPath && c != TypeSignature
}

func basicAlignment(c byte) int {
	switch c {
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeUnixFD:
		return 4
	case TypeInt64, TypeUint64, TypeDouble, TypeVariant:
		return 8
	}
	return 1
}

// Classify describes the element at the start of s. A dict entry is accepted
// at the start, since s may be the element signature of an array.
func Classify(s string) (Element, error) {
	c := classifier{sig: s}
	return c.element(0, true, 0, 0)
}

// Validate checks that s is a sequence of complete elements no longer than
// MaxLength. Dict entries are only valid as array elements.
func Validate(s string) error {
	if len(s) > MaxLength {
		return &SyntaxError{Signature: s, Offset: MaxLength, Msg: "signature too long"}
	}
	c := classifier{sig: s}
	for p := 0; p < len(s); {
		e, err := c.element(p, false, 0, 0)
		if err != nil {
			return err
		}
		p += e.Length
	}
	return nil
}

// IsSingle reports whether s consists of exactly one valid element.
func IsSingle(s string) bool {
	if len(s) == 0 || len(s) > MaxLength {
		return false
	}
	e, err := Classify(s)
	return err == nil && e.Length == len(s)
}

// Split returns the top-level elements of s.
func Split(s string) ([]string, error) {
	var out []string
	c := classifier{sig: s}
	for p := 0; p < len(s); {
		e, err := c.element(p, false, 0, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, s[p:p+e.Length])
		p += e.Length
	}
	return out, nil
}

type classifier struct {
	sig string
}

func (c *classifier) fail(off int, format string, args ...any) (Element, error) {
	return Element{}, &SyntaxError{Signature: c.sig, Offset: off, Msg: fmt.Sprintf(format, args...)}
}

func (c *classifier) element(p int, allowDictEntry bool, arrayDepth, structDepth int) (Element, error) {
	if p >= len(c.sig) {
		return c.fail(p, "missing type")
	}

	code := c.sig[p]
	switch {
	case IsBasic(code) || code == TypeVariant:
		return Element{Length: 1, Fixed: IsFixedBasic(code), Alignment: basicAlignment(code)}, nil

	case code == TypeArray:
		if arrayDepth >= MaxDepth {
			return c.fail(p, "array nesting exceeds %d", MaxDepth)
		}
		elem, err := c.element(p+1, true, arrayDepth+1, structDepth)
		if err != nil {
			return Element{}, err
		}
		return Element{Length: elem.Length + 1, Fixed: false, Alignment: elem.Alignment}, nil

	case code == TypeStructBegin:
		if structDepth >= MaxDepth {
			return c.fail(p, "struct nesting exceeds %d", MaxDepth)
		}
		e := Element{Fixed: true, Alignment: 1}
		q := p + 1
		for {
			if q >= len(c.sig) {
				return c.fail(q, "unterminated struct")
			}
			if c.sig[q] == TypeStructEnd {
				break
			}
			m, err := c.element(q, false, arrayDepth, structDepth+1)
			if err != nil {
				return Element{}, err
			}
			e.merge(m)
			q += m.Length
		}
		e.Length = q - p + 1
		return e, nil

	case code == TypeDictEntryBegin:
		if !allowDictEntry {
			return c.fail(p, "dict entry outside of array")
		}
		if structDepth >= MaxDepth {
			return c.fail(p, "struct nesting exceeds %d", MaxDepth)
		}
		q := p + 1
		if q >= len(c.sig) || !IsBasic(c.sig[q]) {
			return c.fail(q, "dict entry key must be a basic type")
		}
		e := Element{Fixed: IsFixedBasic(c.sig[q]), Alignment: basicAlignment(c.sig[q])}
		q++
		values := 0
		for {
			if q >= len(c.sig) {
				return c.fail(q, "unterminated dict entry")
			}
			if c.sig[q] == TypeDictEntryEnd {
				break
			}
			m, err := c.element(q, false, arrayDepth, structDepth+1)
			if err != nil {
				return Element{}, err
			}
			e.merge(m)
			q += m.Length
			values++
		}
		if values != 1 {
			return c.fail(p, "dict entry needs exactly one value, got %d", values)
		}
		e.Length = q - p + 1
		return e, nil
	}

	return c.fail(p, "unknown type code %q", code)
}

func (e *Element) merge(m Element) {
	e.Fixed = e.Fixed && m.Fixed
	e.Alignment = max(e.Alignment, m.Alignment)
}
