package gvariant

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every recoverable failure of the size
	// and alignment calculations.
	ErrInvalidArgument = errors.New("gvariant: invalid argument")

	// ErrVariableSize indicates a fixed-size computation met a string, object path,
	// signature, array or variant element.
	ErrVariableSize = errors.New("gvariant: variable-size type in fixed-size signature")

	// ErrMalformedFrame indicates an offset table whose offsets point outside the
	// frame or are not ordered.
	ErrMalformedFrame = errors.New("gvariant: malformed framing offsets")

	// ErrIndexOutOfRange indicates an element index beyond the frame's element count.
	ErrIndexOutOfRange = errors.New("gvariant: element index out of range")
)

// SignatureError reports which element of a signature a calculation rejected.
type SignatureError struct {
	Signature string
	Offset    int
	Err       error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("gvariant: signature %q at offset %d: %v", e.Signature, e.Offset, e.Err)
}

func (e *SignatureError) Unwrap() error { return e.Err }

// Is makes every SignatureError match ErrInvalidArgument.
func (e *SignatureError) Is(target error) bool { return target == ErrInvalidArgument }

// InvariantError is the panic value raised when an already-validated input
// breaks a contract: an unknown type code in a size computation, a word width
// outside {1,2,4,8}, or a word value too large for its width.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return "gvariant: invariant violated in " + e.Op + ": " + e.Detail
}
