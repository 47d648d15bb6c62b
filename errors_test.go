package gvariant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oy3o/gvariant/signature"
)

func TestSignatureError(t *testing.T) {
	err := &SignatureError{Signature: "(ys)", Offset: 2, Err: ErrVariableSize}

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrVariableSize)
	assert.NotErrorIs(t, err, signature.ErrInvalid)
	assert.Equal(t, `gvariant: signature "(ys)" at offset 2: gvariant: variable-size type in fixed-size signature`, err.Error())

	var target *SignatureError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, 2, target.Offset)
}

func TestInvariantErrorIsNotInvalidArgument(t *testing.T) {
	err := &InvariantError{Op: "WriteWord", Detail: "unknown word width 3"}
	assert.NotErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "gvariant: invariant violated in WriteWord: unknown word width 3", err.Error())
}
