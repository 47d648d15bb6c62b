package gvariant

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every framing word, regardless of host order.
var Order = binary.LittleEndian

// MaxAlignment is the largest alignment any type can require.
const MaxAlignment = 8

// Roundup rounds n up to the nearest multiple of align. align must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
