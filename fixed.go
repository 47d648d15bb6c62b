package gvariant

import (
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"

	"github.com/oy3o/gvariant/signature"
)

// sizeCache and alignCache memoize results per signature. Only results for
// signatures that fit on the wire and were classified to the end are stored,
// so a cached value is always what a fresh computation would return.
var (
	sizeCache  = xsync.NewMap[string, int]()
	alignCache = xsync.NewMap[string, int]()
)

// cacheLimit bounds each cache; once it is full, results are still computed
// but no longer stored.
var cacheLimit = 4096

func remember(cache *xsync.Map[string, int], sig string, v int) {
	if len(sig) > signature.MaxLength || cache.Size() >= cacheLimit {
		return
	}
	cache.Store(sig, v)
}

// Alignment returns the largest alignment required by any top-level element
// of sig. The empty signature has alignment 1.
//
// Scanning stops once MaxAlignment is reached, so text after that element is
// not inspected.
func Alignment(sig string) (int, error) {
	if a, ok := alignCache.Load(sig); ok {
		return a, nil
	}

	alignment := 1
	p := 0
	for p < len(sig) && alignment < MaxAlignment {
		e, err := signature.Classify(sig[p:])
		if err != nil {
			return 0, &SignatureError{Signature: sig, Offset: p, Err: err}
		}
		alignment = max(alignment, e.Alignment)
		p += e.Length
	}

	// An early stop leaves the tail unchecked; such input is not cached.
	if p == len(sig) {
		remember(alignCache, sig, alignment)
	}
	return alignment, nil
}

// IsFixedSize reports whether every top-level element of sig is fixed-size.
// It returns false at the first variable-size element without looking further.
func IsFixedSize(sig string) (bool, error) {
	for p := 0; p < len(sig); {
		e, err := signature.Classify(sig[p:])
		if err != nil {
			return false, &SignatureError{Signature: sig, Offset: p, Err: err}
		}
		if !e.Fixed {
			return false, nil
		}
		p += e.Length
	}
	return true, nil
}

// FixedSize returns the encoded size of a fixed-size signature, including the
// padding between elements and the trailing padding to the signature's own
// alignment. A signature containing a variable-size element fails with
// ErrVariableSize.
func FixedSize(sig string) (int, error) {
	if size, ok := sizeCache.Load(sig); ok {
		return size, nil
	}

	size, off, err := fixedSize(sig)
	if err != nil {
		return 0, &SignatureError{Signature: sig, Offset: off, Err: err}
	}

	Logger().Debug("computed fixed size", zap.String("signature", sig), zap.Int("size", size))
	remember(sizeCache, sig, size)
	return size, nil
}

// fixedSize returns the failing offset within sig alongside any error.
func fixedSize(sig string) (int, int, error) {
	sum := 0
	for p := 0; p < len(sig); {
		e, err := signature.Classify(sig[p:])
		if err != nil {
			return 0, p, err
		}

		sum = Roundup(sum, e.Alignment)

		switch code := sig[p]; code {
		case signature.TypeStructBegin, signature.TypeDictEntryBegin:
			if e.Length == 2 {
				// unit struct () occupies one byte
				sum += 1
				break
			}
			inner, off, err := fixedSize(sig[p+1 : p+e.Length-1])
			if err != nil {
				return 0, p + 1 + off, err
			}
			sum += inner

		case signature.TypeString, signature.TypeObjectPath, signature.TypeSignature,
			signature.TypeArray, signature.TypeVariant:
			return 0, p, ErrVariableSize

		default:
			sum += scalarSize(code)
		}

		p += e.Length
	}

	alignment, err := Alignment(sig)
	if err != nil {
		return 0, 0, err
	}
	return Roundup(sum, alignment), 0, nil
}

// scalarSize is the encoded width of a fixed basic type. Any other code means
// the classifier accepted something the size table does not know.
func scalarSize(code byte) int {
	switch code {
	case signature.TypeBoolean, signature.TypeByte:
		return 1
	case signature.TypeInt16, signature.TypeUint16:
		return 2
	case signature.TypeInt32, signature.TypeUint32, signature.TypeUnixFD:
		return 4
	case signature.TypeInt64, signature.TypeUint64, signature.TypeDouble:
		return 8
	}
	invariant("FixedSize", "unknown type code %q", code)
	return 0
}
