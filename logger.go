package gvariant

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    atomic.Pointer[zap.Logger]
)

// Logger returns the logger contract violations are reported to.
// It is a no-op logger until SetLogger installs another one.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger replaces the package logger. A nil logger restores the no-op one.
// It is safe to call concurrently with every other function of the package.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nopLogger
	}
	logger.Store(l)
}

// invariant reports a broken contract and panics with an *InvariantError.
func invariant(op, format string, args ...any) {
	err := &InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)}
	Logger().Error("invariant violated", zap.String("op", op), zap.String("detail", err.Detail))
	panic(err)
}
