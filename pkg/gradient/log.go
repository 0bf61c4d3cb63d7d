package gradient

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

// SetLogger replaces the logger that reports degraded constructions. The
// package is silent until a logger is set; pass zerolog.Nop() to silence
// it again.
func SetLogger(l zerolog.Logger) {
	pkgLogger.Store(&l)
}

// Logger returns the current package logger.
func Logger() zerolog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return *l
	}
	return zerolog.Nop()
}
