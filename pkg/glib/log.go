package glib

import (
	"sync"

	"github.com/glibgo/glib-go/pkg/glib/logging"
)

var (
	loggerMu  sync.RWMutex
	pkgLogger = logging.New(nil)
)

func logger() logging.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLogger
}

// SetLogger replaces the logger used for registration diagnostics. Passing
// nil restores the slog default.
func SetLogger(l logging.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = logging.New(nil)
	}
	pkgLogger = l
}
