package splashlogo

import (
	"io"
	"sync"
)

// Backend draws the logo and encodes it as PNG.
//
// Backends are provided by build-tag guarded files and register themselves
// from init:
//
//	func init() {
//	    _ = splashlogo.RegisterBackend(ggBackend{})
//	}
type Backend interface {
	// Name identifies the backend in log output.
	Name() string

	// Render draws the full logo on a fresh canvas and writes it to w
	// as PNG. A backend that finds itself unusable at render time returns
	// an error wrapping ErrBackendUnavailable.
	Render(w io.Writer) error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend installs b as the drawing backend, replacing any
// previously registered one.
func RegisterBackend(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
	return nil
}

// CurrentBackend returns the registered backend, or nil if none.
func CurrentBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}

// resetBackend replaces the registered backend without validation and
// returns the previous one. Tests use it to simulate a nogg build.
func resetBackend(b Backend) Backend {
	backendMu.Lock()
	old := backend
	backend = b
	backendMu.Unlock()
	return old
}

// UnregisterBackend removes the registered backend, if any, and returns it.
// Generate then behaves as in a build without a drawing backend.
func UnregisterBackend() Backend {
	return resetBackend(nil)
}
