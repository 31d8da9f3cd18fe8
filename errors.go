package splashlogo

import "errors"

// Sentinel errors for splashlogo.
var (
	// ErrBackendUnavailable is returned by Generate when no drawing backend
	// is compiled in.
	ErrBackendUnavailable = errors.New("splashlogo: drawing backend not available")

	// ErrMissingGlyph is returned when the badge font cannot draw the badge mark.
	ErrMissingGlyph = errors.New("splashlogo: font has no glyph")

	// ErrNilBackend is returned by RegisterBackend for a nil backend.
	ErrNilBackend = errors.New("splashlogo: backend must not be nil")
)
