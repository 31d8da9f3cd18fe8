// Package splashlogo renders the placeholder splash-screen logo for the
// Carlet Android app: a blue car with an orange notification badge on a
// transparent 512x512 canvas.
//
// # Quick Start
//
//	if err := splashlogo.Generate(splashlogo.OutputPath); err != nil {
//	    if errors.Is(err, splashlogo.ErrBackendUnavailable) {
//	        // built with -tags nogg: supply the asset by hand
//	    }
//	    return err
//	}
//
// # Backends
//
// Drawing goes through a [Backend]. The gogpu/gg backend registers itself
// unless the package is built with the nogg tag, in which case
// [Generate] reports [ErrBackendUnavailable] and writes nothing.
//
// # Coordinate System
//
// Shapes are addressed by inclusive pixel boxes, origin at the top-left,
// Y growing down. Outlines are drawn inside their box.
//
// # Determinism
//
// Every coordinate, color and the badge font are compiled in, so repeated
// runs produce byte-identical PNG files.
package splashlogo

const (
	// Size is the width and height of the canvas in pixels.
	Size = 512

	// OutputPath is where the command writes the logo, relative to the
	// app root.
	OutputPath = "assets/splash_logo.png"
)
