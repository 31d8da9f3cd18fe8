package splashlogo

import (
	"bytes"
	"fmt"
	"os"
)

// Generate renders the logo with the registered backend and writes it to
// path as PNG.
//
// Without a backend it returns ErrBackendUnavailable and leaves path
// untouched. The PNG is fully encoded before the file is opened, so a
// failed render never truncates an existing file. The parent directory
// must already exist.
func Generate(path string) error {
	b := CurrentBackend()
	if b == nil {
		return ErrBackendUnavailable
	}

	log := Logger()
	log.Debug("rendering splash logo", "backend", b.Name(), "size", Size)

	var buf bytes.Buffer
	if err := b.Render(&buf); err != nil {
		return fmt.Errorf("splashlogo: render with %s: %w", b.Name(), err)
	}
	log.Debug("encoded splash logo", "bytes", buf.Len())

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // asset is meant to be world-readable
		return fmt.Errorf("splashlogo: write %s: %w", path, err)
	}
	log.Info("splash logo written", "path", path, "bytes", buf.Len())
	return nil
}
