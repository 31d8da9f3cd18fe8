package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/techolosh/carlet/tools/splashlogo"
)

// unavailable simulates a drawing backend that cannot be used.
type unavailable struct{}

func (unavailable) Name() string { return "unavailable" }

func (unavailable) Render(io.Writer) error {
	return fmt.Errorf("no rasterizer: %w", splashlogo.ErrBackendUnavailable)
}

// withBackend installs b (nil for none) for the duration of the test.
func withBackend(t *testing.T, b splashlogo.Backend) {
	t.Helper()
	orig := splashlogo.UnregisterBackend()
	if b != nil {
		if err := splashlogo.RegisterBackend(b); err != nil {
			t.Fatal(err)
		}
	}
	t.Cleanup(func() {
		splashlogo.UnregisterBackend()
		if orig != nil {
			_ = splashlogo.RegisterBackend(orig)
		}
	})
}

func TestRunWithoutBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend splashlogo.Backend
	}{
		{"none registered", nil},
		{"unavailable at render", unavailable{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBackend(t, tt.backend)

			dir := t.TempDir()
			if err := os.Mkdir(filepath.Join(dir, "assets"), 0o755); err != nil {
				t.Fatal(err)
			}
			t.Chdir(dir)

			var out bytes.Buffer
			if code := run(&out); code != 0 {
				t.Errorf("run() = %d, want 0", code)
			}

			for _, want := range []string{
				"⚠ Drawing backend not available",
				"Please create assets/splash_logo.png manually",
			} {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}

			if _, err := os.Stat(filepath.Join(dir, splashlogo.OutputPath)); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("logo written without a backend (stat err = %v)", err)
			}
		})
	}
}

func TestWithBackendRestoresRegistry(t *testing.T) {
	orig := splashlogo.CurrentBackend()

	t.Run("cleared", func(t *testing.T) {
		withBackend(t, nil)
		if b := splashlogo.CurrentBackend(); b != nil {
			t.Errorf("CurrentBackend() = %v, want nil", b)
		}
	})

	if got := splashlogo.CurrentBackend(); got != orig {
		t.Errorf("CurrentBackend() after cleanup = %v, want %v", got, orig)
	}
}
