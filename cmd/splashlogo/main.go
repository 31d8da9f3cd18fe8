// Command splashlogo writes the placeholder splash-screen logo to
// assets/splash_logo.png. Run it from the app root:
//
//	go run ./cmd/splashlogo
//
// Built with -tags nogg it has no drawing backend and only prints how to
// supply the asset by hand.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/techolosh/carlet/tools/splashlogo"
)

func main() {
	splashlogo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	os.Exit(run(os.Stdout))
}

// run generates the logo and returns the process exit code.
func run(stdout io.Writer) int {
	err := splashlogo.Generate(splashlogo.OutputPath)
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "✓ Splash logo created: %s\n", splashlogo.OutputPath)
		return 0
	case errors.Is(err, splashlogo.ErrBackendUnavailable):
		fmt.Fprintln(stdout, "⚠ Drawing backend not available (built with -tags nogg).")
		fmt.Fprintf(stdout, "Please create %s manually or rebuild without the nogg tag.\n", splashlogo.OutputPath)
		return 0
	default:
		splashlogo.Logger().Error("splash logo generation failed", "err", err)
		return 1
	}
}
