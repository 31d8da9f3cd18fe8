//go:build !nogg

package splashlogo

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// badgeFontData is the embedded face used for the badge mark, so the output
// never depends on fonts installed on the host.
var badgeFontData = gobold.TTF

// checkGlyphs returns ErrMissingGlyph if the font in data cannot map every
// rune of s.
func checkGlyphs(data []byte, s string) error {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("splashlogo: parse font: %w", err)
	}
	for _, r := range s {
		if _, ok := face.NominalGlyph(r); !ok {
			return fmt.Errorf("%w for %q", ErrMissingGlyph, r)
		}
	}
	return nil
}

// loadBadgeFont returns the font source for the badge mark. The caller owns
// the source and must Close it.
func loadBadgeFont() (*text.FontSource, error) {
	if err := checkGlyphs(badgeFontData, badgeMarkText); err != nil {
		return nil, err
	}
	source, err := text.NewFontSource(badgeFontData)
	if err != nil {
		return nil, fmt.Errorf("splashlogo: load badge font: %w", err)
	}
	Logger().Debug("badge font loaded", "font", source.Name())
	return source, nil
}
