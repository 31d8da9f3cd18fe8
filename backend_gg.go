//go:build !nogg

package splashlogo

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

func init() {
	_ = RegisterBackend(ggBackend{})
}

// ggBackend draws the logo with the gogpu/gg software rasterizer.
type ggBackend struct{}

func (ggBackend) Name() string { return "gogpu/gg" }

func (ggBackend) Render(w io.Writer) error {
	source, err := loadBadgeFont()
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	c := newCanvas()
	defer c.Close()

	for _, s := range logo {
		if err := c.draw(s); err != nil {
			return fmt.Errorf("draw %s: %w", s.name, err)
		}
	}

	c.dc.SetFont(source.Face(badgeMarkSize))
	c.dc.SetColor(BadgeMark)
	c.dc.DrawStringAnchored(badgeMarkText, badgeMarkX, badgeMarkY, 0.5, 0.5)

	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// canvas wraps the gg context the logo is painted on. Replacing shapes
// leave gg for a masked composite and come back on a fresh context.
type canvas struct {
	dc *gg.Context
}

func newCanvas() *canvas {
	// A new context starts fully transparent.
	return &canvas{dc: gg.NewContext(Size, Size)}
}

// Close releases the current context.
func (c *canvas) Close() {
	_ = c.dc.Close()
}

func (c *canvas) draw(s shape) error {
	Logger().Debug("draw shape", "name", s.name, "kind", s.kind, "replace", s.replace)

	if s.replace {
		return c.replace(s)
	}

	tracePath(c.dc, s.kind, s.box, s.radius, 0)
	c.dc.SetColor(s.fill)
	if err := c.dc.Fill(); err != nil {
		return err
	}

	if s.lineWidth <= 0 {
		return nil
	}
	tracePath(c.dc, s.kind, s.box, s.radius, s.lineWidth/2)
	c.dc.SetColor(s.outline)
	c.dc.SetLineWidth(s.lineWidth)
	return c.dc.Stroke()
}

// replace overwrites the pixels under s with its fill color. Coverage comes
// from an anti-aliased gg mask so the edges stay smooth, and only the
// shape's box is touched.
func (c *canvas) replace(s shape) error {
	mask := gg.NewContext(Size, Size)
	defer func() { _ = mask.Close() }()

	tracePath(mask, s.kind, s.box, s.radius, 0)
	mask.SetColor(color.White)
	if err := mask.Fill(); err != nil {
		return err
	}

	dst := toRGBA(c.dc.Image())
	replaceWithin(dst, toRGBA(mask.Image()), s.box, s.fill)

	_ = c.dc.Close()
	c.dc = gg.NewContextForImage(dst)
	return nil
}

// tracePath adds the outline of a shape to the current path, shrunk by
// inset on every side. A positive inset is used to keep strokes inside
// the shape's box.
func tracePath(dc *gg.Context, kind shapeKind, b Box, radius, inset float64) {
	switch kind {
	case kindRoundedRect:
		x, y, w, h := b.Inset(inset)
		dc.DrawRoundedRectangle(x, y, w, h, outlineRadius(radius, 2*inset))
	case kindEllipse:
		cx, cy := b.Center()
		rx, ry := b.Radii()
		dc.DrawEllipse(cx, cy, max(rx-inset, 0), max(ry-inset, 0))
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
