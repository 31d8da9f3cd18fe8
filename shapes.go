package splashlogo

import "image/color"

// shapeKind selects the primitive a shape is drawn with.
type shapeKind int

const (
	kindRoundedRect shapeKind = iota
	kindEllipse
)

func (k shapeKind) String() string {
	switch k {
	case kindRoundedRect:
		return "rounded rect"
	case kindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// shape is one filled, optionally outlined, primitive of the logo.
type shape struct {
	name   string
	kind   shapeKind
	box    Box
	radius float64 // corner radius, rounded rects only
	fill   color.NRGBA

	// outline is drawn inside box when lineWidth > 0.
	outline   color.NRGBA
	lineWidth float64

	// replace writes fill over the pixels below instead of blending,
	// leaving them with fill's own alpha.
	replace bool
}

// logo lists the shapes of the splash logo in paint order.
var logo = []shape{
	{name: "body", kind: kindRoundedRect, box: Box{100, 200, 412, 340}, radius: 20,
		fill: CarBlue, outline: CarOutline, lineWidth: 8},
	{name: "cabin", kind: kindRoundedRect, box: Box{160, 140, 352, 210}, radius: 15,
		fill: CarBlue, outline: CarOutline, lineWidth: 8},
	{name: "left window", kind: kindRoundedRect, box: Box{175, 155, 240, 200}, radius: 8,
		fill: Window, replace: true},
	{name: "right window", kind: kindRoundedRect, box: Box{272, 155, 337, 200}, radius: 8,
		fill: Window, replace: true},
	{name: "left tyre", kind: kindEllipse, box: Box{130, 310, 190, 370},
		fill: Wheel, outline: Tyre, lineWidth: 6},
	{name: "left rim", kind: kindEllipse, box: Box{145, 325, 175, 355}, fill: Rim},
	{name: "right tyre", kind: kindEllipse, box: Box{322, 310, 382, 370},
		fill: Wheel, outline: Tyre, lineWidth: 6},
	{name: "right rim", kind: kindEllipse, box: Box{337, 325, 367, 355}, fill: Rim},
	{name: "badge", kind: kindEllipse, box: Box{360, 120, 420, 180}, fill: Badge},
}

// The badge mark is centered on (badgeMarkX, badgeMarkY).
const (
	badgeMarkText = "!"
	badgeMarkSize = 50.0
	badgeMarkX    = 390.0
	badgeMarkY    = 135.0
)

// outlineRadius is the corner radius of an outline stroked inside a rounded
// box of radius r.
func outlineRadius(r, lineWidth float64) float64 {
	return max(r-lineWidth/2, 0)
}
