package splashlogo

import "image/color"

// Logo colors, not premultiplied.
var (
	CarBlue    = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	CarOutline = color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	Window     = color.NRGBA{R: 144, G: 202, B: 249, A: 200}
	Wheel      = color.NRGBA{R: 66, G: 66, B: 66, A: 255}
	Tyre       = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
	Rim        = color.NRGBA{R: 117, G: 117, B: 117, A: 255}
	Badge      = color.NRGBA{R: 255, G: 87, B: 34, A: 255}
	BadgeMark  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
