package splashlogo

import (
	"image"
	"image/color"
)

// replaceWithin overwrites the pixels of dst inside b with fill, weighted by
// the alpha of mask. Full coverage leaves exactly fill (alpha included),
// zero coverage leaves dst untouched, and partial coverage interpolates in
// premultiplied space. Pixels outside b are never touched.
func replaceWithin(dst, mask *image.RGBA, b Box, fill color.NRGBA) {
	src := color.RGBAModel.Convert(fill).(color.RGBA)
	r := image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1).Intersect(dst.Bounds()).Intersect(mask.Bounds())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := uint32(mask.RGBAAt(x, y).A)
			if m == 0 {
				continue
			}
			d := dst.RGBAAt(x, y)
			dst.SetRGBA(x, y, color.RGBA{
				R: lerp8(d.R, src.R, m),
				G: lerp8(d.G, src.G, m),
				B: lerp8(d.B, src.B, m),
				A: lerp8(d.A, src.A, m),
			})
		}
	}
}

// lerp8 mixes d toward s by m/255, rounding to nearest.
func lerp8(d, s uint8, m uint32) uint8 {
	return uint8((uint32(s)*m + uint32(d)*(255-m) + 127) / 255)
}
