package splashlogo

// Box is an axis-aligned pixel box with inclusive corners, so
// Box{0, 0, 9, 9} covers 10x10 pixels.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Rect returns the box as a continuous rectangle: top-left corner and size.
func (b Box) Rect() (x, y, w, h float64) {
	return float64(b.X0), float64(b.Y0), float64(b.X1 - b.X0 + 1), float64(b.Y1 - b.Y0 + 1)
}

// Center returns the geometric center of the covered pixels.
func (b Box) Center() (cx, cy float64) {
	x, y, w, h := b.Rect()
	return x + w/2, y + h/2
}

// Radii returns the semi-axes of the ellipse inscribed in the box.
func (b Box) Radii() (rx, ry float64) {
	_, _, w, h := b.Rect()
	return w / 2, h / 2
}

// Inset returns the continuous rectangle shrunk by d on every side.
// The size never goes negative.
func (b Box) Inset(d float64) (x, y, w, h float64) {
	x, y, w, h = b.Rect()
	x += d
	y += d
	w = max(w-2*d, 0)
	h = max(h-2*d, 0)
	return x, y, w, h
}

// Contains reports whether the pixel (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}
