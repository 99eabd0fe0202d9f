package layout

import "fmt"

// EMU is an English Metric Unit, the native length unit of Office Open XML drawings.
type EMU int64

const (
	emuPerInch  = 914400
	emuPerPoint = 12700
)

// Inches converts a length in inches to EMU, truncating toward zero.
func Inches(in float64) EMU {
	return EMU(in * emuPerInch)
}

// Points converts a length in typographic points to EMU.
func Points(pt int) EMU {
	return EMU(pt) * emuPerPoint
}

// Inches returns the length in inches.
func (e EMU) Inches() float64 {
	return float64(e) / emuPerInch
}

func (e EMU) String() string {
	return fmt.Sprintf("%.3fin", e.Inches())
}

// Rect is an axis-aligned box measured from the top-left corner of the page.
type Rect struct {
	X, Y EMU
	W, H EMU
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() EMU { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() EMU { return r.Y + r.H }

// Overlaps reports whether the interiors of r and o intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Within reports whether r lies entirely inside a w x h page.
func (r Rect) Within(w, h EMU) bool {
	return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 && r.Right() <= w && r.Bottom() <= h
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ARGB formats the color as an opaque AARRGGBB hex string.
func (c Color) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}
