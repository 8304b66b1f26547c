// Package profile builds closed 2D polygons used as extrusion
// cross-sections. Profiles are pure values with no kernel ties; a geometry
// kernel turns them into solids.
package profile

import "math"

// DefaultCornerSegments is the arc resolution used when flattening a
// rounded corner into polygon vertices.
const DefaultCornerSegments = 12

// Corner indexes into a Profile's radii, clockwise from top-left.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Profile is a closed 2D polygon tracing a rectangle with optional
// quarter-circle corner arcs. X,Y is the minimum (bottom-left) corner.
// A radius of zero degenerates to a sharp corner. Radii exceeding half
// a side are clamped, never an error: they come from user-adjustable
// inputs that are auto-corrected.
type Profile struct {
	X, Y  float64
	W, H  float64
	Radii [4]float64 // indexed by Corner
}

// RoundedRect returns a profile with a uniform corner radius.
func RoundedRect(x, y, w, h, r float64) Profile {
	return CustomRoundedRect(x, y, w, h, r, r, r, r)
}

// CustomRoundedRect returns a profile with four independent corner radii
// (top-left, top-right, bottom-right, bottom-left).
func CustomRoundedRect(x, y, w, h, rtl, rtr, rbr, rbl float64) Profile {
	p := Profile{X: x, Y: y, W: w, H: h, Radii: [4]float64{rtl, rtr, rbr, rbl}}
	limit := math.Min(w, h) / 2
	for i := range p.Radii {
		if p.Radii[i] < 0 {
			p.Radii[i] = 0
		}
		if p.Radii[i] > limit {
			p.Radii[i] = limit
		}
	}
	return p
}

// Translate returns a copy of the profile moved by (dx, dy).
func (p Profile) Translate(dx, dy float64) Profile {
	p.X += dx
	p.Y += dy
	return p
}

// Center returns the center point of the profile's bounding rectangle.
func (p Profile) Center() (x, y float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Vertices flattens the profile into a closed polygon in counter-clockwise
// winding, starting on the bottom edge. The last vertex is not a repeat of
// the first. segments controls the arc resolution per rounded corner;
// values below 1 fall back to DefaultCornerSegments.
func (p Profile) Vertices(segments int) [][2]float64 {
	if segments < 1 {
		segments = DefaultCornerSegments
	}

	type arc struct {
		corner     Corner
		cx, cy     float64 // arc center for a radius r
		start, end float64 // radians, swept counter-clockwise
	}
	arcs := []arc{
		{BottomRight, p.X + p.W, p.Y, -math.Pi / 2, 0},
		{TopRight, p.X + p.W, p.Y + p.H, 0, math.Pi / 2},
		{TopLeft, p.X, p.Y + p.H, math.Pi / 2, math.Pi},
		{BottomLeft, p.X, p.Y, math.Pi, 3 * math.Pi / 2},
	}

	var verts [][2]float64
	for _, a := range arcs {
		r := p.Radii[a.corner]
		if r == 0 {
			// Sharp corner: the arc center is the corner itself.
			verts = append(verts, [2]float64{a.cx, a.cy})
			continue
		}
		// Pull the arc center inside the rectangle by r on both axes.
		cx := a.cx - math.Copysign(r, a.cx-(p.X+p.W/2))
		cy := a.cy - math.Copysign(r, a.cy-(p.Y+p.H/2))
		for i := 0; i <= segments; i++ {
			theta := a.start + (a.end-a.start)*float64(i)/float64(segments)
			verts = append(verts, [2]float64{
				cx + r*math.Cos(theta),
				cy + r*math.Sin(theta),
			})
		}
	}
	return verts
}
