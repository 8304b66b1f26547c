// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx today, anything else tomorrow) provide solid
// modeling, boolean operations and text extrusion behind this interface.
// The tag engine treats every kernel operation as an expensive but pure,
// always-terminating function; swapping backends must not change layout
// behavior.
package kernel

import "github.com/dwongdev/qrcode2stl/pkg/profile"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// FontStyle selects which face of the font set renders a text run.
// The four styles map 1:1 to the label emphasis levels.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontItalic
	FontBold
	FontBoldItalic
)

func (s FontStyle) String() string {
	switch s {
	case FontRegular:
		return "regular"
	case FontItalic:
		return "italic"
	case FontBold:
		return "bold"
	case FontBoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. Box and Cylinder are centered at the origin.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Extrude turns a closed 2D profile into a solid of the given depth.
	// The profile keeps its XY coordinates; Z runs from 0 to depth.
	Extrude(p profile.Profile, depth float64) Solid

	// Text renders a single line of text as a solid of the given depth.
	// The line sits on its baseline at y=0 with the pen starting near x=0;
	// Z runs from 0 to depth. Callers measure it via BoundingBox.
	Text(s string, style FontStyle, size, depth float64) (Solid, error)

	// Boolean operations.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Merge assembles solids into one without a boolean union. Parts keep
	// their baked-in transforms; overlapping geometry is not fused.
	Merge(parts ...Solid) Solid

	// Transforms.
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output.
	ToMesh(s Solid) (*Mesh, error)
}
