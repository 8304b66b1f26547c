// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
	"github.com/dwongdev/qrcode2stl/pkg/profile"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	fonts *Fonts
	cells int // marching cubes resolution for ToMesh
}

// New returns a new SdfxKernel. fonts may be nil for callers that never
// render text.
func New(fonts *Fonts) *SdfxKernel {
	return &SdfxKernel{fonts: fonts, cells: defaultMeshCells}
}

// SetResolution overrides the marching cubes cell count used by ToMesh.
func (k *SdfxKernel) SetResolution(cells int) {
	if cells > 0 {
		k.cells = cells
	}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a box with the given dimensions, centered at the origin.
func (k *SdfxKernel) Box(x, y, z float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	return wrap(s)
}

// Cylinder creates a cylinder with the given height and radius, centered
// at the origin. The segments parameter is ignored since SDFs represent
// smooth surfaces.
func (k *SdfxKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	return wrap(s)
}

// Extrude turns a closed profile into a solid. The profile keeps its XY
// coordinates; Z runs from 0 to depth.
func (k *SdfxKernel) Extrude(p profile.Profile, depth float64) kernel.Solid {
	verts := p.Vertices(0)
	poly := make([]v2.Vec, len(verts))
	for i, v := range verts {
		poly[i] = v2.Vec{X: v[0], Y: v[1]}
	}
	s2, err := sdf.Polygon2D(poly)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Polygon2D: %v", err))
	}
	s3 := sdf.Extrude3D(s2, depth)
	// Extrude3D is symmetric about z=0; shift so the solid sits on z=0.
	m := sdf.Translate3d(v3.Vec{Z: depth / 2})
	return wrap(sdf.Transform3D(s3, m))
}

// Text renders a single line of text as a solid of the given depth.
func (k *SdfxKernel) Text(s string, style kernel.FontStyle, size, depth float64) (kernel.Solid, error) {
	if k.fonts == nil {
		return nil, fmt.Errorf("sdfx: no fonts loaded, cannot render %q", s)
	}
	f := k.fonts.Face(style)
	if f == nil {
		return nil, fmt.Errorf("sdfx: no %s font face loaded", style)
	}
	s2, err := sdf.TextSDF2(f, sdf.NewText(s), size)
	if err != nil {
		return nil, fmt.Errorf("sdfx: rendering text %q: %w", s, err)
	}
	s3 := sdf.Extrude3D(s2, depth)
	m := sdf.Translate3d(v3.Vec{Z: depth / 2})
	return wrap(sdf.Transform3D(s3, m)), nil
}

// Union returns the boolean union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Merge assembles solids into one. With a distance-field representation the
// non-fusing assembly and the boolean union coincide; per-part meshes are
// what keeps parts distinct downstream.
func (k *SdfxKernel) Merge(parts ...kernel.Solid) kernel.Solid {
	if len(parts) == 0 {
		panic("sdfx: merge of zero solids")
	}
	inner := make([]sdf.SDF3, len(parts))
	for i, p := range parts {
		inner[i] = unwrap(p)
	}
	return wrap(sdf.Union3D(inner...))
}

// Translate moves a solid by (x, y, z).
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *SdfxKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
