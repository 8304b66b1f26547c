package tag

import (
	"math"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
	"github.com/dwongdev/qrcode2stl/pkg/profile"
)

// glyphAspect is the fake kernel's advance width per rune as a multiple
// of the text size. Deterministic metrics keep the layout tests exact.
const glyphAspect = 0.6

// fakeSolid is an axis-aligned bounding box stand-in for a solid.
type fakeSolid struct {
	min, max [3]float64
}

func (s *fakeSolid) BoundingBox() (min, max [3]float64) {
	return s.min, s.max
}

// fakeKernel implements kernel.Kernel with box-only geometry and
// deterministic glyph metrics. It counts Text calls so tests can assert
// on measurement traffic.
type fakeKernel struct {
	textCalls int
}

var _ kernel.Kernel = (*fakeKernel)(nil)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) *fakeSolid {
	return &fakeSolid{min: [3]float64{minX, minY, minZ}, max: [3]float64{maxX, maxY, maxZ}}
}

func (k *fakeKernel) Box(x, y, z float64) kernel.Solid {
	return box(-x/2, -y/2, -z/2, x/2, y/2, z/2)
}

func (k *fakeKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	return box(-radius, -radius, -height/2, radius, radius, height/2)
}

func (k *fakeKernel) Extrude(p profile.Profile, depth float64) kernel.Solid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range p.Vertices(4) {
		minX = math.Min(minX, v[0])
		minY = math.Min(minY, v[1])
		maxX = math.Max(maxX, v[0])
		maxY = math.Max(maxY, v[1])
	}
	return box(minX, minY, 0, maxX, maxY, depth)
}

func (k *fakeKernel) Text(s string, style kernel.FontStyle, size, depth float64) (kernel.Solid, error) {
	k.textCalls++
	w := glyphAspect * size * float64(len([]rune(s)))
	return box(0, 0, 0, w, size, depth), nil
}

func (k *fakeKernel) Union(a, b kernel.Solid) kernel.Solid {
	return k.Merge(a, b)
}

func (k *fakeKernel) Difference(a, b kernel.Solid) kernel.Solid {
	min, max := a.BoundingBox()
	return &fakeSolid{min: min, max: max}
}

func (k *fakeKernel) Merge(parts ...kernel.Solid) kernel.Solid {
	out := &fakeSolid{
		min: [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)},
		max: [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range parts {
		min, max := p.BoundingBox()
		for i := 0; i < 3; i++ {
			out.min[i] = math.Min(out.min[i], min[i])
			out.max[i] = math.Max(out.max[i], max[i])
		}
	}
	return out
}

func (k *fakeKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	min, max := s.BoundingBox()
	d := [3]float64{x, y, z}
	for i := 0; i < 3; i++ {
		min[i] += d[i]
		max[i] += d[i]
	}
	return &fakeSolid{min: min, max: max}
}

// Rotate rotates the bounding box corners around the Z axis; X and Y
// rotations are not used by the engine and are ignored.
func (k *fakeKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	min, max := s.BoundingBox()
	theta := z * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)

	out := &fakeSolid{
		min: [3]float64{math.Inf(1), math.Inf(1), min[2]},
		max: [3]float64{math.Inf(-1), math.Inf(-1), max[2]},
	}
	for _, cx := range []float64{min[0], max[0]} {
		for _, cy := range []float64{min[1], max[1]} {
			rx := cx*cos - cy*sin
			ry := cx*sin + cy*cos
			out.min[0] = math.Min(out.min[0], rx)
			out.min[1] = math.Min(out.min[1], ry)
			out.max[0] = math.Max(out.max[0], rx)
			out.max[1] = math.Max(out.max[1], ry)
		}
	}
	return out
}

func (k *fakeKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	min, max := s.BoundingBox()
	return &kernel.Mesh{
		Vertices: []float32{
			float32(min[0]), float32(min[1]), float32(min[2]),
			float32(max[0]), float32(min[1]), float32(min[2]),
			float32(max[0]), float32(max[1]), float32(max[2]),
		},
		Normals: []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices: []uint32{0, 1, 2},
	}, nil
}
