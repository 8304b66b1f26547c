package export

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hpinc/go3mf"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
)

// Create3MF writes one object per mesh into a 3MF file, carrying each
// part's name and material color. 3MF keeps the parts distinct, so
// two-material printing can assign each its own extruder.
func Create3MF(path string, meshes []*kernel.Mesh) error {
	if len(meshes) == 0 {
		return errors.New("export: no meshes")
	}

	model := new(go3mf.Model)
	model.Units = go3mf.UnitMillimeter

	materials := &go3mf.BaseMaterials{ID: 1}
	materialIndex := make(map[string]uint32)

	for i, m := range meshes {
		if m.IsEmpty() {
			return fmt.Errorf("export: mesh %q is empty", m.PartName)
		}

		pIndex, ok := materialIndex[m.Color]
		if !ok {
			pIndex = uint32(len(materials.Materials))
			materialIndex[m.Color] = pIndex
			materials.Materials = append(materials.Materials, go3mf.Base{
				Name:  m.PartName,
				Color: parseHexColor(m.Color),
			})
		}

		obj := &go3mf.Object{
			ID:     uint32(i + 2), // 1 is the material group
			Name:   m.PartName,
			PID:    materials.ID,
			PIndex: pIndex,
			Mesh:   new(go3mf.Mesh),
		}
		for v := 0; v < m.VertexCount(); v++ {
			obj.Mesh.Vertices.Vertex = append(obj.Mesh.Vertices.Vertex, go3mf.Point3D{
				m.Vertices[v*3], m.Vertices[v*3+1], m.Vertices[v*3+2],
			})
		}
		for t := 0; t < m.TriangleCount(); t++ {
			obj.Mesh.Triangles.Triangle = append(obj.Mesh.Triangles.Triangle, go3mf.Triangle{
				V1: m.Indices[t*3], V2: m.Indices[t*3+1], V3: m.Indices[t*3+2],
			})
		}

		model.Resources.Objects = append(model.Resources.Objects, obj)
		model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: obj.ID})
	}
	model.Resources.Assets = append(model.Resources.Assets, materials)

	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := w.Encode(model); err != nil {
		w.Close()
		return fmt.Errorf("export: encoding 3mf: %w", err)
	}
	return w.Close()
}

// parseHexColor decodes "#rrggbb"; anything unparseable comes out white.
func parseHexColor(s string) color.RGBA {
	c := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			c.R, c.G, c.B = r, g, b
		}
	}
	return c
}
