// Package tessellate turns a generated part set into triangle meshes
// using a geometry kernel. One mesh is produced per part; the combined
// export mesh is the flat concatenation of the per-part meshes, not a
// boolean union.
package tessellate

import (
	"fmt"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
	"github.com/dwongdev/qrcode2stl/pkg/tag"
)

// Parts tessellates every individual part of the set, in insertion order,
// skipping the combined part. The tessellator is read-only and never
// mutates the set. Mesh colors follow the config's two-material split.
func Parts(ps *tag.PartSet, cfg *tag.Config, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if ps == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	for _, p := range ps.Parts() {
		if p.Name == tag.PartCombined {
			continue
		}
		mesh, err := k.ToMesh(p.Solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for part %s: %w", p.Name, err)
		}
		mesh.PartName = string(p.Name)
		mesh.Color = partColor(p, cfg)
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Combined concatenates per-part meshes into one flat mesh for
// single-file export. Coincident faces between parts are kept, matching
// how the parts print as one object.
func Combined(meshes []*kernel.Mesh) *kernel.Mesh {
	out := &kernel.Mesh{PartName: string(tag.PartCombined)}
	for _, m := range meshes {
		out.Append(m)
	}
	return out
}

// partColor maps a part's material tag to its export color.
func partColor(p *tag.Part, cfg *tag.Config) string {
	if cfg == nil {
		return ""
	}
	if p.Material == tag.MaterialDetail {
		return cfg.DetailColor()
	}
	return cfg.BaseColor()
}
