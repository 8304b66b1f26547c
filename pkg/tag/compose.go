package tag

import (
	"math"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
	"github.com/dwongdev/qrcode2stl/pkg/profile"
)

// tabScale sizes the keychain tab from the hole diameter: the tab is a
// square of twice the hole diameter, leaving half a diameter of material
// around the hole on the outward sides.
const tabScale = 2.0

// cornerPlacementScale sizes the overlap between the tab and the plate:
// half a hole diameter of shared material keeps the union manifold.
const cornerPlacementScale = 0.5

// composer builds the tag's solid parts. Everything here is deterministic
// pure geometry; degenerate radii are clamped by the profile factory and
// dimension validity is the config loader's responsibility.
type composer struct {
	k   kernel.Kernel
	cfg *Config
	lay layout
}

// basePlate extrudes the plate footprint and, when configured, subtracts
// the NFC indentation cavity at the content center.
func (c *composer) basePlate() kernel.Solid {
	x, y, w, h := c.lay.plateRect()
	p := profile.RoundedRect(x, y, w, h, c.lay.cornerRadius)
	plate := c.k.Extrude(p, c.cfg.Base.Depth)
	if c.cfg.Base.HasNfcIndentation {
		plate = c.k.Difference(plate, c.nfcCutter())
	}
	return plate
}

// nfcCutter builds the indentation cutter, centered on the content region.
// The cavity opens at the underside by default; a hidden indentation is
// raised off the bottom face so a printable floor encloses it.
func (c *composer) nfcCutter() kernel.Solid {
	size := c.cfg.Base.NfcIndentationSize
	depth := c.cfg.Base.NfcIndentationDepth

	var cutter kernel.Solid
	if c.cfg.Base.NfcIndentationShape == IndentRound {
		cutter = c.k.Cylinder(depth, size/2, 64)
	} else {
		cutter = c.k.Box(size, size, depth)
	}

	z := depth / 2
	if c.cfg.Base.NfcIndentationHidden {
		z += nfcHiddenFloor
	}
	return c.k.Translate(cutter, 0, 0, z)
}

// border builds the frame: the plate footprint extruded by the border
// depth, minus an inner profile inset by the border width, translated to
// sit flush on top of the plate.
func (c *composer) border() kernel.Solid {
	x, y, w, h := c.lay.plateRect()
	bw := c.cfg.Base.BorderWidth

	outer := profile.RoundedRect(x, y, w, h, c.lay.cornerRadius)
	hole := profile.RoundedRect(x+bw, y+bw, w-2*bw, h-2*bw, c.lay.borderHoleRadius())
	dx, dy := c.lay.holeShift()
	hole = hole.Translate(dx, dy)

	frame := c.k.Difference(
		c.k.Extrude(outer, c.cfg.Base.BorderDepth),
		c.k.Extrude(hole, c.cfg.Base.BorderDepth),
	)
	return c.k.Translate(frame, 0, 0, c.cfg.Base.Depth)
}

// keychain builds the attachment: a rounded tab with a through-hole,
// positioned against the plate per the configured placement, and, when
// mirrored, a second tab at the diametrically opposite edge unioned into
// the same solid. The tab overlaps the plate slightly so the combined
// model prints as one piece.
func (c *composer) keychain(plate kernel.Solid) kernel.Solid {
	min, max := plate.BoundingBox()
	first := c.tabAt(min, max, c.cfg.Base.KeychainPlacement, false)
	if !c.cfg.Base.MirrorHoles {
		return first
	}
	second := c.tabAt(min, max, c.cfg.Base.KeychainPlacement, true)
	return c.k.Union(first, second)
}

// tab builds the attachment tab at the origin in its reference
// orientation: rounded end pointing in -x, hole already subtracted.
func (c *composer) tab() kernel.Solid {
	d := c.cfg.Base.KeychainHoleDiameter
	side := d * tabScale
	r := side / 2

	p := profile.CustomRoundedRect(-side/2, -side/2, side, side, r, 0, 0, r)
	body := c.k.Extrude(p, c.cfg.Base.Depth)

	hole := c.k.Cylinder(c.cfg.Base.Depth*3, d/2, 64)
	hole = c.k.Translate(hole, 0, 0, c.cfg.Base.Depth/2)
	return c.k.Difference(body, hole)
}

// tabAt orients and positions one tab against the plate bounding box.
// mirrored places it at the diametrically opposite edge or corner with
// the rotation negated.
func (c *composer) tabAt(bbMin, bbMax [3]float64, placement KeychainPlacement, mirrored bool) kernel.Solid {
	d := c.cfg.Base.KeychainHoleDiameter
	side := d * tabScale
	overlap := d * cornerPlacementScale
	// Offset from the plate edge to the tab center.
	reach := side/2 - overlap

	cx := (bbMin[0] + bbMax[0]) / 2
	cy := (bbMin[1] + bbMax[1]) / 2

	var rot, x, y float64
	switch placement {
	case KeychainLeft:
		rot, x, y = 0, bbMin[0]-reach, cy
	case KeychainTop:
		rot, x, y = -90, cx, bbMax[1]+reach
	case KeychainTopLeft:
		diag := reach / math.Sqrt2
		rot, x, y = -45, bbMin[0]-diag, bbMax[1]+diag
	}
	if mirrored {
		switch placement {
		case KeychainLeft:
			rot, x = 180, bbMax[0]+reach
		case KeychainTop:
			rot, y = 90, bbMin[1]-reach
		case KeychainTopLeft:
			diag := reach / math.Sqrt2
			rot, x, y = 135, bbMax[0]+diag, bbMin[1]-diag
		}
	}

	t := c.tab()
	if rot != 0 {
		t = c.k.Rotate(t, 0, 0, rot)
	}
	return c.k.Translate(t, x, y, 0)
}
