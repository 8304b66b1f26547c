package tag

import (
	"math"
	"testing"
)

func newComposer(cfg *Config) *composer {
	k := &fakeKernel{}
	return &composer{k: k, cfg: cfg, lay: newLayout(cfg, 0, 0)}
}

func TestBasePlateFootprint(t *testing.T) {
	cfg := DefaultConfig()
	c := newComposer(cfg)

	min, max := c.basePlate().BoundingBox()
	const tol = 1e-9
	if math.Abs(min[0]+30) > tol || math.Abs(max[0]-30) > tol ||
		math.Abs(min[1]+20) > tol || math.Abs(max[1]-20) > tol {
		t.Errorf("plate footprint %v..%v, want 60x40 centered", min, max)
	}
	if min[2] != 0 || max[2] != 3 {
		t.Errorf("plate z extent [%g, %g], want [0, 3]", min[2], max[2])
	}
}

func TestNfcCutter(t *testing.T) {
	t.Run("round opens at the underside", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Base.HasNfcIndentation = true
		c := newComposer(cfg)

		min, max := c.nfcCutter().BoundingBox()
		if min[2] != 0 || max[2] != 1 {
			t.Errorf("cutter z extent [%g, %g], want [0, 1]", min[2], max[2])
		}
		// Round cutter spans the indentation diameter.
		if min[0] != -13 || max[0] != 13 {
			t.Errorf("cutter x extent [%g, %g], want [-13, 13]", min[0], max[0])
		}
	})

	t.Run("hidden keeps a printable floor", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Base.HasNfcIndentation = true
		cfg.Base.NfcIndentationHidden = true
		c := newComposer(cfg)

		min, max := c.nfcCutter().BoundingBox()
		if min[2] != nfcHiddenFloor || max[2] != 1+nfcHiddenFloor {
			t.Errorf("hidden cutter z extent [%g, %g], want [%g, %g]",
				min[2], max[2], nfcHiddenFloor, 1+nfcHiddenFloor)
		}
	})

	t.Run("square", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Base.HasNfcIndentation = true
		cfg.Base.NfcIndentationShape = IndentSquare
		c := newComposer(cfg)

		min, max := c.nfcCutter().BoundingBox()
		if min[0] != -13 || max[0] != 13 || min[1] != -13 || max[1] != 13 {
			t.Errorf("square cutter extent %v..%v, want 26x26 centered", min, max)
		}
	})
}

func TestBorderSitsOnThePlate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Base.HasBorder = true
	c := newComposer(cfg)

	min, max := c.border().BoundingBox()
	// The frame shares the plate footprint and stacks on its top face.
	const tol = 1e-9
	if math.Abs(min[0]+30) > tol || math.Abs(max[0]-30) > tol {
		t.Errorf("border x extent [%g, %g], want [-30, 30]", min[0], max[0])
	}
	if min[2] != 3 || max[2] != 4 {
		t.Errorf("border z extent [%g, %g], want [3, 4]", min[2], max[2])
	}
}

func TestTabHasMaterialAroundTheHole(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Base.HasKeychainAttachment = true
	c := newComposer(cfg)

	min, max := c.tab().BoundingBox()
	// Tab side is twice the hole diameter, centered at the origin, plate deep.
	side := cfg.Base.KeychainHoleDiameter * tabScale
	if max[0]-min[0] != side || max[1]-min[1] != side {
		t.Errorf("tab extent %v..%v, want %gx%g", min, max, side, side)
	}
	if min[2] != 0 || max[2] != cfg.Base.Depth {
		t.Errorf("tab z extent [%g, %g], want [0, %g]", min[2], max[2], cfg.Base.Depth)
	}
}

func TestTabOverlapsThePlate(t *testing.T) {
	// Every placement must leave the tab overlapping the plate footprint so
	// the combined model prints as one piece.
	for placement := range keychainPlacementNames {
		cfg := DefaultConfig()
		cfg.Base.HasKeychainAttachment = true
		cfg.Base.KeychainPlacement = placement
		c := newComposer(cfg)

		plate := c.basePlate()
		pMin, pMax := plate.BoundingBox()
		kMin, kMax := c.keychain(plate).BoundingBox()

		overlaps := kMax[0] > pMin[0] && kMin[0] < pMax[0] &&
			kMax[1] > pMin[1] && kMin[1] < pMax[1]
		if !overlaps {
			t.Errorf("%s: tab %v..%v does not overlap plate %v..%v",
				placement, kMin, kMax, pMin, pMax)
		}
	}
}
