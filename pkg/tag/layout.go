package tag

import "math"

// LineHeight is the vertical pitch of a label line as a multiple of the
// text size.
const LineHeight = 1.5

// topOffsetCorrection is a small correction applied to the border-hole
// position for the top text placement. It compensates a rounding/overlap
// artifact observed in reference renders of the top placement; it is kept
// as-is rather than re-derived.
const topOffsetCorrection = -0.1

// nfcHiddenFloor is the material left under a hidden NFC cavity so the
// cavity is fully enclosed instead of opening at the underside. Two
// standard 0.2mm print layers.
const nfcHiddenFloor = 0.4

// layout carries the shared geometric quantities derived once per
// generation. Plate, border and label placement all read the same values,
// which is what keeps the three mutually aligned.
//
// The frame is content-centered: the payload (QR/content) region always
// spans [-Width/2, Width/2] x [-Height/2, Height/2], and any label strip
// extends the plate beyond it on the placement side.
type layout struct {
	cfg *Config

	cornerRadius float64
	availWidth   float64
	baseOffset   float64 // extra plate extent reserved for the label strip
	topOffset    float64 // border-hole compensation, top placement only
	leftOffset   float64 // border-hole compensation, left placement only
	lineCount    int
	renderWidth  float64 // widest unwrapped line, plain face
}

// newLayout derives the shared quantities. lineCount is the wrapped label
// line count; renderWidth is the widest line of the unwrapped message
// measured with the plain face (the sizing pre-pass for side placements).
func newLayout(cfg *Config, lineCount int, renderWidth float64) layout {
	l := layout{
		cfg:         cfg,
		availWidth:  cfg.AvailableWidth(),
		lineCount:   lineCount,
		renderWidth: renderWidth,
	}
	l.cornerRadius = cfg.CornerRadius()
	l.baseOffset = l.textBaseOffset()
	l.topOffset = l.textTopOffset()
	l.leftOffset = l.textLeftOffset()
	return l
}

// CornerRadius returns the effective plate corner radius: the configured
// radius for rounded-rectangle plates, zero otherwise.
func (c *Config) CornerRadius() float64 {
	if c.Base.Shape == ShapeRoundedRectangle {
		return c.Base.CornerRadius
	}
	return 0
}

// AvailableWidth returns the horizontal space left for label text after
// the payload margins and, when present, the border.
func (c *Config) AvailableWidth() float64 {
	w := c.Base.Width - 2*c.Code.Margin
	if c.Base.HasBorder {
		w -= 2 * c.Base.BorderWidth
	}
	return w
}

// textBaseOffset is the extra plate extent reserved for the label strip.
// Top/bottom placements reserve stacked line pitches; left/right reserve
// the widest rendered line. Center renders inside the content region and
// reserves nothing.
func (l layout) textBaseOffset() float64 {
	c := l.cfg
	if !c.Base.HasText {
		return 0
	}
	switch c.Base.TextPlacement {
	case PlacementTop, PlacementBottom:
		return c.Base.TextSize*float64(l.lineCount)*LineHeight + 2*c.Base.TextMargin
	case PlacementLeft, PlacementRight:
		return l.renderWidth + 2*c.Base.TextMargin
	default:
		return 0
	}
}

// textTopOffset is the asymmetric compensation used when positioning the
// border hole for the top placement: twice the reserved offset, plus the
// documented correction constant.
func (l layout) textTopOffset() float64 {
	if l.cfg.Base.HasText && l.cfg.Base.TextPlacement == PlacementTop {
		return 2*l.baseOffset + topOffsetCorrection
	}
	return 0
}

// textLeftOffset is the analogous compensation for the left placement.
// It equals the base offset: the left side needs nothing beyond what
// textBaseOffset already supplies.
func (l layout) textLeftOffset() float64 {
	if l.cfg.Base.HasText && l.cfg.Base.TextPlacement == PlacementLeft {
		return l.baseOffset
	}
	return 0
}

// plateRect returns the base plate footprint (min corner and size). The
// content region stays fixed; the strip extends the plate on the label
// side only.
func (l layout) plateRect() (x, y, w, h float64) {
	c := l.cfg.Base
	x, y = -c.Width/2, -c.Height/2
	w, h = c.Width, c.Height
	switch c.TextPlacement {
	case PlacementTop:
		h += l.baseOffset
	case PlacementBottom:
		y -= l.baseOffset
		h += l.baseOffset
	case PlacementLeft:
		x -= l.baseOffset
		w += l.baseOffset
	case PlacementRight:
		w += l.baseOffset
	}
	return x, y, w, h
}

// holeShift returns the offset applied to the border-hole center along the
// label axis, relative to the plate center. The top placement consumes the
// doubled offset (and its correction); every other placement needs none
// beyond what textBaseOffset already supplies, so the hole stays
// concentric with the outer profile.
func (l layout) holeShift() (dx, dy float64) {
	switch l.cfg.Base.TextPlacement {
	case PlacementTop:
		dy = (l.topOffset - 2*l.baseOffset) / 2
	case PlacementLeft:
		dx = l.leftOffset - l.baseOffset
	}
	return dx, dy
}

// borderHoleRadius is the inner profile's corner radius: the plate radius
// reduced by the border width, floored at zero.
func (l layout) borderHoleRadius() float64 {
	return math.Max(0, l.cornerRadius-l.cfg.Base.BorderWidth)
}

// borderInset is the extra inward offset the label needs to clear the
// border ring, which occupies the same z range on the strip edge.
func (l layout) borderInset() float64 {
	if l.cfg.Base.HasBorder {
		return l.cfg.Base.BorderWidth
	}
	return 0
}
