package tag

import (
	"fmt"
	"strings"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
)

// maxEmphasisLevel is the deepest marker nesting that is stripped; a 4th
// level marker stays part of the text.
const maxEmphasisLevel = 3

// line is one physical label line with its emphasis level (0..3, mapped
// 1:1 to kernel.FontStyle).
type line struct {
	text  string
	level int
}

// style maps the emphasis level to a font style.
func (l line) style() kernel.FontStyle {
	return kernel.FontStyle(l.level)
}

// markers returns the emphasis markers for the line's level, so split
// lines can be rejoined with their original emphasis intact.
func (l line) markers() string {
	return strings.Repeat("*", l.level)
}

// String re-applies the emphasis markers around the text.
func (l line) String() string {
	return l.markers() + l.text + l.markers()
}

// parseLine strips balanced leading/trailing emphasis markers, up to
// maxEmphasisLevel. "**Hello**" becomes {text: "Hello", level: 2}.
func parseLine(s string) line {
	r := []rune(s)
	level := 0
	for level < maxEmphasisLevel &&
		len(r) >= 2*(level+1) &&
		r[level] == '*' &&
		r[len(r)-1-level] == '*' {
		level++
	}
	return line{text: string(r[level : len(r)-level]), level: level}
}

// parseLines splits the raw message on line breaks and parses the
// emphasis markers of each physical line.
func parseLines(message string) []line {
	raw := strings.Split(message, "\n")
	lines := make([]line, len(raw))
	for i, s := range raw {
		lines[i] = parseLine(s)
	}
	return lines
}

// joinLines rejoins lines into a message, markers re-applied. Feeding the
// result back through parse and wrap is idempotent.
func joinLines(lines []line) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// textEngine lays out the label. It only talks to the kernel through
// Text+BoundingBox, which it treats as an expensive pure measurement.
type textEngine struct {
	k   kernel.Kernel
	cfg *Config
}

// measure renders a candidate run and returns its bounding box.
func (e *textEngine) measure(s string, style kernel.FontStyle) (kernel.Solid, [3]float64, [3]float64, error) {
	solid, err := e.k.Text(s, style, e.cfg.Base.TextSize, e.cfg.Base.TextDepth)
	if err != nil {
		return nil, [3]float64{}, [3]float64{}, err
	}
	min, max := solid.BoundingBox()
	return solid, min, max, nil
}

// width returns the rendered width of a candidate run.
func (e *textEngine) width(s string, style kernel.FontStyle) (float64, error) {
	if s == "" {
		return 0, nil
	}
	_, min, max, err := e.measure(s, style)
	if err != nil {
		return 0, err
	}
	return max[0] - min[0], nil
}

// renderWidth measures every line of the unwrapped message with the plain
// face and returns the widest. This sizing pre-pass is what the side
// (left/right) placements use to reserve the label strip; it is distinct
// from the final wrapped layout.
func (e *textEngine) renderWidth(lines []line) (float64, error) {
	widest := 0.0
	for _, l := range lines {
		w, err := e.width(l.text, kernel.FontRegular)
		if err != nil {
			return 0, err
		}
		if w > widest {
			widest = w
		}
	}
	return widest, nil
}

// wrap reflows lines so every rendered line fits the available width.
// Only horizontal placements reflow; side placements assume the plate was
// sized to fit every line. Overflowing runes move one at a time onto the
// following line, which inherits the emphasis level of its origin. The
// candidate strictly shortens by one rune per iteration, so the loop
// terminates in at most len(text) steps per line.
func (e *textEngine) wrap(lines []line) ([]line, error) {
	if !e.cfg.Base.TextPlacement.Horizontal() {
		return lines, nil
	}
	avail := e.cfg.AvailableWidth()

	for i := 0; i < len(lines); i++ {
		overflowed := false
		for {
			r := []rune(lines[i].text)
			if len(r) <= 1 {
				break
			}
			w, err := e.width(lines[i].text, lines[i].style())
			if err != nil {
				return nil, err
			}
			if w <= avail {
				break
			}

			last := string(r[len(r)-1])
			lines[i].text = string(r[:len(r)-1])
			if !overflowed {
				next := line{text: last, level: lines[i].level}
				lines = append(lines[:i+1], append([]line{next}, lines[i+1:]...)...)
				overflowed = true
			} else {
				lines[i+1].text = last + lines[i+1].text
			}
		}
	}
	return lines, nil
}

// ---------------------------------------------------------------------------
// Placement and alignment offset tables. Each formula returns a target
// coordinate for a line; dispatching through tables keeps the placement x
// align matrix exhaustive and exhaustively testable.
// ---------------------------------------------------------------------------

// horizontalAlign returns the target minimum-x of a line of width w inside
// an available span of width avail centered on x=0.
var horizontalAlign = map[Align]func(avail, w float64) float64{
	AlignLeft:   func(avail, w float64) float64 { return -avail / 2 },
	AlignCenter: func(avail, w float64) float64 { return -w / 2 },
	AlignRight:  func(avail, w float64) float64 { return avail/2 - w },
}

// verticalPlacement returns the target center-y of line j out of n for the
// horizontal placements. Bottom grows inward from the plate's bottom edge
// past the border ring, top grows inward from the top edge likewise, center
// stacks the block around the content center.
var verticalPlacement = map[Placement]func(l layout, n, j int) float64{
	PlacementBottom: func(l layout, n, j int) float64 {
		_, y, _, _ := l.plateRect()
		pitch := l.cfg.Base.TextSize * LineHeight
		return y + l.borderInset() + l.cfg.Base.TextMargin + (float64(n-1-j)+0.5)*pitch
	},
	PlacementTop: func(l layout, n, j int) float64 {
		_, y, _, h := l.plateRect()
		pitch := l.cfg.Base.TextSize * LineHeight
		return y + h - l.borderInset() - l.cfg.Base.TextMargin - (float64(j)+0.5)*pitch
	},
	PlacementCenter: func(l layout, n, j int) float64 {
		pitch := l.cfg.Base.TextSize * LineHeight
		return (float64(n-1)/2 - float64(j)) * pitch
	},
}

// sideStack returns the target center-y of line j out of n for the side
// placements, where textAlign governs the vertical stacking instead:
// left is flush to the top margin, right flush to the bottom margin.
var sideStack = map[Align]func(l layout, n, j int) float64{
	AlignLeft: func(l layout, n, j int) float64 {
		pitch := l.cfg.Base.TextSize * LineHeight
		return l.cfg.Base.Height/2 - l.cfg.Base.TextMargin - (float64(j)+0.5)*pitch
	},
	AlignCenter: func(l layout, n, j int) float64 {
		pitch := l.cfg.Base.TextSize * LineHeight
		return (float64(n-1)/2 - float64(j)) * pitch
	},
	AlignRight: func(l layout, n, j int) float64 {
		pitch := l.cfg.Base.TextSize * LineHeight
		return -l.cfg.Base.Height/2 + l.cfg.Base.TextMargin + (float64(n-1-j)+0.5)*pitch
	},
}

// sideCenterX returns the center-x of the side label strip.
func sideCenterX(l layout) float64 {
	switch l.cfg.Base.TextPlacement {
	case PlacementLeft:
		return -l.cfg.Base.Width/2 - l.baseOffset/2
	default: // PlacementRight
		return l.cfg.Base.Width/2 + l.baseOffset/2
	}
}

// buildLabel renders every wrapped line, positions it per the placement
// and alignment tables, and merges the lines into one label solid sitting
// on top of the plate.
func (e *textEngine) buildLabel(lines []line, lay layout) (kernel.Solid, error) {
	placement := e.cfg.Base.TextPlacement
	align := e.cfg.Base.TextAlign
	n := len(lines)

	var solids []kernel.Solid
	for j, ln := range lines {
		if ln.text == "" {
			continue
		}
		solid, min, max, err := e.measure(ln.text, ln.style())
		if err != nil {
			return nil, fmt.Errorf("tag: laying out line %d: %w", j, err)
		}
		w := max[0] - min[0]
		cy := (min[1] + max[1]) / 2

		var dx, dy float64
		if placement.Horizontal() {
			dx = horizontalAlign[align](lay.availWidth, w) - min[0]
			dy = verticalPlacement[placement](lay, n, j) - cy
		} else {
			dx = sideCenterX(lay) - (min[0] + w/2)
			dy = sideStack[align](lay, n, j) - cy
		}
		solids = append(solids, e.k.Translate(solid, dx, dy, e.cfg.Base.Depth))
	}
	if len(solids) == 0 {
		return nil, nil
	}
	return e.k.Merge(solids...), nil
}
