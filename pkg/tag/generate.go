package tag

import (
	"fmt"
	"strings"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
)

// Result bundles the output of one generation: the named parts and the
// re-flowed label lines. The input config is never mutated; callers that
// want idempotent re-generation persist Message back themselves.
type Result struct {
	Parts *PartSet
	// Lines holds the wrapped label lines with their emphasis markers
	// re-applied. Empty when the config has no label.
	Lines []string
}

// Message returns the wrapped label message rejoined with line breaks.
// Generating again from a config carrying this message yields the same
// line list.
func (r *Result) Message() string {
	return strings.Join(r.Lines, "\n")
}

// Generate builds all parts of the tag from a pre-validated config.
// Generation order is fixed: label, base plate, border, keychain
// attachment, then the combined merge of every active part. It either
// returns a complete, internally consistent part set or fails outright;
// kernel panics (degenerate geometry, boolean failures) surface as
// errors, never as partial results.
func Generate(cfg *Config, k kernel.Kernel) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("tag: generation failed: %v", r)
		}
	}()

	eng := &textEngine{k: k, cfg: cfg}

	// Label layout first: the wrapped line count feeds the plate sizing.
	var lines []line
	var renderWidth float64
	if cfg.Base.HasText {
		lines = parseLines(cfg.Base.TextMessage)
		// The sizing pre-pass only feeds the side (left/right) label strip;
		// horizontal placements size from line count alone.
		if !cfg.Base.TextPlacement.Horizontal() {
			renderWidth, err = eng.renderWidth(lines)
			if err != nil {
				return nil, err
			}
		}
		lines, err = eng.wrap(lines)
		if err != nil {
			return nil, err
		}
	}

	lay := newLayout(cfg, len(lines), renderWidth)
	comp := &composer{k: k, cfg: cfg, lay: lay}
	parts := NewPartSet()

	if cfg.Base.HasText {
		label, err := eng.buildLabel(lines, lay)
		if err != nil {
			return nil, err
		}
		if label != nil {
			parts.Add(&Part{Name: PartSubtitle, Solid: label, Material: MaterialDetail})
		}
	}

	plate := comp.basePlate()
	parts.Add(&Part{Name: PartBase, Solid: plate, Material: MaterialBase})

	if cfg.Base.HasBorder {
		parts.Add(&Part{Name: PartBorder, Solid: comp.border(), Material: MaterialDetail})
	}

	if cfg.Base.HasKeychainAttachment {
		parts.Add(&Part{
			Name:     PartKeychain,
			Solid:    comp.keychain(plate),
			Material: MaterialBase,
		})
	}

	// Combined: flat assembly of every active part, transforms baked in.
	// An inverted label stays a part but is left out of the merge; it is the
	// cavity a downstream consumer subtracts from the base.
	active := make([]kernel.Solid, 0, parts.Len())
	for _, p := range parts.Parts() {
		if p.Name == PartSubtitle && cfg.Code.Invert {
			continue
		}
		active = append(active, p.Solid)
	}
	parts.Add(&Part{Name: PartCombined, Solid: k.Merge(active...), Material: MaterialBase})

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return &Result{Parts: parts, Lines: out}, nil
}
