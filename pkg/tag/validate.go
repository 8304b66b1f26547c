package tag

import "fmt"

// ValidationSeverity indicates whether a finding blocks generation or is
// merely advisory.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks generation
	SeverityWarning                           // advisory, value will be clamped
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Field    string
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Field, e.Message)
}

// Validate checks a config before generation. The engine assumes a
// validated config: it produces bounded but undefined geometry otherwise.
// Errors must block generation; warnings flag values the geometry layer
// will clamp.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	fail := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{
			Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityError,
		})
	}
	warn := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{
			Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning,
		})
	}

	b := &c.Base
	if b.Width <= 0 {
		fail("base.width", "must be positive, got %g", b.Width)
	}
	if b.Height <= 0 {
		fail("base.height", "must be positive, got %g", b.Height)
	}
	if b.Depth <= 0 {
		fail("base.depth", "must be positive, got %g", b.Depth)
	}
	if c.Code.Margin < 0 {
		fail("code.margin", "must not be negative, got %g", c.Code.Margin)
	}

	if _, ok := shapeNames[b.Shape]; !ok {
		fail("base.shape", "unknown value %d", int(b.Shape))
	}
	if b.Shape == ShapeRoundedRectangle {
		if b.CornerRadius < 0 {
			fail("base.cornerRadius", "must not be negative, got %g", b.CornerRadius)
		} else if limit := min(b.Width, b.Height) / 2; b.CornerRadius > limit {
			warn("base.cornerRadius", "%g exceeds half the shortest side, clamped to %g",
				b.CornerRadius, limit)
		}
	}

	if b.HasBorder {
		if b.BorderWidth <= 0 {
			fail("base.borderWidth", "must be positive, got %g", b.BorderWidth)
		}
		if b.BorderDepth <= 0 {
			fail("base.borderDepth", "must be positive, got %g", b.BorderDepth)
		}
		if 2*b.BorderWidth >= min(b.Width, b.Height) {
			fail("base.borderWidth", "border consumes the whole plate")
		}
	}

	if b.HasText {
		if _, ok := placementNames[b.TextPlacement]; !ok {
			fail("base.textPlacement", "unknown value %d", int(b.TextPlacement))
		}
		if _, ok := alignNames[b.TextAlign]; !ok {
			fail("base.textAlign", "unknown value %d", int(b.TextAlign))
		}
		if b.TextSize <= 0 {
			fail("base.textSize", "must be positive, got %g", b.TextSize)
		}
		if b.TextDepth <= 0 {
			fail("base.textDepth", "must be positive, got %g", b.TextDepth)
		}
		if b.TextMargin < 0 {
			fail("base.textMargin", "must not be negative, got %g", b.TextMargin)
		}
		if b.TextPlacement.Horizontal() {
			if avail := c.AvailableWidth(); avail < 0 {
				fail("base.width", "available label width is negative (%g)", avail)
			} else if avail < b.TextSize {
				warn("base.textSize", "available width %g is narrower than one glyph", avail)
			}
		}
	}

	if b.HasNfcIndentation {
		if _, ok := indentShapeNames[b.NfcIndentationShape]; !ok {
			fail("base.nfcIndentationShape", "unknown value %d", int(b.NfcIndentationShape))
		}
		if b.NfcIndentationSize <= 0 {
			fail("base.nfcIndentationSize", "must be positive, got %g", b.NfcIndentationSize)
		}
		if b.NfcIndentationDepth <= 0 {
			fail("base.nfcIndentationDepth", "must be positive, got %g", b.NfcIndentationDepth)
		}
		if b.NfcIndentationDepth >= b.Depth {
			warn("base.nfcIndentationDepth", "%g pierces the %g plate", b.NfcIndentationDepth, b.Depth)
		}
		if b.NfcIndentationSize > min(b.Width, b.Height) {
			warn("base.nfcIndentationSize", "%g is larger than the plate", b.NfcIndentationSize)
		}
	}

	if b.HasKeychainAttachment {
		if _, ok := keychainPlacementNames[b.KeychainPlacement]; !ok {
			fail("base.keychainPlacement", "unknown value %d", int(b.KeychainPlacement))
		}
		if b.KeychainHoleDiameter <= 0 {
			fail("base.keychainHoleDiameter", "must be positive, got %g", b.KeychainHoleDiameter)
		}
	}

	return errs
}

// HasBlockingErrors reports whether any finding carries error severity.
func HasBlockingErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
