package tag

import "testing"

// findingsFor runs Validate and indexes the findings by field.
func findingsFor(cfg *Config) map[string]ValidationError {
	out := make(map[string]ValidationError)
	for _, e := range cfg.Validate() {
		out[e.Field] = e
	}
	return out
}

func TestValidateDefaults(t *testing.T) {
	if errs := DefaultConfig().Validate(); len(errs) != 0 {
		t.Fatalf("default config has findings: %v", errs)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(cfg *Config)
		field string
	}{
		{"zero width", func(c *Config) { c.Base.Width = 0 }, "base.width"},
		{"negative height", func(c *Config) { c.Base.Height = -10 }, "base.height"},
		{"zero depth", func(c *Config) { c.Base.Depth = 0 }, "base.depth"},
		{"negative margin", func(c *Config) { c.Code.Margin = -1 }, "code.margin"},
		{"negative corner radius", func(c *Config) { c.Base.CornerRadius = -2 }, "base.cornerRadius"},
		{"unknown shape", func(c *Config) { c.Base.Shape = Shape(9) }, "base.shape"},
		{
			"border consumes the plate",
			func(c *Config) { c.Base.HasBorder = true; c.Base.BorderWidth = 25 },
			"base.borderWidth",
		},
		{
			"zero border depth",
			func(c *Config) { c.Base.HasBorder = true; c.Base.BorderDepth = 0 },
			"base.borderDepth",
		},
		{
			"zero text size",
			func(c *Config) { c.Base.HasText = true; c.Base.TextSize = 0 },
			"base.textSize",
		},
		{
			"negative available width",
			func(c *Config) { c.Base.HasText = true; c.Code.Margin = 40 },
			"base.width",
		},
		{
			"zero nfc size",
			func(c *Config) { c.Base.HasNfcIndentation = true; c.Base.NfcIndentationSize = 0 },
			"base.nfcIndentationSize",
		},
		{
			"zero keychain hole",
			func(c *Config) { c.Base.HasKeychainAttachment = true; c.Base.KeychainHoleDiameter = 0 },
			"base.keychainHoleDiameter",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.tweak(cfg)

			errs := cfg.Validate()
			if !HasBlockingErrors(errs) {
				t.Fatalf("expected a blocking error, got %v", errs)
			}
			f, ok := findingsFor(cfg)[tt.field]
			if !ok {
				t.Fatalf("no finding for %s in %v", tt.field, errs)
			}
			if f.Severity != SeverityError {
				t.Errorf("severity = %v, want error", f.Severity)
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(cfg *Config)
		field string
	}{
		{
			"oversized corner radius",
			func(c *Config) { c.Base.CornerRadius = 100 },
			"base.cornerRadius",
		},
		{
			"narrow label strip",
			func(c *Config) { c.Base.HasText = true; c.Base.Width = 6 },
			"base.textSize",
		},
		{
			"nfc pierces the plate",
			func(c *Config) { c.Base.HasNfcIndentation = true; c.Base.NfcIndentationDepth = 3 },
			"base.nfcIndentationDepth",
		},
		{
			"nfc wider than the plate",
			func(c *Config) { c.Base.HasNfcIndentation = true; c.Base.NfcIndentationSize = 70 },
			"base.nfcIndentationSize",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.tweak(cfg)

			errs := cfg.Validate()
			if HasBlockingErrors(errs) {
				t.Fatalf("expected warnings only, got %v", errs)
			}
			f, ok := findingsFor(cfg)[tt.field]
			if !ok {
				t.Fatalf("no finding for %s in %v", tt.field, errs)
			}
			if f.Severity != SeverityWarning {
				t.Errorf("severity = %v, want warning", f.Severity)
			}
		})
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Field: "base.width", Message: "must be positive", Severity: SeverityError}
	if got := e.Error(); got != "[error] base.width: must be positive" {
		t.Errorf("Error() = %q", got)
	}
}

func TestHasBlockingErrors(t *testing.T) {
	warnings := []ValidationError{{Severity: SeverityWarning}}
	if HasBlockingErrors(warnings) {
		t.Error("warnings alone must not block")
	}
	mixed := append(warnings, ValidationError{Severity: SeverityError})
	if !HasBlockingErrors(mixed) {
		t.Error("an error finding must block")
	}
	if HasBlockingErrors(nil) {
		t.Error("no findings must not block")
	}
}
