// Package tag generates a parametric, 3D-printable tag model: a base
// plate, an optional border frame, an optional multi-line embossed label,
// an optional NFC indentation cavity and an optional keychain attachment.
// All geometry goes through the abstract kernel interface; this package
// owns layout math and part composition only.
package tag

import (
	"encoding/json"
	"fmt"
)

// Config is the declarative input for one generation. It is treated as
// read-only for the duration of Generate; discovered line breaks are
// returned in the Result, never written back.
type Config struct {
	Base Base `json:"base"`
	Code Code `json:"code"`
}

// Base describes the plate and everything attached to it.
type Base struct {
	Width        float64 `json:"width"`  // mm
	Height       float64 `json:"height"` // mm
	Depth        float64 `json:"depth"`  // mm
	Shape        Shape   `json:"shape"`
	CornerRadius float64 `json:"cornerRadius"`

	HasBorder   bool    `json:"hasBorder"`
	BorderWidth float64 `json:"borderWidth"`
	BorderDepth float64 `json:"borderDepth"`

	HasText       bool      `json:"hasText"`
	TextMessage   string    `json:"textMessage"` // may contain \n and *..* emphasis markers
	TextPlacement Placement `json:"textPlacement"`
	TextAlign     Align     `json:"textAlign"`
	TextSize      float64   `json:"textSize"`
	TextDepth     float64   `json:"textDepth"`
	TextMargin    float64   `json:"textMargin"`

	HasNfcIndentation    bool        `json:"hasNfcIndentation"`
	NfcIndentationShape  IndentShape `json:"nfcIndentationShape"`
	NfcIndentationSize   float64     `json:"nfcIndentationSize"`
	NfcIndentationDepth  float64     `json:"nfcIndentationDepth"`
	NfcIndentationHidden bool        `json:"nfcIndentationHidden"`

	HasKeychainAttachment bool              `json:"hasKeychainAttachment"`
	KeychainHoleDiameter  float64           `json:"keychainHoleDiameter"`
	KeychainPlacement     KeychainPlacement `json:"keychainPlacement"`
	MirrorHoles           bool              `json:"mirrorHoles"`
}

// Code describes the content payload region the plate is built around.
type Code struct {
	// Margin is the space reserved around the payload; it constrains the
	// label's available width.
	Margin float64 `json:"margin"`
	// Invert engraves the label into the plate instead of emitting it as a
	// raised part. The engine omits the label from the additive merge and
	// leaves the subtraction to a downstream consumer.
	Invert bool `json:"invert"`
}

const (
	baseColor   = "#1a1a1a"
	detailColor = "#e8e8e8"
)

// BaseColor returns the color of the structural parts (plate, keychain).
func (c *Config) BaseColor() string {
	if c.Code.Invert {
		return detailColor
	}
	return baseColor
}

// DetailColor returns the color of the decorative parts (border, label).
func (c *Config) DetailColor() string {
	if c.Code.Invert {
		return baseColor
	}
	return detailColor
}

// ParseConfig decodes a JSON config over the defaults. Unknown enum values
// fail here so the engine never sees an out-of-range field.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("tag: parsing config: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns a config with the stock keychain-plate defaults.
func DefaultConfig() *Config {
	return &Config{
		Base: Base{
			Width:        60,
			Height:       40,
			Depth:        3,
			Shape:        ShapeRoundedRectangle,
			CornerRadius: 4,

			BorderWidth: 1.5,
			BorderDepth: 1,

			TextPlacement: PlacementBottom,
			TextAlign:     AlignCenter,
			TextSize:      4,
			TextDepth:     1,
			TextMargin:    2,

			NfcIndentationShape: IndentRound,
			NfcIndentationSize:  26,
			NfcIndentationDepth: 1,

			KeychainHoleDiameter: 6,
			KeychainPlacement:    KeychainLeft,
		},
		Code: Code{Margin: 2},
	}
}

// ---------------------------------------------------------------------------
// Enums. All decode from their JSON string form and reject unknown values.
// ---------------------------------------------------------------------------

// Shape selects the base plate outline family.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeRoundedRectangle
)

var shapeNames = map[Shape]string{
	ShapeRectangle:        "rectangle",
	ShapeRoundedRectangle: "roundedRectangle",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func (s Shape) MarshalJSON() ([]byte, error) {
	return marshalEnumName(shapeNames[s], "shape")
}

func (s *Shape) UnmarshalJSON(b []byte) error {
	for k, n := range shapeNames {
		if enumNameMatches(b, n) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("tag: unknown shape %s", b)
}

// Placement selects which plate edge the label strip is reserved on.
// Center places the label inside the content region instead.
type Placement int

const (
	PlacementBottom Placement = iota
	PlacementTop
	PlacementLeft
	PlacementRight
	PlacementCenter
)

var placementNames = map[Placement]string{
	PlacementBottom: "bottom",
	PlacementTop:    "top",
	PlacementLeft:   "left",
	PlacementRight:  "right",
	PlacementCenter: "center",
}

func (p Placement) String() string {
	if n, ok := placementNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// Horizontal reports whether label lines run in the plate's width
// direction and participate in wrapping (top, bottom and center).
func (p Placement) Horizontal() bool {
	return p == PlacementTop || p == PlacementBottom || p == PlacementCenter
}

func (p Placement) MarshalJSON() ([]byte, error) {
	return marshalEnumName(placementNames[p], "textPlacement")
}

func (p *Placement) UnmarshalJSON(b []byte) error {
	for k, n := range placementNames {
		if enumNameMatches(b, n) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("tag: unknown textPlacement %s", b)
}

// Align selects how each label line sits inside the available span.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

var alignNames = map[Align]string{
	AlignCenter: "center",
	AlignLeft:   "left",
	AlignRight:  "right",
}

func (a Align) String() string {
	if n, ok := alignNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

func (a Align) MarshalJSON() ([]byte, error) {
	return marshalEnumName(alignNames[a], "textAlign")
}

func (a *Align) UnmarshalJSON(b []byte) error {
	for k, n := range alignNames {
		if enumNameMatches(b, n) {
			*a = k
			return nil
		}
	}
	return fmt.Errorf("tag: unknown textAlign %s", b)
}

// IndentShape selects the NFC cavity cutter shape.
type IndentShape int

const (
	IndentRound IndentShape = iota
	IndentSquare
)

var indentShapeNames = map[IndentShape]string{
	IndentRound:  "round",
	IndentSquare: "square",
}

func (s IndentShape) String() string {
	if n, ok := indentShapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("IndentShape(%d)", int(s))
}

func (s IndentShape) MarshalJSON() ([]byte, error) {
	return marshalEnumName(indentShapeNames[s], "nfcIndentationShape")
}

func (s *IndentShape) UnmarshalJSON(b []byte) error {
	for k, n := range indentShapeNames {
		if enumNameMatches(b, n) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("tag: unknown nfcIndentationShape %s", b)
}

// KeychainPlacement selects where the attachment tab joins the plate.
type KeychainPlacement int

const (
	KeychainLeft KeychainPlacement = iota
	KeychainTop
	KeychainTopLeft
)

var keychainPlacementNames = map[KeychainPlacement]string{
	KeychainLeft:    "left",
	KeychainTop:     "top",
	KeychainTopLeft: "topLeft",
}

func (p KeychainPlacement) String() string {
	if n, ok := keychainPlacementNames[p]; ok {
		return n
	}
	return fmt.Sprintf("KeychainPlacement(%d)", int(p))
}

func (p KeychainPlacement) MarshalJSON() ([]byte, error) {
	return marshalEnumName(keychainPlacementNames[p], "keychainPlacement")
}

func (p *KeychainPlacement) UnmarshalJSON(b []byte) error {
	for k, n := range keychainPlacementNames {
		if enumNameMatches(b, n) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("tag: unknown keychainPlacement %s", b)
}

// marshalEnumName encodes a looked-up enum name, rejecting out-of-range
// values whose lookup produced an empty name.
func marshalEnumName(name, field string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("tag: %s value out of range", field)
	}
	return json.Marshal(name)
}

// enumNameMatches reports whether raw JSON b is the string literal name.
func enumNameMatches(b []byte, name string) bool {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return false
	}
	return s == name
}
