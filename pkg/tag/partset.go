package tag

import "github.com/dwongdev/qrcode2stl/pkg/kernel"

// Material tags a part as structural or decorative; the two-material
// split drives export colors.
type Material int

const (
	MaterialBase Material = iota
	MaterialDetail
)

func (m Material) String() string {
	switch m {
	case MaterialBase:
		return "base"
	case MaterialDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// PartName identifies a generated part.
type PartName string

const (
	PartBase     PartName = "base"
	PartBorder   PartName = "border"
	PartSubtitle PartName = "subtitle"
	PartKeychain PartName = "keychainAttachment"
	PartCombined PartName = "combined"
)

// Part is one named solid of the generated tag.
type Part struct {
	Name     PartName
	Solid    kernel.Solid
	Material Material
}

// PartSet is an insertion-ordered set of named parts. Insertion order is
// generation order; the combined part, when present, is last.
type PartSet struct {
	order []PartName
	parts map[PartName]*Part
}

// NewPartSet returns an empty part set.
func NewPartSet() *PartSet {
	return &PartSet{parts: make(map[PartName]*Part)}
}

// Add appends a part, replacing any existing part of the same name while
// keeping its original position.
func (ps *PartSet) Add(p *Part) {
	if _, ok := ps.parts[p.Name]; !ok {
		ps.order = append(ps.order, p.Name)
	}
	ps.parts[p.Name] = p
}

// Get returns the named part, or nil.
func (ps *PartSet) Get(name PartName) *Part {
	return ps.parts[name]
}

// Names returns the part names in insertion order.
func (ps *PartSet) Names() []PartName {
	out := make([]PartName, len(ps.order))
	copy(out, ps.order)
	return out
}

// Parts returns the parts in insertion order.
func (ps *PartSet) Parts() []*Part {
	out := make([]*Part, 0, len(ps.order))
	for _, name := range ps.order {
		out = append(out, ps.parts[name])
	}
	return out
}

// Len returns the number of parts.
func (ps *PartSet) Len() int {
	return len(ps.order)
}
