package catalog

import (
	"unit-generator/internal/common"
	"unit-generator/primitive"
	"unit-generator/unit"
)

// CatalogFile represents the root of a YAML unit catalog file.
// This is the authoritative, human-reviewed unit declaration.
type CatalogFile struct {
	// Version of the catalog schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name the generated file belongs to.
	Package string `yaml:"package"`

	// Output is the generated file name inside the package directory.
	Output string `yaml:"output,omitempty"`

	// Families is a list of unit families, one root each.
	Families []Family `yaml:"families"`
}

// Family declares one root unit and the units that resolve to it.
type Family struct {
	// Root is the canonical unit of the family. Every scaled or formula
	// unit in the family resolves to it.
	Root RootDef `yaml:"root"`

	// Repr is the Go representation of the payload. Defaults to float64.
	Repr string `yaml:"repr,omitempty"`

	// Capabilities is the default capability set, inherited by every unit
	// of the family that does not declare its own.
	Capabilities CapabilityList `yaml:"capabilities,omitempty"`

	// Convert lists default narrowing targets, inherited the same way.
	Convert StringArray `yaml:"convert,omitempty"`

	// Units is the list of non-root units.
	Units []UnitDef `yaml:"units,omitempty"`
}

// RootDef names the root unit.
// YAML formats supported:
//   - Simple string: "meter"
//   - Full form: {name: meter, symbol: m, literal: Meters}
type RootDef struct {
	Name    string `yaml:"name"`
	Symbol  string `yaml:"symbol,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// UnitDef declares a single non-root unit of a family.
type UnitDef struct {
	// Name of the unit, unique within the family.
	Name string `yaml:"name"`

	// Symbol is appended by the generated String method (e.g. "km").
	Symbol string `yaml:"symbol,omitempty"`

	// Literal is the name of the generated literal constructor.
	// Defaults to the exported unit name plus "s" (meter -> Meters).
	Literal string `yaml:"literal,omitempty"`

	// Scale relates this unit to a base by an exact rational factor.
	// Exactly one of Scale and Formula must be set.
	Scale *ScaleDef `yaml:"scale,omitempty"`

	// Formula relates this unit to an anchor through a function pair.
	Formula *FormulaDef `yaml:"formula,omitempty"`

	// Capabilities overrides the family default when present.
	Capabilities CapabilityList `yaml:"capabilities,omitempty"`

	// Convert overrides the family narrowing targets when present.
	Convert StringArray `yaml:"convert,omitempty"`
}

// IsScaled returns true if the unit declares a ratio relation.
func (u *UnitDef) IsScaled() bool { return u.Scale != nil }

// IsFormula returns true if the unit declares a formula relation.
func (u *UnitDef) IsFormula() bool { return u.Formula != nil }

// Base returns the name of the unit this one is declared against, or the
// empty string when no relation is present.
func (u *UnitDef) Base() string {
	switch {
	case u.Scale != nil:
		return u.Scale.Of
	case u.Formula != nil:
		return u.Formula.Of
	default:
		return ""
	}
}

// ScaleDef relates a unit to its base by an exact rational factor:
// 1 unit = Num/Den base.
// YAML formats supported:
//   - Scalar: "1000 meter", "1/1000 meter", "2.54 centimeter"
//   - Map: {of: meter, num: 1, den: 1000}
//
// The scalar decimal form is captured exactly ("2.54" becomes 127/50).
type ScaleDef struct {
	// Of is the base unit the factor applies against.
	Of string `yaml:"of"`

	// Num and Den are the exact factor. Omitted parts default to 1.
	Num int64 `yaml:"num,omitempty"`
	Den int64 `yaml:"den,omitempty"`
}

// Ratio returns the exact factor of this scale relation.
func (s *ScaleDef) Ratio() (unit.Ratio, error) {
	return unit.NewRatio(s.Num, s.Den)
}

// FormulaDef relates a unit to its anchor through a pair of pure functions
// declared in the output package: From maps an anchor amount into this unit,
// To maps it back.
type FormulaDef struct {
	Of   string `yaml:"of"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// CapabilityList is a list of capability names that can be unmarshaled from
// a single scalar ("comparable" or "comparable, hashable") or a sequence.
type CapabilityList []string

// Parse resolves the list into a capability set.
func (c CapabilityList) Parse() (primitive.CapabilityEnum, error) {
	caps := primitive.CapNone

	for _, name := range c {
		cap, err := primitive.ParseCapability(name)
		if err != nil {
			return primitive.CapNone, err
		}

		caps |= cap
	}

	return caps, nil
}

// StringArray is a string slice that can be unmarshaled from a single string
// or a list.
type StringArray []string

// UnitNames returns every unit name of the family, the root first, in
// declaration order.
func (f *Family) UnitNames() []string {
	names := make([]string, 0, len(f.Units)+1)
	names = append(names, f.Root.Name)

	for i := range f.Units {
		names = append(names, f.Units[i].Name)
	}

	return names
}

// FindUnit returns the unit definition with the given name, or nil. The root
// is not a UnitDef and is not found here.
func (f *Family) FindUnit(name string) *UnitDef {
	for i := range f.Units {
		if f.Units[i].Name == name {
			return &f.Units[i]
		}
	}

	return nil
}

// ReprKind resolves the family representation to its kind.
func (f *Family) ReprKind() (primitive.KindEnum, error) {
	return primitive.ParseKind(f.Repr)
}

// TypeName returns the exported Go type name generated for a unit name.
func TypeName(unitName string) string {
	return common.ExportName(unitName)
}
