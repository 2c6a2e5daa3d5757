package plan

import (
	"unit-generator/internal/catalog"
	"unit-generator/internal/common"
	"unit-generator/internal/diagnostic"
	"unit-generator/primitive"
	"unit-generator/unit"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Package is the Go package name of the generated file.
	Package string
	// Output is the generated file name.
	Output string
	// Families is the list of resolved unit families.
	Families []ResolvedFamily
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedFamily is one unit family with every relation resolved against the
// root and the full pairwise conversion mesh planned.
type ResolvedFamily struct {
	// Name is the root unit name and identifies the family.
	Name string
	// Kind is the payload representation.
	Kind primitive.KindEnum
	// Units in topological order, the root first. Every unit appears after
	// the unit it is declared against.
	Units []ResolvedUnit
	// Routes is the conversion mesh: one route per ordered unit pair,
	// sorted by declaration order of the endpoints.
	Routes []Route
}

// ResolvedUnit is a single unit with its identifiers, capability set, and
// composed path to the family root.
type ResolvedUnit struct {
	// Name is the catalog unit name.
	Name string
	// Type is the exported Go type name.
	Type string
	// Symbol is the suffix printed by the String method, may be empty.
	Symbol string
	// Literal is the name of the literal constructor function.
	Literal string
	// IsRoot is true for the family root.
	IsRoot bool
	// Capabilities is the resolved capability set.
	Capabilities primitive.CapabilityEnum
	// Convert lists the narrowing target kinds.
	Convert []primitive.KindEnum
	// Scale is the original declared relation, nil for the root and for
	// formula units.
	Scale *catalog.ScaleDef
	// Formula is the original declared relation, nil for the root and for
	// scaled units.
	Formula *catalog.FormulaDef
	// ToRoot is the composed step path from this unit down to the root,
	// adjacent ratio steps already merged. Empty for the root.
	ToRoot []Step
}

// Step relates an amount to the next unit toward the root. A ratio step
// multiplies going down; a formula step applies ToFn going down and FromFn
// coming back up.
type Step struct {
	// Ratio is the exact factor, set when FromFn is empty.
	Ratio unit.Ratio
	// FromFn maps a base amount into this unit.
	FromFn string
	// ToFn maps an amount of this unit into the base.
	ToFn string
}

// IsFormula returns true for a function-pair step.
func (s Step) IsFormula() bool {
	return s.FromFn != ""
}

// equal reports whether two steps describe the same relation.
func (s Step) equal(o Step) bool {
	if s.IsFormula() != o.IsFormula() {
		return false
	}

	if s.IsFormula() {
		return s.FromFn == o.FromFn && s.ToFn == o.ToFn
	}

	return s.Ratio.Equal(o.Ratio)
}

// PureRatio returns true when the whole path to the root is ratio steps.
func (u *ResolvedUnit) PureRatio() bool {
	for _, s := range u.ToRoot {
		if s.IsFormula() {
			return false
		}
	}

	return true
}

// RootFactor returns the combined exact factor to the root. The second
// result is false when the path crosses a formula step.
func (u *ResolvedUnit) RootFactor() (unit.Ratio, bool) {
	factor := unit.One()

	for _, s := range u.ToRoot {
		if s.IsFormula() {
			return unit.One(), false
		}

		factor = factor.Mul(s.Ratio)
	}

	return factor, true
}

// Route is a planned conversion between two units of one family.
type Route struct {
	// From and To are unit names.
	From string
	To   string
	// Strategy selects between the single-factor and the chain form.
	Strategy RouteStrategy
	// Ratio is the combined exact factor for RouteRatio.
	Ratio unit.Ratio
	// Steps is the minimal merged sequence for RouteChain, in execution
	// order.
	Steps []RouteStep
}

// RouteStep is one operation of a chain route: a multiply by an exact ratio,
// or a conversion function call.
type RouteStep struct {
	// Ratio to apply, set when Fn is empty.
	Ratio unit.Ratio
	// Fn is the conversion function name to call.
	Fn string
}

// IsCall returns true for a function-call step.
func (s RouteStep) IsCall() bool {
	return s.Fn != ""
}

// RouteStrategy describes how a conversion is emitted.
type RouteStrategy int

const (
	// RouteRatio - one multiply or divide by an exact factor.
	RouteRatio RouteStrategy = iota
	// RouteChain - a sequence of ratio applications and function calls.
	RouteChain
)

// String returns a human-readable strategy name.
func (s RouteStrategy) String() string {
	switch s {
	case RouteRatio:
		return "ratio"
	case RouteChain:
		return "chain"
	default:
		return common.UnknownStr
	}
}

// Family returns the resolved family with the given root name, or nil.
func (p *Plan) Family(name string) *ResolvedFamily {
	for i := range p.Families {
		if p.Families[i].Name == name {
			return &p.Families[i]
		}
	}

	return nil
}

// Unit returns the resolved unit with the given name, or nil.
func (f *ResolvedFamily) Unit(name string) *ResolvedUnit {
	for i := range f.Units {
		if f.Units[i].Name == name {
			return &f.Units[i]
		}
	}

	return nil
}

// Route returns the planned route between two units, or nil.
func (f *ResolvedFamily) Route(from, to string) *Route {
	for i := range f.Routes {
		if f.Routes[i].From == from && f.Routes[i].To == to {
			return &f.Routes[i]
		}
	}

	return nil
}

// Root returns the family root unit.
func (f *ResolvedFamily) Root() *ResolvedUnit {
	return &f.Units[0]
}

// FormulaFuncs returns every conversion function name the family references,
// in declaration order, without duplicates.
func (f *ResolvedFamily) FormulaFuncs() []string {
	var names []string

	seen := map[string]struct{}{}
	add := func(name string) {
		if _, ok := seen[name]; ok || name == "" {
			return
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	for i := range f.Units {
		if fd := f.Units[i].Formula; fd != nil {
			add(fd.From)
			add(fd.To)
		}
	}

	return names
}

// FormulaFuncs returns every conversion function name the plan references
// across all families.
func (p *Plan) FormulaFuncs() []string {
	var names []string

	seen := map[string]struct{}{}

	for i := range p.Families {
		for _, name := range p.Families[i].FormulaFuncs() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}

	return names
}
