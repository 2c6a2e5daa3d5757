package plan

import (
	"errors"
	"fmt"
	"strings"

	"unit-generator/internal/catalog"
	"unit-generator/internal/diagnostic"
	"unit-generator/primitive"
)

// Config holds configuration for the resolution process.
type Config struct {
	// StrictMode fails resolution on warnings, not only on errors.
	StrictMode bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		StrictMode: false,
	}
}

// Resolver turns a parsed catalog into a Plan.
type Resolver struct {
	file   *catalog.CatalogFile
	config Config
}

// NewResolver creates a new Resolver for the given catalog file.
func NewResolver(file *catalog.CatalogFile, config Config) *Resolver {
	return &Resolver{
		file:   file,
		config: config,
	}
}

// Resolve validates the catalog and runs the resolution pipeline over every
// family: order the units against the root, compose each root path, plan the
// conversion mesh. The returned Plan carries all diagnostics either way; the
// error is non-nil when any of them is fatal.
func (r *Resolver) Resolve() (*Plan, error) {
	p := &Plan{}

	p.Diagnostics.Merge(*catalog.Validate(r.file))
	if p.Diagnostics.HasErrors() {
		return p, p.Diagnostics.Error()
	}

	p.Package = r.file.Package
	p.Output = r.file.Output

	for i := range r.file.Families {
		if rf, ok := r.resolveFamily(&r.file.Families[i], &p.Diagnostics); ok {
			p.Families = append(p.Families, rf)
		}
	}

	if p.Diagnostics.HasErrors() {
		return p, p.Diagnostics.Error()
	}

	if r.config.StrictMode && len(p.Diagnostics.Warnings) > 0 {
		return p, errors.New("strict mode: warnings are treated as fatal")
	}

	return p, nil
}

func (r *Resolver) resolveFamily(f *catalog.Family, diags *diagnostic.Diagnostics) (ResolvedFamily, bool) {
	kind, err := f.ReprKind()
	if err != nil {
		diags.AddError("unknown_repr", err.Error(), f.Root.Name, "")

		return ResolvedFamily{}, false
	}

	rf := ResolvedFamily{Name: f.Root.Name, Kind: kind}

	names := f.UnitNames()

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	// Index 0 is the root; every other unit depends on exactly its base.
	order, cyclic, err := topoSortUnits(len(names), func(i int) []int {
		if i == 0 {
			return nil
		}

		return []int{index[f.Units[i-1].Base()]}
	})
	if err != nil {
		stuck := make([]string, 0, len(cyclic))
		for _, i := range cyclic {
			stuck = append(stuck, names[i])
		}

		diags.AddError("unit_cycle",
			fmt.Sprintf("units %s depend on each other in a cycle", strings.Join(stuck, ", ")),
			f.Root.Name, "")

		return ResolvedFamily{}, false
	}

	for _, idx := range order {
		if idx == 0 {
			root := r.newUnit(f, f.Root.Name, f.Root.Symbol, f.Root.Literal,
				f.Capabilities, f.Convert, diags)
			root.IsRoot = true
			rf.Units = append(rf.Units, root)

			continue
		}

		ru, ok := r.resolveUnit(f, &f.Units[idx-1], &rf, diags)
		if !ok {
			return ResolvedFamily{}, false
		}

		rf.Units = append(rf.Units, ru)
	}

	planRoutes(&rf)

	return rf, true
}

func (r *Resolver) resolveUnit(
	f *catalog.Family, u *catalog.UnitDef, rf *ResolvedFamily, diags *diagnostic.Diagnostics,
) (ResolvedUnit, bool) {
	ru := r.newUnit(f, u.Name, u.Symbol, u.Literal, u.Capabilities, u.Convert, diags)

	// Topological order guarantees the base is resolved before any unit
	// declared against it.
	base := rf.Unit(u.Base())
	if base == nil {
		diags.AddError("unknown_base",
			fmt.Sprintf("unit %q is declared against unknown unit %q", u.Name, u.Base()),
			f.Root.Name, u.Name)

		return ResolvedUnit{}, false
	}

	var own Step

	switch {
	case u.IsScaled():
		factor, err := u.Scale.Ratio()
		if err != nil {
			diags.AddError("bad_scale", err.Error(), f.Root.Name, u.Name)

			return ResolvedUnit{}, false
		}

		ru.Scale = u.Scale
		own = Step{Ratio: factor}
	case u.IsFormula():
		ru.Formula = u.Formula
		own = Step{FromFn: u.Formula.From, ToFn: u.Formula.To}
	default:
		diags.AddError("missing_relation",
			fmt.Sprintf("unit %q declares neither scale nor formula", u.Name),
			f.Root.Name, u.Name)

		return ResolvedUnit{}, false
	}

	ru.ToRoot = composePath(own, base.ToRoot)

	return ru, true
}

// newUnit builds the relation-free part of a resolved unit: identity,
// capability set, narrowing targets. A convert list implies the convertible
// capability; the capability without targets is dropped with a warning so
// generation stays deterministic.
func (r *Resolver) newUnit(
	f *catalog.Family, name, symbol, literal string,
	capList catalog.CapabilityList, convList catalog.StringArray,
	diags *diagnostic.Diagnostics,
) ResolvedUnit {
	caps, err := capList.Parse()
	if err != nil {
		diags.AddError("unknown_capability", err.Error(), f.Root.Name, name)
	}

	convert := make([]primitive.KindEnum, 0, len(convList))

	for _, target := range convList {
		kind, err := primitive.ParseKind(target)
		if err != nil {
			diags.AddError("bad_convert_target", err.Error(), f.Root.Name, name)

			continue
		}

		convert = append(convert, kind)
	}

	switch {
	case len(convert) > 0:
		caps |= primitive.CapConvertible
	case caps.Has(primitive.CapConvertible):
		diags.AddWarning("convert_without_targets",
			fmt.Sprintf("unit %q is declared convertible but lists no convert targets", name),
			f.Root.Name, name)

		caps &^= primitive.CapConvertible
	}

	return ResolvedUnit{
		Name:         name,
		Type:         catalog.TypeName(name),
		Symbol:       symbol,
		Literal:      literal,
		Capabilities: caps,
		Convert:      convert,
	}
}
