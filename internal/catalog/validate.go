package catalog

import (
	"fmt"
	"slices"

	"unit-generator/internal/diagnostic"
	"unit-generator/internal/match"
	"unit-generator/primitive"
)

// Validate validates a catalog definition. This is a structural validation
// step only; whether declared formula functions exist with the right shape is
// checked later against the output package.
func Validate(cf *CatalogFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cf == nil {
		res.AddError("catalog_is_nil", "catalog file is nil", "", "")
		return res
	}

	validatePackage(res, cf.Package)
	validateOutput(res, cf.Output)

	if len(cf.Families) == 0 {
		res.AddWarning("empty_catalog", "catalog declares no families", "", "")
	}

	seenRoots := map[string]struct{}{}

	for i := range cf.Families {
		f := &cf.Families[i]

		if f.Root.Name == "" {
			res.AddError("missing_root", fmt.Sprintf("family #%d has no root unit", i+1), "", "")
			continue
		}

		if _, ok := seenRoots[f.Root.Name]; ok {
			res.AddError("duplicate_family", fmt.Sprintf("duplicate family root %q", f.Root.Name), f.Root.Name, "")
			continue
		}

		seenRoots[f.Root.Name] = struct{}{}

		validateFamily(res, f)
	}

	return res
}

// validateFamily validates a single family: its representation, its default
// capability set, and every declared unit.
func validateFamily(res *diagnostic.Diagnostics, f *Family) {
	family := f.Root.Name

	kind, err := f.ReprKind()
	if err != nil {
		res.AddErrorSuggest("unknown_repr", fmt.Sprintf("unknown representation %q", f.Repr),
			family, "", match.Suggest(f.Repr, primitive.KindNames()))
	}

	// An invalid repr leaves kind at zero; the helpers below skip the checks
	// that need it and still report everything structural.
	validateIdents(res, family, f.Root.Name, f.Root.Literal)
	validateCapabilities(res, family, "", f.Capabilities, kind)
	validateConvert(res, family, "", f.Convert, kind)

	seenUnits := map[string]struct{}{family: {}}
	allNames := f.UnitNames()

	for i := range f.Units {
		u := &f.Units[i]

		if u.Name == "" {
			res.AddError("missing_unit_name", fmt.Sprintf("unit #%d of family %q has no name", i+1, family), family, "")
			continue
		}

		if _, ok := seenUnits[u.Name]; ok {
			res.AddError("duplicate_unit", fmt.Sprintf("duplicate unit %q", u.Name), family, u.Name)
			continue
		}

		seenUnits[u.Name] = struct{}{}

		validateIdents(res, family, u.Name, u.Literal)
		validateRelation(res, family, u, allNames)
		validateCapabilities(res, family, u.Name, u.Capabilities, kind)
		validateConvert(res, family, u.Name, u.Convert, kind)
	}
}

// validateRelation checks that a unit declares exactly one relation and that
// the relation is well formed: the base exists in the family, a scale factor
// is positive, a formula names both functions.
func validateRelation(res *diagnostic.Diagnostics, family string, u *UnitDef, allNames []string) {
	switch {
	case u.Scale != nil && u.Formula != nil:
		res.AddError("scale_and_formula",
			fmt.Sprintf("unit %q declares both scale and formula; pick one", u.Name), family, u.Name)
		return
	case u.Scale == nil && u.Formula == nil:
		res.AddError("missing_relation",
			fmt.Sprintf("unit %q declares neither scale nor formula", u.Name), family, u.Name)
		return
	}

	base := u.Base()
	switch {
	case base == "":
		res.AddError("unknown_base", fmt.Sprintf("unit %q has an empty base", u.Name), family, u.Name)
	case base == u.Name:
		res.AddError("self_relation",
			fmt.Sprintf("unit %q cannot be declared against itself", u.Name), family, u.Name)
	case !slices.Contains(allNames, base):
		res.AddErrorSuggest("unknown_base",
			fmt.Sprintf("unit %q is declared against unknown unit %q", u.Name, base),
			family, u.Name, match.Suggest(base, allNames))
	}

	if u.Scale != nil && (u.Scale.Num <= 0 || u.Scale.Den <= 0) {
		res.AddError("bad_scale",
			fmt.Sprintf("scale factor %d/%d of unit %q must be positive", u.Scale.Num, u.Scale.Den, u.Name),
			family, u.Name)
	}

	if u.Formula != nil {
		validateFormulaFuncs(res, family, u)
	}
}
