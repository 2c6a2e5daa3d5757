package catalog

import (
	"fmt"
	"go/token"
	"strings"

	"unit-generator/internal/diagnostic"
	"unit-generator/internal/match"
	"unit-generator/primitive"
)

// validatePackage checks the declared Go package name.
func validatePackage(res *diagnostic.Diagnostics, pkg string) {
	switch {
	case pkg == "":
		res.AddError("missing_package", "catalog must declare the output package name", "", "")
	case !token.IsIdentifier(pkg):
		res.AddError("bad_package", fmt.Sprintf("package %q is not a valid Go identifier", pkg), "", "")
	}
}

// validateOutput checks the generated file name: a bare .go file name, no
// directory part.
func validateOutput(res *diagnostic.Diagnostics, output string) {
	switch {
	case !strings.HasSuffix(output, ".go"):
		res.AddError("bad_output", fmt.Sprintf("output %q must be a .go file name", output), "", "")
	case strings.ContainsAny(output, `/\`):
		res.AddError("bad_output", fmt.Sprintf("output %q must not contain a directory", output), "", "")
	case strings.HasSuffix(output, "_test.go"):
		res.AddError("bad_output", fmt.Sprintf("output %q would be compiled as a test file", output), "", "")
	}
}

// validateIdents checks that the identifiers derived from a unit survive as
// legal Go: the type name and the literal constructor name.
func validateIdents(res *diagnostic.Diagnostics, family, name, literal string) {
	if name != "" && !token.IsIdentifier(TypeName(name)) {
		res.AddError("bad_name",
			fmt.Sprintf("unit name %q does not map to a Go identifier", name), family, name)
	}

	if literal != "" && !token.IsIdentifier(literal) {
		res.AddError("bad_literal",
			fmt.Sprintf("literal %q is not a valid Go identifier", literal), family, name)
	}
}

// validateCapabilities checks every capability name and its legality for the
// family representation. The unit argument is empty for the family default
// set. A zero kind (unknown repr) skips the legality check.
func validateCapabilities(res *diagnostic.Diagnostics, family, unit string, caps CapabilityList, kind primitive.KindEnum) {
	set := primitive.CapNone

	for _, name := range caps {
		c, err := primitive.ParseCapability(name)
		if err != nil {
			res.AddErrorSuggest("unknown_capability", fmt.Sprintf("unknown capability %q", name),
				family, unit, match.Suggest(name, primitive.CapabilityNames()))
			continue
		}

		set |= c
	}

	if kind == 0 {
		return
	}

	for _, c := range set.Split() {
		if !primitive.AllowedFor(kind).Has(c) {
			res.AddError("capability_not_allowed",
				fmt.Sprintf("capability %s is not available for %s", c, kind.GoType()), family, unit)
		}
	}
}

// validateConvert checks the narrowing targets: numeric kinds only, never the
// representation itself, with warnings where the native conversion drops
// information. The unit argument is empty for the family default list.
func validateConvert(res *diagnostic.Diagnostics, family, unit string, targets StringArray, kind primitive.KindEnum) {
	if len(targets) == 0 {
		return
	}

	if kind != 0 && !kind.IsNumber() {
		res.AddError("convert_needs_number",
			fmt.Sprintf("convert targets need a numeric representation, not %s", kind.GoType()), family, unit)
		return
	}

	for _, target := range targets {
		to, err := primitive.ParseKind(target)
		if err != nil || !to.IsNumber() {
			res.AddErrorSuggest("bad_convert_target",
				fmt.Sprintf("convert target %q is not a numeric Go type", target),
				family, unit, match.Suggest(target, numericKindNames()))

			continue
		}

		if kind == 0 {
			continue
		}

		if to == kind {
			res.AddWarning("convert_identity",
				fmt.Sprintf("converting %s to itself is a no-op", kind.GoType()), family, unit)
			continue
		}

		narrowingWarnings(res, family, unit, kind, to)
	}
}

// narrowingWarnings reports conversions that keep the native Go semantics but
// can change the value: sign reinterpretation and truncation.
func narrowingWarnings(res *diagnostic.Diagnostics, family, unit string, from, to primitive.KindEnum) {
	if from.IsSigned() && to.IsUnsigned() || from.IsUnsigned() && to.IsSigned() {
		res.AddWarning("sign_change",
			fmt.Sprintf("%s to %s follows native conversion rules; negative values wrap around",
				from.GoType(), to.GoType()), family, unit)
	}

	if from.IsFloat() && to.IsInteger() {
		res.AddWarning("precision_loss",
			fmt.Sprintf("%s to %s truncates the fractional part", from.GoType(), to.GoType()), family, unit)
		return
	}

	if from.IsInteger() && to.IsInteger() && to.Bits() < from.Bits() {
		res.AddWarning("precision_loss",
			fmt.Sprintf("%s to %s drops high bits of large values", from.GoType(), to.GoType()), family, unit)
	}
}

// validateFormulaFuncs checks the formula function names are plain
// identifiers; the functions themselves live in the output package and are
// resolved there.
func validateFormulaFuncs(res *diagnostic.Diagnostics, family string, u *UnitDef) {
	for _, fn := range []struct{ role, name string }{
		{"from", u.Formula.From},
		{"to", u.Formula.To},
	} {
		switch {
		case fn.name == "":
			res.AddError("bad_formula",
				fmt.Sprintf("formula of unit %q is missing the %q function", u.Name, fn.role), family, u.Name)
		case !token.IsIdentifier(fn.name):
			res.AddError("bad_formula",
				fmt.Sprintf("formula function %q of unit %q must be an identifier declared in the output package",
					fn.name, u.Name), family, u.Name)
		}
	}
}

// numericKindNames returns the Go spelling of every numeric kind.
func numericKindNames() []string {
	var names []string

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if k.IsNumber() {
			names = append(names, k.GoType())
		}
	}

	return names
}
