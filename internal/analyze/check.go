package analyze

import (
	"fmt"
	"go/types"

	"unit-generator/internal/diagnostic"
	"unit-generator/internal/match"
	"unit-generator/internal/plan"
)

// CheckFormulas verifies that every conversion function a plan references is
// declared in the output package with the shape func(R) R, where R is the
// representation of the family that references it.
func CheckFormulas(p *plan.Plan, scope *PackageScope) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for i := range p.Families {
		f := &p.Families[i]
		repr := f.Kind.GoType()

		for _, name := range f.FormulaFuncs() {
			fn, ok := scope.Func(name)
			if !ok {
				diags.AddErrorSuggest("missing_formula_func",
					fmt.Sprintf("conversion function %s is not declared in the output package", name),
					f.Name, "", match.Suggest(name, scope.FuncNames()))

				continue
			}

			if err := checkSignature(fn, repr); err != nil {
				diags.AddError("bad_formula_signature", err.Error(), f.Name, "")
			}
		}
	}

	return diags
}

// checkSignature accepts exactly func(R) R. Anything else, variadic and
// generic shapes included, is rejected.
func checkSignature(fn *types.Func, repr string) error {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Variadic() || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return fmt.Errorf("function %s must take and return exactly one %s", fn.Name(), repr)
	}

	param := sig.Params().At(0).Type()
	result := sig.Results().At(0).Type()

	if param.String() != repr || result.String() != repr {
		return fmt.Errorf("function %s is func(%s) %s, want func(%s) %s",
			fn.Name(), param, result, repr, repr)
	}

	return nil
}
