package catalog

import (
	"fmt"
	"strings"
)

// FormulaStub generates the stub function pair for a formula unit.
// This helps users implement missing conversion functions.
func FormulaStub(f *Family, u *UnitDef) string {
	if u.Formula == nil {
		return ""
	}

	repr := f.Repr
	if repr == "" {
		repr = "float64"
	}

	from := fmt.Sprintf(`// %s maps a %s amount into %s.
func %s(v %s) %s {
	// TODO: Implement conversion
	panic("not implemented")
}`, u.Formula.From, u.Formula.Of, u.Name, u.Formula.From, repr, repr)

	to := fmt.Sprintf(`// %s maps a %s amount back into %s.
func %s(v %s) %s {
	// TODO: Implement conversion
	panic("not implemented")
}`, u.Formula.To, u.Name, u.Formula.Of, u.Formula.To, repr, repr)

	return from + "\n\n" + to
}

// FormulaStubs generates stubs for every formula unit of the catalog, in
// declaration order. The caller filters out functions that already exist.
func FormulaStubs(cf *CatalogFile) []string {
	var stubs []string

	for i := range cf.Families {
		f := &cf.Families[i]

		for j := range f.Units {
			if u := &f.Units[j]; u.Formula != nil {
				stubs = append(stubs, FormulaStub(f, u))
			}
		}
	}

	return stubs
}

// StubFile renders a complete Go source file holding the given stubs.
func StubFile(pkg string, stubs []string) string {
	var sb strings.Builder

	sb.WriteString("package " + pkg + "\n\n")
	sb.WriteString(strings.Join(stubs, "\n\n"))
	sb.WriteString("\n")

	return sb.String()
}
