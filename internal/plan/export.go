package plan

import (
	"fmt"
	"slices"
	"strings"

	"unit-generator/internal/catalog"
	"unit-generator/primitive"
	"unit-generator/unit"
)

// ExportNormalized returns the canonical form of a resolved plan as a catalog
// file. Every unit reachable from the root through ratios alone is re-anchored
// directly on the root with its composed exact factor; units behind a formula
// keep their declared relation. Loading the result resolves to the same plan.
func ExportNormalized(p *Plan) *catalog.CatalogFile {
	cf := &catalog.CatalogFile{
		Version: "1",
		Package: p.Package,
		Output:  p.Output,
	}

	for i := range p.Families {
		cf.Families = append(cf.Families, exportFamily(&p.Families[i]))
	}

	return cf
}

// ExportNormalizedYAML renders the canonical catalog as YAML.
func ExportNormalizedYAML(p *Plan) ([]byte, error) {
	return catalog.Marshal(ExportNormalized(p))
}

func exportFamily(f *ResolvedFamily) catalog.Family {
	root := f.Root()

	out := catalog.Family{
		Root: catalog.RootDef{
			Name:    root.Name,
			Symbol:  root.Symbol,
			Literal: exportLiteral(root),
		},
		Repr:         f.Kind.GoType(),
		Capabilities: capNames(root.Capabilities),
		Convert:      kindNames(root.Convert),
	}

	for i := range f.Units[1:] {
		out.Units = append(out.Units, exportUnit(&f.Units[i+1], &out))
	}

	return out
}

func exportUnit(u *ResolvedUnit, fam *catalog.Family) catalog.UnitDef {
	def := catalog.UnitDef{
		Name:    u.Name,
		Symbol:  u.Symbol,
		Literal: exportLiteral(u),
	}

	if factor, ok := u.RootFactor(); ok && fitsScaleDef(factor) {
		def.Scale = &catalog.ScaleDef{
			Of:  fam.Root.Name,
			Num: factor.Num().Int64(),
			Den: factor.Den().Int64(),
		}
	} else if u.Scale != nil {
		// A composed factor past int64 stays anchored where it was declared.
		def.Scale = u.Scale
	} else {
		def.Formula = u.Formula
	}

	if caps := capNames(u.Capabilities); !slices.Equal(caps, fam.Capabilities) {
		def.Capabilities = caps
		if caps == nil {
			def.Capabilities = catalog.CapabilityList{}
		}
	}

	if targets := kindNames(u.Convert); !slices.Equal(targets, fam.Convert) {
		def.Convert = targets
		if targets == nil {
			def.Convert = catalog.StringArray{}
		}
	}

	return def
}

// exportLiteral omits the literal when it matches what applyDefaults would
// derive, keeping the exported file compact.
func exportLiteral(u *ResolvedUnit) string {
	if u.Literal == catalog.TypeName(u.Name)+"s" {
		return ""
	}

	return u.Literal
}

func fitsScaleDef(r unit.Ratio) bool {
	return r.Num().IsInt64() && r.Den().IsInt64()
}

func capNames(caps primitive.CapabilityEnum) catalog.CapabilityList {
	var names catalog.CapabilityList

	for _, c := range caps.Split() {
		names = append(names, c.String())
	}

	return names
}

func kindNames(kinds []primitive.KindEnum) catalog.StringArray {
	var names catalog.StringArray

	for _, k := range kinds {
		names = append(names, k.GoType())
	}

	return names
}

// PlanReport is a human-readable summary of a resolved plan.
type PlanReport struct {
	Families []FamilyReport
}

// FamilyReport summarizes a single family.
type FamilyReport struct {
	Name        string
	Repr        string
	Units       []UnitReport
	RatioRoutes int
	ChainRoutes int
}

// UnitReport describes one unit of a family.
type UnitReport struct {
	Name         string
	Symbol       string
	Relation     string
	Capabilities string
}

// GenerateReport creates a plan report from a resolved plan.
func GenerateReport(p *Plan) *PlanReport {
	report := &PlanReport{}

	for i := range p.Families {
		f := &p.Families[i]

		fr := FamilyReport{
			Name: f.Name,
			Repr: f.Kind.GoType(),
		}

		for j := range f.Units {
			u := &f.Units[j]

			fr.Units = append(fr.Units, UnitReport{
				Name:         u.Name,
				Symbol:       u.Symbol,
				Relation:     relationLine(u, f.Name),
				Capabilities: u.Capabilities.String(),
			})
		}

		for _, rt := range f.Routes {
			if rt.Strategy == RouteRatio {
				fr.RatioRoutes++
			} else {
				fr.ChainRoutes++
			}
		}

		report.Families = append(report.Families, fr)
	}

	return report
}

// relationLine renders a unit against the family root when ratios allow it,
// otherwise against its declared anchor.
func relationLine(u *ResolvedUnit, rootName string) string {
	switch {
	case len(u.ToRoot) == 0:
		return "root"
	case u.Formula != nil:
		return fmt.Sprintf("formula of %s (%s / %s)", u.Formula.Of, u.Formula.From, u.Formula.To)
	}

	if factor, ok := u.RootFactor(); ok {
		return fmt.Sprintf("= %s %s", factor.String(), rootName)
	}

	return fmt.Sprintf("= %s %s", unit.MustRatio(u.Scale.Num, u.Scale.Den).String(), u.Scale.Of)
}

// FormatReport formats a plan report as human-readable text.
func FormatReport(report *PlanReport) string {
	var sb strings.Builder

	for _, f := range report.Families {
		sb.WriteString(fmt.Sprintf("\n=== %s (%s) ===\n", f.Name, f.Repr))

		width := 0
		for _, u := range f.Units {
			if len(u.Name) > width {
				width = len(u.Name)
			}
		}

		for _, u := range f.Units {
			symbol := ""
			if u.Symbol != "" {
				symbol = " [" + u.Symbol + "]"
			}

			sb.WriteString(fmt.Sprintf("  %-*s %s%s\n", width, u.Name, u.Relation, symbol))

			if u.Capabilities != "none" {
				sb.WriteString(fmt.Sprintf("  %-*s   %s\n", width, "", u.Capabilities))
			}
		}

		sb.WriteString(fmt.Sprintf("Routes: %d ratio, %d chain\n", f.RatioRoutes, f.ChainRoutes))
	}

	return sb.String()
}
