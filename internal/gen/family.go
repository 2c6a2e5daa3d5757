package gen

import (
	"fmt"
	"sort"
	"strconv"

	"unit-generator/internal/plan"
	"unit-generator/options"
	"unit-generator/primitive"
	"unit-generator/unit"
)

// utilsImport is the module path of the generic literal constructor
// constraint.
const utilsImport = "unit-generator/utils"

// rawField is the payload field name of every emitted unit type.
const rawField = "raw"

// templateData holds all data needed for the units file template.
type templateData struct {
	Header   string
	Package  string
	Filename string
	// Imports is the sorted list of import paths the emitted bodies need.
	Imports []string
	Units   []unitData
}

// unitData is one emitted unit type with all of its declarations.
type unitData struct {
	Doc   string
	Type  string
	Repr  string
	// Guard adds the zero-size field that suppresses == and map-key use.
	Guard bool
	Decls []declData
}

// declData is one emitted constructor or method. Signature is the text
// between the func keyword and the opening brace.
type declData struct {
	Doc       string
	Signature string
	Body      []string
}

// buildTemplateData constructs the template data for a whole plan.
func (g *Generator) buildTemplateData(p *plan.Plan) (*templateData, error) {
	data := &templateData{
		Header:   g.config.Header,
		Package:  p.Package,
		Filename: p.Output,
	}

	if g.config.PackageName != "" {
		data.Package = g.config.PackageName
	}

	names := newNames(p)
	only := capabilityFilter(g.config.Only)
	imports := make(map[string]struct{})

	for fi := range p.Families {
		f := &p.Families[fi]

		for ui := range f.Units {
			ud, err := g.buildUnit(f, &f.Units[ui], names, only, imports)
			if err != nil {
				return nil, fmt.Errorf("family %s: %w", f.Name, err)
			}

			data.Units = append(data.Units, *ud)
		}
	}

	for path := range imports {
		data.Imports = append(data.Imports, path)
	}

	sort.Strings(data.Imports)

	return data, nil
}

// buildUnit assembles the type declaration, constructors, capability
// methods, narrowing methods, and the conversion mesh for one unit.
func (g *Generator) buildUnit(
	f *plan.ResolvedFamily,
	u *plan.ResolvedUnit,
	names *names,
	only primitive.CapabilityEnum,
	imports map[string]struct{},
) (*unitData, error) {
	repr := f.Kind.GoType()
	typeName := names.Type(f.Name, u.Name)

	ud := &unitData{
		Type:  typeName,
		Repr:  repr,
		Guard: !u.Capabilities.Has(primitive.CapComparable),
	}

	if g.config.GenerateComments {
		ud.Doc = unitDoc(f, u, typeName)
	}

	mdata := primitive.MethodData{Type: typeName, Raw: rawField, Repr: repr, Symbol: u.Symbol}

	methods := newNamespace()
	methods.Claim("Raw")

	ctor := names.Ctor(f.Name, u.Name)
	ud.Decls = append(ud.Decls, g.blankDoc(declData{
		Doc:       fmt.Sprintf("%s wraps a raw %s amount.", ctor, repr),
		Signature: fmt.Sprintf("%s(v %s) %s", ctor, repr, typeName),
		Body:      []string{fmt.Sprintf("return %s{%s: v}", typeName, rawField)},
	}))

	ud.Decls = append(ud.Decls, g.literalDecl(names.Literal(f.Name, u.Name), typeName, f.Kind, imports))

	ud.Decls = append(ud.Decls, g.blankDoc(declData{
		Doc:       fmt.Sprintf("Raw returns the underlying %s amount.", repr),
		Signature: fmt.Sprintf("(v %s) Raw() %s", typeName, repr),
		Body:      []string{"return v." + rawField},
	}))

	for _, c := range (u.Capabilities &^ primitive.CapConvertible).Split() {
		if !only.Has(c) {
			continue
		}

		decl, err := capabilityDecl(c, f.Kind, mdata, methods)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", u.Name, err)
		}

		ud.Decls = append(ud.Decls, g.blankDoc(decl))

		for _, path := range primitive.MethodImports(c, f.Kind) {
			imports[path] = struct{}{}
		}
	}

	if u.Capabilities.Has(primitive.CapConvertible) && only.Has(primitive.CapConvertible) {
		for _, to := range u.Convert {
			body, err := primitive.ConvertLines(to, mdata)
			if err != nil {
				return nil, fmt.Errorf("unit %s: %w", u.Name, err)
			}

			name := methods.Claim("As" + to.Exported())
			ud.Decls = append(ud.Decls, g.blankDoc(declData{
				Doc:       fmt.Sprintf("%s narrows the amount to %s by plain Go conversion.", name, to.GoType()),
				Signature: fmt.Sprintf("(v %s) %s() %s", typeName, name, to.GoType()),
				Body:      body,
			}))
		}
	}

	for i := range f.Routes {
		r := &f.Routes[i]
		if r.From != u.Name {
			continue
		}

		target := names.Type(f.Name, r.To)
		name := methods.Claim("As" + target)

		ud.Decls = append(ud.Decls, g.blankDoc(declData{
			Doc:       routeDoc(r, name, target),
			Signature: fmt.Sprintf("(v %s) %s() %s", typeName, name, target),
			Body:      routeBody(r, target, f.Kind),
		}))
	}

	return ud, nil
}

// blankDoc drops the doc comment when comment generation is off.
func (g *Generator) blankDoc(d declData) declData {
	if !g.config.GenerateComments {
		d.Doc = ""
	}

	return d
}

// literalDecl emits the literal constructor. Numeric payloads get one
// generic function accepting both integral and floating tokens.
func (g *Generator) literalDecl(
	literal, typeName string,
	kind primitive.KindEnum,
	imports map[string]struct{},
) declData {
	repr := kind.GoType()

	if !kind.IsNumber() {
		return g.blankDoc(declData{
			Doc:       fmt.Sprintf("%s builds a %s from a %s literal.", literal, typeName, repr),
			Signature: fmt.Sprintf("%s(v %s) %s", literal, repr, typeName),
			Body:      []string{fmt.Sprintf("return %s{%s: v}", typeName, rawField)},
		})
	}

	imports[utilsImport] = struct{}{}

	return g.blankDoc(declData{
		Doc:       fmt.Sprintf("%s builds a %s from any numeric literal.", literal, typeName),
		Signature: fmt.Sprintf("%s[N utils.Number](v N) %s", literal, typeName),
		Body:      []string{fmt.Sprintf("return %s{%s: %s(v)}", typeName, rawField, repr)},
	})
}

// capabilityDecl emits one capability method, claiming its name in the
// unit's method namespace.
func capabilityDecl(
	c primitive.CapabilityEnum,
	kind primitive.KindEnum,
	data primitive.MethodData,
	methods *namespace,
) (declData, error) {
	body, err := primitive.MethodLines(c, kind, data)
	if err != nil {
		return declData{}, err
	}

	var name, params, result, doc string

	switch c {
	default:
		return declData{}, fmt.Errorf("capability %s has no method form", c)

	case primitive.CapComparable:
		name = methods.Claim("Equal")
		params, result = "o "+data.Type, "bool"
		doc = name + " reports whether two amounts are equal."

	case primitive.CapOrdered:
		name = methods.Claim("Less")
		params, result = "o "+data.Type, "bool"
		doc = name + " reports whether v is ordered before o."

	case primitive.CapAddable:
		name = methods.Claim("Add")
		params, result = "o "+data.Type, data.Type
		doc = name + " returns the sum of the two amounts."

	case primitive.CapSubtractable:
		name = methods.Claim("Sub")
		params, result = "o "+data.Type, data.Type
		doc = name + " returns the difference of the two amounts."

	case primitive.CapHashable:
		name = methods.Claim("Hash")
		result = "uint64"
		doc = name + " returns an FNV-1a hash of the amount."

	case primitive.CapStringer:
		name = methods.Claim("String")
		result = "string"
		doc = name + " renders the amount"

		if data.Symbol != "" {
			doc += " with the " + data.Symbol + " symbol"
		}

		doc += "."
	}

	return declData{
		Doc:       doc,
		Signature: fmt.Sprintf("(v %s) %s(%s) %s", data.Type, name, params, result),
		Body:      body,
	}, nil
}

// routeDoc describes a conversion method, with the exact factor for the
// single-ratio form.
func routeDoc(r *plan.Route, name, target string) string {
	if r.Strategy == plan.RouteRatio {
		return fmt.Sprintf("%s converts the amount to %s (factor %s).", name, target, r.Ratio)
	}

	return fmt.Sprintf("%s converts the amount to %s.", name, target)
}

// routeBody emits the payload transformation for one route. A ratio route
// is a single expression; a chain route threads the payload through every
// merged step in order.
func routeBody(r *plan.Route, target string, kind primitive.KindEnum) []string {
	if r.Strategy == plan.RouteRatio {
		return []string{fmt.Sprintf("return %s{%s: %s}", target, rawField, ratioExpr("v."+rawField, r.Ratio, kind))}
	}

	lines := []string{"x := v." + rawField}

	for _, s := range r.Steps {
		if s.IsCall() {
			lines = append(lines, fmt.Sprintf("x = %s(x)", s.Fn))
		} else {
			lines = append(lines, "x = "+ratioExpr("x", s.Ratio, kind))
		}
	}

	return append(lines, fmt.Sprintf("return %s{%s: x}", target, rawField))
}

// ratioExpr renders the application of an exact ratio to expr as one
// multiply or divide where possible. Integer payloads multiply before
// dividing so exact multiples stay exact; float payloads get a single
// constant multiply when the ratio is exactly representable.
func ratioExpr(expr string, r unit.Ratio, kind primitive.KindEnum) string {
	num := r.Num().String()
	den := r.Den().String()

	switch {
	case r.IsOne():
		return expr

	case den == "1":
		return expr + " * " + num

	case num == "1":
		return expr + " / " + den
	}

	if kind.IsFloat() {
		if f, exact := r.Float64(); exact {
			return expr + " * " + strconv.FormatFloat(f, 'g', -1, 64)
		}
	}

	return expr + " * " + num + " / " + den
}

// unitDoc describes a unit type by its declared relation.
func unitDoc(f *plan.ResolvedFamily, u *plan.ResolvedUnit, typeName string) string {
	switch {
	case u.IsRoot:
		return fmt.Sprintf("%s is the root unit of the %s family.", typeName, f.Name)

	case u.Formula != nil:
		return fmt.Sprintf("%s is defined by formula against %s.", typeName, u.Formula.Of)
	}

	if factor, ok := u.RootFactor(); ok {
		return fmt.Sprintf("%s is %s %s.", typeName, factor, f.Name)
	}

	// A scaled unit anchored past a formula step keeps its declared anchor.
	if u.Scale.Den == 1 {
		return fmt.Sprintf("%s is %d %s.", typeName, u.Scale.Num, u.Scale.Of)
	}

	return fmt.Sprintf("%s is %d/%d %s.", typeName, u.Scale.Num, u.Scale.Den, u.Scale.Of)
}

// capabilityFilter maps the CLI capability selection onto the primitive
// vocabulary.
func capabilityFilter(sel options.CapabilityEnum) primitive.CapabilityEnum {
	pairs := [...]struct {
		opt options.CapabilityEnum
		cap primitive.CapabilityEnum
	}{
		{options.CapabilityComparable, primitive.CapComparable},
		{options.CapabilityOrdered, primitive.CapOrdered},
		{options.CapabilityAddable, primitive.CapAddable},
		{options.CapabilitySubtractable, primitive.CapSubtractable},
		{options.CapabilityHashable, primitive.CapHashable},
		{options.CapabilityStringer, primitive.CapStringer},
		{options.CapabilityConvertible, primitive.CapConvertible},
	}

	var out primitive.CapabilityEnum

	for _, p := range pairs {
		if sel&p.opt != 0 {
			out |= p.cap
		}
	}

	return out
}
