package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-generator/primitive"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: length
output: units_gen.go
families:
  - root: meter
    repr: float64
    capabilities: [comparable, ordered, addable, subtractable, hashable, stringer]
    units:
      - name: kilometer
        symbol: km
        scale: 1000 meter
      - name: millimeter
        scale: {of: meter, num: 1, den: 1000}
      - name: centimeter
        scale: 10 millimeter
      - name: mile
        formula: {of: kilometer, from: MilesFromKilometers, to: KilometersFromMiles}
`

	cf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cf)

	assert.Equal(t, "1", cf.Version)
	assert.Equal(t, "length", cf.Package)
	assert.Equal(t, "units_gen.go", cf.Output)
	require.Len(t, cf.Families, 1)

	f := cf.Families[0]
	assert.Equal(t, "meter", f.Root.Name)
	assert.Equal(t, "Meters", f.Root.Literal) // defaulted
	assert.Equal(t, "float64", f.Repr)
	assert.Len(t, f.Capabilities, 6)
	require.Len(t, f.Units, 4)

	// Scalar scale form
	km := f.Units[0]
	assert.Equal(t, "kilometer", km.Name)
	assert.Equal(t, "km", km.Symbol)
	assert.Equal(t, "Kilometers", km.Literal)
	require.NotNil(t, km.Scale)
	assert.Equal(t, ScaleDef{Of: "meter", Num: 1000, Den: 1}, *km.Scale)
	assert.True(t, km.IsScaled())
	assert.Equal(t, "meter", km.Base())

	// Map scale form
	mm := f.Units[1]
	require.NotNil(t, mm.Scale)
	assert.Equal(t, ScaleDef{Of: "meter", Num: 1, Den: 1000}, *mm.Scale)

	// Chained on a non-root base
	cm := f.Units[2]
	require.NotNil(t, cm.Scale)
	assert.Equal(t, "millimeter", cm.Base())

	// Formula unit
	mile := f.Units[3]
	require.NotNil(t, mile.Formula)
	assert.True(t, mile.IsFormula())
	assert.Equal(t, "kilometer", mile.Base())
	assert.Equal(t, "MilesFromKilometers", mile.Formula.From)
	assert.Equal(t, "KilometersFromMiles", mile.Formula.To)

	// Family capabilities inherited by every unit
	for _, u := range f.Units {
		assert.Equal(t, f.Capabilities, u.Capabilities, u.Name)
	}
}

func TestParseMinimal(t *testing.T) {
	yaml := `
package: length
families:
  - root: meter
`

	cf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", cf.Version)            // Default version
	assert.Equal(t, "units_gen.go", cf.Output)  // Default output
	require.Len(t, cf.Families, 1)
	assert.Equal(t, "float64", cf.Families[0].Repr) // Default repr
	assert.Equal(t, "meter", cf.Families[0].Root.Name)
}

func TestParseRootForms(t *testing.T) {
	yaml := `
package: length
families:
  - root: {name: meter, symbol: m, literal: OfMeters}
`

	cf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	root := cf.Families[0].Root
	assert.Equal(t, "meter", root.Name)
	assert.Equal(t, "m", root.Symbol)
	assert.Equal(t, "OfMeters", root.Literal) // explicit literal wins over default
}

func TestParseScaleForms(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected ScaleDef
	}{
		{
			name:     "integer scalar",
			yaml:     `scale: 1000 meter`,
			expected: ScaleDef{Of: "meter", Num: 1000, Den: 1},
		},
		{
			name:     "fraction scalar",
			yaml:     `scale: 1/1000 meter`,
			expected: ScaleDef{Of: "meter", Num: 1, Den: 1000},
		},
		{
			name:     "decimal scalar captured exactly",
			yaml:     `scale: 2.54 centimeter`,
			expected: ScaleDef{Of: "centimeter", Num: 127, Den: 50},
		},
		{
			name:     "map form",
			yaml:     `scale: {of: meter, num: 5, den: 2}`,
			expected: ScaleDef{Of: "meter", Num: 5, Den: 2},
		},
		{
			name:     "map form with omitted den",
			yaml:     `scale: {of: meter, num: 25}`,
			expected: ScaleDef{Of: "meter", Num: 25, Den: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := `
package: length
families:
  - root: meter
    units:
      - name: other
        ` + tt.yaml + `
`

			cf, err := Parse([]byte(yaml))
			require.NoError(t, err)
			require.NotNil(t, cf.Families[0].Units[0].Scale)
			assert.Equal(t, tt.expected, *cf.Families[0].Units[0].Scale)
		})
	}
}

func TestParseScaleErrors(t *testing.T) {
	tests := []struct {
		name  string
		scale string
	}{
		{"missing base", `"1000"`},
		{"not a factor", `acre meter`},
		{"zero factor", `0 meter`},
		{"negative factor", `-5 meter`},
		{"factor overflow", `123456789012345678901234567890 meter`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := `
package: length
families:
  - root: meter
    units:
      - name: other
        scale: ` + tt.scale + `
`

			_, err := Parse([]byte(yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseCapabilityForms(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected CapabilityList
	}{
		{"single scalar", `capabilities: comparable`, CapabilityList{"comparable"}},
		{"comma scalar", `capabilities: comparable, hashable`, CapabilityList{"comparable", "hashable"}},
		{"sequence", `capabilities: [comparable, hashable]`, CapabilityList{"comparable", "hashable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := `
package: serial
families:
  - root: serial_number
    repr: string
    ` + tt.yaml + `
`

			cf, err := Parse([]byte(yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cf.Families[0].Capabilities)
		})
	}
}

func TestCapabilityListParse(t *testing.T) {
	caps, err := CapabilityList{"comparable", "hashable"}.Parse()
	require.NoError(t, err)
	assert.True(t, caps.Has(primitive.CapComparable))
	assert.True(t, caps.Has(primitive.CapHashable))
	assert.False(t, caps.Has(primitive.CapOrdered))

	_, err = CapabilityList{"sortable"}.Parse()
	assert.Error(t, err)
}

func TestApplyDefaultsInheritance(t *testing.T) {
	yaml := `
package: ident
families:
  - root: myint
    repr: int
    capabilities: [comparable, ordered]
    convert: [uint]
    units:
      - name: otherint
        scale: 1 myint
      - name: ownint
        scale: 1 myint
        capabilities: comparable
        convert: [uint64]
`

	cf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	f := cf.Families[0]

	// Inherited from the family
	assert.Equal(t, CapabilityList{"comparable", "ordered"}, f.Units[0].Capabilities)
	assert.Equal(t, StringArray{"uint"}, f.Units[0].Convert)

	// Own declarations win
	assert.Equal(t, CapabilityList{"comparable"}, f.Units[1].Capabilities)
	assert.Equal(t, StringArray{"uint64"}, f.Units[1].Convert)
}

func TestMarshal(t *testing.T) {
	cf := &CatalogFile{
		Version: "1",
		Package: "length",
		Output:  "units_gen.go",
		Families: []Family{
			{
				Root: RootDef{Name: "meter"},
				Repr: "float64",
				Units: []UnitDef{
					{Name: "kilometer", Symbol: "km", Scale: &ScaleDef{Of: "meter", Num: 1000, Den: 1}},
					{Name: "millimeter", Scale: &ScaleDef{Of: "meter", Num: 1, Den: 1000}},
				},
			},
		},
	}

	data, err := Marshal(cf)
	require.NoError(t, err)
	assert.Contains(t, string(data), "root: meter")
	assert.Contains(t, string(data), "scale: 1000 meter")
	assert.Contains(t, string(data), "scale: 1/1000 meter")

	// Verify round-trip
	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cf.Package, parsed.Package)
	require.Len(t, parsed.Families, 1)
	assert.Equal(t, cf.Families[0].Units[0].Scale, parsed.Families[0].Units[0].Scale)
	assert.Equal(t, cf.Families[0].Units[1].Scale, parsed.Families[0].Units[1].Scale)
}

func TestFamilyHelpers(t *testing.T) {
	f := Family{
		Root: RootDef{Name: "meter"},
		Repr: "float64",
		Units: []UnitDef{
			{Name: "kilometer"},
			{Name: "millimeter"},
		},
	}

	assert.Equal(t, []string{"meter", "kilometer", "millimeter"}, f.UnitNames())

	require.NotNil(t, f.FindUnit("kilometer"))
	assert.Equal(t, "kilometer", f.FindUnit("kilometer").Name)
	assert.Nil(t, f.FindUnit("meter")) // the root is not a UnitDef
	assert.Nil(t, f.FindUnit("mile"))

	kind, err := f.ReprKind()
	require.NoError(t, err)
	assert.Equal(t, primitive.KindFloat64, kind)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte(`families: "not a list"`))
	assert.Error(t, err)
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"meter", "Meter"},
		{"serial_number", "SerialNumber"},
		{"foot-candle", "FootCandle"},
		{"dB", "DB"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeName(tt.in))
		})
	}
}
