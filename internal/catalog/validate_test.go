package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-generator/internal/diagnostic"
)

// findDiag returns the first diagnostic with the given code, or nil.
func findDiag(diags []diagnostic.Diagnostic, code string) *diagnostic.Diagnostic {
	for i := range diags {
		if diags[i].Code == code {
			return &diags[i]
		}
	}

	return nil
}

func TestValidate_ValidCatalog(t *testing.T) {
	yaml := `
package: length
families:
  - root: meter
    repr: float64
    capabilities: [comparable, ordered, addable, subtractable, hashable, stringer]
    units:
      - name: kilometer
        symbol: km
        scale: 1000 meter
      - name: millimeter
        scale: 1/1000 meter
      - name: centimeter
        scale: 10 millimeter
      - name: mile
        formula: {of: kilometer, from: MilesFromKilometers, to: KilometersFromMiles}
`
	cf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	result := Validate(cf)

	assert.True(t, result.IsValid(), "expected valid catalog, got errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_NilCatalog(t *testing.T) {
	result := Validate(nil)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "catalog_is_nil"))
}

func TestValidate_MissingPackage(t *testing.T) {
	cf, err := Parse([]byte(`
families:
  - root: meter
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "missing_package"))
}

func TestValidate_BadPackage(t *testing.T) {
	cf, err := Parse([]byte(`
package: my-units
families:
  - root: meter
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Error().Error(), "my-units")
}

func TestValidate_BadOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"not a go file", "units.txt"},
		{"directory part", "sub/units.go"},
		{"test file", "units_test.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf, err := Parse([]byte(`
package: length
output: ` + tt.output + `
families:
  - root: meter
`))
			require.NoError(t, err)

			result := Validate(cf)

			assert.False(t, result.IsValid())
			assert.NotNil(t, findDiag(result.Errors, "bad_output"))
		})
	}
}

func TestValidate_EmptyCatalog(t *testing.T) {
	cf, err := Parse([]byte(`package: length`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.True(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Warnings, "empty_catalog"))
}

func TestValidate_MissingRoot(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - repr: float64
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "missing_root"))
}

func TestValidate_DuplicateFamily(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
  - root: meter
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Error().Error(), "duplicate family")
}

func TestValidate_UnknownRepr(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    repr: float
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())

	diag := findDiag(result.Errors, "unknown_repr")
	require.NotNil(t, diag)
	assert.Contains(t, diag.Suggestions, "float64")
}

func TestValidate_DuplicateUnit(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: kilometer
        scale: 1000 meter
      - name: kilometer
        scale: 1000 meter
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Error().Error(), `duplicate unit "kilometer"`)
}

func TestValidate_UnitCollidesWithRoot(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: meter
        scale: 1000 meter
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "duplicate_unit"))
}

func TestValidate_MissingRelation(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: kilometer
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Error().Error(), "neither scale nor formula")
}

func TestValidate_ScaleAndFormula(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: mile
        scale: 1609 meter
        formula: {of: meter, from: MilesFromMeters, to: MetersFromMiles}
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "scale_and_formula"))
}

func TestValidate_UnknownBase(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: kilometer
        scale: 1000 meter
      - name: centimeter
        scale: 1/100000 kilometr
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())

	diag := findDiag(result.Errors, "unknown_base")
	require.NotNil(t, diag)
	assert.Equal(t, "centimeter", diag.Unit)
	assert.Contains(t, diag.Suggestions, "kilometer")
}

func TestValidate_SelfRelation(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: kilometer
        scale: 1000 kilometer
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Error().Error(), "against itself")
}

func TestValidate_BadScale(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: kilometer
        scale: {of: meter, num: -5}
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "bad_scale"))
}

func TestValidate_UnknownCapability(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    capabilities: [compareable]
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())

	diag := findDiag(result.Errors, "unknown_capability")
	require.NotNil(t, diag)
	assert.Contains(t, diag.Suggestions, "comparable")
}

func TestValidate_CapabilityNotAllowed(t *testing.T) {
	cf, err := Parse([]byte(`
package: flags
families:
  - root: answer
    repr: bool
    capabilities: [comparable, addable]
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Error().Error(), "addable is not available for bool")
}

func TestValidate_ConvertNeedsNumber(t *testing.T) {
	cf, err := Parse([]byte(`
package: serial
families:
  - root: serial_number
    repr: string
    convert: [uint]
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "convert_needs_number"))
}

func TestValidate_BadConvertTarget(t *testing.T) {
	cf, err := Parse([]byte(`
package: ident
families:
  - root: myint
    repr: int
    convert: [unit8]
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())

	diag := findDiag(result.Errors, "bad_convert_target")
	require.NotNil(t, diag)
	assert.Contains(t, diag.Suggestions, "uint8")
}

func TestValidate_ConvertWarnings(t *testing.T) {
	tests := []struct {
		name   string
		repr   string
		target string
		code   string
	}{
		{"identity", "int", "int", "convert_identity"},
		{"signed to unsigned", "int", "uint", "sign_change"},
		{"float to integer", "float64", "int", "precision_loss"},
		{"wide to narrow", "int64", "int8", "precision_loss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf, err := Parse([]byte(`
package: ident
families:
  - root: myint
    repr: ` + tt.repr + `
    convert: [` + tt.target + `]
`))
			require.NoError(t, err)

			result := Validate(cf)

			assert.True(t, result.IsValid(), "warnings must not fail validation")
			assert.NotNil(t, findDiag(result.Warnings, tt.code))
		})
	}
}

func TestValidate_BadFormula(t *testing.T) {
	tests := []struct {
		name    string
		formula string
	}{
		{"missing to", `{of: meter, from: MilesFromMeters}`},
		{"qualified name", `{of: meter, from: convert.MilesFromMeters, to: MetersFromMiles}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf, err := Parse([]byte(`
package: length
families:
  - root: meter
    units:
      - name: mile
        formula: ` + tt.formula + `
`))
			require.NoError(t, err)

			result := Validate(cf)

			assert.False(t, result.IsValid())
			assert.NotNil(t, findDiag(result.Errors, "bad_formula"))
		})
	}
}

func TestValidate_BadLiteral(t *testing.T) {
	cf, err := Parse([]byte(`
package: length
families:
  - root: {name: meter, literal: "5Meters"}
`))
	require.NoError(t, err)

	result := Validate(cf)

	assert.False(t, result.IsValid())
	assert.NotNil(t, findDiag(result.Errors, "bad_literal"))
}
