package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaStub(t *testing.T) {
	f := &Family{Root: RootDef{Name: "watt"}, Repr: "float64"}
	u := &UnitDef{
		Name:    "decibel",
		Formula: &FormulaDef{Of: "watt", From: "DecibelsFromWatts", To: "WattsFromDecibels"},
	}

	stub := FormulaStub(f, u)

	assert.Contains(t, stub, "func DecibelsFromWatts(v float64) float64")
	assert.Contains(t, stub, "func WattsFromDecibels(v float64) float64")
	assert.Contains(t, stub, "// DecibelsFromWatts maps a watt amount into decibel.")
	assert.Contains(t, stub, "// WattsFromDecibels maps a decibel amount back into watt.")
	assert.Contains(t, stub, "panic")
}

func TestFormulaStub_NonDefaultRepr(t *testing.T) {
	f := &Family{Root: RootDef{Name: "level"}, Repr: "int"}
	u := &UnitDef{
		Name:    "gain",
		Formula: &FormulaDef{Of: "level", From: "GainFromLevel", To: "LevelFromGain"},
	}

	stub := FormulaStub(f, u)

	assert.Contains(t, stub, "func GainFromLevel(v int) int")
}

func TestFormulaStub_ScaledUnit(t *testing.T) {
	f := &Family{Root: RootDef{Name: "meter"}}
	u := &UnitDef{Name: "kilometer", Scale: &ScaleDef{Of: "meter", Num: 1000, Den: 1}}

	assert.Empty(t, FormulaStub(f, u))
}

func TestFormulaStubs(t *testing.T) {
	yaml := `
package: length
families:
  - root: meter
    units:
      - name: kilometer
        scale: 1000 meter
      - name: mile
        formula: {of: kilometer, from: MilesFromKilometers, to: KilometersFromMiles}
  - root: watt
    units:
      - name: decibel
        formula: {of: watt, from: DecibelsFromWatts, to: WattsFromDecibels}
`

	cf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	stubs := FormulaStubs(cf)
	require.Len(t, stubs, 2)
	assert.Contains(t, stubs[0], "MilesFromKilometers")
	assert.Contains(t, stubs[1], "WattsFromDecibels")

	file := StubFile("length", stubs)
	assert.Contains(t, file, "package length\n")
	assert.Contains(t, file, "MilesFromKilometers")
}
