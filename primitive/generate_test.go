package primitive_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-generator/primitive"
)

func TestMethodLines(t *testing.T) {
	t.Parallel()

	meter := primitive.MethodData{Type: "Meter", Raw: "raw", Repr: "float64", Symbol: "m"}

	t.Run("equal body", func(t *testing.T) {
		t.Parallel()

		res, err := primitive.MethodLines(primitive.CapComparable, primitive.KindFloat64, meter)
		require.NoError(t, err)
		assert.Equal(t, []string{"return v.raw == o.raw"}, res)
	})

	t.Run("add body wraps back into the same type", func(t *testing.T) {
		t.Parallel()

		res, err := primitive.MethodLines(primitive.CapAddable, primitive.KindFloat64, meter)
		require.NoError(t, err)
		assert.Equal(t, []string{"return Meter{ raw: v.raw + o.raw }"}, res)
	})

	t.Run("hash body for float64", func(t *testing.T) {
		t.Parallel()

		res, err := primitive.MethodLines(primitive.CapHashable, primitive.KindFloat64, meter)
		require.NoError(t, err)
		assert.Contains(t, res, "binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.raw))")
		assert.Contains(t, res, "return h.Sum64()")

		spew.Dump(res)
	})

	t.Run("string body keeps the symbol", func(t *testing.T) {
		t.Parallel()

		res, err := primitive.MethodLines(primitive.CapStringer, primitive.KindFloat64, meter)
		require.NoError(t, err)
		assert.Equal(t, []string{`return strconv.FormatFloat(float64(v.raw), 'g', -1, 64) + " m"`}, res)
	})

	t.Run("string body without a symbol", func(t *testing.T) {
		t.Parallel()

		serial := primitive.MethodData{Type: "SerialNumber", Raw: "raw", Repr: "string"}

		res, err := primitive.MethodLines(primitive.CapStringer, primitive.KindString, serial)
		require.NoError(t, err)
		assert.Equal(t, []string{"return v.raw"}, res)
	})

	t.Run("ordering on bool is rejected", func(t *testing.T) {
		t.Parallel()

		flag := primitive.MethodData{Type: "Flag", Raw: "raw", Repr: "bool"}

		_, err := primitive.MethodLines(primitive.CapOrdered, primitive.KindBool, flag)
		assert.ErrorIs(t, err, primitive.ErrCapabilityUnsupported)
	})
}

func TestConvertLines(t *testing.T) {
	t.Parallel()

	myint := primitive.MethodData{Type: "MyInt", Raw: "raw", Repr: "int"}

	res, err := primitive.ConvertLines(primitive.KindUint, myint)
	require.NoError(t, err)
	assert.Equal(t, []string{"return uint(v.raw)"}, res)

	_, err = primitive.ConvertLines(primitive.KindString, myint)
	assert.ErrorIs(t, err, primitive.ErrCapabilityUnsupported)
}

func TestMethodImports(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t,
		[]string{"hash/fnv", "encoding/binary", "math"},
		primitive.MethodImports(primitive.CapHashable, primitive.KindFloat64))

	assert.ElementsMatch(t,
		[]string{"hash/fnv"},
		primitive.MethodImports(primitive.CapHashable, primitive.KindString))

	assert.Empty(t, primitive.MethodImports(primitive.CapStringer, primitive.KindString))
	assert.Equal(t, []string{"strconv"}, primitive.MethodImports(primitive.CapStringer, primitive.KindInt))
	assert.Empty(t, primitive.MethodImports(primitive.CapAddable, primitive.KindFloat64))
}
