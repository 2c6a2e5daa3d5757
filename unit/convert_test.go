package unit_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-generator/unit"
)

func half(v float64) float64   { return v / 2 }
func double(v float64) float64 { return v * 2 }

func ExampleParseConv() {
	conv, err := unit.ParseConv(half, double)
	fmt.Println(err, conv.FromAlias, conv.FromName, conv.ToAlias, conv.ToName)

	_, err = unit.ParseConv(42, double)
	fmt.Println(err)

	_, err = unit.ParseConv(math.Atan2, double)
	fmt.Println(err)

	// Output:
	// <nil> unit_test half unit_test double
	// provided converter is not a function
	// converter must be func(float64) float64
}

func TestParseConvStdlib(t *testing.T) {
	conv, err := unit.ParseConv(math.Sqrt, math.Exp)
	require.NoError(t, err)

	assert.Equal(t, "math", conv.FromAlias)
	assert.Equal(t, "Sqrt", conv.FromName)
	assert.Equal(t, 3.0, conv.FromBase(9))
	assert.Equal(t, 1.0, conv.ToBase(0))
}

func TestParseConvDefinedType(t *testing.T) {
	type curve func(float64) float64

	var offset curve = func(v float64) float64 { return v + 1 }

	conv, err := unit.ParseConv(offset, offset)
	require.NoError(t, err)
	assert.Equal(t, 3.0, conv.FromBase(2))
}

func TestParseConvNil(t *testing.T) {
	var fn func(float64) float64

	_, err := unit.ParseConv(fn, double)
	assert.ErrorIs(t, err, unit.ErrConvNotAFunction)

	_, err = unit.ParseConv(nil, double)
	assert.ErrorIs(t, err, unit.ErrConvNotAFunction)

	_, err = unit.ParseConv(half, nil)
	assert.ErrorIs(t, err, unit.ErrConvNotAFunction)
}
