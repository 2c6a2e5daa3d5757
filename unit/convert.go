package unit

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"

	"unit-generator/utils"
)

var (
	ErrConvNotAFunction = errors.New("provided converter is not a function")
	ErrConvBadShape     = errors.New("converter must be func(float64) float64")
)

var formulaShape = reflect.TypeFor[func(float64) float64]()

// Conv is a validated formula pair between a unit and its anchor. FromBase
// carries an anchor amount into the unit, ToBase carries it back. Both are
// pure and stateless; nothing is cached and no input is validated, NaN and
// Inf propagate untouched.
type Conv struct {
	FromName, FromAlias string
	ToName, ToAlias     string

	fromBase func(float64) float64
	toBase   func(float64) float64
}

// ParseConv inspects both directions of a formula pair. Each must be a
// func(float64) float64 (defined function types over that shape included);
// the function name and package alias are recorded for code generation and
// diagnostics.
func ParseConv(fromBase, toBase any) (Conv, error) {
	var (
		conv Conv
		err  error
	)

	conv.fromBase, conv.FromAlias, conv.FromName, err = parseFormula(fromBase)
	if err != nil {
		return Conv{}, err
	}

	conv.toBase, conv.ToAlias, conv.ToName, err = parseFormula(toBase)
	if err != nil {
		return Conv{}, err
	}

	return conv, nil
}

func (c Conv) FromBase(v float64) float64 { return c.fromBase(v) }

func (c Conv) ToBase(v float64) float64 { return c.toBase(v) }

func parseFormula(fn any) (call func(float64) float64, alias, name string, err error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, "", "", ErrConvNotAFunction
	}

	if !fnVal.Type().ConvertibleTo(formulaShape) {
		return nil, "", "", ErrConvBadShape
	}

	call = fnVal.Convert(formulaShape).Interface().(func(float64) float64)

	// Get the pointer to the function
	// Get the function object from the pointer
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name = utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	return call, utils.Second(path.Split(alias)), name, nil
}
