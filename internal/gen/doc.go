// Package gen provides deterministic Go code generation for unit types.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Codegen patterns:
//   - Nominal struct per unit, with a zero-size guard field when the type
//     must not be comparable
//   - Capability methods rendered from the primitive body templates
//   - Narrowing methods using plain Go conversions
//   - Conversion mesh methods: one exact multiply or divide for a ratio
//     route, the minimal merged step sequence for a chain route
//   - Generic literal constructors over the numeric constraint
package gen
