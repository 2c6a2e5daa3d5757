// Package catalog provides YAML schema definitions, parsing, validation,
// and formula stubs for declared unit families.
//
// The catalog is the declaration site of every generated type: one file
// declares the families, the tool regenerates the same Go code from it
// every time.
//
// # Key capabilities
//
//   - Declare a family root and its representation (float64, int, string, ...)
//   - Relate units by exact rational scale ("1000 meter", "1/1000 meter")
//   - Relate units by formula function pairs declared in the output package
//   - Opt into capabilities per unit or per family (comparable, ordered,
//     addable, subtractable, hashable, stringer)
//   - Declare narrowing conversion targets (convert: [uint])
//   - Compact scalar forms with canonical round-trip marshaling
//
// # Schema Overview
//
// The catalog file has the following structure:
//
//	version: "1"
//	package: length
//	output: units_gen.go
//	families:
//	  - root: meter                  # or {name: meter, symbol: m}
//	    repr: float64
//	    capabilities: [comparable, ordered, addable, subtractable, hashable, stringer]
//	    units:
//	      - name: kilometer
//	        symbol: km
//	        scale: 1000 meter        # 1 kilometer = 1000 meter
//	      - name: millimeter
//	        scale: {of: meter, num: 1, den: 1000}
//	      - name: centimeter
//	        scale: 10 millimeter     # chained on a non-root base
//	      - name: mile
//	        formula: {of: kilometer, from: MilesFromKilometers, to: KilometersFromMiles}
//	  - root: serial_number
//	    repr: string
//	    capabilities: comparable, hashable, stringer
//
// # Relations
//
// Every non-root unit declares exactly one relation:
//
//   - scale: an exact rational factor against a base unit. Factors compose
//     through intermediate bases without rounding; a decimal literal like
//     2.54 is captured exactly as 127/50.
//   - formula: a pair of functions in the output package converting to and
//     from an anchor unit. Used where no constant factor exists (logarithmic
//     scales and the like).
//
// The base may be any unit of the same family, not only the root. Units of
// different families are unrelated and get no conversion methods.
//
// # Defaults
//
// The representation defaults to float64. Family-level capabilities and
// convert targets are inherited by every unit that does not declare its own.
// The literal constructor name defaults to the exported unit name plus "s"
// (meter -> Meters).
package catalog
