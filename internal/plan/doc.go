// Package plan provides the resolution pipeline that produces a final
// Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Load YAML catalog → validate
//  2. For each family:
//     - Order the units topologically against the root
//     - Compose every unit's exact path to the root, merging ratio runs
//     - Plan one conversion route per ordered unit pair, trimmed to the
//       nearest common point
//  3. Emit diagnostics (cycles, dropped capabilities, lossy narrowing)
//
// All ratio arithmetic is exact; floats appear only when generated code
// applies a route to a payload.
package plan
