// Package diagnostic provides structured errors, warnings, and informational
// findings for catalog validation and plan resolution.
//
// Key capabilities:
//   - Unknown name errors with did-you-mean suggestions
//   - Narrowing and precision warnings
//   - Findings grouped by severity, addressable by family and unit
package diagnostic
