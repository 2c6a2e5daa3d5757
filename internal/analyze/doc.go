// Package analyze provides output package loading and formula checks.
//
// It uses golang.org/x/tools/go/packages with go/types to look up the
// hand-written conversion functions a catalog refers to and verify their
// shape against the family representation.
//
// Key types:
//   - PackageScope: package identity plus its top-level functions
//   - CheckFormulas: every referenced function must be func(R) R
package analyze
