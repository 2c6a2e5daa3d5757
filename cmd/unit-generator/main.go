// Package main provides the unit-generator command line tool.
//
// unit-generator reads YAML catalogs that declare families of measurement
// units, resolves every declared relation into an exact conversion mesh and
// generates nominal Go types with capability methods and conversions.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
