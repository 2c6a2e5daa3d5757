package analyze

import (
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// PackageScope is the package-level view of an output package: its identity
// and every top-level function, ready for signature checks.
type PackageScope struct {
	// Name is the package name, empty when the directory has no Go files yet.
	Name string
	// Path is the package import path.
	Path string
	// Errors carries the loader and type errors of the package. A package
	// that is broken because its conversion functions are still missing is
	// expected here and stays inspectable.
	Errors []packages.Error

	funcs map[string]*types.Func
}

// Func returns the top-level function with the given name.
func (s *PackageScope) Func(name string) (*types.Func, bool) {
	fn, ok := s.funcs[name]

	return fn, ok
}

// FuncNames returns every top-level function name, sorted.
func (s *PackageScope) FuncNames() []string {
	names := make([]string, 0, len(s.funcs))
	for name := range s.funcs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
