package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes

// LoadOutputPackage loads the Go package in dir, the one the generated file
// and the hand-written conversion functions share. Type errors do not fail
// the load; they are kept on the scope so a package that is broken only
// because conversions are not written yet can still be checked.
func LoadOutputPackage(dir string) (*PackageScope, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %s: %w", dir, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}

	return newPackageScope(pkgs[0]), nil
}

// newPackageScope extracts the top-level functions from a loaded package.
func newPackageScope(pkg *packages.Package) *PackageScope {
	s := &PackageScope{
		Name:   pkg.Name,
		Path:   pkg.PkgPath,
		Errors: pkg.Errors,
		funcs:  make(map[string]*types.Func),
	}

	if pkg.Types == nil {
		return s
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if fn, ok := scope.Lookup(name).(*types.Func); ok {
			s.funcs[name] = fn
		}
	}

	return s
}
