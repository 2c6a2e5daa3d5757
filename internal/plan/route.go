package plan

import "unit-generator/unit"

// composePath prepends a unit's own relation step to its base's root path,
// merging the head when both are ratio steps. Composition is exact integer
// arithmetic; no float is involved until a route is applied.
func composePath(own Step, base []Step) []Step {
	if len(base) == 0 || own.IsFormula() || base[0].IsFormula() {
		out := make([]Step, 0, len(base)+1)
		return append(append(out, own), base...)
	}

	merged := Step{Ratio: own.Ratio.Mul(base[0].Ratio)}
	out := make([]Step, 0, len(base))

	return append(append(out, merged), base[1:]...)
}

// trimCommonSuffix drops the shared tail of two root paths, so a route meets
// at the nearest common point instead of walking down to the root and back
// up the same steps.
func trimCommonSuffix(a, b []Step) ([]Step, []Step) {
	i, j := len(a), len(b)

	for i > 0 && j > 0 && a[i-1].equal(b[j-1]) {
		i--
		j--
	}

	return a[:i], b[:j]
}

// buildRoute plans the conversion between two units of one family. Maximal
// ratio runs collapse into a single exact factor, carried across formula
// boundaries, so a pure-ratio pair costs one multiply and an exactly
// cancelling pair costs nothing.
func buildRoute(from, to *ResolvedUnit) Route {
	down, up := trimCommonSuffix(from.ToRoot, to.ToRoot)

	var steps []RouteStep

	pending := unit.One()
	flush := func() {
		if !pending.IsOne() {
			steps = append(steps, RouteStep{Ratio: pending})
			pending = unit.One()
		}
	}

	for _, s := range down {
		if s.IsFormula() {
			flush()

			steps = append(steps, RouteStep{Fn: s.ToFn})

			continue
		}

		pending = pending.Mul(s.Ratio)
	}

	for i := len(up) - 1; i >= 0; i-- {
		if s := up[i]; s.IsFormula() {
			flush()

			steps = append(steps, RouteStep{Fn: s.FromFn})
		} else {
			pending = pending.Div(s.Ratio)
		}
	}

	if len(steps) == 0 {
		return Route{From: from.Name, To: to.Name, Strategy: RouteRatio, Ratio: pending}
	}

	flush()

	return Route{From: from.Name, To: to.Name, Strategy: RouteChain, Steps: steps}
}

// planRoutes fills the conversion mesh: one route per ordered unit pair, in
// unit declaration order.
func planRoutes(f *ResolvedFamily) {
	var dealer routeDealer

	for i := range f.Units {
		for j := range f.Units {
			if i != j {
				dealer.Needs(f.Units[i].Name, f.Units[j].Name)
			}
		}
	}

	for {
		from, to, ok := dealer.NextNeeds()
		if !ok {
			break
		}

		f.Routes = append(f.Routes, buildRoute(f.Unit(from), f.Unit(to)))
	}
}
