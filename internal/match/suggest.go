package match

import "sort"

// Scored is a candidate name with its similarity to the requested name.
type Scored struct {
	Name  string
	Score float64
}

// RankNames scores every candidate against the target and returns them
// sorted by descending similarity. Each candidate is scored both as written
// and with plural stripping, whichever is closer. Ties resolve
// lexicographically so the output is deterministic.
func RankNames(target string, candidates []string) []Scored {
	targetNorm := NormalizeIdent(target)
	targetStripped := NormalizeIdentStripPlural(target)

	scored := make([]Scored, 0, len(candidates))

	for _, name := range candidates {
		score := LevenshteinNormalized(NormalizeIdent(name), targetNorm)
		if s := LevenshteinNormalized(NormalizeIdentStripPlural(name), targetStripped); s > score {
			score = s
		}

		scored = append(scored, Scored{Name: name, Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}

		return scored[i].Name < scored[j].Name
	})

	return scored
}

const (
	suggestLimit     = 3
	suggestThreshold = 0.5
)

// Suggest returns up to three candidate names similar enough to the target
// to be worth proposing in a did-you-mean diagnostic.
func Suggest(target string, candidates []string) []string {
	var out []string

	for _, sc := range RankNames(target, candidates) {
		if sc.Score < suggestThreshold || len(out) == suggestLimit {
			break
		}

		out = append(out, sc.Name)
	}

	return out
}
