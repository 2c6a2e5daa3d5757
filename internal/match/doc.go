// Package match provides name normalization, Levenshtein distance
// calculation, and candidate ranking for did-you-mean suggestions on
// misspelled unit, family, and capability names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankNames: ranks candidate names against a requested one
//   - Suggest: picks the candidates worth proposing in a diagnostic
package match
