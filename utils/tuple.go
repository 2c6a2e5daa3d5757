package utils

// Second discards the first of two values and returns the second.
// Handy for keeping one result of a two-value call inline.
func Second[T any](_ any, t T) T { return t }

// Unpack2 splits a slice into its first two elements.
// Missing elements come back as zero values.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	case 0:
		return
	case 1:
		first = s[0]
		return
	default:
		return s[0], s[1]
	}
}
