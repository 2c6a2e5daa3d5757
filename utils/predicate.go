package utils

// Number covers every built-in numeric type a unit payload can be declared
// over. Generated literal constructors instantiate it so one helper accepts
// both integral and floating tokens.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
