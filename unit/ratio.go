package unit

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrRatioNotPositive = errors.New("ratio must be positive")
	ErrRatioSyntax      = errors.New("ratio must be an integer, fraction or decimal literal")
)

// Ratio is an exact positive rational multiplier between two units of one
// family. Composition stays in integer arithmetic; the payload only meets a
// float at application time. The zero value is not usable, construct through
// NewRatio, MustRatio, ParseRatio or One.
type Ratio struct {
	rat *big.Rat
}

func NewRatio(num, den int64) (Ratio, error) {
	if num <= 0 || den <= 0 {
		return Ratio{}, fmt.Errorf("%w: %d/%d", ErrRatioNotPositive, num, den)
	}

	return Ratio{rat: big.NewRat(num, den)}, nil
}

func MustRatio(num, den int64) Ratio {
	r, err := NewRatio(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// ParseRatio accepts an integer ("1000"), a fraction ("1/1000") or a decimal
// ("2.54") literal. Every form is captured exactly, the decimal one included.
func ParseRatio(s string) (Ratio, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Ratio{}, fmt.Errorf("%w: %q", ErrRatioSyntax, s)
	}

	if rat.Sign() <= 0 {
		return Ratio{}, fmt.Errorf("%w: %q", ErrRatioNotPositive, s)
	}

	return Ratio{rat: rat}, nil
}

func One() Ratio {
	return Ratio{rat: big.NewRat(1, 1)}
}

func (r Ratio) Mul(o Ratio) Ratio { return Ratio{rat: new(big.Rat).Mul(r.rat, o.rat)} }

func (r Ratio) Div(o Ratio) Ratio { return Ratio{rat: new(big.Rat).Quo(r.rat, o.rat)} }

func (r Ratio) Inv() Ratio { return Ratio{rat: new(big.Rat).Inv(r.rat)} }

func (r Ratio) Equal(o Ratio) bool { return r.rat.Cmp(o.rat) == 0 }

func (r Ratio) IsOne() bool { return r.rat.Cmp(big.NewRat(1, 1)) == 0 }

// Float64 returns the nearest float64 and whether it represents the ratio
// exactly.
func (r Ratio) Float64() (f float64, exact bool) { return r.rat.Float64() }

// Num and Den return copies, the ratio itself stays immutable.

func (r Ratio) Num() *big.Int { return new(big.Int).Set(r.rat.Num()) }

func (r Ratio) Den() *big.Int { return new(big.Int).Set(r.rat.Denom()) }

func (r Ratio) String() string { return r.rat.RatString() }

// Apply multiplies v by the ratio in as few float operations as the ratio
// permits: one multiply when the ratio has an exact float64 value, otherwise
// v * num / den so the only rounding is the final division.
func Apply(v float64, r Ratio) float64 {
	if f, exact := r.rat.Float64(); exact {
		return v * f
	}

	num, _ := new(big.Float).SetInt(r.rat.Num()).Float64()
	den, _ := new(big.Float).SetInt(r.rat.Denom()).Float64()

	return v * num / den
}
