package named_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"unit-generator/named"
)

type (
	width  struct{}
	height struct{}
)

func ExampleOf() {
	w := named.Of[width](3.5)
	h := named.Of[height](2.0)

	// w and h share a representation but not a type; the payloads meet
	// only after an explicit unwrap.
	fmt.Println(w.Get() * h.Get())

	// Output:
	// 7
}

func ExampleNew() {
	v := named.New[float64, width](1.25)
	fmt.Println(v.Get())

	// Output:
	// 1.25
}

func ExampleOf_callable() {
	type descending struct{}

	cmp := named.Of[descending](func(a, b int) bool { return a > b })
	fmt.Println(cmp.Get()(2, 7), cmp.Get()(7, 2))

	// Output:
	// false true
}

func TestValueAsMapKey(t *testing.T) {
	type sku struct{}

	prices := map[named.Value[string, sku]]int{
		named.Of[sku]("AA11"): 1,
		named.Of[sku]("BB22"): 2,
		named.Of[sku]("CC33"): 3,
	}

	assert.Equal(t, 1, prices[named.Of[sku]("AA11")])
	assert.Equal(t, 2, prices[named.Of[sku]("BB22")])
	assert.Equal(t, 3, prices[named.Of[sku]("CC33")])

	_, ok := prices[named.Of[sku]("ZZ99")]
	assert.False(t, ok)
}
