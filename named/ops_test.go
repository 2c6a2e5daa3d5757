package named_test

import (
	"fmt"
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"

	"unit-generator/named"
)

type distance struct{}

func ExampleAdd() {
	a := named.Of[distance](1.5)
	b := named.Of[distance](2.25)

	fmt.Println(named.Add(a, b).Get(), named.Sub(a, b).Get())

	// Output:
	// 3.75 -0.75
}

func TestAddStrings(t *testing.T) {
	type greeting struct{}

	a := named.Of[greeting]("hello ")
	b := named.Of[greeting]("world")

	assert.Equal(t, "hello world", named.Add(a, b).Get())
}

func TestEqualityAndHash(t *testing.T) {
	type token struct{}

	x := named.Of[token]("deadbeef")
	y := named.Of[token]("deadbeef")
	z := named.Of[token]("cafebabe")

	assert.True(t, named.Equal(x, x))
	assert.True(t, named.Equal(x, y))
	assert.True(t, named.NotEqual(x, z))
	assert.True(t, x == y)

	seed := maphash.MakeSeed()
	assert.Equal(t, named.Hash(seed, x), named.Hash(seed, y))
	assert.NotEqual(t, named.Hash(seed, x), named.Hash(seed, z))
}

func TestLess(t *testing.T) {
	type rank struct{}

	assert.True(t, named.Less(named.Of[rank](1), named.Of[rank](2)))
	assert.False(t, named.Less(named.Of[rank](2), named.Of[rank](2)))
	assert.True(t, named.Less(named.Of[rank]("alpha"), named.Of[rank]("beta")))
}
