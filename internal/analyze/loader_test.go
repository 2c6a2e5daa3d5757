package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const powerDir = "../../examples/power"

func TestLoadOutputPackage(t *testing.T) {
	scope, err := LoadOutputPackage(powerDir)
	require.NoError(t, err)
	require.NotNil(t, scope)

	assert.Equal(t, "power", scope.Name)
	assert.Empty(t, scope.Errors)

	names := scope.FuncNames()
	assert.Contains(t, names, "DecibelsFromWatts")
	assert.Contains(t, names, "WattsFromDecibels")

	fn, ok := scope.Func("WattsFromDecibels")
	require.True(t, ok)
	assert.Equal(t, "WattsFromDecibels", fn.Name())

	_, ok = scope.Func("NoSuchFunction")
	assert.False(t, ok)
}

func TestLoadOutputPackage_BadDir(t *testing.T) {
	_, err := LoadOutputPackage("does-not-exist")
	assert.Error(t, err)
}
