package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberStringElidesZeroFraction(t *testing.T) {
	assert.Equal(t, "7", Number(7).String())
	assert.Equal(t, "3.500000", Number(3.5).String())
	assert.Equal(t, "0.333333", Number(1.0/3.0).String())
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(Nil))
	assert.False(t, IsTruthy(Boolean(false)))
	assert.True(t, IsTruthy(Boolean(true)))
	assert.False(t, IsTruthy(Number(0)), "numeric 0 is falsy, a deliberate deviation from Lox")
	assert.True(t, IsTruthy(Number(1)))
	assert.True(t, IsTruthy(Str("")))
}

func TestEqualNumberIsIEEE754(t *testing.T) {
	nan := Number(math.NaN())
	assert.False(t, Equal(nan, nan), "NaN must not equal itself")
	assert.True(t, Equal(Number(1), Number(1)))
}

func TestEqualCrossKindIsAlwaysFalse(t *testing.T) {
	assert.False(t, Equal(Number(1), Str("1")))
	assert.False(t, Equal(Nil, Boolean(false)))
}

func TestEqualNilOnlyEqualsNil(t *testing.T) {
	assert.True(t, Equal(Nil, Nil))
	assert.False(t, Equal(Nil, Number(0)))
}
