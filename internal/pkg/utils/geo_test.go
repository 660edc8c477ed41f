package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(41.38, 2.17, 41.38, 2.17))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		// ~111.2 км на любой долготе
		d := HaversineDistance(41.0, 2.17, 42.0, 2.17)
		assert.InDelta(t, 111195, d, 100)
	})

	t.Run("city block scale", func(t *testing.T) {
		// Два перекрестка в Эшампле
		d := HaversineDistance(41.38879, 2.15899, 41.38969, 2.16012)
		assert.InDelta(t, 137, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t,
			HaversineDistance(41.38, 2.17, 48.85, 2.35),
			HaversineDistance(48.85, 2.35, 41.38, 2.17))
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(41.38, 2.17))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(0, 0))

	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(-90.1, 0))
	assert.False(t, ValidateCoordinates(0, 180.1))
	assert.False(t, ValidateCoordinates(0, -180.1))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(10))
	assert.True(t, ValidateRadius(500))
	assert.True(t, ValidateRadius(5000))

	assert.False(t, ValidateRadius(9.9))
	assert.False(t, ValidateRadius(5000.1))
	assert.False(t, ValidateRadius(0))
	assert.False(t, ValidateRadius(-100))
}
