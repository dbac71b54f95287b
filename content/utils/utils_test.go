package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		expected    float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
		{"inverted range", 5, 8, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.min, tt.max))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 3.0, Wrap(13, 10), 1e-9)
	assert.InDelta(t, 7.0, Wrap(-3, 10), 1e-9)
	assert.InDelta(t, 0.0, Wrap(20, 10), 1e-9)
	assert.InDelta(t, 2.5, Wrap(2.5, 10), 1e-9)
}

func TestTileOffset(t *testing.T) {
	tests := []struct {
		name                       string
		cameraX, factor, tileWidth float64
		expected                   float64
	}{
		{"camera at start", 0, 1, 100, 0},
		{"full speed", 130, 1, 100, -30},
		{"half speed", 130, 0.5, 100, -65},
		{"static layer", 500, 0, 100, 0},
		{"exact tile boundary", 200, 1, 100, 0},
		{"zero width", 50, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TileOffset(tt.cameraX, tt.factor, tt.tileWidth)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.LessOrEqual(t, got, 0.0)
		})
	}
}

func TestTileCount(t *testing.T) {
	assert.Equal(t, 7, TileCount(0, 100, 640))
	assert.Equal(t, 7, TileCount(-30, 100, 640))
	assert.Equal(t, 8, TileCount(-70, 100, 640))
	assert.Equal(t, 1, TileCount(0, 640, 640))
	assert.Equal(t, 0, TileCount(0, 0, 640))
}
