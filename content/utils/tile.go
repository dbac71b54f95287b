package utils

import "math"

// Wrap maps v into [0, m). m must be positive.
func Wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

// TileOffset returns the screen X at which to draw the first tile of a
// horizontally repeating layer. A factor of 1 moves with the world, 0 stands still.
// The result is in (-tileWidth, 0].
func TileOffset(cameraX, factor, tileWidth float64) float64 {
	if tileWidth <= 0 {
		return 0
	}
	off := -Wrap(cameraX*factor, tileWidth)
	if off == 0 {
		return 0 // drop -0
	}
	return off
}

// TileCount is the number of tiles needed to cover viewWidth starting at offset.
func TileCount(offset, tileWidth, viewWidth float64) int {
	if tileWidth <= 0 {
		return 0
	}
	return int(math.Ceil((viewWidth - offset) / tileWidth))
}
