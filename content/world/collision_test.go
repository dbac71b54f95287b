package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColliderOverlapping(t *testing.T) {
	size := Rect{W: 64, H: 64}

	tests := []struct {
		name     string
		runner   Rect
		police   Rect
		expected bool
	}{
		{"overlapping", Rect{1000, 276, 64, 64}, Rect{980, 276, 64, 64}, true},
		{"same position", Rect{1000, 276, 64, 64}, Rect{1000, 276, 64, 64}, true},
		{"nearly the same position", Rect{1000, 276, 64, 64}, Rect{1000.001, 276, 64, 64}, true},
		{"edges touching", Rect{1000, 276, 64, 64}, Rect{936, 276, 64, 64}, false},
		{"far behind", Rect{1000, 276, 64, 64}, Rect{800, 276, 64, 64}, false},
		{"just apart", Rect{1000, 276, 64, 64}, Rect{930, 276, 64, 64}, false},
		{"far into the world", Rect{1e6, 276, 64, 64}, Rect{1e6 - 30, 276, 64, 64}, true},
		{"negative world x", Rect{-10, 276, 64, 64}, Rect{-300, 276, 64, 64}, false},
		{"vertically apart", Rect{1000, 0, 64, 64}, Rect{1000, 200, 64, 64}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCollider(size, size)
			assert.Equal(t, tt.expected, c.Overlapping(tt.runner, tt.police))
		})
	}
}

func TestColliderReusesShapes(t *testing.T) {
	size := Rect{W: 64, H: 64}
	c := newCollider(size, size)

	assert.True(t, c.Overlapping(Rect{500, 276, 64, 64}, Rect{480, 276, 64, 64}))
	assert.False(t, c.Overlapping(Rect{5000, 276, 64, 64}, Rect{4800, 276, 64, 64}))
	assert.True(t, c.Overlapping(Rect{9000, 276, 64, 64}, Rect{8990, 276, 64, 64}))
}

func TestColliderDifferentSizes(t *testing.T) {
	c := newCollider(Rect{W: 64, H: 64}, Rect{W: 32, H: 64})

	assert.True(t, c.Overlapping(Rect{100, 0, 64, 64}, Rect{70, 0, 32, 64}))
	assert.False(t, c.Overlapping(Rect{100, 0, 64, 64}, Rect{68, 0, 32, 64}), "police right edge on the runner's left edge")
	assert.True(t, c.Overlapping(Rect{100, 0, 64, 64}, Rect{130, 0, 32, 64}))
	assert.False(t, c.Overlapping(Rect{100, 0, 64, 64}, Rect{164, 0, 32, 64}))
}
