package world

import (
	"testing"

	"city-chase/content/config"

	"github.com/stretchr/testify/assert"
)

func testPhases() []config.Phase {
	return []config.Phase{
		{Name: "a", Background: "a.png", SpeedMultiplier: 1, ScoreThreshold: 0},
		{Name: "b", Background: "b.png", SpeedMultiplier: 1.25, ScoreThreshold: 100},
		{Name: "c", Background: "c.png", SpeedMultiplier: 2, ScoreThreshold: 250},
	}
}

func TestPhaseTrackerUpdate(t *testing.T) {
	p := NewPhaseTracker(testPhases())

	assert.False(t, p.Update(50))
	assert.Equal(t, 0, p.Index())

	assert.True(t, p.Update(100), "threshold is inclusive")
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, "b.png", p.Current().Background)

	assert.False(t, p.Update(120))

	p.Reset()
	assert.True(t, p.Update(300), "skips straight to the highest reached phase")
	assert.Equal(t, 2, p.Index())

	assert.False(t, p.Update(10000), "last phase is terminal")
	assert.Equal(t, 2, p.Index())
	assert.Equal(t, 3, p.Len())
}

func TestPhaseTrackerNeverGoesBack(t *testing.T) {
	p := NewPhaseTracker(testPhases())
	p.Update(260)
	assert.False(t, p.Update(0))
	assert.Equal(t, 2, p.Index())
}

func TestPhaseTrackerMaxDistance(t *testing.T) {
	p := NewPhaseTracker(testPhases())
	assert.InDelta(t, 240.0, p.MaxDistance(240), 1e-9)

	p.Update(100)
	assert.InDelta(t, 1.25, p.Multiplier(), 1e-9)
	assert.InDelta(t, 192.0, p.MaxDistance(240), 1e-9)
}
