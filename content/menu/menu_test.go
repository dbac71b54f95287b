package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPauseMenuStartsOnResume(t *testing.T) {
	m := NewPauseMenu()
	assert.Equal(t, ItemResume, m.Selected())
	assert.Equal(t, []Item{ItemResume, ItemRestart, ItemQuit}, m.Items())
}

func TestPauseMenuNavigation(t *testing.T) {
	tests := []struct {
		name     string
		moves    string
		expected Item
	}{
		{"down once", "d", ItemRestart},
		{"down twice", "dd", ItemQuit},
		{"down wraps", "ddd", ItemResume},
		{"up wraps", "u", ItemQuit},
		{"up then down", "ud", ItemResume},
		{"up twice", "uu", ItemRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPauseMenu()
			for _, c := range tt.moves {
				if c == 'u' {
					m.Up()
				} else {
					m.Down()
				}
			}
			assert.Equal(t, tt.expected, m.Selected())
			assert.True(t, m.IsSelected(tt.expected))
		})
	}
}

func TestPauseMenuReset(t *testing.T) {
	m := NewPauseMenu()
	m.Down()
	m.Down()
	m.Reset()
	assert.Equal(t, ItemResume, m.Selected())
}

func TestItemString(t *testing.T) {
	assert.Equal(t, "Resume", ItemResume.String())
	assert.Equal(t, "Restart", ItemRestart.String())
	assert.Equal(t, "Quit", ItemQuit.String())
	assert.Equal(t, "?", Item(7).String())
}
