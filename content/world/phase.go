package world

import "city-chase/content/config"

// PhaseTracker walks the phase table as the score grows. Phases never go back.
type PhaseTracker struct {
	phases []config.Phase
	index  int
}

func NewPhaseTracker(phases []config.Phase) *PhaseTracker {
	return &PhaseTracker{phases: phases}
}

// Update advances past every phase whose threshold the score has reached.
func (p *PhaseTracker) Update(score float64) bool {
	changed := false
	for p.index+1 < len(p.phases) && p.phases[p.index+1].ScoreThreshold <= score {
		p.index++
		changed = true
	}
	return changed
}

func (p *PhaseTracker) Index() int { return p.index }
func (p *PhaseTracker) Len() int   { return len(p.phases) }

func (p *PhaseTracker) Current() config.Phase {
	return p.phases[p.index]
}

func (p *PhaseTracker) Multiplier() float64 {
	return p.phases[p.index].SpeedMultiplier
}

// MaxDistance shrinks the allowed police gap as the phase speeds up.
func (p *PhaseTracker) MaxDistance(base float64) float64 {
	return base / p.Multiplier()
}

func (p *PhaseTracker) Reset() {
	p.index = 0
}
