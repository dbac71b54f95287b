package world

// ScoreManager accrues score at a fixed rate per second.
type ScoreManager struct {
	score float64
	rate  float64
}

func NewScoreManager(rate float64) *ScoreManager {
	return &ScoreManager{rate: rate}
}

func (s *ScoreManager) Update(dt float64) {
	s.score += s.rate * dt
}

// Score is the displayed, truncated score.
func (s *ScoreManager) Score() int {
	return int(s.score)
}

func (s *ScoreManager) Value() float64 { return s.score }

func (s *ScoreManager) Reset() {
	s.score = 0
}
