package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed tuning.json
var defaultTuning []byte

var ErrInvalidTuning = errors.New("invalid tuning")

// Phase is one step of the difficulty ladder. A phase is active once the score
// reaches its threshold.
type Phase struct {
	Name            string  `json:"name"`
	Background      string  `json:"background"`       // path under the asset dir
	SpeedMultiplier float64 `json:"speed_multiplier"` // applied to the police speed
	ScoreThreshold  float64 `json:"score_threshold"`
}

// Tuning holds the gameplay rules.
type Tuning struct {
	RunnerSpeed    float64 `json:"runner_speed"` // pixels per second
	PoliceSpeed    float64 `json:"police_speed"` // pixels per second, before the phase multiplier
	ScorePerSecond float64 `json:"score_per_second"`
	WinScore       float64 `json:"win_score"`
	MaxDistance    float64 `json:"max_distance"` // police gap at multiplier 1
	PoliceStartGap float64 `json:"police_start_gap"`
	RunnerStartX   float64 `json:"runner_start_x"`
	GroundMargin   float64 `json:"ground_margin"` // ground line, from the bottom of the screen
	FrameDuration  float64 `json:"frame_duration"`
	ScrollAt       float64 `json:"scroll_at"` // fraction of the screen width where the camera takes over
	Phases         []Phase `json:"phases"`
}

// Default returns the embedded tuning.
func Default() (*Tuning, error) {
	return ParseTuning(defaultTuning)
}

// LoadTuning reads the tuning file at path. An empty path yields the embedded
// default.
func LoadTuning(path string) (*Tuning, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) Validate() error {
	if t.RunnerSpeed <= 0 || t.PoliceSpeed <= 0 {
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidTuning)
	}
	if t.ScorePerSecond <= 0 {
		return fmt.Errorf("%w: score_per_second must be positive", ErrInvalidTuning)
	}
	if t.MaxDistance <= 0 {
		return fmt.Errorf("%w: max_distance must be positive", ErrInvalidTuning)
	}
	if t.FrameDuration <= 0 {
		return fmt.Errorf("%w: frame_duration must be positive", ErrInvalidTuning)
	}
	if t.ScrollAt <= 0 || t.ScrollAt > 1 {
		return fmt.Errorf("%w: scroll_at %v outside (0, 1]", ErrInvalidTuning, t.ScrollAt)
	}
	if len(t.Phases) == 0 {
		return fmt.Errorf("%w: no phases", ErrInvalidTuning)
	}
	if t.Phases[0].ScoreThreshold != 0 {
		return fmt.Errorf("%w: first phase must start at score 0", ErrInvalidTuning)
	}
	for i, p := range t.Phases {
		if p.SpeedMultiplier <= 0 {
			return fmt.Errorf("%w: phase %d: speed_multiplier must be positive", ErrInvalidTuning, i)
		}
		if i > 0 && p.ScoreThreshold <= t.Phases[i-1].ScoreThreshold {
			return fmt.Errorf("%w: phase %d: thresholds must increase", ErrInvalidTuning, i)
		}
	}
	if last := t.Phases[len(t.Phases)-1]; t.WinScore <= last.ScoreThreshold {
		return fmt.Errorf("%w: win_score %v must exceed the last threshold %v", ErrInvalidTuning, t.WinScore, last.ScoreThreshold)
	}
	return nil
}
