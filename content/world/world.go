package world

import (
	"city-chase/content/config"

	"golang.org/x/image/math/f64"
)

type Outcome int

const (
	OutcomeNone    Outcome = iota
	OutcomeCaught          // police reached the runner
	OutcomeEscaped         // runner reached the win score
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCaught:
		return "caught"
	case OutcomeEscaped:
		return "escaped"
	}
	return "unknown"
}

// Events is what happened during one Step.
type Events struct {
	PhaseChanged bool
	Phase        int
	Outcome      Outcome
}

// Snapshot is the screen-space view of the world handed to the renderer.
type Snapshot struct {
	Runner       f64.Vec2 // top-left, screen space
	RunnerSize   f64.Vec2
	RunnerFrame  int // -1 when idle
	RunnerMoving bool
	FacingRight  bool
	Police       f64.Vec2 // top-left, screen space
	PoliceSize   f64.Vec2
	PoliceFrame  int
	PoliceShown  bool // any part of the police is on screen
	CameraX      float64
	Score        int
	Phase        int
	PhaseName    string
	Background   string
	Gap          float64
	Elapsed      float64
	Outcome      Outcome
}

// World is one run of the chase.
type World struct {
	Runner *Runner
	Police *Police
	Camera *Camera
	Score  *ScoreManager
	Phases *PhaseTracker

	tuning     *config.Tuning
	viewWidth  float64
	viewHeight float64
	spriteW    float64
	spriteH    float64
	collider   *collider
	elapsed    float64
	outcome    Outcome
}

// New builds a world for a view of the given size. Runner and police are drawn
// at spriteW x spriteH; the police keeps that aspect ratio at the runner's height.
func New(t *config.Tuning, viewWidth, viewHeight, spriteW, spriteH float64) *World {
	w := &World{
		tuning:     t,
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
		spriteW:    spriteW,
		spriteH:    spriteH,
		Score:      NewScoreManager(t.ScorePerSecond),
		Phases:     NewPhaseTracker(t.Phases),
	}
	w.Reset()
	return w
}

// Reset puts every entity back at its starting position.
func (w *World) Reset() {
	t := w.tuning
	groundY := w.viewHeight - t.GroundMargin - w.spriteH

	w.Runner = NewRunner(t.RunnerStartX, groundY, w.spriteW, w.spriteH, t.RunnerSpeed, t.FrameDuration)
	w.Police = NewPolice(0, groundY, t.PoliceSpeed, w.spriteW, w.spriteH, t.FrameDuration)
	w.Police.SetHeight(w.Runner.Height)
	w.Police.X = w.Runner.X - t.PoliceStartGap - w.Police.Width()

	w.Camera = NewCamera(w.viewWidth, t.ScrollAt*w.viewWidth)
	w.Score.Reset()
	w.Phases.Reset()
	w.collider = newCollider(w.Runner.Bounds(), w.Police.Bounds())
	w.elapsed = 0
	w.outcome = OutcomeNone
}

// Step advances the world by dt seconds. Once the run has an outcome, Step
// does nothing.
func (w *World) Step(dt float64, in Controls) Events {
	if w.outcome != OutcomeNone {
		return Events{Phase: w.Phases.Index(), Outcome: w.outcome}
	}
	w.elapsed += dt

	w.Runner.Update(dt, in)
	w.Camera.Follow(w.Runner.X, w.Runner.Width)
	w.Runner.X = w.Camera.Clamp(w.Runner.X, w.Runner.Width)

	w.Score.Update(dt)
	ev := Events{PhaseChanged: w.Phases.Update(w.Score.Value())}
	ev.Phase = w.Phases.Index()

	w.Police.Update(dt, w.Phases.Multiplier())
	w.Police.ClampBehind(w.Runner.X, w.Phases.MaxDistance(w.tuning.MaxDistance))

	switch {
	case w.collider.Overlapping(w.Runner.Bounds(), w.Police.Bounds()), w.Police.X > w.Runner.X:
		w.outcome = OutcomeCaught
	case w.Score.Value() >= w.tuning.WinScore:
		w.outcome = OutcomeEscaped
	}
	ev.Outcome = w.outcome
	return ev
}

// Gap is the distance between the police's right edge and the runner.
func (w *World) Gap() float64 {
	return w.Runner.X - (w.Police.X + w.Police.Width())
}

func (w *World) Outcome() Outcome { return w.outcome }
func (w *World) Elapsed() float64 { return w.elapsed }

func (w *World) Snapshot() Snapshot {
	phase := w.Phases.Current()
	return Snapshot{
		Runner:       f64.Vec2{w.Camera.ToScreen(w.Runner.X), w.Runner.Y},
		RunnerSize:   f64.Vec2{w.Runner.Width, w.Runner.Height},
		RunnerFrame:  w.Runner.Frame(),
		RunnerMoving: w.Runner.Moving(),
		FacingRight:  w.Runner.FacingRight(),
		Police:       f64.Vec2{w.Camera.ToScreen(w.Police.X), w.Police.Y},
		PoliceSize:   f64.Vec2{w.Police.Width(), w.Police.Height()},
		PoliceFrame:  w.Police.Frame(),
		PoliceShown:  w.Camera.Visible(w.Police.X, w.Police.Width()),
		CameraX:      w.Camera.X,
		Score:        w.Score.Score(),
		Phase:        w.Phases.Index(),
		PhaseName:    phase.Name,
		Background:   phase.Background,
		Gap:          w.Gap(),
		Elapsed:      w.elapsed,
		Outcome:      w.outcome,
	}
}
