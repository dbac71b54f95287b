package world

import "city-chase/content/config"

// Controls is one frame of player input.
type Controls struct {
	Left  bool
	Right bool
}

// Rect is an axis-aligned box in world space, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Runner is the player character.
type Runner struct {
	X, Y          float64 // world position of the top-left corner
	Width, Height float64
	Speed         float64 // pixels per second

	frameDuration float64
	animTime      float64
	moving        bool
	facingRight   bool
}

func NewRunner(x, y, width, height, speed, frameDuration float64) *Runner {
	return &Runner{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		Speed:         speed,
		frameDuration: frameDuration,
		facingRight:   true,
	}
}

// Update applies one frame of input. Left takes precedence over right.
func (r *Runner) Update(dt float64, in Controls) {
	r.moving = false

	if in.Left {
		r.X -= r.Speed * dt
		r.moving = true
		r.facingRight = false
	} else if in.Right {
		r.X += r.Speed * dt
		r.moving = true
		r.facingRight = true
	}

	if r.moving {
		r.animTime += dt
	} else {
		r.animTime = 0
	}
}

// Frame returns the run cycle frame, or -1 while standing still.
func (r *Runner) Frame() int {
	if !r.moving {
		return -1
	}
	return int(r.animTime/r.frameDuration) % config.FrameCount
}

func (r *Runner) Moving() bool      { return r.moving }
func (r *Runner) FacingRight() bool { return r.facingRight }

func (r *Runner) Bounds() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}
