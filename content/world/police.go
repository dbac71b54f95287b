package world

import "city-chase/content/config"

// Police chases the runner from the left. Its size keeps the aspect ratio of
// its first run frame.
type Police struct {
	X, Y  float64 // world position of the top-left corner
	Speed float64 // pixels per second before the phase multiplier

	width, height float64
	aspect        float64
	frameDuration float64
	animTime      float64
}

func NewPolice(x, y, speed, frameWidth, frameHeight, frameDuration float64) *Police {
	p := &Police{
		X:             x,
		Y:             y,
		Speed:         speed,
		frameDuration: frameDuration,
		aspect:        1,
	}
	if frameHeight > 0 {
		p.width = frameWidth
		p.height = frameHeight
		p.aspect = frameWidth / frameHeight
	}
	return p
}

// Update runs the police forward. The run animation never stops.
func (p *Police) Update(dt, multiplier float64) {
	p.X += p.Speed * multiplier * dt
	p.animTime += dt
}

func (p *Police) Frame() int {
	return int(p.animTime/p.frameDuration) % config.FrameCount
}

// SetHeight resizes the police, scaling the width by the sprite aspect ratio.
func (p *Police) SetHeight(h float64) {
	p.height = h
	switch {
	case p.aspect > 0 && h > 0:
		p.width = h * p.aspect
	case p.aspect == 0:
		p.width = h
	}
}

func (p *Police) Width() float64  { return p.width }
func (p *Police) Height() float64 { return p.height }

// ClampBehind pulls the police forward so that at most maxDistance separates
// its right edge from targetX. It reports whether the police was moved.
func (p *Police) ClampBehind(targetX, maxDistance float64) bool {
	if targetX-(p.X+p.width) <= maxDistance {
		return false
	}
	p.X = targetX - maxDistance - p.width
	return true
}

func (p *Police) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.width, H: p.height}
}
