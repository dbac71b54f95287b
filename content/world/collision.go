package world

import "github.com/solarlune/resolv"

type collider struct {
	runner resolv.IShape
	police resolv.IShape
	// shape positions while their top-left corners sit on the origin
	runnerOrigin resolv.Vector
	policeOrigin resolv.Vector
}

func newCollider(runner, police Rect) *collider {
	c := &collider{
		runner: resolv.NewRectangleTopLeft(0, 0, runner.W, runner.H),
		police: resolv.NewRectangleTopLeft(0, 0, police.W, police.H),
	}
	c.runnerOrigin = c.runner.Position()
	c.policeOrigin = c.police.Position()
	return c
}

// Overlapping reports whether the two boxes share any area. Boxes that only
// touch along an edge do not overlap. Sizes are fixed at construction; only
// the positions are taken from the arguments.
func (c *collider) Overlapping(runner, police Rect) bool {
	// Positions are taken relative to the runner to keep precision far into
	// the world.
	c.runner.SetPosition(c.runnerOrigin.X, c.runnerOrigin.Y)
	c.police.SetPosition(c.policeOrigin.X+police.X-runner.X, c.policeOrigin.Y+police.Y-runner.Y)

	a, b := c.runner.Bounds(), c.police.Bounds()
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}
