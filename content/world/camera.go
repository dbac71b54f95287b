package world

import "city-chase/content/utils"

// Camera is the world X of the left screen edge. It only scrolls forward.
type Camera struct {
	X         float64
	ViewWidth float64
	ScrollAt  float64 // screen X a followed entity's right edge may not pass
}

func NewCamera(viewWidth, scrollAt float64) *Camera {
	return &Camera{ViewWidth: viewWidth, ScrollAt: scrollAt}
}

// Follow scrolls the camera when the target's right edge is past ScrollAt, so
// that the edge sits exactly on ScrollAt. Otherwise the target moves on screen
// and the camera stays put. It reports whether the camera scrolled.
func (c *Camera) Follow(targetX, targetWidth float64) bool {
	edge := c.ToScreen(targetX + targetWidth)
	if edge <= c.ScrollAt {
		return false
	}
	c.X += edge - c.ScrollAt
	return true
}

// Clamp keeps an entity of the given width fully on screen.
func (c *Camera) Clamp(targetX, targetWidth float64) float64 {
	return utils.Clamp(targetX, c.X, c.X+c.ViewWidth-targetWidth)
}

func (c *Camera) ToScreen(worldX float64) float64 {
	return worldX - c.X
}

// Visible reports whether any part of [x, x+width) is on screen.
func (c *Camera) Visible(x, width float64) bool {
	sx := c.ToScreen(x)
	return sx+width > 0 && sx < c.ViewWidth
}
