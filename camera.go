package bastion

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds the active scroll tweens for the camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the view into the world. Pos is the world point drawn at the
// screen's top-left, so a zero camera maps world space onto screen space
// unchanged. Objects marked ScreenSpace ignore it.
type Camera struct {
	Pos Vec2
	// Viewport is the screen size the camera renders into.
	Viewport Vec2

	// BoundsEnabled clamps Pos so the visible area stays within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	follow       *GameObject
	followOffset Vec2
	followLerp   float64

	scroll *scrollAnim
}

// NewCamera creates a camera at the world origin with the given viewport
// size.
func NewCamera(viewport Vec2) *Camera {
	return &Camera{Viewport: viewport}
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(c.Pos)
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return p.Add(c.Pos)
}

// VisibleBounds returns the world-space rectangle on screen.
func (c *Camera) VisibleBounds() Rect {
	return Rect{X: c.Pos.X, Y: c.Pos.Y, Width: c.Viewport.X, Height: c.Viewport.Y}
}

// CenterOn moves the camera so p is in the middle of the viewport.
func (c *Camera) CenterOn(p Vec2) {
	c.Pos = p.Sub(c.Viewport.Scale(0.5))
	c.ClampToBounds()
}

// Follow makes the camera keep obj (plus offset) centered. A lerp of 1 snaps
// every frame; lower values trail behind.
func (c *Camera) Follow(obj *GameObject, offset Vec2, lerp float64) {
	c.follow = obj
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.follow = nil
}

// ScrollTo animates the camera so the world point target ends up centered
// after duration seconds.
func (c *Camera) ScrollTo(target Vec2, duration float32, fn ease.TweenFunc) {
	dst := target.Sub(c.Viewport.Scale(0.5))
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.Pos.X), float32(dst.X), duration, fn),
		tweenY: gween.New(float32(c.Pos.Y), float32(dst.Y), duration, fn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// SetBounds enables bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.clampToBounds()
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds clamps Pos immediately. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// update advances follow, scroll and clamping. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.follow != nil {
		if c.follow.IsDisposed() {
			c.follow = nil
		} else {
			target := c.follow.WorldPos().Add(c.followOffset).Sub(c.Viewport.Scale(0.5))
			c.Pos = c.Pos.Add(target.Sub(c.Pos).Scale(c.followLerp))
		}
	}

	if c.scroll != nil {
		if !c.scroll.doneX {
			v, done := c.scroll.tweenX.Update(dt)
			c.Pos.X = float64(v)
			c.scroll.doneX = done
		}
		if !c.scroll.doneY {
			v, done := c.scroll.tweenY.Update(dt)
			c.Pos.Y = float64(v)
			c.scroll.doneY = done
		}
		if c.scroll.doneX && c.scroll.doneY {
			c.scroll = nil
		}
	}

	c.ClampToBounds()
}

// clampToBounds keeps the visible area inside Bounds. A bounds rectangle
// smaller than the viewport centers the camera on it.
func (c *Camera) clampToBounds() {
	b := c.Bounds
	maxX := b.X + b.Width - c.Viewport.X
	maxY := b.Y + b.Height - c.Viewport.Y
	if maxX < b.X {
		c.Pos.X = b.X + (b.Width-c.Viewport.X)/2
	} else {
		c.Pos.X = math.Max(b.X, math.Min(c.Pos.X, maxX))
	}
	if maxY < b.Y {
		c.Pos.Y = b.Y + (b.Height-c.Viewport.Y)/2
	} else {
		c.Pos.Y = math.Max(b.Y, math.Min(c.Pos.Y, maxY))
	}
}

// cameraSurface offsets every blit by the camera position.
type cameraSurface struct {
	dst Surface
	cam *Camera
}

func (s cameraSurface) Blit(v Visual, topLeft Vec2, alpha float64) {
	s.dst.Blit(v, s.cam.WorldToScreen(topLeft), alpha)
}
