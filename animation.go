package bastion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a GameObject simultaneously.
// Create one via the convenience constructors and call Update(dt) each frame.
// If the target object is disposed, the group stops immediately.
//
// Owners call Update themselves; nothing drives tweens globally.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *GameObject
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target has been disposed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates the object's local position to (toX, toY).
func TweenPosition(o *GameObject, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: o}
	g.tweens[0] = gween.New(float32(o.Transform.Pos.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(o.Transform.Pos.Y), float32(toY), duration, fn)
	g.fields[0] = &o.Transform.Pos.X
	g.fields[1] = &o.Transform.Pos.Y
	return g
}

// TweenAlpha animates the object's alpha to the target value.
func TweenAlpha(o *GameObject, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: o}
	g.tweens[0] = gween.New(float32(o.Alpha), float32(to), duration, fn)
	g.fields[0] = &o.Alpha
	return g
}

// TweenRotation animates the object's local rotation to the target value.
func TweenRotation(o *GameObject, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: o}
	g.tweens[0] = gween.New(float32(o.Transform.Rotation), float32(to), duration, fn)
	g.fields[0] = &o.Transform.Rotation
	return g
}
