package bastion

import (
	"errors"
	"math"
)

// Sentinel errors. Callers match them with errors.Is; the returned errors
// carry extra context.
var (
	// ErrObjectNotFound is returned when a named object is not registered
	// with the scene.
	ErrObjectNotFound = errors.New("bastion: object not found")
	// ErrNotTerrain is returned when the object registered as "terrain" is
	// not backed by a *Terrain.
	ErrNotTerrain = errors.New("bastion: registered terrain is not a Terrain")
	// ErrCellOutOfRange is returned when an inventory cell lies outside both
	// the grid and the hotbar row.
	ErrCellOutOfRange = errors.New("bastion: cell out of range")
	// ErrInvalidConfig is returned by ParseConfig when validation fails.
	ErrInvalidConfig = errors.New("bastion: invalid config")
)

// NoCollision is returned by Scene.IsColliding when nothing overlaps.
const NoCollision = -1

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient of v and o.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Floor rounds both components toward negative infinity.
func (v Vec2) Floor() Vec2 { return Vec2{math.Floor(v.X), math.Floor(v.Y)} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectCentered returns a w×h rectangle centered on c.
func RectCentered(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are NOT considered intersecting,
// so blocks snapped into neighbouring cells do not collide with each other.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Vec2 { return Vec2{r.X, r.Y} }

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Cell addresses one cell of a grid (terrain or inventory).
type Cell struct {
	Col, Row int
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}
