package bastion

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the local position/rotation/scale of a GameObject, relative
// to its parent. Rotation is in radians and is never renormalized.
type Transform struct {
	Pos      Vec2
	Rotation float64
	Scale    Vec2
}

// NewTransform returns a transform at pos with unit scale.
func NewTransform(pos Vec2, rotation float64) Transform {
	return Transform{Pos: pos, Rotation: rotation, Scale: Vec2{1, 1}}
}

// Translate moves the transform by delta when additive is true, otherwise it
// sets the position to delta.
func (t *Transform) Translate(delta Vec2, additive bool) {
	if additive {
		t.Pos = t.Pos.Add(delta)
		return
	}
	t.Pos = delta
}

// Rotate adds delta radians to the rotation. Callers handle wrap-around.
func (t *Transform) Rotate(delta float64) {
	t.Rotation += delta
}

// localMatrix computes the local affine matrix. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(X, Y)
func (t *Transform) localMatrix() [6]float64 {
	sin, cos := math.Sincos(t.Rotation)
	sx, sy := t.Scale.X, t.Scale.Y
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, t.Pos.X, t.Pos.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// --- GameObject transform helpers ---

// Translate moves the object; see Transform.Translate.
func (o *GameObject) Translate(delta Vec2, additive bool) {
	o.Transform.Translate(delta, additive)
}

// Rotate rotates the object by delta radians.
func (o *GameObject) Rotate(delta float64) {
	o.Transform.Rotate(delta)
}

// WorldMatrix composes the local matrices from the root down to this object.
func (o *GameObject) WorldMatrix() [6]float64 {
	m := o.Transform.localMatrix()
	for p := o.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(p.Transform.localMatrix(), m)
	}
	return m
}

// WorldPos returns the object's origin in world space.
func (o *GameObject) WorldPos() Vec2 {
	m := o.WorldMatrix()
	return Vec2{m[4], m[5]}
}

// WorldRotation returns the sum of rotations along the parent chain.
func (o *GameObject) WorldRotation() float64 {
	r := 0.0
	for p := o; p != nil; p = p.Parent {
		r += p.Transform.Rotation
	}
	return r
}

// WorldToLocal converts a world-space point to this object's local space.
func (o *GameObject) WorldToLocal(p Vec2) Vec2 {
	return transformPoint(invertAffine(o.WorldMatrix()), p)
}

// LocalToWorld converts a local-space point to world space.
func (o *GameObject) LocalToWorld(p Vec2) Vec2 {
	return transformPoint(o.WorldMatrix(), p)
}

// SetWorldPos places the object so that its origin lands on p in world
// space, regardless of where its parent sits.
func (o *GameObject) SetWorldPos(p Vec2) {
	if o.Parent == nil {
		o.Translate(p, false)
		return
	}
	o.Translate(o.Parent.WorldToLocal(p), false)
}
