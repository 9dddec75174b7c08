package bastion

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Placeable is an object that snaps into exactly one terrain cell. It keeps
// non-owning references to the terrain and scene it was built in.
type Placeable struct {
	obj     *GameObject
	scene   *Scene
	terrain *Terrain

	cell       Cell
	registered bool
}

// NewPlaceable creates a placeable named name near world position pos.
// The object has no parent yet; attach it with AttachTo so the snapped world
// position survives the parent's transform.
// The terrain is resolved through the scene registry; the error wraps
// ErrObjectNotFound or ErrNotTerrain when that fails. The requested position
// is discarded in favour of the snapped cell position.
func NewPlaceable(s *Scene, name string, pos Vec2, visual Visual) (*Placeable, error) {
	t, err := s.Terrain()
	if err != nil {
		return nil, fmt.Errorf("bastion: place %q: %w", name, err)
	}
	p := &Placeable{
		obj:     NewGameObject(name, pos, visual),
		scene:   s,
		terrain: t,
	}
	p.obj.UserData = p
	p.obj.AddComponent(placeableRelease{p})
	p.Snap()
	return p, nil
}

// placeableRelease unregisters a placeable when its object is disposed, so a
// dead object never keeps its cell or its place in the collidable set.
type placeableRelease struct{ p *Placeable }

func (r placeableRelease) Dispose(*GameObject) { r.p.Unregister() }

// NewBlock creates a buildable block. Blocks are not registered until the
// caller calls Register.
func NewBlock(s *Scene, name string, pos Vec2, visual Visual) (*Placeable, error) {
	return NewPlaceable(s, name, pos, visual)
}

// Object returns the underlying scene graph object.
func (p *Placeable) Object() *GameObject {
	return p.obj
}

// AttachTo parents the object under parent and keeps its world position, so
// a registered placeable stays on its claimed cell whatever the parent's
// transform.
func (p *Placeable) AttachTo(parent *GameObject) {
	world := p.obj.WorldPos()
	p.obj.RemoveFromParent()
	parent.AddChild(p.obj)
	p.obj.SetWorldPos(world)
}

// Terrain returns the terrain this placeable belongs to.
func (p *Placeable) Terrain() *Terrain {
	return p.terrain
}

// Snap moves the object onto the canonical position of the cell it
// currently lies in. The move is absolute.
func (p *Placeable) Snap() {
	p.obj.SetWorldPos(p.terrain.GridToWorld(p.GridPos()))
}

// GridPos returns the terrain cell under the object's world position.
func (p *Placeable) GridPos() Cell {
	return p.terrain.WorldToGrid(p.obj.WorldPos())
}

// Bounds returns the world-space bounding rectangle.
func (p *Placeable) Bounds() Rect {
	if p.obj.Visual == nil {
		return RectCentered(p.obj.WorldPos(), 0, 0)
	}
	return BoundsAt(p.obj.Visual, p.obj.WorldPos())
}

// Registered reports whether Register succeeded and Unregister was not
// called since.
func (p *Placeable) Registered() bool {
	return p.registered
}

// Register tries to claim the placeable's cell. It succeeds iff the cell is
// inside the grid, the cell is empty, and the scene reports no collision at
// Bounds. On success the cell references p and the object joins the
// collidable set; on failure nothing changes.
func (p *Placeable) Register() bool {
	cell := p.GridPos()
	log := p.scene.log.WithFields(logrus.Fields{
		"object": p.obj.Name,
		"col":    cell.Col,
		"row":    cell.Row,
	})
	if !p.terrain.InBounds(cell) {
		log.Debug("placement rejected: outside terrain")
		return false
	}
	if p.terrain.Occupant(cell) != nil {
		log.Debug("placement rejected: cell occupied")
		return false
	}
	if hit := p.scene.IsColliding(p.Bounds()); hit != NoCollision {
		log.WithField("collides_with", p.scene.collidables[hit].Name).Debug("placement rejected: collision")
		return false
	}
	p.terrain.occupy(cell, p)
	p.scene.AddCollidable(p.obj)
	p.cell = cell
	p.registered = true
	log.Debug("placed")
	p.scene.emit(Event{Type: EventBlockPlaced, ObjectID: p.obj.ID, Name: p.obj.Name, Cell: cell})
	return true
}

// Unregister frees the claimed cell and leaves the collidable set.
// No-op if the placeable is not registered.
func (p *Placeable) Unregister() {
	if !p.registered {
		return
	}
	if p.terrain.Occupant(p.cell) == p {
		p.terrain.Release(p.cell)
	}
	p.scene.RemoveCollidable(p.obj)
	p.registered = false
	p.scene.emit(Event{Type: EventBlockRemoved, ObjectID: p.obj.ID, Name: p.obj.Name, Cell: p.cell})
}
