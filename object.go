package bastion

import "fmt"

// objectIDCounter is a plain counter; the scene is single-threaded.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// GameObject is the scene graph element. Every object owns its Transform and
// its children; a child belongs to at most one parent and sibling names are
// unique so they can be used as lookup keys.
type GameObject struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *GameObject
	children []*GameObject
	byName   map[string]*GameObject

	Transform Transform

	// Visual is drawn centered on the object's world position. May be nil.
	Visual  Visual
	Alpha   float64
	Visible bool
	// ScreenSpace draws this subtree in screen coordinates, ignoring the
	// scene camera. Used for HUD elements such as the inventory.
	ScreenSpace bool

	// UserData holds the typed wrapper built around this object (Terrain,
	// Inventory, Core, ...), if any.
	UserData any

	components  []any
	hooks       hookTable
	initialized bool
	disposed    bool
}

// NewGameObject creates an object at pos with the given visual.
func NewGameObject(name string, pos Vec2, visual Visual) *GameObject {
	return &GameObject{
		ID:        nextObjectID(),
		Name:      name,
		Transform: NewTransform(pos, 0),
		Visual:    visual,
		Alpha:     1,
		Visible:   true,
	}
}

// NewContainer creates an object with no visual representation.
func NewContainer(name string) *GameObject {
	return NewGameObject(name, Vec2{}, nil)
}

// --- Components ---

// AddComponent attaches c. Panics if c implements none of the phase
// interfaces.
func (o *GameObject) AddComponent(c any) {
	if c == nil {
		panic("bastion: cannot add nil component")
	}
	if !o.hooks.add(c) {
		panic(fmt.Sprintf("bastion: component %T implements no phase interface", c))
	}
	o.components = append(o.components, c)
}

// Components returns the attached components in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (o *GameObject) Components() []any {
	return o.components
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// Panics if child is nil, already has a parent, is an ancestor of this
// object, or shares its name with an existing sibling. Reparenting is
// RemoveChild followed by AddChild.
func (o *GameObject) AddChild(child *GameObject) {
	if child == nil {
		panic("bastion: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(o, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.Parent != nil {
		panic(fmt.Sprintf("bastion: %q already has parent %q", child.Name, child.Parent.Name))
	}
	if isAncestor(child, o) {
		panic("bastion: adding child would create a cycle")
	}
	if _, dup := o.byName[child.Name]; dup {
		panic(fmt.Sprintf("bastion: %q already has a child named %q", o.Name, child.Name))
	}
	if o.byName == nil {
		o.byName = make(map[string]*GameObject)
	}
	child.Parent = o
	o.children = append(o.children, child)
	o.byName[child.Name] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(o)
	}
}

// RemoveChild detaches child from this object.
// Panics if child.Parent != o.
func (o *GameObject) RemoveChild(child *GameObject) {
	if child.Parent != o {
		panic("bastion: child's parent is not this object")
	}
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			break
		}
	}
	delete(o.byName, child.Name)
	child.Parent = nil
}

// RemoveFromParent detaches this object from its parent.
// No-op if this object has no parent.
func (o *GameObject) RemoveFromParent() {
	if o.Parent == nil {
		return
	}
	o.Parent.RemoveChild(o)
}

// Child returns the direct child with the given name.
func (o *GameObject) Child(name string) (*GameObject, bool) {
	c, ok := o.byName[name]
	return c, ok
}

// Children returns the child list in draw order. The returned slice MUST NOT
// be mutated by the caller.
func (o *GameObject) Children() []*GameObject {
	return o.children
}

// NumChildren returns the number of children.
func (o *GameObject) NumChildren() int {
	return len(o.children)
}

// --- Disposal ---

// Dispose removes this object from its parent, runs Disposer components,
// and recursively disposes all descendants.
func (o *GameObject) Dispose() {
	if o.disposed {
		return
	}
	o.RemoveFromParent()
	o.dispose()
}

func (o *GameObject) dispose() {
	o.disposed = true
	for _, d := range o.hooks.disp {
		d.Dispose(o)
	}
	for _, child := range o.children {
		child.Parent = nil
		child.dispose()
	}
	o.children = nil
	o.byName = nil
	o.components = nil
	o.hooks = hookTable{}
	o.Visual = nil
	o.UserData = nil
}

// IsDisposed returns true if this object has been disposed.
func (o *GameObject) IsDisposed() bool {
	return o.disposed
}

// --- Traversal ---

// earlyUpdate runs o's own early hooks, then each child's, depth first.
func earlyUpdate(o *GameObject, s *Scene) {
	if !o.initialized {
		o.initialized = true
		for _, h := range o.hooks.init {
			h.Init(o, s)
		}
	}
	for _, h := range o.hooks.early {
		h.EarlyUpdate(o, s)
	}
	// Index loop: objects spawned by a hook this frame are visited too.
	for i := 0; i < len(o.children); i++ {
		earlyUpdate(o.children[i], s)
	}
}

// normalUpdate runs o's own update hooks, then each child's, depth first.
func normalUpdate(o *GameObject, s *Scene) {
	for _, h := range o.hooks.upd {
		h.Update(o, s)
	}
	for i := 0; i < len(o.children); i++ {
		normalUpdate(o.children[i], s)
	}
}

// drawObject blits o's visual centered on its world position, runs its
// drawers, then draws children in order. Invisible subtrees are skipped.
// dst is the camera-offset surface until a ScreenSpace object switches the
// subtree to screen.
func drawObject(o *GameObject, dst, screen Surface, parentAlpha float64) {
	if !o.Visible {
		return
	}
	if o.ScreenSpace {
		dst = screen
	}
	alpha := parentAlpha * o.Alpha
	if o.Visual != nil {
		dst.Blit(o.Visual, BoundsAt(o.Visual, o.WorldPos()).TopLeft(), alpha)
	}
	for _, h := range o.hooks.draw {
		h.Draw(o, dst)
	}
	for _, child := range o.children {
		drawObject(child, dst, screen, alpha)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) obj.
func isAncestor(candidate, obj *GameObject) bool {
	for p := obj; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}
