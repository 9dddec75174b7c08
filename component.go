package bastion

// A component is any value attached to a GameObject that implements at least
// one of the phase interfaces below. The object sorts components into
// per-phase tables when they are attached, and each frame phase invokes its
// table in attachment order.

// Initializer runs once, the first frame the object is reached by the early
// pass of a scene.
type Initializer interface {
	Init(o *GameObject, s *Scene)
}

// EarlyUpdater runs during the early pass (input sampling, latches, state
// transitions).
type EarlyUpdater interface {
	EarlyUpdate(o *GameObject, s *Scene)
}

// Updater runs during the normal pass (movement and gameplay logic).
type Updater interface {
	Update(o *GameObject, s *Scene)
}

// Drawer runs during the draw pass, after the object's own visual is blitted
// and before its children are drawn.
type Drawer interface {
	Draw(o *GameObject, dst Surface)
}

// Disposer runs when the object is disposed.
type Disposer interface {
	Dispose(o *GameObject)
}

// EarlyUpdateFunc adapts a plain function to EarlyUpdater.
type EarlyUpdateFunc func(o *GameObject, s *Scene)

// EarlyUpdate calls f(o, s).
func (f EarlyUpdateFunc) EarlyUpdate(o *GameObject, s *Scene) { f(o, s) }

// UpdateFunc adapts a plain function to Updater.
type UpdateFunc func(o *GameObject, s *Scene)

// Update calls f(o, s).
func (f UpdateFunc) Update(o *GameObject, s *Scene) { f(o, s) }

// DrawFunc adapts a plain function to Drawer.
type DrawFunc func(o *GameObject, dst Surface)

// Draw calls f(o, dst).
func (f DrawFunc) Draw(o *GameObject, dst Surface) { f(o, dst) }

// hookTable holds the components of one object split by capability.
type hookTable struct {
	init  []Initializer
	early []EarlyUpdater
	upd   []Updater
	draw  []Drawer
	disp  []Disposer
}

// add files c under every capability it implements and reports whether it
// implemented any.
func (h *hookTable) add(c any) bool {
	ok := false
	if v, is := c.(Initializer); is {
		h.init = append(h.init, v)
		ok = true
	}
	if v, is := c.(EarlyUpdater); is {
		h.early = append(h.early, v)
		ok = true
	}
	if v, is := c.(Updater); is {
		h.upd = append(h.upd, v)
		ok = true
	}
	if v, is := c.(Drawer); is {
		h.draw = append(h.draw, v)
		ok = true
	}
	if v, is := c.(Disposer); is {
		h.disp = append(h.disp, v)
		ok = true
	}
	return ok
}
