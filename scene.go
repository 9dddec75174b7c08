package bastion

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TerrainName is the registry key Placeables resolve their terrain by.
const TerrainName = "terrain"

const defaultFrameTime = 1.0 / 60

// Scene is the top-level context: it owns the object tree, the named
// singleton registry, the collidable set and the per-frame input snapshot.
// Its lifetime is one level; Teardown discards all of it.
type Scene struct {
	root        *GameObject
	registry    map[string]*GameObject
	collidables []*GameObject

	camera *Camera

	input InputSource
	frame Input
	sink  EventSink
	dt    float64
	count uint64

	log   logrus.FieldLogger
	debug bool
}

// SceneOption configures a Scene at construction.
type SceneOption func(*Scene)

// WithInput sets the input source polled at the start of each Update.
func WithInput(src InputSource) SceneOption {
	return func(s *Scene) { s.input = src }
}

// WithLogger sets the scene logger.
func WithLogger(l logrus.FieldLogger) SceneOption {
	return func(s *Scene) { s.log = l }
}

// WithFrameTime sets the fixed frame duration in seconds.
func WithFrameTime(dt float64) SceneOption {
	return func(s *Scene) { s.dt = dt }
}

// NewScene creates a new scene with a pre-created root container.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		root:     NewContainer("root"),
		registry: make(map[string]*GameObject),
		dt:       defaultFrameTime,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = defaultLogger()
	}
	return s
}

// Root returns the scene's root container.
func (s *Scene) Root() *GameObject {
	return s.root
}

// Logger returns the scene logger.
func (s *Scene) Logger() logrus.FieldLogger {
	return s.log
}

// Input returns this frame's input snapshot.
func (s *Scene) Input() Input {
	return s.frame
}

// SetInput replaces the input source.
func (s *Scene) SetInput(src InputSource) {
	s.input = src
}

// Camera returns the scene camera, or nil when world space is screen space.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetCamera installs the camera applied to world-space objects. nil removes
// it.
func (s *Scene) SetCamera(c *Camera) {
	s.camera = c
}

// ScreenToWorld converts a screen position (such as the pointer) to world
// space through the camera.
func (s *Scene) ScreenToWorld(p Vec2) Vec2 {
	if s.camera == nil {
		return p
	}
	return s.camera.ScreenToWorld(p)
}

// WorldToScreen converts a world position to screen space through the
// camera.
func (s *Scene) WorldToScreen(p Vec2) Vec2 {
	if s.camera == nil {
		return p
	}
	return s.camera.WorldToScreen(p)
}

// Dt returns the frame duration in seconds.
func (s *Scene) Dt() float64 {
	return s.dt
}

// SetFrameTime sets the frame duration in seconds.
func (s *Scene) SetFrameTime(dt float64) {
	s.dt = dt
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.count
}

// Update samples input once, then runs the early pass over the whole tree,
// then the normal pass, then advances the camera. The early pass finishes for
// every object before any normal hook runs.
func (s *Scene) Update() {
	if s.input != nil {
		s.frame = s.input.Poll()
	}
	earlyUpdate(s.root, s)
	normalUpdate(s.root, s)
	if s.camera != nil {
		s.camera.update(float32(s.dt))
	}
	s.count++
}

// Draw blits the tree onto dst in child order. World-space objects are
// offset by the camera; ScreenSpace subtrees are drawn onto dst directly.
func (s *Scene) Draw(dst Surface) {
	world := dst
	if s.camera != nil {
		world = cameraSurface{dst: dst, cam: s.camera}
	}
	drawObject(s.root, world, dst, 1)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-object
// access panics and tree depth and child count warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	debugLogger = s.log
}

// --- Registry ---

// Register stores obj under name, replacing any previous entry.
func (s *Scene) Register(name string, obj *GameObject) {
	s.registry[name] = obj
	s.log.WithFields(logrus.Fields{"name": name, "object": obj.Name}).Debug("registered object")
}

// Unregister removes name from the registry.
func (s *Scene) Unregister(name string) {
	delete(s.registry, name)
}

// Lookup returns the object registered under name.
func (s *Scene) Lookup(name string) (*GameObject, error) {
	obj, ok := s.registry[name]
	if !ok {
		return nil, fmt.Errorf("bastion: lookup %q: %w", name, ErrObjectNotFound)
	}
	return obj, nil
}

// Terrain resolves the registered terrain. It fails with ErrObjectNotFound
// when none is registered and ErrNotTerrain when the registered object is
// something else.
func (s *Scene) Terrain() (*Terrain, error) {
	obj, err := s.Lookup(TerrainName)
	if err != nil {
		return nil, err
	}
	t, ok := obj.UserData.(*Terrain)
	if !ok {
		return nil, fmt.Errorf("bastion: %q is %T: %w", obj.Name, obj.UserData, ErrNotTerrain)
	}
	return t, nil
}

// --- Collision ---

// AddCollidable registers obj for future IsColliding queries. Adding the
// same object twice is a no-op.
func (s *Scene) AddCollidable(obj *GameObject) {
	for _, c := range s.collidables {
		if c == obj {
			return
		}
	}
	s.collidables = append(s.collidables, obj)
}

// RemoveCollidable unregisters obj.
func (s *Scene) RemoveCollidable(obj *GameObject) {
	for i, c := range s.collidables {
		if c == obj {
			copy(s.collidables[i:], s.collidables[i+1:])
			s.collidables[len(s.collidables)-1] = nil
			s.collidables = s.collidables[:len(s.collidables)-1]
			return
		}
	}
}

// Collidables returns the collidable set. The returned slice MUST NOT be
// mutated.
func (s *Scene) Collidables() []*GameObject {
	return s.collidables
}

// IsColliding returns the index of the first collidable whose bounds overlap
// r, or NoCollision. Collidables without a visual have no bounds and never
// match.
func (s *Scene) IsColliding(r Rect) int {
	for i, c := range s.collidables {
		if c.Visual == nil || c.IsDisposed() {
			continue
		}
		if BoundsAt(c.Visual, c.WorldPos()).Intersects(r) {
			return i
		}
	}
	return NoCollision
}

// --- Lifecycle ---

// Teardown disposes the tree and clears the registry and collidable set.
// The scene gets a fresh empty root and can be rebuilt.
func (s *Scene) Teardown() {
	s.root.Dispose()
	s.root = NewContainer("root")
	s.registry = make(map[string]*GameObject)
	s.collidables = nil
	s.count = 0
	if s.camera != nil {
		s.camera.Unfollow()
	}
	s.log.Info("scene torn down")
}
