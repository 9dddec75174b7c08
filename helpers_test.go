package bastion

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// boxVisual is a fixed-size visual that needs no graphics driver.
type boxVisual struct {
	w, h float64
}

func (b boxVisual) Size() Vec2 { return Vec2{b.w, b.h} }

// blitCall records one Surface.Blit.
type blitCall struct {
	v     Visual
	at    Vec2
	alpha float64
}

// recordingSurface records blits in order.
type recordingSurface struct {
	calls []blitCall
}

func (r *recordingSurface) Blit(v Visual, at Vec2, alpha float64) {
	r.calls = append(r.calls, blitCall{v, at, alpha})
}

// quietScene returns a scene logging at debug level into a test hook.
func quietScene(opts ...SceneOption) (*Scene, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewScene(append([]SceneOption{WithLogger(logger)}, opts...)...), hook
}

// terrainScene builds a scene with a registered terrain centered on (0, 0).
func terrainScene(cols, rows int, bs float64) (*Scene, *Terrain, *test.Hook) {
	s, hook := quietScene()
	t := NewTerrain(TerrainName, Vec2{}, cols, rows, bs, boxVisual{float64(cols) * bs, float64(rows) * bs})
	s.Register(TerrainName, t.Object())
	s.Root().AddChild(t.Object())
	return s, t, hook
}

func assertNear(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func assertVec(t *testing.T, label string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func assertPanics(t *testing.T, label string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", label)
		}
	}()
	fn()
}
