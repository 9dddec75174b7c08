package bastion

import (
	"errors"
	"math"
	"testing"
)

func TestNewPlaceableSnaps(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	p, err := NewPlaceable(s, "wall", Vec2{13, -7}, boxVisual{10, 10})
	if err != nil {
		t.Fatal(err)
	}
	// (13, -7) lies in cell (3, 1).
	if got := p.GridPos(); got != (Cell{3, 1}) {
		t.Errorf("GridPos = %v, want {3 1}", got)
	}
	if got := p.Object().WorldPos(); got != tr.GridToWorld(Cell{3, 1}) {
		t.Errorf("WorldPos = %v, want %v", got, tr.GridToWorld(Cell{3, 1}))
	}
	if p.Terrain() != tr {
		t.Error("Terrain should be the registered terrain")
	}
	if p.Registered() {
		t.Error("new placeable should not be registered")
	}
}

func TestNewPlaceableWithoutTerrain(t *testing.T) {
	s, _ := quietScene()
	if _, err := NewPlaceable(s, "wall", Vec2{}, nil); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("err = %v, want ErrObjectNotFound", err)
	}
	s.Register(TerrainName, NewContainer("not a terrain"))
	if _, err := NewBlock(s, "wall", Vec2{}, nil); !errors.Is(err, ErrNotTerrain) {
		t.Errorf("err = %v, want ErrNotTerrain", err)
	}
}

func TestRegisterClaimsCell(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	p, _ := NewBlock(s, "wall", Vec2{}, boxVisual{10, 10})

	if !p.Register() {
		t.Fatal("Register on a free cell failed")
	}
	if got := tr.Occupant(Cell{2, 2}); got != p {
		t.Errorf("Occupant = %v, want %v", got, p)
	}
	if len(s.Collidables()) != 1 || s.Collidables()[0] != p.Object() {
		t.Errorf("Collidables = %v", s.Collidables())
	}
	if tr.OccupiedCount() != 1 {
		t.Errorf("OccupiedCount = %d, want 1", tr.OccupiedCount())
	}
}

func TestRegisterOccupiedCellFails(t *testing.T) {
	s, tr, hook := terrainScene(4, 4, 10)
	first, _ := NewBlock(s, "first", Vec2{}, nil)
	second, _ := NewBlock(s, "second", Vec2{1, 1}, nil)

	if !first.Register() {
		t.Fatal("first Register failed")
	}
	if second.Register() {
		t.Fatal("second Register on the same cell should fail")
	}
	if tr.Occupant(Cell{2, 2}) != first {
		t.Error("occupant changed after a failed Register")
	}
	if second.Registered() {
		t.Error("failed placeable reports Registered")
	}
	if e := hook.LastEntry(); e == nil || e.Message != "placement rejected: cell occupied" {
		t.Errorf("last log entry = %v", e)
	}
}

func TestRegisterCollisionFails(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	enemy := NewGameObject("enemy", Vec2{3, 0}, boxVisual{6, 6})
	s.AddCollidable(enemy)

	p, _ := NewBlock(s, "wall", Vec2{}, boxVisual{10, 10})
	if p.Register() {
		t.Fatal("Register should fail while something overlaps the cell")
	}
	if tr.OccupiedCount() != 0 || len(s.Collidables()) != 1 {
		t.Errorf("state mutated: occupied = %d, collidables = %d", tr.OccupiedCount(), len(s.Collidables()))
	}

	s.RemoveCollidable(enemy)
	if !p.Register() {
		t.Error("Register should succeed once the area is clear")
	}
}

func TestAdjacentBlocksDoNotCollide(t *testing.T) {
	s, _, _ := terrainScene(4, 4, 10)
	a, _ := NewBlock(s, "a", tr0(s, Cell{1, 1}), boxVisual{10, 10})
	b, _ := NewBlock(s, "b", tr0(s, Cell{2, 1}), boxVisual{10, 10})
	c, _ := NewBlock(s, "c", tr0(s, Cell{1, 2}), boxVisual{10, 10})

	for _, p := range []*Placeable{a, b, c} {
		if !p.Register() {
			t.Errorf("Register(%s) failed next to a neighbour", p.Object().Name)
		}
	}
}

func TestOversizedBlockCollidesWithNeighbour(t *testing.T) {
	s, _, _ := terrainScene(4, 4, 10)
	a, _ := NewBlock(s, "a", tr0(s, Cell{1, 1}), boxVisual{10, 10})
	big, _ := NewBlock(s, "big", tr0(s, Cell{2, 1}), boxVisual{14, 14})
	if !a.Register() {
		t.Fatal("Register(a) failed")
	}
	if big.Register() {
		t.Error("oversized block overlapping a neighbour should be rejected")
	}
}

func TestRegisterOutsideTerrainFails(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	p, _ := NewBlock(s, "far", Vec2{500, 500}, boxVisual{10, 10})
	if p.Register() {
		t.Error("Register outside the grid should fail")
	}
	if tr.OccupiedCount() != 0 {
		t.Errorf("OccupiedCount = %d, want 0", tr.OccupiedCount())
	}
}

func TestUnregisterFreesCell(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	p, _ := NewBlock(s, "wall", Vec2{}, boxVisual{10, 10})
	p.Register()
	p.Unregister()

	if tr.Occupant(Cell{2, 2}) != nil || len(s.Collidables()) != 0 || p.Registered() {
		t.Error("Unregister did not release the cell")
	}
	p.Unregister() // no-op

	q, _ := NewBlock(s, "replacement", Vec2{}, boxVisual{10, 10})
	if !q.Register() {
		t.Error("freed cell should accept a new block")
	}
}

func TestSnapUnderOffsetParent(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	holder := NewContainer("holder")
	holder.Transform.Pos = Vec2{-3, 7}
	p, _ := NewBlock(s, "wall", Vec2{}, nil)
	holder.AddChild(p.Object())

	p.Object().Transform.Pos = Vec2{14, -6} // world (11, 1)
	p.Snap()
	if got := p.Object().WorldPos(); got != tr.GridToWorld(Cell{3, 2}) {
		t.Errorf("WorldPos = %v, want %v", got, tr.GridToWorld(Cell{3, 2}))
	}
}

// tr0 returns the snapped world position of c on the scene terrain.
func tr0(s *Scene, c Cell) Vec2 {
	tr, err := s.Terrain()
	if err != nil {
		panic(err)
	}
	return tr.GridToWorld(c)
}

func TestDisposedPlaceableReleasesCell(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	sink := &eventLog{}
	s.SetEventSink(sink)
	wall, _ := NewBlock(s, "wall", Vec2{}, boxVisual{10, 10})
	if !wall.Register() {
		t.Fatal("Register failed")
	}
	s.Root().AddChild(wall.Object())

	wall.Object().Dispose()

	if tr.Occupant(Cell{2, 2}) != nil {
		t.Error("disposed placeable still occupies its cell")
	}
	if len(s.Collidables()) != 0 {
		t.Errorf("Collidables = %v, want empty", s.Collidables())
	}
	if wall.Registered() {
		t.Error("disposed placeable reports Registered")
	}
	if got := sink.types(); len(got) != 2 || got[1] != EventBlockRemoved {
		t.Errorf("events = %v, want [block_placed block_removed]", got)
	}

	replacement, _ := NewBlock(s, "replacement", Vec2{}, boxVisual{10, 10})
	if !replacement.Register() {
		t.Error("Register on a released cell failed")
	}
}

func TestDisposeUnregisteredPlaceable(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	first, _ := NewBlock(s, "first", Vec2{}, boxVisual{10, 10})
	first.Register()
	second, _ := NewBlock(s, "second", Vec2{}, boxVisual{10, 10})
	if second.Register() {
		t.Fatal("second Register on the same cell should fail")
	}
	second.Object().Dispose()
	if tr.Occupant(Cell{2, 2}) != first {
		t.Error("disposing a rejected placeable freed the winner's cell")
	}
}

func TestAttachToKeepsClaimedCell(t *testing.T) {
	s, tr, _ := terrainScene(4, 4, 10)
	wall, _ := NewBlock(s, "wall", Vec2{13, -7}, boxVisual{10, 10})
	if !wall.Register() {
		t.Fatal("Register failed")
	}
	want := wall.Object().WorldPos()

	board := NewGameObject("board", Vec2{100, 50}, nil)
	board.Rotate(math.Pi / 2)
	s.Root().AddChild(board)
	wall.AttachTo(board)

	if wall.Object().Parent != board {
		t.Fatal("AttachTo did not reparent")
	}
	assertVec(t, "WorldPos", wall.Object().WorldPos(), want)
	if got := wall.GridPos(); got != (Cell{3, 1}) || tr.Occupant(got) != wall {
		t.Errorf("GridPos = %v, want claimed cell {3 1}", got)
	}
}
