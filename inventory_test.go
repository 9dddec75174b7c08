package bastion

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// testInventoryConfig lays out a 3x3 grid with 40px cells: the grid spans
// (20,20)-(140,140) and the hotbar row (20,156)-(140,196).
func testInventoryConfig() InventoryConfig {
	return InventoryConfig{
		Cols:       3,
		Rows:       3,
		PanelWidth: 160,
		InsetRatio: 0.125,
		PadRatio:   0.125,
		HotbarGap:  16,
	}
}

func newTestInventory(t *testing.T, cfg InventoryConfig) (*Scene, *ScriptedInput, *Inventory) {
	t.Helper()
	in := NewScriptedInput()
	s, _ := quietScene(WithInput(in))
	inv, err := NewInventory("inventory", Vec2{}, cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Root().AddChild(inv.Object())
	return s, in, inv
}

func step(s *Scene, frames int) {
	for range frames {
		s.Update()
	}
}

// openInventory taps the toggle key; consumes two frames.
func openInventory(s *Scene, in *ScriptedInput) {
	in.InjectKeys(ebiten.KeyE)
	in.InjectKeys()
	step(s, 2)
}

func item(name string) Item {
	return Item{Name: name, Visual: boxVisual{30, 30}}
}

func mustGet(t *testing.T, inv *Inventory, c Cell) (Item, bool) {
	t.Helper()
	it, ok, err := inv.Get(c)
	if err != nil {
		t.Fatalf("Get(%v): %v", c, err)
	}
	return it, ok
}

// --- Layout ---

func TestInventoryLayout(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	l := inv.Layout()
	assertNear(t, "Inset", l.Inset, 20)
	assertNear(t, "CellSize", l.CellSize, 40)
	assertNear(t, "CellPad", l.CellPad, 5)
	assertNear(t, "ItemSize", inv.ItemSize(), 30)
	assertVec(t, "GridOrigin", l.GridOrigin, Vec2{20, 20})
	assertVec(t, "HotbarOrigin", l.HotbarOrigin, Vec2{20, 156})
	assertVec(t, "HotbarPanelPos", l.HotbarPanelPos, Vec2{0, 136})
}

func TestInventoryPanelWidthFromVisual(t *testing.T) {
	cfg := testInventoryConfig()
	cfg.PanelWidth = 0
	inv, err := NewInventory("inv", Vec2{}, cfg, boxVisual{320, 200}, nil)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "CellSize", inv.Layout().CellSize, 80)
}

func TestNewInventoryToggleKey(t *testing.T) {
	cfg := testInventoryConfig()
	cfg.ToggleKey = "NoSuchKey"
	if _, err := NewInventory("inv", Vec2{}, cfg, nil, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	cfg.ToggleKey = "Tab"
	inv, err := NewInventory("inv", Vec2{}, cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if inv.toggleKey != ebiten.KeyTab {
		t.Errorf("toggleKey = %v, want Tab", inv.toggleKey)
	}
}

// --- Storage ---

func TestInventoryFirstFitOrder(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	h, r, c := inv.Cols(), inv.Rows(), inv.Cols()

	for i := range h + r*c {
		if !inv.Add(item(fmt.Sprint(i))) {
			t.Fatalf("Add #%d failed before the inventory was full", i)
		}
	}
	if inv.Add(item("overflow")) {
		t.Fatal("Add on a full inventory should fail")
	}

	for col := range h {
		it, _ := mustGet(t, inv, Cell{col, r})
		if it.Name != fmt.Sprint(col) {
			t.Errorf("hotbar[%d] = %q, want %q", col, it.Name, fmt.Sprint(col))
		}
	}
	for row := range r {
		for col := range c {
			want := fmt.Sprint(h + row*c + col)
			it, _ := mustGet(t, inv, Cell{col, row})
			if it.Name != want {
				t.Errorf("grid[%d][%d] = %q, want %q", row, col, it.Name, want)
			}
		}
	}
	if _, found := inv.Find("overflow"); found {
		t.Error("rejected item was stored")
	}
}

func TestInventoryGetOutOfRange(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	for _, c := range []Cell{{3, 0}, {-1, 0}, {0, 4}, {0, -1}} {
		if _, _, err := inv.Get(c); !errors.Is(err, ErrCellOutOfRange) {
			t.Errorf("Get(%v) err = %v, want ErrCellOutOfRange", c, err)
		}
	}
	if _, ok, err := inv.Get(Cell{2, 3}); err != nil || ok {
		t.Errorf("Get(hotbar) = %v, %v; want empty, nil", ok, err)
	}
}

func TestInventoryAddAt(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	if ok, err := inv.AddAt(Cell{1, 1}, item("a")); !ok || err != nil {
		t.Fatalf("AddAt = %v, %v", ok, err)
	}
	if ok, _ := inv.AddAt(Cell{1, 1}, item("b")); ok {
		t.Error("AddAt on an occupied cell should fail")
	}
	if _, err := inv.AddAt(Cell{9, 9}, item("c")); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("AddAt out of range err = %v", err)
	}
	it, _ := mustGet(t, inv, Cell{1, 1})
	if it.Name != "a" {
		t.Errorf("cell holds %q, want %q", it.Name, "a")
	}
}

func TestInventoryMove(t *testing.T) {
	tests := []struct {
		name      string
		dstItem   string
		swap      bool
		wantMoved bool
		wantSrc   string
		wantDst   string
	}{
		{"to empty without swap", "", false, true, "", "src"},
		{"to empty with swap", "", true, true, "", "src"},
		{"to occupied without swap", "dst", false, false, "src", "dst"},
		{"to occupied with swap", "dst", true, true, "dst", "src"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, inv := newTestInventory(t, testInventoryConfig())
			src, dst := Cell{0, 0}, Cell{2, 3}
			inv.AddAt(src, item("src"))
			if tt.dstItem != "" {
				inv.AddAt(dst, item(tt.dstItem))
			}

			moved, err := inv.Move(src, dst, tt.swap)
			if err != nil || moved != tt.wantMoved {
				t.Fatalf("Move = %v, %v; want %v, nil", moved, err, tt.wantMoved)
			}
			if it, _ := mustGet(t, inv, src); it.Name != tt.wantSrc {
				t.Errorf("src = %q, want %q", it.Name, tt.wantSrc)
			}
			if it, _ := mustGet(t, inv, dst); it.Name != tt.wantDst {
				t.Errorf("dst = %q, want %q", it.Name, tt.wantDst)
			}
		})
	}
}

func TestInventoryMoveOutOfRange(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{0, 0}, item("a"))
	if _, err := inv.Move(Cell{0, 0}, Cell{0, 5}, true); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("Move err = %v, want ErrCellOutOfRange", err)
	}
	if _, ok := mustGet(t, inv, Cell{0, 0}); !ok {
		t.Error("failed Move lost the source item")
	}
}

func TestInventoryHotbarToGridScenario(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	for _, n := range []string{"a", "b", "c"} {
		inv.Add(item(n))
	}
	for col, want := range []string{"a", "b", "c"} {
		if it, _ := mustGet(t, inv, Cell{col, 3}); it.Name != want {
			t.Fatalf("hotbar[%d] = %q, want %q", col, it.Name, want)
		}
	}

	moved, err := inv.Move(Cell{0, 3}, Cell{1, 2}, true)
	if !moved || err != nil {
		t.Fatalf("Move = %v, %v", moved, err)
	}
	if _, ok := mustGet(t, inv, Cell{0, 3}); ok {
		t.Error("hotbar[0] should be empty")
	}
	if it, _ := mustGet(t, inv, Cell{1, 2}); it.Name != "a" {
		t.Errorf("grid[2][1] = %q, want %q", it.Name, "a")
	}
}

func TestInventoryUse(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	used := 0
	potion := item("potion")
	potion.OnUse = func() { used++ }
	inv.Add(potion)
	inv.Add(item("rock"))

	if ok, err := inv.Use(Cell{0, 3}); !ok || err != nil || used != 1 {
		t.Errorf("Use(potion) = %v, %v; used = %d", ok, err, used)
	}
	if ok, _ := inv.Use(Cell{1, 3}); ok {
		t.Error("Use on an item without OnUse should report false")
	}
	if ok, _ := inv.Use(Cell{2, 3}); ok {
		t.Error("Use on an empty slot should report false")
	}
	if _, err := inv.Use(Cell{0, 7}); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("Use out of range err = %v", err)
	}
}

func TestInventoryTakeAndFind(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{2, 1}, item("gem"))

	c, ok := inv.Find("gem")
	if !ok || c != (Cell{2, 1}) {
		t.Fatalf("Find = %v, %v", c, ok)
	}
	it, ok, err := inv.Take(c)
	if !ok || err != nil || it.Name != "gem" {
		t.Errorf("Take = %v, %v, %v", it, ok, err)
	}
	if _, ok := inv.Find("gem"); ok {
		t.Error("item still present after Take")
	}
}

func TestSlotVariant(t *testing.T) {
	if !EmptySlot().Empty() || !(Slot{}).Empty() {
		t.Error("zero and EmptySlot should be empty")
	}
	s := Occupied(item("x"))
	if s.Empty() {
		t.Error("Occupied slot reports empty")
	}
	if it, ok := s.Item(); !ok || it.Name != "x" {
		t.Errorf("Item = %v, %v", it, ok)
	}
}

// --- Pointer mapping ---

func TestInventoryCellAt(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	tests := []struct {
		name string
		p    Vec2
		want Cell
		ok   bool
	}{
		{"grid origin", Vec2{20, 20}, Cell{0, 0}, true},
		{"grid middle", Vec2{80, 120}, Cell{1, 2}, true},
		{"grid far edge", Vec2{139.9, 139.9}, Cell{2, 2}, true},
		{"hotbar first", Vec2{25, 160}, Cell{0, 3}, true},
		{"hotbar last", Vec2{120, 176}, Cell{2, 3}, true},
		{"gap between grid and hotbar", Vec2{80, 145}, Cell{}, false},
		{"left of grid", Vec2{10, 80}, Cell{}, false},
		{"right of hotbar", Vec2{150, 176}, Cell{}, false},
		{"below hotbar", Vec2{80, 200}, Cell{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := inv.CellAt(tt.p)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("CellAt(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInventoryCellAtPrefersGrid(t *testing.T) {
	cfg := testInventoryConfig()
	cfg.HotbarGap = -40 // hotbar overlaps the last grid row
	_, _, inv := newTestInventory(t, cfg)

	if got, ok := inv.CellAt(Vec2{80, 120}); !ok || got != (Cell{1, 2}) {
		t.Errorf("overlap CellAt = %v, %v; want grid {1 2}", got, ok)
	}
}

// --- Toggle ---

func TestInventoryToggleEdgeTriggered(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	if inv.Shown() {
		t.Fatal("inventory should start hidden")
	}

	for range 5 {
		in.InjectKeys(ebiten.KeyE)
	}
	step(s, 5)
	if !inv.Shown() {
		t.Fatal("holding the key should open the inventory")
	}

	// Script drained: the key stays held.
	step(s, 3)
	if !inv.Shown() {
		t.Error("held key toggled again")
	}

	in.InjectKeys()
	in.InjectKeys(ebiten.KeyE)
	step(s, 2)
	if inv.Shown() {
		t.Error("second press should close the inventory")
	}
}

func TestInventoryOtherKeysIgnored(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	in.InjectKeys(ebiten.KeyQ, ebiten.KeySpace)
	step(s, 1)
	if inv.Shown() {
		t.Error("non-toggle keys opened the inventory")
	}
}

// --- Drag ---

func TestInventoryDragGridToHotbar(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{0, 0}, item("sword"))
	openInventory(s, in)

	in.InjectDrag(40, 40, 120, 176, 4)
	step(s, 1)
	if src, ok := inv.Dragging(); !ok || src != (Cell{0, 0}) {
		t.Fatalf("Dragging = %v, %v; want {0 0}, true", src, ok)
	}
	step(s, 3)

	if _, ok := inv.Dragging(); ok {
		t.Error("still dragging after release")
	}
	if _, ok := mustGet(t, inv, Cell{0, 0}); ok {
		t.Error("source cell still occupied")
	}
	if it, _ := mustGet(t, inv, Cell{2, 3}); it.Name != "sword" {
		t.Errorf("hotbar[2] = %q, want sword", it.Name)
	}
}

func TestInventoryDragSwapsOccupied(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{0, 3}, item("bow"))
	inv.AddAt(Cell{2, 2}, item("axe"))
	openInventory(s, in)

	in.InjectDrag(40, 176, 120, 120, 3)
	step(s, 3)

	if it, _ := mustGet(t, inv, Cell{0, 3}); it.Name != "axe" {
		t.Errorf("hotbar[0] = %q, want axe", it.Name)
	}
	if it, _ := mustGet(t, inv, Cell{2, 2}); it.Name != "bow" {
		t.Errorf("grid[2][2] = %q, want bow", it.Name)
	}
}

func TestInventoryDragReleaseOutsideCancels(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{1, 1}, item("shield"))
	openInventory(s, in)

	in.InjectDrag(80, 80, 400, 400, 3)
	step(s, 3)

	if _, ok := inv.Dragging(); ok {
		t.Error("drag not cancelled")
	}
	if it, _ := mustGet(t, inv, Cell{1, 1}); it.Name != "shield" {
		t.Errorf("source = %q, want shield", it.Name)
	}
}

func TestInventoryDropOnSourceIsNoMove(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	sink := &eventLog{}
	s.SetEventSink(sink)
	inv.AddAt(Cell{1, 1}, item("shield"))
	openInventory(s, in)
	sink.events = nil

	in.InjectDrag(75, 75, 85, 85, 3)
	step(s, 3)

	if _, ok := inv.Dragging(); ok {
		t.Error("still dragging after release")
	}
	if it, _ := mustGet(t, inv, Cell{1, 1}); it.Name != "shield" {
		t.Errorf("source = %q, want shield", it.Name)
	}
	if len(sink.events) != 0 {
		t.Errorf("events = %v, want none", sink.types())
	}
}

func TestInventoryPressOnEmptyDoesNothing(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{0, 0}, item("gem"))
	openInventory(s, in)

	in.InjectPress(80, 80)
	step(s, 1)
	if _, ok := inv.Dragging(); ok {
		t.Fatal("press on an empty cell started a drag")
	}

	// Sweeping onto an item with the button held grabs it.
	in.InjectMove(40, 40)
	step(s, 1)
	if src, ok := inv.Dragging(); !ok || src != (Cell{0, 0}) {
		t.Errorf("Dragging = %v, %v; want {0 0}, true", src, ok)
	}
}

func TestInventoryClosedIgnoresPointer(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{0, 3}, item("torch"))

	in.InjectDrag(40, 176, 120, 176, 3)
	step(s, 3)

	if it, _ := mustGet(t, inv, Cell{0, 3}); it.Name != "torch" {
		t.Error("closed inventory accepted a drag")
	}
}

func TestInventoryClosingCancelsDrag(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	inv.AddAt(Cell{0, 0}, item("gem"))
	openInventory(s, in)

	in.InjectPress(40, 40)
	step(s, 1)
	inv.SetShown(false)
	if _, ok := inv.Dragging(); ok {
		t.Error("closing kept the drag alive")
	}
}

// --- Draw ---

func TestInventoryDrawHidden(t *testing.T) {
	_, _, inv := newTestInventory(t, testInventoryConfig())
	panel, hotbar := boxVisual{160, 160}, boxVisual{160, 80}
	inv.SetPanels(panel, hotbar)
	inv.AddAt(Cell{0, 3}, item("h"))
	inv.AddAt(Cell{1, 1}, item("g"))

	surf := &recordingSurface{}
	drawObject(inv.Object(), surf, surf, 1)

	if len(surf.calls) != 2 {
		t.Fatalf("blits = %d, want 2 (hotbar panel and item)", len(surf.calls))
	}
	if surf.calls[0].v != hotbar {
		t.Errorf("first blit = %v, want hotbar panel", surf.calls[0].v)
	}
	assertVec(t, "hotbar item", surf.calls[1].at, Vec2{25, 161})
}

func TestInventoryDrawShownOrder(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	panel, hotbar := boxVisual{160, 160}, boxVisual{160, 80}
	inv.SetPanels(panel, hotbar)
	inv.AddAt(Cell{0, 3}, item("h"))
	inv.AddAt(Cell{1, 2}, item("g"))
	openInventory(s, in)

	surf := &recordingSurface{}
	s.Draw(surf)

	if len(surf.calls) != 4 {
		t.Fatalf("blits = %d, want 4", len(surf.calls))
	}
	if surf.calls[0].v != hotbar || surf.calls[2].v != panel {
		t.Errorf("panel order wrong: %v", surf.calls)
	}
	assertVec(t, "hotbar panel", surf.calls[0].at, Vec2{0, 136})
	assertVec(t, "panel", surf.calls[2].at, Vec2{0, 0})
	assertVec(t, "grid item", surf.calls[3].at, Vec2{65, 105})
}

func TestInventoryDrawDraggedLast(t *testing.T) {
	s, in, inv := newTestInventory(t, testInventoryConfig())
	dragged := Item{Name: "d", Visual: boxVisual{30, 32}}
	other := Item{Name: "o", Visual: boxVisual{30, 30}}
	inv.AddAt(Cell{1, 2}, dragged)
	inv.AddAt(Cell{2, 2}, other)
	openInventory(s, in)

	in.InjectPress(80, 120)
	in.InjectMove(200, 200)
	step(s, 2)

	surf := &recordingSurface{}
	s.Draw(surf)

	if len(surf.calls) != 2 {
		t.Fatalf("blits = %d, want 2", len(surf.calls))
	}
	if surf.calls[0].v != other.Visual {
		t.Errorf("first blit = %v, want the resting item", surf.calls[0].v)
	}
	last := surf.calls[len(surf.calls)-1]
	if last.v != dragged.Visual {
		t.Errorf("last blit = %v, want the dragged item", last.v)
	}
	assertVec(t, "dragged item", last.at, Vec2{185, 184})
}
