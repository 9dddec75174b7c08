package bastion

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// DefaultToggleKey opens and closes the inventory.
const DefaultToggleKey = ebiten.KeyE

const defaultPanelWidth = 360

// InventoryConfig holds the inventory dimensions and layout ratios. Zero
// fields take defaults.
type InventoryConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
	// ToggleKey is an ebiten key name ("E", "Tab", ...).
	ToggleKey string `yaml:"toggle_key"`

	PanelWidth float64 `yaml:"panel_width"`
	InsetRatio float64 `yaml:"inset_ratio"`
	PadRatio   float64 `yaml:"pad_ratio"`
	HotbarGap  float64 `yaml:"hotbar_gap"`
}

func (c *InventoryConfig) applyDefaults() {
	if c.Cols == 0 {
		c.Cols = 9
	}
	if c.Rows == 0 {
		c.Rows = 3
	}
	if c.ToggleKey == "" {
		c.ToggleKey = DefaultToggleKey.String()
	}
	if c.InsetRatio == 0 {
		c.InsetRatio = 0.05
	}
	if c.PadRatio == 0 {
		c.PadRatio = 0.08
	}
	if c.HotbarGap == 0 {
		c.HotbarGap = 12
	}
}

// parseKey resolves an ebiten key name.
func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: toggle key: %v", ErrInvalidConfig, err)
	}
	return k, nil
}

// Inventory is a cols×rows item grid plus a hotbar of cols slots. Cells are
// addressed in one logical space where Row == Rows() is the hotbar.
//
// While shown, the primary button drags items between cells: pressing on an
// occupied cell grabs it, releasing over any cell swaps source and
// destination, releasing elsewhere cancels.
type Inventory struct {
	obj *GameObject

	cols, rows int
	slots      [][]Slot // [row][col]
	hotbar     []Slot

	layout      Layout
	toggleKey   ebiten.Key
	panel       Visual
	hotbarPanel Visual

	shown       bool
	toggleLatch bool // toggle key was held last frame
	dragging    bool
	dragSrc     Cell
	pointer     Vec2
}

// NewInventory creates an inventory whose panel top-left sits at pos in
// screen space. panel and hotbarPanel may be nil. When cfg.PanelWidth is
// zero the panel visual's width is used.
func NewInventory(name string, pos Vec2, cfg InventoryConfig, panel, hotbarPanel Visual) (*Inventory, error) {
	cfg.applyDefaults()
	if cfg.Cols < 0 || cfg.Rows < 0 {
		return nil, fmt.Errorf("%w: inventory %dx%d", ErrInvalidConfig, cfg.Cols, cfg.Rows)
	}
	key, err := parseKey(cfg.ToggleKey)
	if err != nil {
		return nil, err
	}
	width := cfg.PanelWidth
	if width == 0 && panel != nil {
		width = panel.Size().X
	}
	if width == 0 {
		width = defaultPanelWidth
	}

	inv := &Inventory{
		obj:         NewGameObject(name, pos, nil),
		cols:        cfg.Cols,
		rows:        cfg.Rows,
		slots:       make([][]Slot, cfg.Rows),
		hotbar:      make([]Slot, cfg.Cols),
		layout:      computeLayout(pos, cfg.Cols, cfg.Rows, width, cfg),
		toggleKey:   key,
		panel:       panel,
		hotbarPanel: hotbarPanel,
	}
	for r := range inv.slots {
		inv.slots[r] = make([]Slot, cfg.Cols)
	}
	inv.obj.UserData = inv
	inv.obj.ScreenSpace = true
	inv.obj.AddComponent(inv)
	return inv, nil
}

// Object returns the underlying scene graph object.
func (inv *Inventory) Object() *GameObject { return inv.obj }

// Cols returns the grid width (and hotbar length).
func (inv *Inventory) Cols() int { return inv.cols }

// Rows returns the number of grid rows; Row == Rows() addresses the hotbar.
func (inv *Inventory) Rows() int { return inv.rows }

// Layout returns the cached geometry.
func (inv *Inventory) Layout() Layout { return inv.layout }

// ItemSize returns the edge length item visuals are expected to have.
func (inv *Inventory) ItemSize() float64 { return inv.layout.ItemSize }

// SetPanels replaces the grid and hotbar panel visuals. Either may be nil.
func (inv *Inventory) SetPanels(panel, hotbarPanel Visual) {
	inv.panel = panel
	inv.hotbarPanel = hotbarPanel
}

// Shown reports whether the grid panel is open.
func (inv *Inventory) Shown() bool { return inv.shown }

// SetShown opens or closes the grid panel. Closing cancels any drag.
func (inv *Inventory) SetShown(shown bool) {
	inv.shown = shown
	if !shown {
		inv.dragging = false
	}
}

// Dragging returns the grabbed cell while a drag is in progress.
func (inv *Inventory) Dragging() (Cell, bool) {
	return inv.dragSrc, inv.dragging
}

// --- Storage ---

// valid reports whether c addresses a grid cell or a hotbar slot.
func (inv *Inventory) valid(c Cell) bool {
	if c.Col < 0 || c.Col >= inv.cols {
		return false
	}
	return c.Row >= 0 && c.Row <= inv.rows
}

// slot returns a pointer to the storage behind a valid cell.
func (inv *Inventory) slot(c Cell) *Slot {
	if c.Row == inv.rows {
		return &inv.hotbar[c.Col]
	}
	return &inv.slots[c.Row][c.Col]
}

func outOfRange(op string, c Cell) error {
	return fmt.Errorf("bastion: %s (%d, %d): %w", op, c.Col, c.Row, ErrCellOutOfRange)
}

// Get returns the item at c. ok is false when the cell is empty. The error
// wraps ErrCellOutOfRange when c is outside both the grid and the hotbar
// row.
func (inv *Inventory) Get(c Cell) (it Item, ok bool, err error) {
	if !inv.valid(c) {
		return Item{}, false, outOfRange("get", c)
	}
	it, ok = inv.slot(c).Item()
	return it, ok, nil
}

// Add stores it in the first empty slot: the hotbar left to right, then the
// grid in row-major order. Returns false, changing nothing, when full.
func (inv *Inventory) Add(it Item) bool {
	for i := range inv.hotbar {
		if inv.hotbar[i].Empty() {
			inv.hotbar[i] = Occupied(it)
			return true
		}
	}
	for r := range inv.slots {
		for c := range inv.slots[r] {
			if inv.slots[r][c].Empty() {
				inv.slots[r][c] = Occupied(it)
				return true
			}
		}
	}
	return false
}

// AddAt stores it at c if that cell is empty.
func (inv *Inventory) AddAt(c Cell, it Item) (bool, error) {
	if !inv.valid(c) {
		return false, outOfRange("add", c)
	}
	s := inv.slot(c)
	if !s.Empty() {
		return false, nil
	}
	*s = Occupied(it)
	return true, nil
}

// Take removes and returns the item at c.
func (inv *Inventory) Take(c Cell) (Item, bool, error) {
	if !inv.valid(c) {
		return Item{}, false, outOfRange("take", c)
	}
	s := inv.slot(c)
	it, ok := s.Item()
	*s = EmptySlot()
	if inv.dragging && inv.dragSrc == c {
		inv.dragging = false
	}
	return it, ok, nil
}

// Move exchanges the contents of src and dst. With swap the exchange is
// unconditional, either side may be empty. Without swap it only happens when
// dst is empty. Reports whether anything was exchanged.
func (inv *Inventory) Move(src, dst Cell, swap bool) (bool, error) {
	if !inv.valid(src) {
		return false, outOfRange("move from", src)
	}
	if !inv.valid(dst) {
		return false, outOfRange("move to", dst)
	}
	a, b := inv.slot(src), inv.slot(dst)
	if !swap && !b.Empty() {
		return false, nil
	}
	*a, *b = *b, *a
	return true, nil
}

// Use runs the OnUse callback of the item at c. Reports whether an item with
// a callback was there.
func (inv *Inventory) Use(c Cell) (bool, error) {
	it, ok, err := inv.Get(c)
	if err != nil || !ok || it.OnUse == nil {
		return false, err
	}
	it.OnUse()
	return true, nil
}

// Find returns the first cell holding an item named name, searching in the
// same order as Add.
func (inv *Inventory) Find(name string) (Cell, bool) {
	for i, s := range inv.hotbar {
		if it, ok := s.Item(); ok && it.Name == name {
			return Cell{Col: i, Row: inv.rows}, true
		}
	}
	for r := range inv.slots {
		for c, s := range inv.slots[r] {
			if it, ok := s.Item(); ok && it.Name == name {
				return Cell{Col: c, Row: r}, true
			}
		}
	}
	return Cell{}, false
}

// --- Pointer mapping ---

// CellAt maps a screen position to a cell. The grid is tested first; only
// when that fails is the hotbar tested, on coordinates relative to the
// hotbar region, whose row must be exactly zero.
func (inv *Inventory) CellAt(p Vec2) (Cell, bool) {
	gx, gy := inv.layout.gridCellAt(p)
	if gx >= 0 && gx < inv.cols && gy >= 0 && gy < inv.rows {
		return Cell{Col: gx, Row: gy}, true
	}
	hx, hy := inv.layout.hotbarCellAt(p)
	if hx >= 0 && hx < inv.cols && hy == 0 {
		return Cell{Col: hx, Row: inv.rows}, true
	}
	return Cell{}, false
}

// cellTopLeft returns where the item of c is drawn.
func (inv *Inventory) cellTopLeft(c Cell) Vec2 {
	l := inv.layout
	origin := l.GridOrigin
	row := c.Row
	if c.Row == inv.rows {
		origin = l.HotbarOrigin
		row = 0
	}
	return origin.Add(Vec2{float64(c.Col) * l.CellSize, float64(row) * l.CellSize}).Add(Vec2{l.CellPad, l.CellPad})
}

// --- Frame hooks ---

// EarlyUpdate runs the toggle latch and the drag state machine.
func (inv *Inventory) EarlyUpdate(o *GameObject, s *Scene) {
	in := s.Input()
	inv.pointer = in.Pointer

	held := in.KeyDown(inv.toggleKey)
	if held && !inv.toggleLatch {
		inv.SetShown(!inv.shown)
		s.log.WithField("shown", inv.shown).Debug("inventory toggled")
		shown := 0
		if inv.shown {
			shown = 1
		}
		s.emit(Event{Type: EventInventoryToggled, ObjectID: o.ID, Name: o.Name, Value: shown})
	}
	inv.toggleLatch = held

	if !inv.shown {
		return
	}

	switch {
	case in.PrimaryDown && !inv.dragging:
		c, ok := inv.CellAt(in.Pointer)
		if ok && !inv.slot(c).Empty() {
			inv.dragging = true
			inv.dragSrc = c
		}
	case !in.PrimaryDown && inv.dragging:
		inv.dragging = false
		c, ok := inv.CellAt(in.Pointer)
		if !ok || c == inv.dragSrc {
			return
		}
		log := s.log.WithFields(logrus.Fields{"from": inv.dragSrc, "to": c})
		moved, err := inv.Move(inv.dragSrc, c, true)
		if err != nil {
			log.WithError(err).Warn("inventory move failed")
			return
		}
		if !moved {
			return
		}
		log.Debug("inventory item moved")
		s.emit(Event{Type: EventItemMoved, ObjectID: o.ID, Name: o.Name, Cell: c, From: inv.dragSrc})
	}
}

// Draw blits the hotbar always and the grid while shown. The dragged item is
// skipped in its cell and drawn last, centered on the pointer.
func (inv *Inventory) Draw(o *GameObject, dst Surface) {
	alpha := o.Alpha
	if inv.hotbarPanel != nil {
		dst.Blit(inv.hotbarPanel, inv.layout.HotbarPanelPos, alpha)
	}
	for col := range inv.hotbar {
		inv.drawCell(dst, Cell{Col: col, Row: inv.rows}, alpha)
	}
	if !inv.shown {
		return
	}

	if inv.panel != nil {
		dst.Blit(inv.panel, inv.layout.PanelPos, alpha)
	}
	for r := range inv.slots {
		for c := range inv.slots[r] {
			inv.drawCell(dst, Cell{Col: c, Row: r}, alpha)
		}
	}

	if inv.dragging {
		if it, ok := inv.slot(inv.dragSrc).Item(); ok && it.Visual != nil {
			dst.Blit(it.Visual, BoundsAt(it.Visual, inv.pointer).TopLeft(), alpha)
		}
	}
}

func (inv *Inventory) drawCell(dst Surface, c Cell, alpha float64) {
	if inv.dragging && inv.dragSrc == c {
		return
	}
	it, ok := inv.slot(c).Item()
	if !ok || it.Visual == nil {
		return
	}
	dst.Blit(it.Visual, inv.cellTopLeft(c), alpha)
}
