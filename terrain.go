package bastion

import "fmt"

// Terrain is the buildable ground: a fixed cols×rows grid of cells, each
// holding at most one non-owning reference to the Placeable standing on it.
// The terrain object's world position is the center of the grid.
type Terrain struct {
	obj *GameObject

	Cols, Rows int
	BlockSize  float64

	cells [][]*Placeable // [row][col]
}

// NewTerrain creates a terrain object centered on pos. Panics on
// non-positive dimensions.
func NewTerrain(name string, pos Vec2, cols, rows int, blockSize float64, visual Visual) *Terrain {
	if cols <= 0 || rows <= 0 || blockSize <= 0 {
		panic(fmt.Sprintf("bastion: invalid terrain %dx%d, block %v", cols, rows, blockSize))
	}
	t := &Terrain{
		obj:       NewGameObject(name, pos, visual),
		Cols:      cols,
		Rows:      rows,
		BlockSize: blockSize,
		cells:     make([][]*Placeable, rows),
	}
	for r := range t.cells {
		t.cells[r] = make([]*Placeable, cols)
	}
	t.obj.UserData = t
	return t
}

// Object returns the underlying scene graph object.
func (t *Terrain) Object() *GameObject {
	return t.obj
}

// Origin returns the terrain's world position.
func (t *Terrain) Origin() Vec2 {
	return t.obj.WorldPos()
}

// WorldToGrid maps a world position to the cell containing it.
//
// The position is shifted by half a block and floored to a cell relative to
// the terrain center, then offset by half the grid extents because storage is
// indexed from the corner. Changing this order misaligns placed blocks.
// The result may lie outside the grid; see InBounds.
func (t *Terrain) WorldToGrid(p Vec2) Cell {
	half := t.BlockSize / 2
	rel := p.Sub(t.Origin()).Add(Vec2{half, half})
	c := rel.Scale(1 / t.BlockSize).Floor()
	return Cell{Col: int(c.X) + t.Cols/2, Row: int(c.Y) + t.Rows/2}
}

// GridToWorld maps a cell to its canonical (snapped) world position.
func (t *Terrain) GridToWorld(c Cell) Vec2 {
	bs := t.BlockSize
	return t.Origin().
		Add(Vec2{float64(c.Col), float64(c.Row)}.Scale(bs)).
		Sub(Vec2{float64(t.Cols), float64(t.Rows)}.Scale(bs / 2))
}

// InBounds reports whether c addresses a cell of the grid.
func (t *Terrain) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < t.Cols && c.Row >= 0 && c.Row < t.Rows
}

// Occupant returns the placeable registered at c, or nil.
// Panics if c is out of range; the grid never clamps.
func (t *Terrain) Occupant(c Cell) *Placeable {
	t.mustInBounds(c)
	return t.cells[c.Row][c.Col]
}

// Release clears cell c and returns its previous occupant.
// Panics if c is out of range.
func (t *Terrain) Release(c Cell) *Placeable {
	t.mustInBounds(c)
	p := t.cells[c.Row][c.Col]
	t.cells[c.Row][c.Col] = nil
	return p
}

// OccupiedCount returns the number of occupied cells.
func (t *Terrain) OccupiedCount() int {
	n := 0
	for _, row := range t.cells {
		for _, p := range row {
			if p != nil {
				n++
			}
		}
	}
	return n
}

func (t *Terrain) occupy(c Cell, p *Placeable) {
	t.cells[c.Row][c.Col] = p
}

func (t *Terrain) mustInBounds(c Cell) {
	if !t.InBounds(c) {
		panic(fmt.Sprintf("bastion: terrain cell (%d, %d) out of range %dx%d", c.Col, c.Row, t.Cols, t.Rows))
	}
}
