package bastion

// Layout is the inventory geometry, computed once at construction from the
// grid size and the base panel width. All positions are in screen space.
type Layout struct {
	CellSize float64
	CellPad  float64
	ItemSize float64
	Inset    float64

	PanelPos       Vec2 // top-left of the grid panel
	GridOrigin     Vec2 // top-left of grid cell (0, 0)
	HotbarOffset   Vec2 // hotbar region relative to GridOrigin
	HotbarOrigin   Vec2 // top-left of hotbar cell 0
	HotbarPanelPos Vec2
}

func computeLayout(pos Vec2, cols, rows int, panelWidth float64, cfg InventoryConfig) Layout {
	inset := panelWidth * cfg.InsetRatio
	cell := (panelWidth - 2*inset) / float64(cols)
	pad := cell * cfg.PadRatio
	grid := pos.Add(Vec2{inset, inset})
	offset := Vec2{0, float64(rows)*cell + cfg.HotbarGap}
	hotbar := grid.Add(offset)
	return Layout{
		CellSize:       cell,
		CellPad:        pad,
		ItemSize:       cell - 2*pad,
		Inset:          inset,
		PanelPos:       pos,
		GridOrigin:     grid,
		HotbarOffset:   offset,
		HotbarOrigin:   hotbar,
		HotbarPanelPos: hotbar.Sub(Vec2{inset, inset}),
	}
}

// gridCellAt floors p into grid-relative cell coordinates (unbounded).
func (l Layout) gridCellAt(p Vec2) (int, int) {
	c := p.Sub(l.GridOrigin).Scale(1 / l.CellSize).Floor()
	return int(c.X), int(c.Y)
}

// hotbarCellAt floors p into hotbar-relative cell coordinates (unbounded).
func (l Layout) hotbarCellAt(p Vec2) (int, int) {
	c := p.Sub(l.GridOrigin).Sub(l.HotbarOffset).Scale(1 / l.CellSize).Floor()
	return int(c.X), int(c.Y)
}
