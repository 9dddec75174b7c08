package bastion

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
)

// CoreName is the object name of the core.
const CoreName = "core"

// CoreConfig holds the tunables of the core. Zero fields take defaults.
type CoreConfig struct {
	MaxHP         int     `yaml:"max_hp"`
	BarOffsetY    float64 `yaml:"bar_offset_y"`
	BarWidth      float64 `yaml:"bar_width"`
	BarHeight     float64 `yaml:"bar_height"`
	FlashDuration float64 `yaml:"flash_duration"`
}

func (c *CoreConfig) applyDefaults() {
	if c.MaxHP == 0 {
		c.MaxHP = 200
	}
	if c.BarOffsetY == 0 {
		c.BarOffsetY = -40
	}
	if c.BarWidth == 0 {
		c.BarWidth = 120
	}
	if c.BarHeight == 0 {
		c.BarHeight = 12
	}
	if c.FlashDuration == 0 {
		c.FlashDuration = 0.25
	}
}

// flashAlpha is the alpha a hit drops the core to before fading back.
const flashAlpha = 0.35

// Core is the structure the player defends. HP stays in [0, MaxHP]; death
// handling is left to the caller.
type Core struct {
	*Placeable

	HP    int
	MaxHP int

	bar      *HPBar
	flash    *TweenGroup
	flashDur float32
}

// NewCore creates the core at the terrain center with a health bar child.
// Like any placeable it still has to be registered by the caller. A negative
// MaxHP fails with ErrInvalidConfig.
func NewCore(s *Scene, cfg CoreConfig, visual Visual) (*Core, error) {
	if cfg.MaxHP < 0 {
		return nil, fmt.Errorf("bastion: core max_hp %d: %w", cfg.MaxHP, ErrInvalidConfig)
	}
	cfg.applyDefaults()
	p, err := NewPlaceable(s, CoreName, Vec2{}, visual)
	if err != nil {
		return nil, err
	}
	p.obj.SetWorldPos(p.terrain.Origin())
	p.Snap()
	c := &Core{
		Placeable: p,
		HP:        cfg.MaxHP,
		MaxHP:     cfg.MaxHP,
		flashDur:  float32(cfg.FlashDuration),
	}
	barObj, bar := NewHPBar(Vec2{0, cfg.BarOffsetY}, cfg.BarWidth, cfg.BarHeight)
	c.bar = bar
	p.obj.AddChild(barObj)
	p.obj.UserData = c
	p.obj.AddComponent(c)
	return c, nil
}

// Bar returns the health bar.
func (c *Core) Bar() *HPBar {
	return c.bar
}

// Proportion returns HP/MaxHP, always in [0, 1].
func (c *Core) Proportion() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return clamp01(float64(c.HP) / float64(c.MaxHP))
}

// Damage removes amount HP, never going below zero. Negative amounts are
// ignored.
func (c *Core) Damage(amount int) {
	if amount <= 0 {
		return
	}
	c.HP = max(c.HP-amount, 0)
	c.scene.log.WithFields(logrus.Fields{"amount": amount, "hp": c.HP}).Debug("core damaged")
	c.scene.emit(Event{Type: EventCoreDamaged, ObjectID: c.obj.ID, Name: c.obj.Name, Cell: c.GridPos(), Value: c.HP})

	c.obj.Alpha = flashAlpha
	c.flash = TweenAlpha(c.obj, 1, c.flashDur, ease.OutQuad)
}

// EarlyUpdate recomputes the bar from HP every frame and advances the hit
// flash.
func (c *Core) EarlyUpdate(o *GameObject, s *Scene) {
	c.bar.Proportion = c.Proportion()
	if c.flash != nil {
		c.flash.Update(float32(s.Dt()))
		if c.flash.Done {
			c.flash = nil
		}
	}
}
