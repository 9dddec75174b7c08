package bastion

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// ClearColor fills the screen before the scene is drawn. A zero alpha
	// leaves the screen black.
	ClearColor Color
}

func (c *RunConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = "bastion"
	}
	if c.Width == 0 {
		c.Width = 1280
	}
	if c.Height == 0 {
		c.Height = 720
	}
}

// Game adapts a Scene to ebiten.Game.
type Game struct {
	scene   *Scene
	cfg     RunConfig
	surface *ScreenSurface
}

// NewGame wraps s. Use it directly to embed the scene in a custom loop;
// Run covers the common case.
func NewGame(s *Scene, cfg RunConfig) *Game {
	cfg.applyDefaults()
	return &Game{scene: s, cfg: cfg}
}

// Update advances the scene by one tick.
func (g *Game) Update() error {
	g.scene.SetFrameTime(1 / float64(ebiten.TPS()))
	g.scene.Update()
	return nil
}

// Draw clears the screen and draws the scene onto it.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	if g.surface == nil || g.surface.Target != screen {
		g.surface = NewScreenSurface(screen)
	}
	g.scene.Draw(g.surface)
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs the scene until the window is closed. A scene
// without an input source gets live ebiten input.
func Run(s *Scene, cfg RunConfig) error {
	g := NewGame(s, cfg)
	if s.input == nil {
		s.SetInput(&EbitenInput{})
	}
	if g.cfg.ShowFPS {
		s.Root().AddChild(NewFPSWidget())
	}
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	s.log.WithField("title", g.cfg.Title).Info("starting game loop")
	return ebiten.RunGame(g)
}
