package bastion

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the game configuration loaded from YAML.
type Config struct {
	Window    WindowConfig     `yaml:"window"`
	Terrain   TerrainConfig    `yaml:"terrain"`
	Core      CoreConfig       `yaml:"core"`
	Inventory InventorySection `yaml:"inventory"`
	Log       LogConfig        `yaml:"log"`
	Debug     bool             `yaml:"debug"`
}

// WindowConfig configures the game window.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
}

// RunConfig converts the window section into Run options.
func (w WindowConfig) RunConfig() RunConfig {
	return RunConfig{Title: w.Title, Width: w.Width, Height: w.Height, ShowFPS: w.ShowFPS}
}

// TerrainConfig configures the buildable grid. X and Y are the world
// position of the grid center.
type TerrainConfig struct {
	Cols      int     `yaml:"cols"`
	Rows      int     `yaml:"rows"`
	BlockSize float64 `yaml:"block_size"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
}

// InventorySection is the inventory layout plus its screen position.
type InventorySection struct {
	InventoryConfig `yaml:",inline"`
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
}

// Pos returns the panel top-left.
func (s InventorySection) Pos() Vec2 { return Vec2{s.X, s.Y} }

// LogConfig selects the logger level and format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bastion: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("bastion: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig unmarshals YAML, fills defaults for missing fields and
// validates the result. Validation errors wrap ErrInvalidConfig.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "bastion"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 720
	}
	if c.Terrain.Cols == 0 {
		c.Terrain.Cols = 15
	}
	if c.Terrain.Rows == 0 {
		c.Terrain.Rows = 9
	}
	if c.Terrain.BlockSize == 0 {
		c.Terrain.BlockSize = 64
	}
	c.Core.applyDefaults()
	c.Inventory.applyDefaults()
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Terrain.Cols < 0 || c.Terrain.Rows < 0 || c.Terrain.BlockSize < 0 {
		return fmt.Errorf("%w: terrain %dx%d, block %v", ErrInvalidConfig,
			c.Terrain.Cols, c.Terrain.Rows, c.Terrain.BlockSize)
	}
	if c.Core.MaxHP < 0 {
		return fmt.Errorf("%w: core max_hp %d", ErrInvalidConfig, c.Core.MaxHP)
	}
	if c.Inventory.Cols < 0 || c.Inventory.Rows < 0 {
		return fmt.Errorf("%w: inventory %dx%d", ErrInvalidConfig, c.Inventory.Cols, c.Inventory.Rows)
	}
	if c.Inventory.InsetRatio < 0 || c.Inventory.InsetRatio >= 0.5 {
		return fmt.Errorf("%w: inventory inset_ratio %v", ErrInvalidConfig, c.Inventory.InsetRatio)
	}
	if c.Inventory.PadRatio < 0 || c.Inventory.PadRatio >= 0.5 {
		return fmt.Errorf("%w: inventory pad_ratio %v", ErrInvalidConfig, c.Inventory.PadRatio)
	}
	if _, err := parseKey(c.Inventory.ToggleKey); err != nil {
		return err
	}
	return nil
}

// Logger builds the logger described by the log section.
func (c *Config) Logger() *logrus.Logger {
	return NewLogger(c.Log.Level, c.Log.Format, nil)
}
