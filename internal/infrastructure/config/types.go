package config

import (
	"errors"
	"fmt"
)

// GameConfig is the root config for game.yaml.
// Gameplay rules are fixed in code; only the shell around them is configurable.
type GameConfig struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetsConfig `yaml:"assets"`
	Replay ReplayConfig `yaml:"replay"`
}

// WindowConfig configures the desktop window
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Scale      float64 `yaml:"scale"` // Window size relative to the 960x540 playfield
	TPS        int     `yaml:"tps"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// AssetsConfig names the optional texture files. Empty names are skipped.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Ship       string `yaml:"ship"`
	Obstacle   string `yaml:"obstacle"`
	Logo       string `yaml:"logo"`
	Background string `yaml:"background"`
	Button     string `yaml:"button"`
}

// ReplayConfig configures where recordings go
type ReplayConfig struct {
	Dir      string `yaml:"dir"`
	Compress bool   `yaml:"compress"`
}

// Default returns the configuration used when no file overrides it
func Default() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title: "Space Shooter",
			Scale: 1,
			TPS:   60,
		},
		Assets: AssetsConfig{
			Dir:        "resources",
			Ship:       "ship.png",
			Obstacle:   "asteroid.png",
			Logo:       "logo.png",
			Background: "bg.png",
			Button:     "button.png",
		},
		Replay: ReplayConfig{
			Dir:      ".",
			Compress: true,
		},
	}
}

// Validate reports every invalid field at once
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Window.Title == "" {
		errs = append(errs, errors.New("window.title must not be empty"))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if c.Window.TPS < 1 || c.Window.TPS > 240 {
		errs = append(errs, fmt.Errorf("window.tps must be in [1, 240], got %d", c.Window.TPS))
	}
	if c.Replay.Dir == "" {
		errs = append(errs, errors.New("replay.dir must not be empty"))
	}
	return errors.Join(errs...)
}
