package calm

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the initial window size in logical pixels.
	// Zero values default to 800x600.
	Width, Height int
	// HeaderHeight reserves a strip above the scenes for the router header.
	HeaderHeight float64
	// Background fills the window behind every layer.
	Background RGB
	// ShowFPS draws an FPS/TPS readout in the top-right corner.
	ShowFPS bool
	// TPS sets the update rate. Zero keeps Ebitengine's default of 60.
	TPS int
	// Debug enables stderr diagnostics.
	Debug bool
}

// Run opens a resizable window and runs host until the window closes or the
// game requests termination. It is a convenience wrapper around
// ebiten.RunGame; ebiten.Termination is reported as a clean exit.
func Run(host *Host, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	host.ClearColor = cfg.Background
	host.SetShowFPS(cfg.ShowFPS)
	host.SetDebugMode(cfg.Debug)
	host.SetHeaderHeight(cfg.HeaderHeight)

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
