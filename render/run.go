// Package render draws a motion scene with Ebitengine and runs the game
// loop that advances it.
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/motion"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor motion.Color
	ShowFPS    bool

	// Update, when set, is called once per tick before the scene advances.
	Update func() error
}

// Game adapts a Scene to ebiten.Game.
type Game struct {
	scene    *motion.Scene
	cfg      RunConfig
	renderer Renderer
}

// NewGame creates a Game drawing scene with cfg.
func NewGame(scene *motion.Scene, cfg RunConfig) *Game {
	return &Game{scene: scene, cfg: cfg}
}

// Update runs the user update, then advances the scene by one tick.
func (g *Game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.scene.Advance(1 / float64(ebiten.TPS()))
	return nil
}

// Draw clears the screen and draws the layer tree.
func (g *Game) Draw(screen *ebiten.Image) {
	c := g.cfg.ClearColor
	screen.Fill(toRGBA(c))
	g.renderer.DrawScene(screen, g.scene)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout returns the configured size, so the scene is drawn in logical
// pixels regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width <= 0 || g.cfg.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs scene until the window is closed or Update
// returns an error.
func Run(scene *motion.Scene, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if err := ebiten.RunGame(NewGame(scene, cfg)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
