package ebitenhost

import (
	"errors"
	"image"

	"github.com/phanxgames/clicker"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size. Zero uses the canvas size.
	Width, Height int
	// DisableReset turns off the R key view reset.
	DisableReset bool
	// ResetSeconds is the reset animation length. Zero means 0.3.
	ResetSeconds float32
}

type game struct {
	canvas *Canvas
	cfg    RunConfig
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.cfg.DisableReset && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.canvas.view.ResetView(g.cfg.ResetSeconds, nil)
	}
	g.canvas.Update()
	if r := g.canvas.testRunner; r != nil && r.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.DrawTo(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.canvas.opts.Width, g.canvas.opts.Height
}

// Run opens a window and runs the canvas until the window is closed, Escape
// is pressed, or an attached test script finishes. Pressing R animates the
// view back to its initial limits.
func Run(canvas *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = canvas.opts.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = canvas.opts.Height
	}
	if cfg.ResetSeconds <= 0 {
		cfg.ResetSeconds = 0.3
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	err := ebiten.RunGame(&game{canvas: canvas, cfg: cfg})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if r := canvas.testRunner; r != nil {
		return r.Err()
	}
	return nil
}

func imageRect(r clicker.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width)+1, int(r.Y+r.Height)+1)
}
