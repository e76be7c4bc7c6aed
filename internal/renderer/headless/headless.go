// headless is the headless mode driver for the game so we can run the
// game logic in tests and CI without building the ebiten library
package headless

import (
	"context"
	"image"
	"image/color"
	"time"

	"golang.org/x/time/rate"

	"github.com/silbinarywolf/fish-fiesta/internal/renderer"
)

var _ renderer.App = new(App)

const defaultTPS = 60

type App struct {
	tps int
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	// n/a for headless
}

func (app *App) SetWindowSize(width, height int) {
	// n/a for headless
}

func (app *App) SetWindowTitle(title string) {
	// n/a for headless
}

func (app *App) SetWindowDecorated(v bool) {
	// n/a for headless
}

func (app *App) SetVsyncEnabled(v bool) {
	// n/a for headless
}

func (app *App) SetTPS(tps int) {
	app.tps = tps
}

// RunGame calls Update at the configured ticks-per-second until it returns
// an error. Draw is never called.
func (app *App) RunGame(game renderer.Game) error {
	tps := app.tps
	if tps <= 0 {
		tps = defaultTPS
	}
	limiter := rate.NewLimiter(rate.Every(time.Second/time.Duration(tps)), 1)
	ctx := context.Background()
	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		if err := game.Update(); err != nil {
			return err
		}
	}
}

// NewImageFromImage keeps the bounds so sizes are correct, pixels are dropped
func (app *App) NewImageFromImage(img image.Image) renderer.Image {
	return &Image{bounds: img.Bounds()}
}

type Image struct {
	bounds image.Rectangle
}

func (img *Image) Bounds() image.Rectangle {
	return img.bounds
}

// Screen discards everything drawn to it
type Screen struct {
	// Draws counts draw calls, handy for tests
	Draws int
}

var _ renderer.Screen = new(Screen)

func (screen *Screen) Fill(clr color.Color) {
}

func (screen *Screen) DrawImage(img renderer.Image, options renderer.ImageOptions) {
	screen.Draws++
}

func (screen *Screen) DrawText(str string, options renderer.TextOptions) {
	screen.Draws++
}
