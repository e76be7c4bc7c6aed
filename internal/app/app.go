package app

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/silbinarywolf/fish-fiesta/internal/asset"
	"github.com/silbinarywolf/fish-fiesta/internal/config"
	"github.com/silbinarywolf/fish-fiesta/internal/ent"
	"github.com/silbinarywolf/fish-fiesta/internal/geom"
	"github.com/silbinarywolf/fish-fiesta/internal/hud"
	"github.com/silbinarywolf/fish-fiesta/internal/input"
	"github.com/silbinarywolf/fish-fiesta/internal/logging"
	"github.com/silbinarywolf/fish-fiesta/internal/monotime"
	"github.com/silbinarywolf/fish-fiesta/internal/renderer"
	"github.com/silbinarywolf/fish-fiesta/internal/state"
	"github.com/silbinarywolf/fish-fiesta/internal/world"
)

const (
	titleSize = 64
	hudSize   = 32
)

type App struct {
	renderer.App

	config          config.Config
	world           *world.World
	backgroundImage renderer.Image
	backgroundScale renderer.ImageOptions
}

// New loads assets through driver and sets up the world
func New(cfg config.Config, driver renderer.App) (*App, error) {
	app := &App{
		App:    driver,
		config: cfg,
	}

	// Load assets
	img, err := asset.DecodeImage("background.png", asset.Background)
	if err != nil {
		return nil, err
	}
	app.backgroundImage = app.NewImageFromImage(img)
	fishSize, err := ent.LoadFishAssets(app.App)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logging.Debugf("random seed: %d", seed)

	app.world = world.New(world.Options{
		Area: geom.Area{
			Width:  float64(cfg.WindowWidth),
			Height: float64(cfg.WindowHeight),
		},
		FishSize:     fishSize,
		FishScaleMin: cfg.FishScaleMin,
		FishScaleMax: cfg.FishScaleMax,
		Rand:         rand.New(rand.NewSource(seed)),
		Now:          monotime.Now,
	})

	// Stretch the background over the whole play area
	area := app.world.Area()
	size := img.Bounds().Size()
	app.backgroundScale = renderer.ImageOptions{
		ScaleX: float32(area.Width) / float32(size.X),
		ScaleY: float32(area.Height) / float32(size.Y),
	}
	return app, nil
}

// World exposes the game state, mostly for tests
func (app *App) World() *world.World {
	return app.world
}

func (app *App) Update() error {
	// Handle keyboard input
	for _, key := range input.Keys {
		if !input.IsKeyJustPressed(key) {
			continue
		}
		if err := app.world.HandleKey(key); err != nil {
			return err
		}
	}

	// Handle clicks
	if input.IsMouseButtonJustPressed(input.MouseButtonLeft) {
		x, y := input.MousePosition()
		if app.world.HandleClick(geom.Point{X: float64(x), Y: float64(y)}) && logging.DebugEnabled() {
			logging.Debugf("hit at (%d, %d), %s, %s", x, y, hud.Score(app.world.State.Score), hud.PlayTime(app.world.PlayTime()))
		}
	}
	return nil
}

func (app *App) Draw(screen renderer.Screen) {
	screen.Fill(colornames.Black)

	// Draws Background Image
	screen.DrawImage(app.backgroundImage, app.backgroundScale)

	switch app.world.State.Mode {
	case state.ModeMenu:
		app.drawMenu(screen)
	case state.ModePlaying:
		app.world.Fish.Draw(screen)
		screen.DrawText(hud.Score(app.world.State.Score), renderer.TextOptions{
			X:     20,
			Y:     20,
			Size:  hudSize,
			Color: colornames.White,
		})
		screen.DrawText(hud.PlayTime(app.world.PlayTime()), renderer.TextOptions{
			X:     20,
			Y:     20 + hudSize*1.5,
			Size:  hudSize,
			Color: colornames.White,
		})
	}
}

func (app *App) drawMenu(screen renderer.Screen) {
	screen.DrawText(app.config.WindowTitle, renderer.TextOptions{
		X:     100,
		Y:     100,
		Size:  titleSize,
		Color: colornames.Hotpink,
	})

	playText, playOptions := menuOption("Play!", app.world.State.Selected == state.OptionPlay)
	playOptions.X, playOptions.Y = 100, 400
	screen.DrawText(playText, playOptions)

	quitText, quitOptions := menuOption("Quit!", app.world.State.Selected == state.OptionQuit)
	quitOptions.X, quitOptions.Y = 500, 400
	screen.DrawText(quitText, quitOptions)
}

// menuOption marks the selected option with a ">" and highlights it
func menuOption(label string, selected bool) (string, renderer.TextOptions) {
	if selected {
		return ">" + label, renderer.TextOptions{
			Size:  titleSize,
			Color: colornames.Hotpink,
		}
	}
	return label, renderer.TextOptions{
		Size:  titleSize,
		Color: colornames.Lightslategray,
	}
}

func (app *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return app.config.WindowWidth, app.config.WindowHeight
}

// configureWindow pushes the window settings to the render driver
func (app *App) configureWindow() {
	cfg := app.config
	app.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	app.SetWindowTitle(cfg.WindowTitle)
	app.SetWindowDecorated(!cfg.Borderless)
	app.SetVsyncEnabled(cfg.Vsync)
	app.SetRunnableOnUnfocused(cfg.RunInBackground)
	app.SetTPS(cfg.TPS)
}

// StartApp opens the window and blocks until the player quits
func StartApp(cfg config.Config) error {
	app, err := New(cfg, getRenderDriver())
	if err != nil {
		return errors.Wrap(err, "unable to load game")
	}
	app.configureWindow()
	if err := app.App.RunGame(app); err != nil && !errors.Is(err, world.ErrQuit) {
		return err
	}
	return nil
}
