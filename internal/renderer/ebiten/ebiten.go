package ebiten

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"github.com/silbinarywolf/fish-fiesta/internal/asset"
	"github.com/silbinarywolf/fish-fiesta/internal/renderer"
)

var _ renderer.App = new(App)

type App struct {
}

type ebitenGameAndScreen struct {
	renderer.Game
	screenDriver Screen
}

func (game *ebitenGameAndScreen) Draw(screen *ebiten.Image) {
	game.screenDriver.screen = screen
	game.Game.Draw(&game.screenDriver)
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	ebiten.SetRunnableOnUnfocused(v)
}

func (app *App) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (app *App) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (app *App) SetWindowDecorated(v bool) {
	ebiten.SetWindowDecorated(v)
}

func (app *App) SetVsyncEnabled(v bool) {
	ebiten.SetVsyncEnabled(v)
}

func (app *App) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

func (app *App) NewImageFromImage(img image.Image) renderer.Image {
	return ebiten.NewImageFromImage(img)
}

func (app *App) RunGame(game renderer.Game) error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(asset.Font))
	if err != nil {
		return errors.Wrap(err, "unable to parse font")
	}
	gameWrapper := ebitenGameAndScreen{}
	gameWrapper.Game = game
	gameWrapper.screenDriver.fontSource = fontSource
	gameWrapper.screenDriver.faces = make(map[float32]text.Face)
	return ebiten.RunGame(&gameWrapper)
}

type Screen struct {
	screen     *ebiten.Image
	fontSource *text.GoTextFaceSource
	// faces are cached per size as the menu and HUD redraw every frame
	faces map[float32]text.Face
}

var _ renderer.Screen = new(Screen)

func (driver *Screen) Fill(clr color.Color) {
	driver.screen.Fill(clr)
}

func (driver *Screen) DrawImage(img renderer.Image, options renderer.ImageOptions) {
	op := &ebiten.DrawImageOptions{}
	if options.ScaleX != 0 && options.ScaleY != 0 {
		op.GeoM.Scale(float64(options.ScaleX), float64(options.ScaleY))
	}
	op.GeoM.Translate(float64(options.X), float64(options.Y))
	op.Filter = ebiten.FilterLinear
	driver.screen.DrawImage(img.(*ebiten.Image), op)
}

func (driver *Screen) DrawText(str string, options renderer.TextOptions) {
	face, ok := driver.faces[options.Size]
	if !ok {
		face = &text.GoTextFace{
			Source: driver.fontSource,
			Size:   float64(options.Size),
		}
		driver.faces[options.Size] = face
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(options.X), float64(options.Y))
	if options.Color != nil {
		op.ColorScale.ScaleWithColor(options.Color)
	}
	text.Draw(driver.screen, str, face, op)
}
