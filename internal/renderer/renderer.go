// renderer is the boundary between the game and the engine. The game only
// talks to these interfaces so it can run headless under test.
package renderer

import (
	"image"
	"image/color"
)

// ImageOptions are draw options for an image
type ImageOptions struct {
	X, Y           float32
	ScaleX, ScaleY float32
}

// TextOptions are draw options for a line of text
type TextOptions struct {
	X, Y  float32
	Size  float32
	Color color.Color
}

// Image is a sprite loaded by the renderer
type Image interface {
	Bounds() image.Rectangle
}

// Game interface was copy-pasted out of Ebiten
type Game interface {
	Update() error
	Draw(screen Screen)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// App is the implementation of the renderer
type App interface {
	SetRunnableOnUnfocused(v bool)
	SetWindowSize(screenWidth, screenHeight int)
	SetWindowTitle(title string)
	SetWindowDecorated(v bool)
	SetVsyncEnabled(v bool)
	SetTPS(tps int)
	RunGame(game Game) error
	NewImageFromImage(img image.Image) Image
}

type Screen interface {
	Fill(clr color.Color)
	DrawImage(img Image, options ImageOptions)
	DrawText(str string, options TextOptions)
}
