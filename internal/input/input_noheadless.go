//go:build !headless

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[Key]ebiten.Key{
	KeyLeft:  ebiten.KeyArrowLeft,
	KeyRight: ebiten.KeyArrowRight,
	KeyEnter: ebiten.KeyEnter,
	KeyR:     ebiten.KeyR,
}

func isKeyJustPressed(key Key) bool {
	ebitenKey, ok := ebitenKeys[key]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(ebitenKey)
}

func isMouseButtonJustPressed(mouseButton MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton(mouseButton))
}

func mousePosition() (int, int) {
	x, y := ebiten.CursorPosition()
	return x, y
}
