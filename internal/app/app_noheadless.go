//go:build !headless

package app

import (
	"github.com/silbinarywolf/fish-fiesta/internal/renderer"
	"github.com/silbinarywolf/fish-fiesta/internal/renderer/ebiten"
)

func getRenderDriver() renderer.App {
	return new(ebiten.App)
}
