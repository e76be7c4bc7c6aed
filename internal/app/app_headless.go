//go:build headless

package app

import (
	"github.com/silbinarywolf/fish-fiesta/internal/renderer"
	"github.com/silbinarywolf/fish-fiesta/internal/renderer/headless"
)

func getRenderDriver() renderer.App {
	return new(headless.App)
}
