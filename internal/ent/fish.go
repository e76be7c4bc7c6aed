// ent is the entity package
package ent

import (
	"github.com/silbinarywolf/fish-fiesta/internal/asset"
	"github.com/silbinarywolf/fish-fiesta/internal/geom"
	"github.com/silbinarywolf/fish-fiesta/internal/renderer"
	"github.com/silbinarywolf/fish-fiesta/internal/spawn"
)

var (
	fishSprite renderer.Image
)

// LoadFishAssets loads the fish sprite and returns its unscaled size
func LoadFishAssets(app renderer.App) (geom.Extent, error) {
	img, err := asset.DecodeImage("fish.png", asset.Fish)
	if err != nil {
		return geom.Extent{}, err
	}
	fishSprite = app.NewImageFromImage(img)
	size := img.Bounds().Size()
	return geom.Extent{
		Width:  float64(size.X),
		Height: float64(size.Y),
	}, nil
}

// Rand is the randomness a fish needs to respawn. *math/rand.Rand satisfies it.
type Rand interface {
	spawn.Source
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

type Fish struct {
	// X, Y is the top-left of the sprite
	X, Y float64
	// Width, Height is the size of the sprite before scaling
	Width, Height float64
	Scale         float64
}

func (self *Fish) Init(size geom.Extent) {
	self.Width = size.Width
	self.Height = size.Height
	self.Scale = 1
}

// Extent is the on-screen size of the fish
func (self *Fish) Extent() geom.Extent {
	return geom.Extent{
		Width:  self.Width * self.Scale,
		Height: self.Height * self.Scale,
	}
}

// Bounds is the world-space bounding box of the scaled sprite
func (self *Fish) Bounds() geom.Box {
	extent := self.Extent()
	return geom.BoxFromCorners(
		geom.Point{X: self.X, Y: self.Y},
		geom.Point{X: self.X + extent.Width, Y: self.Y},
		geom.Point{X: self.X + extent.Width, Y: self.Y + extent.Height},
		geom.Point{X: self.X, Y: self.Y + extent.Height},
	)
}

// IsHit returns true if point lands on the fish
func (self *Fish) IsHit(point geom.Point) bool {
	return geom.Contains(self.Bounds(), point)
}

// Respawn picks a new scale in [minScale, maxScale] and then moves the fish
// somewhere it fits fully inside area
func (self *Fish) Respawn(area geom.Area, rng Rand, minScale, maxScale float64) {
	self.Scale = minScale
	if maxScale > minScale {
		self.Scale += rng.Float64() * (maxScale - minScale)
	}
	pos := spawn.Place(area, self.Extent(), rng)
	self.X = pos.X
	self.Y = pos.Y
}

func (self *Fish) Draw(screen renderer.Screen) {
	if fishSprite == nil {
		return
	}
	screen.DrawImage(fishSprite, renderer.ImageOptions{
		X:      float32(self.X),
		Y:      float32(self.Y),
		ScaleX: float32(self.Scale),
		ScaleY: float32(self.Scale),
	})
}
