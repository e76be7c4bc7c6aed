// spawn picks random on-screen positions for objects
package spawn

import (
	"math"

	"github.com/silbinarywolf/fish-fiesta/internal/geom"
)

// Source is the randomness used for placement. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Place returns a random top-left position for an object of the given extent
// so that it stays fully inside area.
//
// Each axis is drawn independently from the closed range [0, area - extent].
// If the object is larger than the area on an axis, that axis is always 0.
func Place(area geom.Area, extent geom.Extent, rng Source) geom.Point {
	return geom.Point{
		X: float64(draw(area.Width-extent.Width, rng)),
		Y: float64(draw(area.Height-extent.Height, rng)),
	}
}

func draw(room float64, rng Source) int {
	span := math.Floor(room)
	if !(span > 0) {
		// oversized object (or NaN), nowhere to move to
		return 0
	}
	return rng.Intn(int(span) + 1)
}
