// geom holds the small value types shared by hit-testing and spawn placement
package geom

// Point is a position in screen space, used for both pointer positions
// and placements.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding box.
//
// A well-formed box has Min.X <= Max.X and Min.Y <= Max.Y
type Box struct {
	Min, Max Point
}

// Area is the region objects get placed into, ie. the window resolution
type Area struct {
	Width, Height float64
}

// Extent is the size of an object to be placed, after any scale is applied
type Extent struct {
	Width, Height float64
}

// BoxFromRect returns the box covering a rectangle with the given
// top-left position and size.
func BoxFromRect(x, y, width, height float64) Box {
	return Box{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + width, Y: y + height},
	}
}

// BoxFromCorners returns the box enclosing the four corner vertices of a sprite,
// in whatever order the renderer reports them.
func BoxFromCorners(v1, v2, v3, v4 Point) Box {
	box := Box{Min: v1, Max: v1}
	for _, v := range [...]Point{v2, v3, v4} {
		if v.X < box.Min.X {
			box.Min.X = v.X
		}
		if v.Y < box.Min.Y {
			box.Min.Y = v.Y
		}
		if v.X > box.Max.X {
			box.Max.X = v.X
		}
		if v.Y > box.Max.Y {
			box.Max.Y = v.Y
		}
	}
	return box
}

// Contains reports whether point lies strictly inside box.
//
// Points on an edge are outside, so a click has to land on the sprite and not
// its border. Malformed or degenerate boxes never contain anything as no value
// can satisfy both strict inequalities.
func Contains(box Box, point Point) bool {
	return box.Min.X < point.X && point.X < box.Max.X &&
		box.Min.Y < point.Y && point.Y < box.Max.Y
}
