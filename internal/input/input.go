package input

// Key represents a keyboard key.
type Key int32

// Only defining keys used by this game
//
// These are mapped to ebiten keys in input_noheadless.go so that ebiten
// isn't included as a package for headless builds
const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyEnter
	KeyR
)

// Keys lists every key the game listens to
var Keys = [...]Key{KeyLeft, KeyRight, KeyEnter, KeyR}

func (key Key) String() string {
	switch key {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyR:
		return "R"
	}
	return "Unknown"
}

// IsKeyJustPressed returns true on the tick a key goes down
func IsKeyJustPressed(key Key) bool {
	return isKeyJustPressed(key)
}

// MouseButton represents a mouse button (left, right or middle)
type MouseButton int32

// Define all mouse buttons as there are only 3.
//
// We indirectly use ebiten constants so that ebiten isn't included
// as a package for headless builds
const (
	MouseButtonLeft   = MouseButton(0)
	MouseButtonRight  = MouseButton(1)
	MouseButtonMiddle = MouseButton(2)
)

// IsMouseButtonJustPressed returns true on the tick a mouse button goes down,
// this is what the game treats as a click
func IsMouseButtonJustPressed(mouseButton MouseButton) bool {
	return isMouseButtonJustPressed(mouseButton)
}

// MousePosition returns the mouse/cursor position
//
// For headless builds, this always returns (0,0)
func MousePosition() (int, int) {
	x, y := mousePosition()
	return x, y
}
