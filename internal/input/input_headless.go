//go:build headless

package input

func isKeyJustPressed(key Key) bool {
	return false
}

func isMouseButtonJustPressed(mouseButton MouseButton) bool {
	return false
}

func mousePosition() (int, int) {
	return 0, 0
}
