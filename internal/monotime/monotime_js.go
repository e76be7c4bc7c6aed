//go:build js

package monotime

import (
	"syscall/js"
	"time"
)

var performance = js.Global().Get("performance")

// performance.now() is in fractional milliseconds since page load
func now() time.Duration {
	return time.Duration(performance.Call("now").Float() * float64(time.Millisecond))
}
