//go:build !js && !windows

package monotime

import (
	"time"
)

var start = time.Now()

func now() time.Duration {
	// time.Since reads the monotonic clock, unlike UnixNano
	return time.Since(start)
}
