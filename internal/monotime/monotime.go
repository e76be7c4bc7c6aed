// monotime is the clock used to measure play time
package monotime

import "time"

// Now returns the current time more precisely for Web and Windows targets.
//
// Only the difference between two calls is meaningful.
func Now() time.Duration {
	return now()
}
