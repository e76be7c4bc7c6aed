package monotime

import "time"

// ticksToDuration converts a counter running at freq ticks per second.
//
// Whole seconds and the remainder are converted separately, as multiplying
// ticks by 1e9 first overflows uint64 after about half an hour at 10MHz.
func ticksToDuration(ticks, freq uint64) time.Duration {
	if freq == 0 {
		return 0
	}
	seconds := ticks / freq
	remainder := ticks % freq
	return time.Duration(seconds)*time.Second + time.Duration(remainder*uint64(time.Second)/freq)
}
