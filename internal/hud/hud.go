// hud formats the strings shown on top of the game while playing
package hud

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

// Score returns the score counter text, ie. "Score: 1,234"
func Score(score int) string {
	return "Score: " + humanize.Comma(int64(score))
}

// PlayTime returns how long the player has been playing using the two most
// significant units, ie. "1 minute 5 seconds"
func PlayTime(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Second {
		return "0 seconds"
	}
	return durafmt.Parse(d).LimitFirstN(2).String()
}
