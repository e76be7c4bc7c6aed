package world

import (
	"time"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/fish-fiesta/internal/ent"
	"github.com/silbinarywolf/fish-fiesta/internal/geom"
	"github.com/silbinarywolf/fish-fiesta/internal/input"
	"github.com/silbinarywolf/fish-fiesta/internal/logging"
	"github.com/silbinarywolf/fish-fiesta/internal/state"
)

// ErrQuit is returned when the player picks "Quit" from the menu
var ErrQuit = errors.New("player quit")

// Options are everything the world needs from outside. Nothing is
// read from globals so tests can pin the random source and the clock.
type Options struct {
	// Area is where the fish can spawn, usually the screen size
	Area geom.Area
	// FishSize is the unscaled size of the fish sprite
	FishSize     geom.Extent
	FishScaleMin float64
	FishScaleMax float64
	Rand         ent.Rand
	// Now is a monotonic clock, ie. monotime.Now
	Now func() time.Duration
}

type World struct {
	State state.State
	Fish  ent.Fish

	options       Options
	playStartedAt time.Duration
}

func New(options Options) *World {
	world := &World{
		options: options,
	}
	world.Fish.Init(options.FishSize)
	world.RespawnFish()
	return world
}

// Area returns the spawn area
func (world *World) Area() geom.Area {
	return world.options.Area
}

// RespawnFish moves the fish somewhere new with a new size
func (world *World) RespawnFish() {
	world.Fish.Respawn(world.options.Area, world.options.Rand, world.options.FishScaleMin, world.options.FishScaleMax)
	logging.Debugf("fish spawned at (%v, %v) with scale %.2f", world.Fish.X, world.Fish.Y, world.Fish.Scale)
}

// ResetFish puts the fish back to its original size somewhere new
func (world *World) ResetFish() {
	world.Fish.Respawn(world.options.Area, world.options.Rand, 1, 1)
	logging.Debugf("fish reset at (%v, %v)", world.Fish.X, world.Fish.Y)
}

// HandleKey handles a key press. Returns ErrQuit if the player quit.
func (world *World) HandleKey(key input.Key) error {
	switch key {
	case input.KeyLeft:
		world.State.SelectLeft()
	case input.KeyRight:
		world.State.SelectRight()
	case input.KeyEnter:
		switch world.State.Confirm() {
		case state.ActionStart:
			world.playStartedAt = world.options.Now()
			logging.Debugf("game started")
		case state.ActionQuit:
			return ErrQuit
		}
	case input.KeyR:
		world.ResetFish()
	}
	return nil
}

// HandleClick handles a click at point. Returns true if the fish was hit.
func (world *World) HandleClick(point geom.Point) bool {
	if world.State.Mode != state.ModePlaying {
		return false
	}
	if !world.Fish.IsHit(point) {
		return false
	}
	world.State.RegisterHit()
	world.RespawnFish()
	return true
}

// PlayTime is how long the current game has been running, 0 in the menu
func (world *World) PlayTime() time.Duration {
	if world.State.Mode != state.ModePlaying {
		return 0
	}
	return world.options.Now() - world.playStartedAt
}
