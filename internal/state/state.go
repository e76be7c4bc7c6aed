// state is the menu/play flow of the game and the score
package state

// Mode is which screen the game is on
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
)

func (mode Mode) String() string {
	switch mode {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	}
	return "unknown"
}

// MenuOption is an entry on the title menu, laid out left to right
type MenuOption int

const (
	OptionPlay MenuOption = iota
	OptionQuit
)

// Action is what the caller should do after a Confirm
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionQuit
)

// State is the menu/play state and the score.
//
// The zero value is the title menu with "Play" selected.
type State struct {
	Mode     Mode
	Selected MenuOption
	Score    int
}

// SelectLeft moves the menu selection to "Play"
func (s *State) SelectLeft() {
	if s.Mode != ModeMenu {
		return
	}
	s.Selected = OptionPlay
}

// SelectRight moves the menu selection to "Quit"
func (s *State) SelectRight() {
	if s.Mode != ModeMenu {
		return
	}
	s.Selected = OptionQuit
}

// Confirm actions the selected menu option. Does nothing once playing.
func (s *State) Confirm() Action {
	if s.Mode != ModeMenu {
		return ActionNone
	}
	switch s.Selected {
	case OptionPlay:
		s.Mode = ModePlaying
		return ActionStart
	case OptionQuit:
		return ActionQuit
	}
	return ActionNone
}

// RegisterHit adds a point for hitting the target. Hits only count
// while playing.
func (s *State) RegisterHit() bool {
	if s.Mode != ModePlaying {
		return false
	}
	s.Score++
	return true
}
