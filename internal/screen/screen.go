// Package screen decides which of the three client views is visible.
package screen

import "go.uber.org/zap"

type State int

const (
	Lobby State = iota
	Waiting
	InGame
)

func (s State) String() string {
	switch s {
	case Lobby:
		return "lobby"
	case Waiting:
		return "waiting"
	case InGame:
		return "in-game"
	default:
		return "invalid"
	}
}

// MarshalText keeps the screen readable in the diagnostics JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Controller is a small one-directional state machine:
// Lobby -> Waiting -> InGame, with re-entry to Lobby only via Reset.
// Transitions the table does not define are logged and ignored.
type Controller struct {
	cur State
	log *zap.Logger
}

func NewController(log *zap.Logger) *Controller {
	return &Controller{cur: Lobby, log: log}
}

func (c *Controller) Current() State { return c.cur }

// To attempts a transition and reports whether it was taken. Staying on the
// current state is always allowed (repeated round_started events land here).
func (c *Controller) To(next State) bool {
	if next == c.cur {
		return true
	}
	if !legal(c.cur, next) {
		c.log.Warn("ignoring illegal screen transition",
			zap.Stringer("from", c.cur),
			zap.Stringer("to", next))
		return false
	}
	c.log.Debug("screen transition", zap.Stringer("from", c.cur), zap.Stringer("to", next))
	c.cur = next
	return true
}

// Reset is the only backward edge: the full reset to Lobby after game over
// or transport loss.
func (c *Controller) Reset() {
	c.cur = Lobby
}

func legal(from, to State) bool {
	switch from {
	case Lobby:
		return to == Waiting
	case Waiting:
		return to == InGame
	default:
		return false
	}
}
