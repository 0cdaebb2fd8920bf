// Package session holds the locally-known identity for one client: the
// local player's display name and the current game code. It is set once per
// create/join acknowledgment and cleared on game over or transport loss.
// All access happens on the dispatch goroutine, so there is no locking.
package session

type Identity struct {
	PlayerName string
	GameID     string
}

type Session struct {
	identity Identity
	active   bool
}

func New() *Session { return &Session{} }

// Begin records the acknowledged identity. A second Begin replaces the first.
func (s *Session) Begin(playerName, gameID string) {
	s.identity = Identity{PlayerName: playerName, GameID: gameID}
	s.active = true
}

// Clear drops the identity. Used on game over and on the transport-loss
// reset path.
func (s *Session) Clear() {
	s.identity = Identity{}
	s.active = false
}

func (s *Session) Active() bool       { return s.active }
func (s *Session) Identity() Identity { return s.identity }
func (s *Session) PlayerName() string { return s.identity.PlayerName }
func (s *Session) GameID() string     { return s.identity.GameID }

// IsLocal reports whether name refers to the local player. Identity is
// name-based; the server enforces no uniqueness, so a collision between two
// display names is indistinguishable here.
func (s *Session) IsLocal(name string) bool {
	return s.active && name != "" && name == s.identity.PlayerName
}
