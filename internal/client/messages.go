package client

import (
	"github.com/torafjell/holdem-client/internal/protocol"
)

// Msg is anything the dispatch loop consumes. Everything the client does —
// server events, user commands, timer expiries, introspection — arrives
// through the one inbox, so handlers run strictly one at a time.
type Msg interface{ isClientMsg() }

// ServerEvent wraps one inbound channel envelope.
type ServerEvent struct {
	Env protocol.Envelope
}

// TransportLost signals that the websocket closed. There is no sequence
// numbering to reconcile against, so the policy is a full reset to Lobby.
type TransportLost struct{}

// User commands.

type CreateGame struct {
	PlayerName     string
	PlayerCount    uint
	HumanCount     uint
	ChipsPerPlayer uint
	BetLimit       uint
}

type JoinGame struct {
	GameCode   string
	PlayerName string
}

type StartGame struct{}

// TakeAction is a locally chosen action. It is resolved against the current
// offer and echoed as the server's exact token; an action the server did not
// offer is refused locally.
type TakeAction struct {
	Kind   protocol.ActionKind
	Amount uint
}

// NextRoundDecision answers the pending post-round prompt.
type NextRoundDecision struct {
	Accept bool
}

// GetView requests a race-free copy of the renderable state.
type GetView struct {
	Reply chan Snapshot
}

type Shutdown struct{}

// Timer-fired messages. Keeping these in the inbox keeps the fixed delays of
// the round-end and game-over flows on the dispatch goroutine, so snapshots
// arriving during a delay are absorbed normally.
type promptNextRound struct{}
type resetToLobby struct{}

func (ServerEvent) isClientMsg()       {}
func (TransportLost) isClientMsg()     {}
func (CreateGame) isClientMsg()        {}
func (JoinGame) isClientMsg()          {}
func (StartGame) isClientMsg()         {}
func (TakeAction) isClientMsg()        {}
func (NextRoundDecision) isClientMsg() {}
func (GetView) isClientMsg()           {}
func (Shutdown) isClientMsg()          {}
func (promptNextRound) isClientMsg()   {}
func (resetToLobby) isClientMsg()      {}
