package protocol

import "encoding/json"

// Inbound event names.
const (
	EvtConnected     = "connected"
	EvtGameCreated   = "game_created"
	EvtJoinedGame    = "joined_game"
	EvtRoundStarted  = "round_started"
	EvtGameState     = "game_state"
	EvtRequestAction = "request_action"
	EvtActionTaken   = "action_taken"
	EvtCardsDealt    = "cards_dealt"
	EvtRoundEnded    = "round_ended"
	EvtGameOver      = "game_over"
	EvtError         = "error"
)

// Outbound event names.
const (
	EvtCreateGame   = "create_game"
	EvtJoinGame     = "join_game"
	EvtStartGame    = "start_game"
	EvtPlayerAction = "player_action"
	EvtNextRound    = "next_round"
)

// Envelope is the on-wire frame: a named event plus its payload. The payload
// stays raw until the dispatcher knows which struct to decode it into.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
