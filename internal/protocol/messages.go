package protocol

import "errors"

var ErrMissingField = errors.New("payload missing required field")

// PlayerView is one seat as the server describes it. Cards is empty for
// everyone except the local player once a hand has been dealt.
type PlayerView struct {
	Name      string `json:"name"`
	Human     bool   `json:"human"`
	Chips     uint   `json:"chips"`
	Committed uint   `json:"chips_added_to_table"`
	Folded    bool   `json:"folded"`
	Cards     []Card `json:"cards"`
}

// TableState is the authoritative snapshot. Every field is replaced wholesale
// on receipt; a partial merge cannot tell "omitted" from "reset to empty".
type TableState struct {
	GameID       string       `json:"game_id"`
	Round        uint         `json:"rounds"`
	Pot          uint         `json:"table_chips"`
	HighestBid   uint         `json:"highest_bid"`
	Community    []Card       `json:"cards_on_table"`
	Lap          int          `json:"lap"`
	Players      []PlayerView `json:"players"`
	CurrentActor string       `json:"current_player"`
}

// Inbound payloads.

type Connected struct {
	SID string `json:"sid"`
}

type GameCreated struct {
	GameID  string `json:"game_id"`
	Message string `json:"message"`
}

func (p GameCreated) Validate() error {
	if p.GameID == "" {
		return ErrMissingField
	}
	return nil
}

type JoinedGame struct {
	GameID        string `json:"game_id"`
	Message       string `json:"message"`
	PlayersJoined int    `json:"players_joined"`
	PlayersNeeded int    `json:"players_needed"`
}

func (p JoinedGame) Validate() error {
	if p.GameID == "" {
		return ErrMissingField
	}
	return nil
}

type RequestAction struct {
	PlayerName       string   `json:"player_name"`
	AvailableActions []string `json:"available_actions"`
}

func (p RequestAction) Validate() error {
	if p.PlayerName == "" || p.AvailableActions == nil {
		return ErrMissingField
	}
	return nil
}

type ActionTaken struct {
	Player        string `json:"player"`
	Action        string `json:"action"`
	Chips         uint   `json:"chips"`
	NewHighestBid uint   `json:"new_highest_bid"`
}

func (p ActionTaken) Validate() error {
	if p.Player == "" || p.Action == "" {
		return ErrMissingField
	}
	return nil
}

type CardsDealt struct {
	Message string `json:"message"`
	Cards   []Card `json:"cards"`
}

func (p CardsDealt) Validate() error {
	if p.Cards == nil {
		return ErrMissingField
	}
	return nil
}

type RoundEnded struct {
	Winner    string     `json:"winner"`
	ChipsWon  uint       `json:"chips_won"`
	GameState TableState `json:"game_state"`
}

func (p RoundEnded) Validate() error {
	if p.Winner == "" {
		return ErrMissingField
	}
	return nil
}

type GameOver struct {
	Winner string `json:"winner"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

// Outbound payloads.

type CreateGame struct {
	PlayerName     string `json:"player_name"`
	PlayerCount    uint   `json:"player_count"`
	HumanCount     uint   `json:"human_count"`
	ChipsPerPlayer uint   `json:"chips_per_player"`
	BetLimit       uint   `json:"bet_limit"`
}

type JoinGame struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
}

type StartGame struct {
	GameID string `json:"game_id"`
}

type PlayerAction struct {
	GameID string `json:"game_id"`
	Action string `json:"action"`
}

type NextRound struct {
	GameID string `json:"game_id"`
}
