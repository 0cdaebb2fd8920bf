package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitSpades   Suit = "spades"
	SuitClubs    Suit = "clubs"
)

// Glyph returns the single-rune suit symbol used by the table renderer.
func (s Suit) Glyph() string {
	switch s {
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitSpades:
		return "♠"
	case SuitClubs:
		return "♣"
	default:
		return "?"
	}
}

// Red reports whether the suit renders in red.
func (s Suit) Red() bool {
	return s == SuitHearts || s == SuitDiamonds
}

// Card is immutable once received. Value 11..14 are J/Q/K/A. The wire field
// for the suit is "color", and some servers send the singular "heart".
type Card struct {
	Value int  `json:"value"`
	Suit  Suit `json:"color"`
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var raw struct {
		Value int    `json:"value"`
		Color string `json:"color"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	suit, ok := normalizeSuit(raw.Color)
	if !ok {
		return fmt.Errorf("invalid suit %q", raw.Color)
	}
	if raw.Value < 2 || raw.Value > 14 {
		return fmt.Errorf("invalid card value %d", raw.Value)
	}
	c.Value = raw.Value
	c.Suit = suit
	return nil
}

func normalizeSuit(s string) (Suit, bool) {
	switch s {
	case "heart", "hearts":
		return SuitHearts, true
	case "diamond", "diamonds":
		return SuitDiamonds, true
	case "spade", "spades":
		return SuitSpades, true
	case "club", "clubs":
		return SuitClubs, true
	default:
		return "", false
	}
}

// Rank returns the display rank: "2".."10", "J", "Q", "K", "A".
func (c Card) Rank() string {
	switch c.Value {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	default:
		return strconv.Itoa(c.Value)
	}
}

func (c Card) String() string {
	return c.Rank() + c.Suit.Glyph()
}
