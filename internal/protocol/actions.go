package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownAction = errors.New("unknown action token")

type ActionKind string

const (
	ActionFold  ActionKind = "FOLD"
	ActionCall  ActionKind = "CALL"
	ActionRaise ActionKind = "RAISE"
)

func (k ActionKind) String() string { return string(k) }

// Action is one entry of a server-offered action menu. Token is the exact
// string the server sent and the exact string that must be echoed back;
// Amount is parsed out of RAISE tokens for display only.
type Action struct {
	Token  string
	Kind   ActionKind
	Amount uint
}

// ParseAction decodes "FOLD", "CALL" or "RAISE<n>" (no separator, e.g.
// "RAISE200"). The token is preserved verbatim.
func ParseAction(token string) (Action, error) {
	switch {
	case token == string(ActionFold):
		return Action{Token: token, Kind: ActionFold}, nil
	case token == string(ActionCall):
		return Action{Token: token, Kind: ActionCall}, nil
	case strings.HasPrefix(token, string(ActionRaise)):
		suffix := strings.TrimPrefix(token, string(ActionRaise))
		n, err := strconv.ParseUint(suffix, 10, 32)
		if err != nil {
			return Action{}, fmt.Errorf("%w: bad raise amount in %q", ErrUnknownAction, token)
		}
		return Action{Token: token, Kind: ActionRaise, Amount: uint(n)}, nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, token)
	}
}

// Label is the button text shown to the player.
func (a Action) Label() string {
	switch a.Kind {
	case ActionFold:
		return "Fold"
	case ActionCall:
		return "Call"
	case ActionRaise:
		return fmt.Sprintf("Raise %d", a.Amount)
	default:
		return a.Token
	}
}
