package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/torafjell/holdem-client/internal/protocol"
)

var ErrBadCommand = errors.New("bad command")

// ParseCommand turns one line of terminal input into a dispatch message.
//
//	create <name> [players] [humans] [chips] [bet-limit]
//	join <code> <name>
//	start
//	fold | call | raise <amount>
//	yes | no            (answers the next-round prompt)
//	quit
func ParseCommand(line string) (Msg, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrBadCommand)
	}

	switch strings.ToLower(fields[0]) {
	case "create":
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: create needs a player name", ErrBadCommand)
		}
		msg := CreateGame{
			PlayerName:     fields[1],
			PlayerCount:    4,
			HumanCount:     1,
			ChipsPerPlayer: 1000,
			BetLimit:       100,
		}
		dst := []*uint{&msg.PlayerCount, &msg.HumanCount, &msg.ChipsPerPlayer, &msg.BetLimit}
		for i, arg := range fields[2:] {
			if i >= len(dst) {
				return nil, fmt.Errorf("%w: too many arguments to create", ErrBadCommand)
			}
			n, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrBadCommand, arg)
			}
			*dst[i] = uint(n)
		}
		return msg, nil

	case "join":
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: usage: join <code> <name>", ErrBadCommand)
		}
		return JoinGame{GameCode: strings.ToUpper(fields[1]), PlayerName: fields[2]}, nil

	case "start":
		return StartGame{}, nil

	case "fold":
		return TakeAction{Kind: protocol.ActionFold}, nil

	case "call":
		return TakeAction{Kind: protocol.ActionCall}, nil

	case "raise":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: usage: raise <amount>", ErrBadCommand)
		}
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrBadCommand, fields[1])
		}
		return TakeAction{Kind: protocol.ActionRaise, Amount: uint(n)}, nil

	case "yes", "y":
		return NextRoundDecision{Accept: true}, nil

	case "no", "n":
		return NextRoundDecision{Accept: false}, nil

	case "quit", "exit":
		return Shutdown{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrBadCommand, fields[0])
	}
}
