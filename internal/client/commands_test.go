package client

import (
	"errors"
	"reflect"
	"testing"

	"github.com/torafjell/holdem-client/internal/protocol"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		want    Msg
		wantErr bool
	}{
		{
			name: "create with defaults",
			line: "create Bob",
			want: CreateGame{PlayerName: "Bob", PlayerCount: 4, HumanCount: 1, ChipsPerPlayer: 1000, BetLimit: 100},
		},
		{
			name: "create fully specified",
			line: "create Bob 6 2 500 50",
			want: CreateGame{PlayerName: "Bob", PlayerCount: 6, HumanCount: 2, ChipsPerPlayer: 500, BetLimit: 50},
		},
		{
			name: "join upcases the code",
			line: "join abcd Bob",
			want: JoinGame{GameCode: "ABCD", PlayerName: "Bob"},
		},
		{name: "start", line: "start", want: StartGame{}},
		{name: "fold", line: "fold", want: TakeAction{Kind: protocol.ActionFold}},
		{name: "call", line: "  call  ", want: TakeAction{Kind: protocol.ActionCall}},
		{name: "raise", line: "raise 50", want: TakeAction{Kind: protocol.ActionRaise, Amount: 50}},
		{name: "yes", line: "y", want: NextRoundDecision{Accept: true}},
		{name: "no", line: "no", want: NextRoundDecision{Accept: false}},
		{name: "quit", line: "quit", want: Shutdown{}},
		{name: "raise without amount", line: "raise", wantErr: true},
		{name: "raise with junk", line: "raise much", wantErr: true},
		{name: "create without name", line: "create", wantErr: true},
		{name: "join missing name", line: "join ABCD", wantErr: true},
		{name: "gibberish", line: "shove everything", wantErr: true},
		{name: "empty", line: "   ", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCommand(tc.line)
			if tc.wantErr {
				if !errors.Is(err, ErrBadCommand) {
					t.Fatalf("want ErrBadCommand, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
