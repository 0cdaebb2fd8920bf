package screen

import (
	"testing"

	"go.uber.org/zap"
)

func TestLegalTransitions(t *testing.T) {
	cases := []struct {
		name string
		from State
		to   State
		want bool
	}{
		{name: "lobby to waiting", from: Lobby, to: Waiting, want: true},
		{name: "waiting to in-game", from: Waiting, to: InGame, want: true},
		{name: "lobby straight to in-game", from: Lobby, to: InGame, want: false},
		{name: "in-game back to waiting", from: InGame, to: Waiting, want: false},
		{name: "in-game back to lobby without reset", from: InGame, to: Lobby, want: false},
		{name: "waiting back to lobby without reset", from: Waiting, to: Lobby, want: false},
		{name: "repeated in-game", from: InGame, to: InGame, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Controller{cur: tc.from, log: zap.NewNop()}
			if got := c.To(tc.to); got != tc.want {
				t.Fatalf("To(%v) from %v: got %v, want %v", tc.to, tc.from, got, tc.want)
			}
			wantState := tc.from
			if tc.want {
				wantState = tc.to
			}
			if c.Current() != wantState {
				t.Fatalf("state after To: got %v, want %v", c.Current(), wantState)
			}
		})
	}
}

// The observed screen sequence over one lifecycle must be a subsequence of
// Lobby, Waiting, InGame, Lobby.
func TestLifecycleIsOneDirectional(t *testing.T) {
	c := NewController(zap.NewNop())
	if c.Current() != Lobby {
		t.Fatalf("fresh controller should start at lobby, got %v", c.Current())
	}

	c.To(Waiting)
	c.To(InGame)

	// Stray lifecycle events must not move the screen backwards.
	c.To(Waiting)
	c.To(Lobby)
	if c.Current() != InGame {
		t.Fatalf("backward edge taken: %v", c.Current())
	}

	c.Reset()
	if c.Current() != Lobby {
		t.Fatalf("reset should land in lobby, got %v", c.Current())
	}
}
