package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    Card
		wantErr bool
	}{
		{name: "plural suit", in: `{"value":14,"color":"hearts"}`, want: Card{Value: 14, Suit: SuitHearts}},
		{name: "singular suit", in: `{"value":7,"color":"heart"}`, want: Card{Value: 7, Suit: SuitHearts}},
		{name: "clubs", in: `{"value":2,"color":"clubs"}`, want: Card{Value: 2, Suit: SuitClubs}},
		{name: "bad suit", in: `{"value":5,"color":"stars"}`, wantErr: true},
		{name: "value too low", in: `{"value":1,"color":"spades"}`, wantErr: true},
		{name: "value too high", in: `{"value":15,"color":"spades"}`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Card
			err := json.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestCardDisplay(t *testing.T) {
	assert.Equal(t, "A♥", Card{Value: 14, Suit: SuitHearts}.String())
	assert.Equal(t, "J♠", Card{Value: 11, Suit: SuitSpades}.String())
	assert.Equal(t, "Q♦", Card{Value: 12, Suit: SuitDiamonds}.String())
	assert.Equal(t, "K♣", Card{Value: 13, Suit: SuitClubs}.String())
	assert.Equal(t, "10♣", Card{Value: 10, Suit: SuitClubs}.String())

	assert.True(t, SuitHearts.Red())
	assert.True(t, SuitDiamonds.Red())
	assert.False(t, SuitSpades.Red())
	assert.False(t, SuitClubs.Red())
}
