package view

import "github.com/torafjell/holdem-client/internal/protocol"

// PlayerLine is one seat as rendered.
type PlayerLine struct {
	Name      string `json:"name"`
	Human     bool   `json:"human"`
	Chips     uint   `json:"chips"`
	Committed uint   `json:"committed"`
	Folded    bool   `json:"folded"`
	Active    bool   `json:"active"`
}

// View is the single coherent structure the presentation layer (and the
// debug endpoint) reads. It is derived, never stored: two derivations from
// the same model state are equal.
type View struct {
	HaveTable  bool            `json:"have_table"`
	Round      uint            `json:"round"`
	Pot        uint            `json:"pot"`
	HighestBid uint            `json:"highest_bid"`
	Community  []protocol.Card `json:"community"`
	Players    []PlayerLine    `json:"players"`
	Hand       []protocol.Card `json:"hand"`

	// WaitingOn names the actor when the current offer is someone else's;
	// Offer is non-nil only when the local player may act. At most one of
	// the two is set.
	WaitingOn string       `json:"waiting_on,omitempty"`
	Offer     *Offer       `json:"offer,omitempty"`
	Pending   *RoundResult `json:"pending,omitempty"`

	Journal []LogEntry `json:"journal"`
}

// Derive computes the renderable view from the current model state.
func (m *Model) Derive() View {
	v := View{
		HaveTable:  m.haveTable,
		Round:      m.table.Round,
		Pot:        m.table.Pot,
		HighestBid: m.table.HighestBid,
		Community:  append([]protocol.Card(nil), m.table.Community...),
		Hand:       append([]protocol.Card(nil), m.LocalHand()...),
		Pending:    m.pending,
		Journal:    append([]LogEntry(nil), m.journal...),
	}
	for _, p := range m.table.Players {
		v.Players = append(v.Players, PlayerLine{
			Name:      p.Name,
			Human:     p.Human,
			Chips:     p.Chips,
			Committed: p.Committed,
			Folded:    p.Folded,
			Active:    p.Name == m.table.CurrentActor,
		})
	}
	if offer := m.Actionable(); offer != nil {
		v.Offer = offer
	} else if m.offer != nil {
		v.WaitingOn = m.offer.ActorName
	}
	return v
}
