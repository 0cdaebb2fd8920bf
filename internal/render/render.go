// Package render draws the current client snapshot as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/torafjell/holdem-client/internal/client"
	"github.com/torafjell/holdem-client/internal/protocol"
	"github.com/torafjell/holdem-client/internal/screen"
	"github.com/torafjell/holdem-client/internal/view"
)

const communitySlots = 5

var (
	redCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")).Bold(true)
	blackCard = lipgloss.NewStyle().Foreground(lipgloss.Color("#e6edf3")).Bold(true)
	cardBack  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	heading   = lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff")).Bold(true)
	subtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	activeTag = lipgloss.NewStyle().Foreground(lipgloss.Color("#e3b341")).Bold(true)
	foldedTag = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149"))
)

// Card renders one card as rank plus suit glyph, red suits in red.
func Card(c protocol.Card) string {
	if c.Suit.Red() {
		return redCard.Render(c.String())
	}
	return blackCard.Render(c.String())
}

// CommunityRow pads the revealed community cards out to five slots with
// face-down placeholders.
func CommunityRow(cards []protocol.Card) string {
	parts := make([]string, 0, communitySlots)
	for i := 0; i < communitySlots; i++ {
		if i < len(cards) {
			parts = append(parts, Card(cards[i]))
		} else {
			parts = append(parts, cardBack.Render("[?]"))
		}
	}
	return strings.Join(parts, " ")
}

func handRow(cards []protocol.Card) string {
	if len(cards) == 0 {
		return subtle.Render("(no cards yet)")
	}
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, Card(c))
	}
	return strings.Join(parts, " ")
}

func playerLine(p view.PlayerLine) string {
	marker := "bot"
	if p.Human {
		marker = "human"
	}
	line := fmt.Sprintf("  %-12s %-5s  %5d chips  %4d on table", p.Name, marker, p.Chips, p.Committed)
	if p.Folded {
		line += "  " + foldedTag.Render("FOLDED")
	}
	if p.Active {
		line = activeTag.Render("➤") + line[1:]
	}
	return line
}

// ActionMenu lists the offered actions as the commands that select them.
func ActionMenu(offer *view.Offer) string {
	if offer == nil {
		return ""
	}
	parts := make([]string, 0, len(offer.Actions))
	for _, a := range offer.Actions {
		cmd := strings.ToLower(a.Kind.String())
		if a.Kind == protocol.ActionRaise {
			cmd = fmt.Sprintf("raise %d", a.Amount)
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", cmd, a.Label()))
	}
	return "Your turn: " + strings.Join(parts, "  ")
}

// Render draws whichever screen is active.
func Render(s client.Snapshot) string {
	var b strings.Builder
	switch s.Screen {
	case screen.Lobby:
		b.WriteString(heading.Render("Hold'em") + "\n")
		b.WriteString("  create <name> [players] [humans] [chips] [bet-limit]\n")
		b.WriteString("  join <code> <name>\n")
	case screen.Waiting:
		b.WriteString(heading.Render("Waiting room") + "\n")
		b.WriteString("  Game code: " + s.GameCode + "\n")
		if s.PlayersNeeded > 0 {
			fmt.Fprintf(&b, "  %d / %d players ready\n", s.PlayersJoined, s.PlayersNeeded)
		}
		b.WriteString(subtle.Render("  type 'start' when everyone is in") + "\n")
	case screen.InGame:
		renderTable(&b, s)
	}
	renderJournal(&b, s.View.Journal)
	return b.String()
}

func renderTable(b *strings.Builder, s client.Snapshot) {
	v := s.View
	fmt.Fprintf(b, "%s   pot %d   highest bid %d\n",
		heading.Render(fmt.Sprintf("Round %d", v.Round)), v.Pot, v.HighestBid)
	b.WriteString("  " + CommunityRow(v.Community) + "\n")
	for _, p := range v.Players {
		b.WriteString(playerLine(p) + "\n")
	}
	b.WriteString("  Your hand: " + handRow(v.Hand) + "\n")

	switch {
	case s.PromptNextRound && v.Pending != nil:
		fmt.Fprintf(b, "%s won %d chips. Start next round? [yes/no]\n", v.Pending.Winner, v.Pending.ChipsWon)
	case v.Offer != nil:
		b.WriteString(ActionMenu(v.Offer) + "\n")
	case v.WaitingOn != "":
		b.WriteString(subtle.Render("Waiting for "+v.WaitingOn+"...") + "\n")
	}
}

func renderJournal(b *strings.Builder, entries []view.LogEntry) {
	const tail = 6
	if len(entries) == 0 {
		return
	}
	start := 0
	if len(entries) > tail {
		start = len(entries) - tail
	}
	b.WriteString(subtle.Render("---") + "\n")
	for _, e := range entries[start:] {
		fmt.Fprintf(b, "%s %s\n", subtle.Render(e.At.Format("15:04:05")), e.Text)
	}
}
