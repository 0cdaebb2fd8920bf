// Package view is the reconciliation core. It folds server snapshots and
// lighter delta events into one render-consistent model and derives the
// structure the presentation layer draws from. Nothing outside the Apply*
// methods mutates the held state, and all of them run on the dispatch
// goroutine.
package view

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/torafjell/holdem-client/internal/protocol"
	"github.com/torafjell/holdem-client/internal/session"
)

// journalCap bounds the scrollback of the event log pane.
const journalCap = 200

// Offer is the transient action menu for whoever the server says may act.
// It is valid only until the next offer, snapshot, or round end.
type Offer struct {
	ActorName string
	Actions   []protocol.Action
}

// RoundResult is the pending "advance to next round" decision surfaced after
// a round_ended event.
type RoundResult struct {
	Winner   string
	ChipsWon uint
}

type LogEntry struct {
	At   time.Time
	Text string
}

type Model struct {
	log  *zap.Logger
	sess *session.Session

	table     protocol.TableState
	haveTable bool
	offer     *Offer
	pending   *RoundResult
	journal   []LogEntry

	now func() time.Time // stubbed in tests
}

func New(sess *session.Session, log *zap.Logger) *Model {
	return &Model{log: log, sess: sess, now: time.Now}
}

// ApplySnapshot replaces the held table state wholesale. Snapshots are the
// server's full truth; merging field-by-field cannot tell an omitted field
// from one reset to empty (community cards shrink to zero on a new round).
func (m *Model) ApplySnapshot(ts protocol.TableState) {
	m.table = ts
	m.haveTable = true
}

// ApplyCardsRevealed replaces only the community card sequence. The server
// uses this between snapshots to animate a reveal; player and pot fields
// must not be touched.
func (m *Model) ApplyCardsRevealed(cards []protocol.Card, message string) {
	m.table.Community = cards
	m.haveTable = true
	if message != "" {
		m.Journal(message)
	}
}

// ApplyActionOffer replaces the held offer. Tokens the client cannot parse
// are dropped with a warning rather than failing the whole offer. An actor
// name absent from the roster is fine: the offer may have raced a snapshot
// that has not arrived yet.
func (m *Model) ApplyActionOffer(actorName string, tokens []string) {
	actions := make([]protocol.Action, 0, len(tokens))
	for _, tok := range tokens {
		a, err := protocol.ParseAction(tok)
		if err != nil {
			m.log.Warn("dropping unparseable action token", zap.String("token", tok), zap.Error(err))
			continue
		}
		actions = append(actions, a)
	}
	m.offer = &Offer{ActorName: actorName, Actions: actions}
}

// ApplyActionTaken only journals. Chip counts in it are informational; the
// next snapshot is authoritative.
func (m *Model) ApplyActionTaken(player, action string, chips uint) {
	text := player + " " + action
	if chips > 0 {
		text += " (" + strconv.FormatUint(uint64(chips), 10) + " chips)"
	}
	m.Journal(text)
}

// ApplyRoundEnded applies the final table state as a snapshot, invalidates
// the offer, and records the pending next-round decision. Snapshots arriving
// while the decision is pending still go through ApplySnapshot and leave the
// decision untouched.
func (m *Model) ApplyRoundEnded(winner string, chipsWon uint, final protocol.TableState) {
	m.ApplySnapshot(final)
	m.offer = nil
	m.pending = &RoundResult{Winner: winner, ChipsWon: chipsWon}
	m.Journal(winner + " won " + strconv.FormatUint(uint64(chipsWon), 10) + " chips!")
}

// HideControls invalidates the offer. Called immediately on intent
// submission so the controls cannot be pressed twice.
func (m *Model) HideControls() { m.offer = nil }

// ClearPending drops the next-round decision once the user has answered it.
func (m *Model) ClearPending() { m.pending = nil }

// Pending returns the unanswered round result, or nil.
func (m *Model) Pending() *RoundResult { return m.pending }

// Reset drops everything. Used on game over and transport loss.
func (m *Model) Reset() {
	m.table = protocol.TableState{}
	m.haveTable = false
	m.offer = nil
	m.pending = nil
	m.journal = nil
}

// IsLocalActor is the single choke point for "may I act" decisions.
func (m *Model) IsLocalActor(name string) bool {
	return m.sess.IsLocal(name)
}

// Actionable returns the current offer iff it is addressed to the local
// player; offers for anyone else are informational only.
func (m *Model) Actionable() *Offer {
	if m.offer == nil || !m.IsLocalActor(m.offer.ActorName) {
		return nil
	}
	return m.offer
}

// OfferedToken resolves a locally chosen action against the current
// actionable offer, returning the server's exact token. The client never
// synthesizes tokens: an action the server did not offer resolves to false.
func (m *Model) OfferedToken(kind protocol.ActionKind, amount uint) (string, bool) {
	offer := m.Actionable()
	if offer == nil {
		return "", false
	}
	for _, a := range offer.Actions {
		if a.Kind != kind {
			continue
		}
		if kind == protocol.ActionRaise && a.Amount != amount {
			continue
		}
		return a.Token, true
	}
	return "", false
}

// LocalHand returns the local player's cards from the current snapshot, or
// nil. Pure; recomputed on every render.
func (m *Model) LocalHand() []protocol.Card {
	for _, p := range m.table.Players {
		if m.sess.IsLocal(p.Name) {
			return p.Cards
		}
	}
	return nil
}

// Journal appends a timestamped line to the capped event log.
func (m *Model) Journal(text string) {
	m.journal = append(m.journal, LogEntry{At: m.now(), Text: text})
	if len(m.journal) > journalCap {
		m.journal = m.journal[len(m.journal)-journalCap:]
	}
}

