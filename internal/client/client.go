// Package client runs the single-threaded dispatch loop tying the channel,
// the view model, and the screen controller together. Handlers run to
// completion in arrival order; the view model and screen state are owned by
// this loop alone, so no locking is needed anywhere above the transport.
package client

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/torafjell/holdem-client/internal/screen"
	"github.com/torafjell/holdem-client/internal/session"
	"github.com/torafjell/holdem-client/internal/view"
)

// Sender is the outbound half of the channel. Intents are fire-and-forget;
// there are no retries, the next snapshot reconciles.
type Sender interface {
	Send(ctx context.Context, event string, payload any) error
}

// Delays are the fixed display delays: how long after round_ended the
// next-round prompt surfaces, and how long after game_over the client resets
// to the lobby. Tests shrink them.
type Delays struct {
	NextRoundPrompt time.Duration
	GameOverReset   time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		NextRoundPrompt: 2 * time.Second,
		GameOverReset:   3 * time.Second,
	}
}

// Snapshot is the renderable state handed to the presentation layer and the
// debug endpoint.
type Snapshot struct {
	Screen          screen.State `json:"screen"`
	GameCode        string       `json:"game_code,omitempty"`
	PlayersJoined   int          `json:"players_joined,omitempty"`
	PlayersNeeded   int          `json:"players_needed,omitempty"`
	PromptNextRound bool         `json:"prompt_next_round,omitempty"`
	View            view.View    `json:"view"`
}

type Client struct {
	inbox   chan Msg
	send    Sender
	sess    *session.Session
	model   *view.Model
	screens *screen.Controller
	log     *zap.Logger
	delays  Delays

	// onUpdate, if set, fires after every handled message so the terminal
	// can re-render. It runs on the dispatch goroutine.
	onUpdate func(Snapshot)

	// pendingName holds the display name sent with create/join until the
	// server acknowledges it and it becomes the session identity.
	pendingName   string
	playersJoined int
	playersNeeded int
	prompt        bool

	ctx    context.Context
	cancel context.CancelFunc
}

type Option func(*Client)

func WithDelays(d Delays) Option { return func(c *Client) { c.delays = d } }

func WithOnUpdate(fn func(Snapshot)) Option { return func(c *Client) { c.onUpdate = fn } }

// New builds the client and starts its dispatch loop.
func New(parent context.Context, send Sender, log *zap.Logger, opts ...Option) *Client {
	ctx, cancel := context.WithCancel(parent)
	sess := session.New()
	c := &Client{
		inbox:   make(chan Msg, 64),
		send:    send,
		sess:    sess,
		model:   view.New(sess, log),
		screens: screen.NewController(log),
		log:     log,
		delays:  DefaultDelays(),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.loop()
	return c
}

// Inbox is where the channel pump, the input reader, and timers post.
func (c *Client) Inbox() chan<- Msg { return c.inbox }

func (c *Client) loop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case m := <-c.inbox:
			switch msg := m.(type) {
			case ServerEvent:
				c.handleServerEvent(msg.Env)
			case TransportLost:
				c.reset()
				c.model.Journal("Disconnected from server")
			case CreateGame:
				c.handleCreateGame(msg)
			case JoinGame:
				c.handleJoinGame(msg)
			case StartGame:
				c.handleStartGame()
			case TakeAction:
				c.handleTakeAction(msg)
			case NextRoundDecision:
				c.handleNextRoundDecision(msg)
			case promptNextRound:
				if c.model.Pending() != nil {
					c.prompt = true
				}
			case resetToLobby:
				c.reset()
			case GetView:
				msg.Reply <- c.snapshot()
			case Shutdown:
				c.cancel()
				return
			}
			if c.onUpdate != nil {
				c.onUpdate(c.snapshot())
			}
		}
	}
}

func (c *Client) snapshot() Snapshot {
	return Snapshot{
		Screen:          c.screens.Current(),
		GameCode:        c.sess.GameID(),
		PlayersJoined:   c.playersJoined,
		PlayersNeeded:   c.playersNeeded,
		PromptNextRound: c.prompt,
		View:            c.model.Derive(),
	}
}

// Snapshot answers over the inbox so reads never race the loop.
func (c *Client) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	select {
	case c.inbox <- GetView{Reply: reply}:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-c.ctx.Done():
		return Snapshot{}, c.ctx.Err()
	}
	select {
	case snap := <-reply:
		return snap, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// reset is the full back-to-Lobby path: the only backward screen edge.
func (c *Client) reset() {
	c.sess.Clear()
	c.model.Reset()
	c.screens.Reset()
	c.pendingName = ""
	c.playersJoined = 0
	c.playersNeeded = 0
	c.prompt = false
}

// after posts a message into the inbox once d elapses. Going through the
// inbox keeps timer effects single-threaded with everything else.
func (c *Client) after(d time.Duration, m Msg) {
	time.AfterFunc(d, func() {
		select {
		case c.inbox <- m:
		case <-c.ctx.Done():
		}
	})
}

func (c *Client) emit(event string, payload any) {
	if err := c.send.Send(c.ctx, event, payload); err != nil {
		c.log.Warn("send failed", zap.String("event", event), zap.Error(err))
		c.model.Journal("Failed to send " + event)
	}
}
