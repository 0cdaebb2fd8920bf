package client

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/torafjell/holdem-client/internal/protocol"
	"github.com/torafjell/holdem-client/internal/screen"
)

// decode unmarshals an envelope payload, logging and refusing malformed
// ones. A bad payload skips the event; it never halts the client.
func (c *Client) decode(env protocol.Envelope, v any) bool {
	if err := json.Unmarshal(env.Data, v); err != nil {
		c.log.Warn("skipping malformed payload", zap.String("event", env.Event), zap.Error(err))
		return false
	}
	return true
}

func (c *Client) handleServerEvent(env protocol.Envelope) {
	switch env.Event {

	case protocol.EvtConnected:
		var p protocol.Connected
		if !c.decode(env, &p) {
			return
		}
		// Diagnostic only; the token carries no game semantics.
		c.log.Info("connected", zap.String("sid", p.SID))
		c.model.Journal("Connected to server")

	case protocol.EvtGameCreated:
		var p protocol.GameCreated
		if !c.decode(env, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			c.log.Warn("skipping game_created", zap.Error(err))
			return
		}
		c.sess.Begin(c.pendingName, p.GameID)
		c.screens.To(screen.Waiting)
		if p.Message != "" {
			c.model.Journal(p.Message)
		}

	case protocol.EvtJoinedGame:
		var p protocol.JoinedGame
		if !c.decode(env, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			c.log.Warn("skipping joined_game", zap.Error(err))
			return
		}
		// joined_game is broadcast to the whole room; only adopt the
		// identity if this client has none yet.
		if !c.sess.Active() {
			c.sess.Begin(c.pendingName, p.GameID)
		}
		c.playersJoined = p.PlayersJoined
		c.playersNeeded = p.PlayersNeeded
		c.screens.To(screen.Waiting)
		if p.Message != "" {
			c.model.Journal(p.Message)
		}

	case protocol.EvtRoundStarted:
		var ts protocol.TableState
		if !c.decode(env, &ts) {
			return
		}
		c.screens.To(screen.InGame)
		c.model.ApplySnapshot(ts)
		c.model.Journal(fmt.Sprintf("Round %d started!", ts.Round))

	case protocol.EvtGameState:
		var ts protocol.TableState
		if !c.decode(env, &ts) {
			return
		}
		c.model.ApplySnapshot(ts)

	case protocol.EvtRequestAction:
		var p protocol.RequestAction
		if !c.decode(env, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			c.log.Warn("skipping request_action", zap.Error(err))
			return
		}
		c.model.ApplyActionOffer(p.PlayerName, p.AvailableActions)
		if c.model.IsLocalActor(p.PlayerName) {
			c.model.Journal("Your turn!")
		} else {
			c.model.Journal("Waiting for " + p.PlayerName + "...")
		}

	case protocol.EvtActionTaken:
		var p protocol.ActionTaken
		if !c.decode(env, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			c.log.Warn("skipping action_taken", zap.Error(err))
			return
		}
		c.model.ApplyActionTaken(p.Player, p.Action, p.Chips)

	case protocol.EvtCardsDealt:
		var p protocol.CardsDealt
		if !c.decode(env, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			c.log.Warn("skipping cards_dealt", zap.Error(err))
			return
		}
		c.model.ApplyCardsRevealed(p.Cards, p.Message)

	case protocol.EvtRoundEnded:
		var p protocol.RoundEnded
		if !c.decode(env, &p) {
			return
		}
		if err := p.Validate(); err != nil {
			c.log.Warn("skipping round_ended", zap.Error(err))
			return
		}
		c.model.ApplyRoundEnded(p.Winner, p.ChipsWon, p.GameState)
		c.after(c.delays.NextRoundPrompt, promptNextRound{})

	case protocol.EvtGameOver:
		var p protocol.GameOver
		if !c.decode(env, &p) {
			return
		}
		c.model.Journal(fmt.Sprintf("Game Over! %s wins!", p.Winner))
		c.after(c.delays.GameOverReset, resetToLobby{})

	case protocol.EvtError:
		var p protocol.ErrorMessage
		if !c.decode(env, &p) {
			return
		}
		// Surfaced verbatim, never a state transition.
		c.log.Warn("server error", zap.String("message", p.Message))
		c.model.Journal("Error: " + p.Message)

	default:
		c.log.Debug("ignoring unknown event", zap.String("event", env.Event))
	}
}

func (c *Client) handleCreateGame(msg CreateGame) {
	if msg.PlayerName == "" {
		c.model.Journal("Please enter your name")
		return
	}
	if msg.HumanCount > msg.PlayerCount {
		c.model.Journal("Human players cannot exceed total players")
		return
	}
	c.pendingName = msg.PlayerName
	c.emit(protocol.EvtCreateGame, protocol.CreateGame{
		PlayerName:     msg.PlayerName,
		PlayerCount:    msg.PlayerCount,
		HumanCount:     msg.HumanCount,
		ChipsPerPlayer: msg.ChipsPerPlayer,
		BetLimit:       msg.BetLimit,
	})
}

func (c *Client) handleJoinGame(msg JoinGame) {
	if msg.PlayerName == "" || msg.GameCode == "" {
		c.model.Journal("Please enter your name and game code")
		return
	}
	c.pendingName = msg.PlayerName
	c.emit(protocol.EvtJoinGame, protocol.JoinGame{
		GameID:     msg.GameCode,
		PlayerName: msg.PlayerName,
	})
}

func (c *Client) handleStartGame() {
	if !c.sess.Active() {
		c.model.Journal("Not in a game")
		return
	}
	c.emit(protocol.EvtStartGame, protocol.StartGame{GameID: c.sess.GameID()})
}

func (c *Client) handleTakeAction(msg TakeAction) {
	token, ok := c.model.OfferedToken(msg.Kind, msg.Amount)
	if !ok {
		c.model.Journal("That action is not available")
		return
	}
	c.emit(protocol.EvtPlayerAction, protocol.PlayerAction{
		GameID: c.sess.GameID(),
		Action: token,
	})
	// Controls disappear the moment the intent is submitted.
	c.model.HideControls()
}

func (c *Client) handleNextRoundDecision(msg NextRoundDecision) {
	if c.model.Pending() == nil {
		c.model.Journal("No round decision pending")
		return
	}
	if msg.Accept {
		c.emit(protocol.EvtNextRound, protocol.NextRound{GameID: c.sess.GameID()})
	} else {
		c.model.Journal("Staying at the table")
	}
	c.model.ClearPending()
	c.prompt = false
}
