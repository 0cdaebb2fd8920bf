// Package channel owns the single websocket connection to the game server.
// It exposes typed send and a stream of decoded envelopes, and nothing else:
// no game logic, no reconnection. When the transport drops, everything built
// on top of it is presumed stale and the caller resets to the lobby.
package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/torafjell/holdem-client/internal/protocol"
)

const (
	writeTimeout = 3 * time.Second
	inboundBuf   = 16
)

type Client struct {
	conn   *websocket.Conn
	log    *zap.Logger
	events chan protocol.Envelope
}

// Dial opens the connection. The returned client is not reading yet; run
// Run on its own goroutine to start the inbound stream.
func Dial(ctx context.Context, url string, log *zap.Logger) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Client{
		conn:   conn,
		log:    log,
		events: make(chan protocol.Envelope, inboundBuf),
	}, nil
}

// Events is the stream of decoded inbound envelopes. Closed when Run
// returns.
func (c *Client) Events() <-chan protocol.Envelope { return c.events }

// Send marshals one named event and writes it. Fire-and-forget: there is no
// delivery confirmation beyond the transport's own guarantees.
func (c *Client) Send(ctx context.Context, event string, payload any) error {
	frame, err := encodeEnvelope(event, payload)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := c.conn.Write(ctx, websocket.MessageText, frame); err != nil {
		return fmt.Errorf("send %s: %w", event, err)
	}
	return nil
}

// Run reads frames until the connection closes or ctx is done. Frames that
// fail to decode are logged and skipped; a malformed event must never halt
// the client.
func (c *Client) Run(ctx context.Context) error {
	defer close(c.events)
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read: %w", err)
		}

		var env protocol.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.log.Warn("skipping undecodable frame", zap.Error(err))
			continue
		}
		if env.Event == "" {
			c.log.Warn("skipping frame without event name")
			continue
		}

		select {
		case c.events <- env:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "bye")
}

func encodeEnvelope(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", event, err)
	}
	return json.Marshal(protocol.Envelope{Event: event, Data: data})
}
