// Package websocket is the push channel: a websocket subscription to one game room that
// reconnects with exponential backoff.
package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/connect5-client/internal/config"
	"github.com/rocketscienceinc/connect5-client/internal/protocol"
)

const (
	handshakeTimeout = 5 * time.Second
	writeTimeout     = 5 * time.Second
)

var ErrNotConnected = errors.New("push channel is not connected")

// Status is reported on every connect and disconnect.
type Status struct {
	Connected bool
	Attempt   int
	Err       error
}

type Client struct {
	logger *slog.Logger
	url    string
	cfg    config.Push
	dialer websocket.Dialer
	header http.Header

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewClient(logger *slog.Logger, url string, cfg config.Push, clientID string) *Client {
	header := http.Header{}
	header.Set("X-Client-ID", clientID)

	return &Client{
		logger: logger.With("component", "push"),
		url:    url,
		cfg:    cfg,
		dialer: websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		header: header,
	}
}

// Run keeps a connection to the room open until ctx is done. Every connection starts by joining
// the room. It returns nil when ctx is cancelled and an error once reconnect attempts run out.
func (that *Client) Run(ctx context.Context, room protocol.JoinRoomPayload, onMessage func(*protocol.Message), onStatus func(Status)) error {
	log := that.logger.With("method", "Run", "game_id", room.GameID)

	stop := context.AfterFunc(ctx, that.closeConn)
	defer stop()

	for {
		conn, err := that.connect(ctx, onStatus)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to connect push channel: %w", err)
		}

		if err = that.Send(protocol.ActionJoinGameRoom, room); err != nil {
			log.Warn("failed to join room", "error", err)
		}

		onStatus(Status{Connected: true})
		log.Info("push channel connected")

		err = that.readLoop(conn, onMessage)
		that.closeConn()

		if ctx.Err() != nil {
			log.Info("push channel closed")
			return nil
		}

		log.Warn("push channel lost", "error", err)
		onStatus(Status{Connected: false, Err: err})
	}
}

// Send writes one envelope on the current connection.
func (that *Client) Send(action string, payload any) error {
	data, err := protocol.EncodeMessage(action, payload)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.conn == nil {
		return ErrNotConnected
	}

	_ = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout))

	if err = that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to send %s: %w", action, err)
	}

	return nil
}

func (that *Client) connect(ctx context.Context, onStatus func(Status)) (*websocket.Conn, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = that.cfg.ReconnectDelay
	policy.MaxInterval = that.cfg.ReconnectDelayMax
	policy.MaxElapsedTime = 0

	attempt := 0

	var conn *websocket.Conn

	operation := func() error {
		attempt++

		c, resp, err := that.dialer.DialContext(ctx, that.url, that.header)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}

		if err != nil {
			return err
		}

		conn = c

		return nil
	}

	notify := func(err error, wait time.Duration) {
		that.logger.Debug("push channel retry", "attempt", attempt, "wait", wait, "error", err)
		onStatus(Status{Connected: false, Attempt: attempt, Err: err})
	}

	retry := backoff.WithContext(backoff.WithMaxRetries(policy, that.cfg.ReconnectAttempts), ctx)
	if err := backoff.RetryNotify(operation, retry, notify); err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if ctx.Err() != nil {
		_ = conn.Close()
		return nil, ctx.Err()
	}

	that.conn = conn

	return conn, nil
}

func (that *Client) readLoop(conn *websocket.Conn, onMessage func(*protocol.Message)) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		msg, err := protocol.DecodeMessage(data)
		if err != nil {
			that.logger.Warn("dropping push message", "error", err)
			continue
		}

		onMessage(msg)
	}
}

func (that *Client) closeConn() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.conn != nil {
		_ = that.conn.Close()
		that.conn = nil
	}
}
