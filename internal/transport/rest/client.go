// Package rest is the pull channel: request/response calls against the game server's JSON API.
package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/protocol"
)

const (
	headerClientID  = "X-Client-ID"
	headerRequestID = "X-Request-ID"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// CreatedGame is the answer to creating a game.
type CreatedGame struct {
	GameID  string `json:"game_id"`
	Host    string `json:"host"`
	Message string `json:"message"`
}

// JoinedGame is the answer to joining a game.
type JoinedGame struct {
	GameID  string   `json:"game_id"`
	Players []string `json:"players"`
	Message string   `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	logger *slog.Logger
	http   *resty.Client
}

func NewClient(logger *slog.Logger, baseURL string, timeout time.Duration, clientID string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader(headerClientID, clientID)

	return &Client{
		logger: logger.With("component", "rest"),
		http:   httpClient,
	}
}

func (that *Client) request(ctx context.Context) *resty.Request {
	return that.http.R().
		SetContext(ctx).
		SetHeader(headerRequestID, uuid.NewString()).
		SetError(&errorResponse{})
}

// ListGames returns the games waiting for players.
func (that *Client) ListGames(ctx context.Context) ([]entity.AvailableGame, error) {
	var games []entity.AvailableGame

	resp, err := that.request(ctx).SetResult(&games).Get("/games")
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	if err = checkStatus(resp, nil); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

// CreateGame creates a two player game hosted by hostName.
func (that *Client) CreateGame(ctx context.Context, hostName string) (*CreatedGame, error) {
	var created CreatedGame

	resp, err := that.request(ctx).
		SetBody(map[string]string{"host_name": hostName}).
		SetResult(&created).
		Post("/games")
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = checkStatus(resp, apperror.ErrInvalidName); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &created, nil
}

// CreateFreePlay creates a single player game that starts right away.
func (that *Client) CreateFreePlay(ctx context.Context, playerName string) (*CreatedGame, error) {
	var created CreatedGame

	resp, err := that.request(ctx).
		SetBody(map[string]string{"player_name": playerName}).
		SetResult(&created).
		Post("/games/free-play")
	if err != nil {
		return nil, fmt.Errorf("failed to create free play game: %w", err)
	}

	if err = checkStatus(resp, apperror.ErrInvalidName); err != nil {
		return nil, fmt.Errorf("failed to create free play game: %w", err)
	}

	return &created, nil
}

func (that *Client) JoinGame(ctx context.Context, gameID, playerName string) (*JoinedGame, error) {
	var joined JoinedGame

	resp, err := that.request(ctx).
		SetPathParam("id", gameID).
		SetBody(map[string]string{"player_name": playerName}).
		SetResult(&joined).
		Post("/games/{id}/join")
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	if err = checkStatus(resp, apperror.ErrCannotJoin); err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	return &joined, nil
}

// GetState fetches the full snapshot of a game.
func (that *Client) GetState(ctx context.Context, gameID string) (*entity.GameState, error) {
	resp, err := that.request(ctx).SetPathParam("id", gameID).Get("/games/{id}")
	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	return that.snapshot(resp, nil)
}

func (that *Client) StartGame(ctx context.Context, gameID string) (*entity.GameState, error) {
	resp, err := that.request(ctx).SetPathParam("id", gameID).Post("/games/{id}/start")
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return that.snapshot(resp, apperror.ErrCannotStart)
}

// MakeMove submits a move. A rejection by the server wraps apperror.ErrInvalidMove.
func (that *Client) MakeMove(ctx context.Context, gameID, playerName string, move entity.Move) (*entity.GameState, error) {
	body := map[string]any{
		"player_name": playerName,
		"line":        move.Line,
		"height":      move.Height,
		"orientation": string(move.Orientation),
	}

	resp, err := that.request(ctx).
		SetPathParam("id", gameID).
		SetBody(body).
		Post("/games/{id}/move")
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	return that.snapshot(resp, apperror.ErrInvalidMove)
}

// Health returns the server's reported status.
func (that *Client) Health(ctx context.Context) (string, error) {
	var health struct {
		Status string `json:"status"`
	}

	resp, err := that.request(ctx).SetResult(&health).Get("/health")
	if err != nil {
		return "", fmt.Errorf("failed to check health: %w", err)
	}

	if err = checkStatus(resp, nil); err != nil {
		return "", fmt.Errorf("failed to check health: %w", err)
	}

	return health.Status, nil
}

func (that *Client) snapshot(resp *resty.Response, badRequest error) (*entity.GameState, error) {
	if err := checkStatus(resp, badRequest); err != nil {
		return nil, err
	}

	state, err := protocol.DecodeSnapshot(resp.Body())
	if err != nil {
		that.logger.Error("server sent a malformed snapshot", "url", resp.Request.URL, "error", err)
		return nil, err
	}

	return state, nil
}

// checkStatus maps error statuses to sentinel errors. badRequest is used for 400 answers.
func checkStatus(resp *resty.Response, badRequest error) error {
	if !resp.IsError() {
		return nil
	}

	message := resp.Status()
	if body, ok := resp.Error().(*errorResponse); ok && body.Error != "" {
		message = body.Error
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, message)
	case resp.StatusCode() == http.StatusBadRequest && badRequest != nil:
		return fmt.Errorf("%w: %s", badRequest, message)
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
	}
}
