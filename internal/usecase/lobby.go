package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/transport/rest"
)

const maxNameLength = 32

var ErrHistoryDisabled = errors.New("match history is not configured")

type lobbyAPI interface {
	ListGames(ctx context.Context) ([]entity.AvailableGame, error)
	CreateGame(ctx context.Context, hostName string) (*rest.CreatedGame, error)
	CreateFreePlay(ctx context.Context, playerName string) (*rest.CreatedGame, error)
	JoinGame(ctx context.Context, gameID, playerName string) (*rest.JoinedGame, error)
	GetState(ctx context.Context, gameID string) (*entity.GameState, error)
}

type sessionStore interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByName(ctx context.Context, name string) (*entity.Session, error)
}

type snapshotEvictor interface {
	DeleteByID(ctx context.Context, id string) error
}

type historyReader interface {
	List(ctx context.Context, playerName string, limit int) ([]entity.Match, error)
}

// Lobby covers everything before the game view opens. Sessions, snapshots and history are optional.
type Lobby struct {
	logger    *slog.Logger
	api       lobbyAPI
	sessions  sessionStore
	snapshots snapshotEvictor
	history   historyReader
}

func NewLobby(
	logger *slog.Logger,
	api lobbyAPI,
	sessions sessionStore,
	snapshots snapshotEvictor,
	history historyReader,
) *Lobby {
	return &Lobby{
		logger:    logger.With("component", "lobby"),
		api:       api,
		sessions:  sessions,
		snapshots: snapshots,
		history:   history,
	}
}

func (that *Lobby) ListGames(ctx context.Context) ([]entity.AvailableGame, error) {
	games, err := that.api.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

// Create opens a new game hosted by playerName.
func (that *Lobby) Create(ctx context.Context, playerName string) (*entity.Session, error) {
	log := that.logger.With("method", "Create")

	name, err := normalizeName(playerName)
	if err != nil {
		return nil, err
	}

	created, err := that.api.CreateGame(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "game_id", created.GameID, "host", name)

	return that.remember(ctx, &entity.Session{PlayerName: name, GameID: created.GameID, IsHost: true}), nil
}

// FreePlay opens a game where playerName places bricks for both sides.
func (that *Lobby) FreePlay(ctx context.Context, playerName string) (*entity.Session, error) {
	log := that.logger.With("method", "FreePlay")

	name, err := normalizeName(playerName)
	if err != nil {
		return nil, err
	}

	created, err := that.api.CreateFreePlay(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create free play game: %w", err)
	}

	log.Info("free play game created", "game_id", created.GameID)

	return that.remember(ctx, &entity.Session{PlayerName: name, GameID: created.GameID, IsHost: true}), nil
}

func (that *Lobby) Join(ctx context.Context, gameID, playerName string) (*entity.Session, error) {
	log := that.logger.With("method", "Join")

	name, err := normalizeName(playerName)
	if err != nil {
		return nil, err
	}

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, apperror.ErrGameNotFound
	}

	joined, err := that.api.JoinGame(ctx, gameID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	log.Info("joined game", "game_id", joined.GameID, "players", joined.Players)

	return that.remember(ctx, &entity.Session{PlayerName: name, GameID: joined.GameID}), nil
}

// Resume returns the last game playerName entered, provided the server still knows it.
func (that *Lobby) Resume(ctx context.Context, playerName string) (*entity.Session, error) {
	name, err := normalizeName(playerName)
	if err != nil {
		return nil, err
	}

	if that.sessions == nil {
		return nil, fmt.Errorf("failed to resume: %w", apperror.ErrNotFound)
	}

	session, err := that.sessions.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if !session.InGame() {
		return nil, fmt.Errorf("failed to resume: %w", apperror.ErrNotFound)
	}

	if _, err = that.api.GetState(ctx, session.GameID); err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			that.forget(ctx, session.GameID)
		}

		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	return session, nil
}

func (that *Lobby) History(ctx context.Context, playerName string, limit int) ([]entity.Match, error) {
	name, err := normalizeName(playerName)
	if err != nil {
		return nil, err
	}

	if that.history == nil {
		return nil, ErrHistoryDisabled
	}

	matches, err := that.history.List(ctx, name, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return matches, nil
}

// remember stores the session when a store is configured. A failure only costs resume.
func (that *Lobby) remember(ctx context.Context, session *entity.Session) *entity.Session {
	if that.sessions == nil {
		return session
	}

	if err := that.sessions.CreateOrUpdate(ctx, session); err != nil {
		that.logger.Warn("failed to save session", "player", session.PlayerName, "error", err)
	}

	return session
}

// forget drops the cached snapshot of a game the server no longer knows.
func (that *Lobby) forget(ctx context.Context, gameID string) {
	if that.snapshots == nil {
		return
	}

	if err := that.snapshots.DeleteByID(ctx, gameID); err != nil {
		that.logger.Warn("failed to evict cached snapshot", "game_id", gameID, "error", err)
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidName, name)
	}

	return name, nil
}
