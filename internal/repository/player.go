package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository remembers which game each local player is in, keyed by player name.
type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByName(ctx context.Context, name string) (*entity.Session, error)
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	playerJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	playerKey := "player:" + session.PlayerName
	err = that.client.Set(ctx, playerKey, playerJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByName(ctx context.Context, name string) (*entity.Session, error) {
	playerKey := "player:" + name

	response, err := that.client.Get(ctx, playerKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by name: %w", err)
	}

	var session entity.Session
	if err = json.Unmarshal([]byte(response), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &session, nil
}
