package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

// HistoryRepository keeps one record per finished game and player.
type HistoryRepository interface {
	Save(ctx context.Context, match *entity.Match) (bool, error)
	Find(ctx context.Context, gameID, playerName string) (*entity.Match, error)
	List(ctx context.Context, playerName string, limit int) ([]entity.Match, error)
}

type historyRepository struct {
	conn *sql.DB
}

func NewHistoryRepository(conn *sql.DB) HistoryRepository {
	return &historyRepository{
		conn: conn,
	}
}

// Save stores the match unless it is already recorded. It reports whether a row was written.
func (that *historyRepository) Save(ctx context.Context, match *entity.Match) (bool, error) {
	query := `INSERT OR IGNORE INTO matches (game_id, player_name, opponent, winner, bricks, free_play, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := that.conn.ExecContext(ctx, query,
		match.GameID, match.PlayerName, match.Opponent, match.Winner, match.Bricks, match.FreePlay, match.FinishedAt.UnixMilli())
	if err != nil {
		return false, fmt.Errorf("can't save match: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("can't save match: %w", err)
	}

	return rows > 0, nil
}

func (that *historyRepository) Find(ctx context.Context, gameID, playerName string) (*entity.Match, error) {
	query := `SELECT game_id, player_name, opponent, winner, bricks, free_play, finished_at
		FROM matches WHERE game_id = ? AND player_name = ?`

	match, err := scanMatch(that.conn.QueryRowContext(ctx, query, gameID, playerName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't find match: %w", err)
	}

	return match, nil
}

// List returns the most recent matches of a player first.
func (that *historyRepository) List(ctx context.Context, playerName string, limit int) ([]entity.Match, error) {
	query := `SELECT game_id, player_name, opponent, winner, bricks, free_play, finished_at
		FROM matches WHERE player_name = ? ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, playerName, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}
	defer rows.Close()

	var matches []entity.Match

	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("can't list matches: %w", err)
		}

		matches = append(matches, *match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}

	return matches, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (*entity.Match, error) {
	var (
		match      entity.Match
		finishedAt int64
	)

	err := row.Scan(&match.GameID, &match.PlayerName, &match.Opponent, &match.Winner, &match.Bricks, &match.FreePlay, &finishedAt)
	if err != nil {
		return nil, err
	}

	match.FinishedAt = time.UnixMilli(finishedAt).UTC()

	return &match, nil
}
