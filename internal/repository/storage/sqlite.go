package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS matches (
		game_id     TEXT    NOT NULL,
		player_name TEXT    NOT NULL,
		opponent    TEXT    NOT NULL DEFAULT '',
		winner      TEXT    NOT NULL DEFAULT '',
		bricks      INTEGER NOT NULL DEFAULT 0,
		free_play   INTEGER NOT NULL DEFAULT 0,
		finished_at INTEGER NOT NULL,
		PRIMARY KEY (game_id, player_name)
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
