package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/config"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
	"github.com/rocketscienceinc/connect5-client/internal/journal"
	"github.com/rocketscienceinc/connect5-client/internal/reconciler"
	"github.com/rocketscienceinc/connect5-client/internal/repository"
	"github.com/rocketscienceinc/connect5-client/internal/repository/storage"
	"github.com/rocketscienceinc/connect5-client/internal/terminal"
	"github.com/rocketscienceinc/connect5-client/internal/transport/rest"
	"github.com/rocketscienceinc/connect5-client/internal/transport/websocket"
	"github.com/rocketscienceinc/connect5-client/internal/usecase"
)

const (
	CommandList    = "list"
	CommandCreate  = "create"
	CommandJoin    = "join"
	CommandFree    = "free"
	CommandResume  = "resume"
	CommandHistory = "history"
	CommandReplay  = "replay"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrJournalDisabled = errors.New("journal is not configured")
)

// Command is one parsed invocation of the client.
type Command struct {
	Name       string
	PlayerName string
	GameID     string
	Limit      int
}

// Interactive reports whether the command opens the game view.
func (that Command) Interactive() bool {
	switch that.Name {
	case CommandCreate, CommandJoin, CommandFree, CommandResume:
		return true
	default:
		return false
	}
}

type app struct {
	logger   *slog.Logger
	conf     *config.Config
	clientID string
	api      *rest.Client
	redis    *storage.RedisStorage
	sqlite   *storage.Storage
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, cmd Command, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	a, err := newApp(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer a.close()

	lobby := usecase.NewLobby(logger, a.api, a.sessions(), a.snapshots(), a.history())

	switch cmd.Name {
	case CommandList:
		games, err := lobby.ListGames(ctx)
		if err != nil {
			return err
		}

		printGames(out, games)

		return nil
	case CommandHistory:
		matches, err := lobby.History(ctx, cmd.PlayerName, cmd.Limit)
		if err != nil {
			return err
		}

		printMatches(out, matches)

		return nil
	case CommandReplay:
		return a.replay(ctx, cmd, out)
	}

	var session *entity.Session

	switch cmd.Name {
	case CommandCreate:
		session, err = lobby.Create(ctx, cmd.PlayerName)
	case CommandFree:
		session, err = lobby.FreePlay(ctx, cmd.PlayerName)
	case CommandJoin:
		session, err = lobby.Join(ctx, cmd.GameID, cmd.PlayerName)
	case CommandResume:
		session, err = lobby.Resume(ctx, cmd.PlayerName)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}

	if err != nil {
		return err
	}

	return a.play(ctx, session)
}

func newApp(ctx context.Context, logger *slog.Logger, conf *config.Config) (*app, error) {
	log := logger.With("component", "app", "method", "newApp")

	a := &app{
		logger:   logger,
		conf:     conf,
		clientID: uuid.NewString(),
	}

	a.api = rest.NewClient(logger, conf.Server.APIURL, conf.Server.RequestTimeout, a.clientID)

	if status, err := a.api.Health(ctx); err != nil {
		log.Warn("server is not reachable", "url", conf.Server.APIURL, "error", err)
	} else {
		log.Info("server is reachable", "url", conf.Server.APIURL, "status", status)
	}

	if conf.Redis.Enabled() {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		a.redis = redisStorage
	}

	if conf.SQLiteStoragePath != "" {
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		a.sqlite = sqliteStorage

		if err = sqliteStorage.Init(ctx); err != nil {
			a.close()
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}
	}

	return a, nil
}

func (that *app) close() {
	if that.redis != nil {
		if err := that.redis.Close(); err != nil {
			that.logger.Error("could not close redis storage", "error", err)
		}
	}

	if that.sqlite != nil {
		if err := that.sqlite.Close(); err != nil {
			that.logger.Error("could not close sqlite storage", "error", err)
		}
	}
}

// sessions returns nil without redis so the lobby sees an unset store.
func (that *app) sessions() repository.PlayerRepository {
	if that.redis == nil {
		return nil
	}

	return repository.NewPlayerRepository(that.redis.Connection)
}

func (that *app) snapshots() repository.GameRepository {
	if that.redis == nil {
		return nil
	}

	return repository.NewGameRepository(that.redis.Connection)
}

func (that *app) history() repository.HistoryRepository {
	if that.sqlite == nil {
		return nil
	}

	return repository.NewHistoryRepository(that.sqlite.Connection)
}

func (that *app) play(ctx context.Context, session *entity.Session) error {
	log := that.logger.With("component", "app", "method", "play", "game_id", session.GameID)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}

	term := terminal.New(that.logger, screen)
	if err = term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	deps := usecase.ViewDeps{API: that.api, Display: term}

	if that.conf.Push.Enabled {
		deps.Push = websocket.NewClient(that.logger, that.conf.Server.WSURL, that.conf.Push, that.clientID)
	}

	if that.redis != nil {
		deps.Cache = that.snapshots()
	}

	if that.sqlite != nil {
		deps.History = repository.NewHistoryRepository(that.sqlite.Connection)
	}

	if that.conf.Journal.Dir != "" {
		writer, err := journal.Open(that.conf.Journal.Dir, session.GameID)
		if err != nil {
			log.Warn("journal disabled", "error", err)
		} else {
			log.Info("journaling updates", "path", writer.Path())
			deps.Journal = writer
		}
	}

	view := usecase.NewGameView(that.logger, usecase.ViewConfig{
		GameID:         session.GameID,
		PlayerName:     session.PlayerName,
		IsHost:         session.IsHost,
		PollInterval:   that.conf.View.PollInterval,
		AutoStartDelay: that.conf.View.AutoStartDelay,
		SceneInitDelay: that.conf.View.SceneInitDelay,
		FrameInterval:  that.conf.View.FrameInterval(),
		NotifyMoves:    that.conf.Push.NotifyMoves,
		SnapshotDir:    that.conf.View.SnapshotDir,
		Camera:         that.conf.Camera,
	}, deps)

	go term.Poll(view.Input)

	log.Info("entering game view", "player", session.PlayerName, "host", session.IsHost)

	if err = view.Run(ctx); err != nil {
		return fmt.Errorf("game view failed: %w", err)
	}

	return nil
}

// replay prints the journal of a game and, when history is kept, how it ended for the player.
func (that *app) replay(ctx context.Context, cmd Command, out io.Writer) error {
	if that.conf.Journal.Dir == "" {
		return ErrJournalDisabled
	}

	if cmd.GameID == "" {
		return apperror.ErrGameNotFound
	}

	updates, err := journal.Read(journal.PathFor(that.conf.Journal.Dir, cmd.GameID))
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	printUpdates(out, updates)

	if that.sqlite == nil || cmd.PlayerName == "" {
		return nil
	}

	match, err := that.history().Find(ctx, cmd.GameID, cmd.PlayerName)
	if errors.Is(err, apperror.ErrNotFound) {
		fmt.Fprintln(out, "no finished match recorded")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to find match: %w", err)
	}

	printMatches(out, []entity.Match{*match})

	return nil
}

func printUpdates(out io.Writer, updates []reconciler.Update) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Seq", "Source", "Event", "Received", "Started", "Occupied", "Turn"})
	table.SetBorder(false)

	for _, update := range updates {
		started, occupied, turn := "-", "-", "-"

		if state := update.State; state != nil {
			started = strconv.FormatBool(state.Started)
			occupied = strconv.Itoa(state.OccupiedCount())

			if state.CurrentPlayer != "" {
				turn = state.CurrentPlayer
			}
		}

		table.Append([]string{
			strconv.FormatUint(update.Seq, 10),
			string(update.Source),
			update.Event,
			humanize.Time(update.ReceivedAt),
			started,
			occupied,
			turn,
		})
	}

	table.Render()
}

func printGames(out io.Writer, games []entity.AvailableGame) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Game", "Host", "Players", "Created"})
	table.SetBorder(false)

	for _, game := range games {
		created := "-"
		if !game.CreatedAt.IsZero() {
			created = humanize.Time(game.CreatedAt.Time)
		}

		table.Append([]string{game.ID, game.Host, fmt.Sprintf("%d/2", game.PlayersCount), created})
	}

	table.Render()
}

func printMatches(out io.Writer, matches []entity.Match) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Game", "Opponent", "Result", "Bricks", "Finished"})
	table.SetBorder(false)

	for _, match := range matches {
		result := "lost"

		switch {
		case match.FreePlay:
			result = "free play"
		case match.Won():
			result = "won"
		case match.Winner == "":
			result = "draw"
		}

		opponent := match.Opponent
		if opponent == "" {
			opponent = "-"
		}

		table.Append([]string{match.GameID, opponent, result, strconv.Itoa(match.Bricks), humanize.Time(match.FinishedAt)})
	}

	table.Render()
}
