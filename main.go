package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/connect5-client/internal"
	"github.com/rocketscienceinc/connect5-client/internal/config"
)

const usage = `usage: connect5 <command> [flags]

commands:
  list                         list games waiting for players
  create  -name NAME           host a new game
  join    -name NAME -game ID  join a game
  free    -name NAME           start a free play game
  resume  -name NAME           reopen the last game of NAME
  history -name NAME [-limit N] show finished games
  replay  -game ID [-name NAME] print the journal of a game
`

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, usage)

		if errors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(2)
	}

	conf := initConfig()
	logger, closeLog := initLogger(conf, cmd.Interactive())
	defer closeLog()

	if err = app.RunApp(logger, conf, cmd, os.Stdout); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// parseCommand reads the subcommand and its flags.
func parseCommand(args []string) (app.Command, error) {
	if len(args) == 0 {
		return app.Command{}, flag.ErrHelp
	}

	cmd := app.Command{Name: args[0]}

	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cmd.PlayerName, "name", os.Getenv("CONNECT5_PLAYER"), "player name")
	fs.StringVar(&cmd.GameID, "game", "", "game id")
	fs.IntVar(&cmd.Limit, "limit", 20, "number of matches to show")

	if err := fs.Parse(args[1:]); err != nil {
		return app.Command{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	switch cmd.Name {
	case app.CommandList, app.CommandCreate, app.CommandFree, app.CommandResume, app.CommandHistory:
	case app.CommandJoin, app.CommandReplay:
		if cmd.GameID == "" && fs.NArg() > 0 {
			cmd.GameID = fs.Arg(0)
		}
	default:
		return app.Command{}, fmt.Errorf("%w: %q", app.ErrUnknownCommand, cmd.Name)
	}

	return cmd, nil
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. The game view owns the terminal, so it logs to the log file instead of stdout.
func initLogger(conf *config.Config, interactive bool) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)

	if interactive {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeFn = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeFn
}
