package apperror

import "errors"

var (
	ErrGameOver       = errors.New("game is over")
	ErrGameNotStarted = errors.New("game is not started")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrNoSelection    = errors.New("no move selected")
	ErrSubmitInFlight = errors.New("move is already being submitted")
	ErrInvalidMove    = errors.New("invalid move")
	ErrGameNotFound   = errors.New("game not found")
	ErrCannotJoin     = errors.New("cannot join game")
	ErrCannotStart    = errors.New("cannot start game")
	ErrInvalidName    = errors.New("invalid player name")
	ErrNotFound       = errors.New("not found")
	ErrMalformedState = errors.New("malformed game state")

	ErrLoadFailed  = errors.New("failed to load game state")
	ErrStartFailed = errors.New("failed to start game")
	ErrMoveFailed  = errors.New("failed to make move")
)

var messages = []struct {
	err  error
	text string
}{
	{ErrGameOver, "Game is over"},
	{ErrGameNotStarted, "Game has not started"},
	{ErrNotYourTurn, "Not your turn"},
	{ErrNoSelection, "No move selected"},
	{ErrSubmitInFlight, "Move already submitted"},
	{ErrInvalidMove, "Invalid move"},
	{ErrLoadFailed, "Failed to load game state"},
	{ErrStartFailed, "Failed to start game"},
	{ErrMoveFailed, "Failed to make move"},
	{ErrGameNotFound, "Game not found"},
	{ErrCannotJoin, "Cannot join game"},
}

// Message returns the text shown to the player for err. Unknown errors yield a generic text.
func Message(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}

	return "Something went wrong"
}
