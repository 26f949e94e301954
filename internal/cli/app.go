package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"taskboard/internal/api"
	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/session"
)

// App represents the CLI application and its injected collaborators
type App struct {
	api      api.API
	sessions *session.Store
	board    *board.Board
	config   *config.Config
	log      *logrus.Logger

	stdin  io.Reader
	stdout io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(remote api.API, sessions *session.Store, taskBoard *board.Board, cfg *config.Config, log *logrus.Logger) *App {
	return &App{
		api:      remote,
		sessions: sessions,
		board:    taskBoard,
		config:   cfg,
		log:      log,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}
}

// SetIO overrides the input and output streams, used in tests
func (a *App) SetIO(stdin io.Reader, stdout io.Writer) {
	a.stdin = stdin
	a.stdout = stdout
}
