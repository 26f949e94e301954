package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/logging"
	"taskboard/internal/repository/sqlite"
	"taskboard/internal/session"
)

type testApp struct {
	app    *App
	api    *mockAPI
	stdout *bytes.Buffer
}

func setupTestApp(t *testing.T, remote *mockAPI) *testApp {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	log := logging.New(false)
	sessions := session.NewStore(repo)
	taskBoard := board.New(remote, repo, log)

	app := NewApp(remote, sessions, taskBoard, config.NewConfig(), log)
	stdout := &bytes.Buffer{}
	app.SetIO(strings.NewReader(""), stdout)

	return &testApp{app: app, api: remote, stdout: stdout}
}

func (ta *testApp) signIn(t *testing.T) {
	t.Helper()
	user := domain.User{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"}
	require.NoError(t, ta.app.sessions.SaveLogin(user, "test-token"))
}

func (ta *testApp) setInput(input string) {
	ta.app.stdin = strings.NewReader(input)
}

func task(id, title string, status domain.Status) *domain.Task {
	return &domain.Task{
		ID:       id,
		Title:    title,
		Status:   status,
		Priority: domain.PriorityLow,
	}
}
