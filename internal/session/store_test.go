package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository/sqlite"
)

func newTestRepo(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testUser() domain.User {
	return domain.User{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"}
}

func TestStore_SaveLogin(t *testing.T) {
	t.Run("stores and exposes the session", func(t *testing.T) {
		store := NewStore(newTestRepo(t))

		require.NoError(t, store.SaveLogin(testUser(), "token-1"))

		current := store.Current()
		require.NotNil(t, current)
		assert.Equal(t, "token-1", current.Token)
		assert.Equal(t, "ada@example.com", current.User.Email)
		assert.Equal(t, "token-1", store.Token())
	})

	t.Run("rejects an empty token", func(t *testing.T) {
		store := NewStore(newTestRepo(t))

		err := store.SaveLogin(testUser(), "")

		require.Error(t, err)
		assert.Nil(t, store.Current())
	})

	t.Run("a new login replaces the previous session", func(t *testing.T) {
		store := NewStore(newTestRepo(t))
		require.NoError(t, store.SaveLogin(testUser(), "token-1"))

		other := domain.User{ID: "u2", FullName: "Grace Hopper", Email: "grace@example.com"}
		require.NoError(t, store.SaveLogin(other, "token-2"))

		current := store.Current()
		require.NotNil(t, current)
		assert.Equal(t, "token-2", current.Token)
		assert.Equal(t, "grace@example.com", current.User.Email)
	})
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	repo := newTestRepo(t)

	first := NewStore(repo)
	require.NoError(t, first.SaveLogin(testUser(), "token-1"))

	// A new store over the same local state sees the session, the CLI
	// equivalent of staying signed in across invocations
	second := NewStore(repo)
	current := second.Current()
	require.NotNil(t, current)
	assert.Equal(t, "token-1", current.Token)
	assert.Equal(t, "u1", current.User.ID)
}

func TestStore_Clear(t *testing.T) {
	t.Run("removes the stored session", func(t *testing.T) {
		repo := newTestRepo(t)
		store := NewStore(repo)
		require.NoError(t, store.SaveLogin(testUser(), "token-1"))

		require.NoError(t, store.Clear())

		assert.Nil(t, store.Current())
		assert.Nil(t, store.CurrentUser())
		assert.Empty(t, store.Token())

		// Gone from the persisted state as well
		assert.Nil(t, NewStore(repo).Current())
	})

	t.Run("clearing without a session is not an error", func(t *testing.T) {
		store := NewStore(newTestRepo(t))
		assert.NoError(t, store.Clear())
	})
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore(newTestRepo(t))

	var notified []*domain.User
	unsubscribe := store.Subscribe(func(user *domain.User) {
		notified = append(notified, user)
	})

	require.NoError(t, store.SaveLogin(testUser(), "token-1"))
	require.NoError(t, store.Clear())

	require.Len(t, notified, 2)
	require.NotNil(t, notified[0])
	assert.Equal(t, "ada@example.com", notified[0].Email)
	assert.Nil(t, notified[1])

	// After unsubscribing no further notifications arrive
	unsubscribe()
	require.NoError(t, store.SaveLogin(testUser(), "token-2"))
	assert.Len(t, notified, 2)
}
