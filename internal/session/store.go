package session

import (
	"sync"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqlite"
)

// Store is the session-context service. It owns the persisted
// {token, user} record and notifies subscribers on login and logout, so
// views depend on it instead of reading storage ad hoc.
type Store struct {
	repo   sqlite.Repository
	mapper *domain.Mapper

	mu          sync.Mutex
	subscribers map[int]func(*domain.User)
	nextSubID   int
}

// NewStore creates a new session store over the local repository
func NewStore(repo sqlite.Repository) *Store {
	return &Store{
		repo:        repo,
		mapper:      domain.NewMapper(),
		subscribers: make(map[int]func(*domain.User)),
	}
}

// Current returns the persisted session, or nil when no user is logged in.
// Storage failures are treated as an absent session so navigation decisions
// never crash.
func (s *Store) Current() *domain.Session {
	stored, err := s.repo.GetSession()
	if err != nil {
		return nil
	}
	session := s.mapper.Session.FromStorage(*stored)
	if !session.IsValid() {
		return nil
	}
	return &session
}

// CurrentUser returns the logged-in user, or nil when there is no session.
// Synchronous read used to decide navigation.
func (s *Store) CurrentUser() *domain.User {
	session := s.Current()
	if session == nil {
		return nil
	}
	user := session.User
	return &user
}

// Token returns the bearer credential for the current session, or the empty
// string when no session is stored. Implements api.TokenSource.
func (s *Store) Token() string {
	session := s.Current()
	if session == nil {
		return ""
	}
	return session.Token
}

// SaveLogin persists the token and user returned by a successful login and
// notifies subscribers
func (s *Store) SaveLogin(user domain.User, token string) error {
	if token == "" {
		return errors.NewInvalidInputError("token", token, "cannot be empty")
	}

	session := domain.Session{
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}
	stored := s.mapper.Session.ToStorage(session)
	if err := s.repo.SaveSession(&stored); err != nil {
		return err
	}

	s.notify(&user)
	return nil
}

// Clear removes the persisted token and user together and notifies
// subscribers. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := s.repo.ClearSession(); err != nil {
		return err
	}

	s.notify(nil)
	return nil
}

// Subscribe registers a callback invoked with the new user on login and nil
// on logout. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(*domain.User)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) notify(user *domain.User) {
	s.mu.Lock()
	callbacks := make([]func(*domain.User), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(user)
	}
}
