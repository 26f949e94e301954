package cli

import (
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// requireUser is the navigation guard for commands that need a session.
// Without a stored session the command refuses up front instead of letting
// API calls fail one by one.
func (a *App) requireUser() (*domain.User, error) {
	user := a.sessions.CurrentUser()
	if user == nil {
		return nil, errors.NewAuthError("You are not logged in. Run 'tb login' first.", nil)
	}
	return user, nil
}

// handleAuthFailure converts an authorization failure from the API into a
// cleared session plus a log-in hint. The server rejecting the token means
// the persisted session is no longer valid.
func (a *App) handleAuthFailure(err error) error {
	if !errors.IsErrorType(err, errors.ErrorTypeAuth) {
		return err
	}

	if clearErr := a.sessions.Clear(); clearErr != nil {
		a.log.WithError(clearErr).Warn("failed to clear session")
	}
	return errors.NewAuthError("Your session has expired. Run 'tb login' to sign in again.", err)
}
