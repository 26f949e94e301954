package forms

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/session"
	"taskboard/internal/validation"
)

// LoginForm collects credentials and exchanges them for a session. Only the
// single most recent error is kept for inline display.
type LoginForm struct {
	Email    string
	Password string
	Error    string

	api       api.API
	sessions  *session.Store
	validator *validation.CredentialsValidator
}

// NewLoginForm creates a login form bound to the remote API and the session
// store
func NewLoginForm(remote api.API, sessions *session.Store) *LoginForm {
	return &LoginForm{
		api:       remote,
		sessions:  sessions,
		validator: validation.NewCredentialsValidator(),
	}
}

// Submit validates and posts the credentials once. Missing fields block
// submission with an inline error and no request. On success the returned
// token and user are persisted and the user is returned for navigation. Any
// failure surfaces the server message if present, else a generic one, and
// clears the entered fields.
func (f *LoginForm) Submit(ctx context.Context) (*domain.User, error) {
	f.Error = ""

	if err := f.validator.ValidateLogin(f.Email, f.Password); err != nil {
		f.Error = "Please enter all the information"
		return nil, errors.NewValidationError(f.Error, err)
	}

	result, err := f.api.Login(ctx, f.Email, f.Password)
	if err != nil {
		f.Error = loginErrorMessage(err)
		f.reset()
		return nil, err
	}

	if err := f.sessions.SaveLogin(result.User, result.Token); err != nil {
		f.Error = errors.GetUserMessage(err)
		f.reset()
		return nil, err
	}

	user := result.User
	return &user, nil
}

func (f *LoginForm) reset() {
	f.Email = ""
	f.Password = ""
}

func loginErrorMessage(err error) string {
	if appErr, ok := errors.AsAppError(err); ok && appErr.Message != "" {
		return appErr.Message
	}
	return "An unexpected error occurred."
}
