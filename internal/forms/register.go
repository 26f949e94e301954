package forms

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/errors"
	"taskboard/internal/validation"
)

// RegisterForm collects the fields for account creation.
type RegisterForm struct {
	FullName string
	Email    string
	Password string
	Error    string

	api       api.API
	validator *validation.CredentialsValidator
}

// NewRegisterForm creates a registration form bound to the remote API
func NewRegisterForm(remote api.API) *RegisterForm {
	return &RegisterForm{
		api:       remote,
		validator: validation.NewCredentialsValidator(),
	}
}

// Submit validates and posts the registration once, returning the server
// message on success (the caller navigates to login). A malformed email
// blocks submission client-side with no request issued. Failures surface
// the server message, or a network-specific generic, and clear the entered
// fields.
func (f *RegisterForm) Submit(ctx context.Context) (string, error) {
	f.Error = ""

	if !f.validator.IsValidEmail(f.Email) {
		f.Error = "Please enter a valid email address"
		return "", errors.NewValidationError(f.Error, nil)
	}
	if err := f.validator.ValidateRegistration(f.FullName, f.Email, f.Password); err != nil {
		f.Error = "Please enter all the information"
		return "", errors.NewValidationError(f.Error, err)
	}

	message, err := f.api.Register(ctx, f.FullName, f.Email, f.Password)
	if err != nil {
		f.Error = errors.GetUserMessage(err)
		f.reset()
		return "", err
	}

	return message, nil
}

func (f *RegisterForm) reset() {
	f.FullName = ""
	f.Email = ""
	f.Password = ""
}
