package cli

import (
	"context"
	"fmt"

	"taskboard/internal/forms"
)

// LoginCommand handles the login command
type LoginCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Email    string
	Password string
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	form := forms.NewLoginForm(c.app.api, c.app.sessions)

	form.Email = c.Email
	form.Password = c.Password

	var err error
	if form.Email == "" {
		if form.Email, err = c.app.promptLine("Email: "); err != nil {
			return err
		}
	}
	if form.Password == "" {
		if form.Password, err = c.app.promptLine("Password: "); err != nil {
			return err
		}
	}

	user, err := form.Submit(ctx)
	if err != nil {
		return fmt.Errorf("%s", form.Error)
	}

	fmt.Fprintf(c.app.stdout, "Logged in as %s <%s>\n", user.FullName, user.Email)
	return nil
}
