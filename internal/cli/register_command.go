package cli

import (
	"context"
	"fmt"

	"taskboard/internal/forms"
)

// RegisterCommand handles the register command
type RegisterCommand struct {
	app          *App
	errorHandler *ErrorHandler

	FullName string
	Email    string
	Password string
}

// NewRegisterCommand creates a new register command handler
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the register command
func (c *RegisterCommand) Execute(ctx context.Context, args []string) error {
	form := forms.NewRegisterForm(c.app.api)

	form.FullName = c.FullName
	form.Email = c.Email
	form.Password = c.Password

	var err error
	if form.FullName == "" {
		if form.FullName, err = c.app.promptLine("Full name: "); err != nil {
			return err
		}
	}
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

	message, err := form.Submit(ctx)
	if err != nil {
		return fmt.Errorf("%s", form.Error)
	}

	if message == "" {
		message = "Account created. Run 'tb login' to sign in."
	}
	fmt.Fprintln(c.app.stdout, message)
	return nil
}
