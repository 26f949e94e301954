package cli

import (
	"context"
	"fmt"
)

// WhoamiCommand prints the currently signed-in user
type WhoamiCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the whoami command
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	user, err := c.app.requireUser()
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	fmt.Fprintf(c.app.stdout, "%s <%s>\n", user.FullName, user.Email)
	return nil
}
