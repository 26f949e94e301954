package cli

import (
	"context"
	"fmt"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Yes skips the confirmation prompt
	Yes bool
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the logout command. Logout asks for confirmation; declining
// leaves the session untouched.
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	user, err := c.app.requireUser()
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if !c.Yes && !c.app.confirm("Are you sure you want to logout?") {
		fmt.Fprintln(c.app.stdout, "Logout cancelled")
		return nil
	}

	if err := c.app.sessions.Clear(); err != nil {
		return c.errorHandler.Handle("logout", err)
	}

	fmt.Fprintf(c.app.stdout, "Logged out %s\n", user.Email)
	return nil
}
