package cli

import (
	"context"
	"fmt"

	"taskboard/internal/errors"
)

// DeleteCommand deletes a task. Deletion happens immediately, without a
// confirmation step.
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command with the task identifier as argument
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.app.requireUser(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: tb task delete <task-id>")
	}

	if err := c.app.board.Delete(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete task", c.app.handleAuthFailure(err))
	}

	fmt.Fprintf(c.app.stdout, "Deleted task %s\n", args[0])
	return nil
}
