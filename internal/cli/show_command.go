package cli

import (
	"context"
	"fmt"

	"taskboard/internal/errors"
)

// ShowCommand prints the details of a single task
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the show command with the task identifier as argument
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.app.requireUser(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "show", "usage: tb task show <task-id>")
	}

	task, err := c.app.api.GetTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("fetch task", c.app.handleAuthFailure(err))
	}

	fmt.Fprintf(c.app.stdout, "ID:          %s\n", task.ID)
	fmt.Fprintf(c.app.stdout, "Title:       %s\n", task.Title)
	fmt.Fprintf(c.app.stdout, "Status:      %s\n", task.Status)
	fmt.Fprintf(c.app.stdout, "Priority:    %s\n", task.Priority)
	if task.Description != "" {
		fmt.Fprintf(c.app.stdout, "Description: %s\n", task.Description)
	}
	if task.Deadline != nil {
		fmt.Fprintf(c.app.stdout, "Deadline:    %s\n", task.Deadline.Format(c.app.config.Display.DateFormat))
	}
	return nil
}
