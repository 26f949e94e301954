package cli

import (
	"context"
	"fmt"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/forms"
)

// EditCommand edits an existing task. The current field values are fetched
// first; flags override individual fields. The status of an existing task
// cannot be edited here, only moving it on the board changes it.
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Title       string
	Description string
	Priority    string
	Deadline    string

	descriptionSet bool
	deadlineSet    bool
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// SetDescription records a description override, including clearing it
func (c *EditCommand) SetDescription(description string) {
	c.Description = description
	c.descriptionSet = true
}

// SetDeadline records a deadline override, including clearing it
func (c *EditCommand) SetDeadline(deadline string) {
	c.Deadline = deadline
	c.deadlineSet = true
}

// Execute runs the edit command with the task identifier as argument
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.app.requireUser(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "edit", "usage: tb task edit <task-id>")
	}

	form := forms.NewEditForm(c.app.api, args[0])
	if err := form.Load(ctx); err != nil {
		if form.Error != "" {
			return fmt.Errorf("%s", form.Error)
		}
		return c.errorHandler.Handle("fetch task", c.app.handleAuthFailure(err))
	}

	if c.Title != "" {
		form.Title = c.Title
	}
	if c.descriptionSet {
		form.Description = c.Description
	}
	if c.deadlineSet {
		form.Deadline = c.Deadline
	}
	if c.Priority != "" {
		priority, ok := domain.ParsePriority(c.Priority)
		if !ok {
			return errors.NewInvalidInputError("priority", c.Priority, "must be Low, Medium or Urgent")
		}
		form.Priority = priority
	}

	if err := form.Submit(ctx); err != nil {
		if form.Error != "" {
			return fmt.Errorf("%s", form.Error)
		}
		return c.errorHandler.Handle("update task", c.app.handleAuthFailure(err))
	}

	// Refetch so the cached snapshot includes the saved task.
	if err := c.app.board.Refresh(ctx); err != nil {
		c.app.log.WithError(err).Warn("failed to refresh board after save")
	}

	fmt.Fprintf(c.app.stdout, "Updated task %s\n", form.TaskID)
	return nil
}
