package cli

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/forms"
)

// CreateCommand creates a new task
type CreateCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Description string
	Status      string
	Priority    string
	Deadline    string

	// Column creates the task inside a specific column with the status
	// locked, like the per-column add action on the board
	Column string
}

// NewCreateCommand creates a new create command handler
func NewCreateCommand(app *App) *CreateCommand {
	return &CreateCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the create command with the task title as arguments
func (c *CreateCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.app.requireUser(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	form, err := c.buildForm()
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	form.Title = strings.TrimSpace(strings.Join(args, " "))
	if form.Title == "" {
		if form.Title, err = c.app.promptLine("Title: "); err != nil {
			return err
		}
	}
	form.Description = c.Description
	form.Deadline = c.Deadline

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
		return c.errorHandler.Handle("create task", c.app.handleAuthFailure(err))
	}

	// Refetch so the cached snapshot includes the saved task.
	if err := c.app.board.Refresh(ctx); err != nil {
		c.app.log.WithError(err).Warn("failed to refresh board after save")
	}

	fmt.Fprintf(c.app.stdout, "Created task %q in %s\n", form.Title, form.Status)
	return nil
}

// buildForm picks the create mode: a column add action locks the status to
// that column, the generic action leaves it editable.
func (c *CreateCommand) buildForm() (*forms.TaskForm, error) {
	if c.Column != "" {
		status, ok := domain.ParseStatus(c.Column)
		if !ok {
			return nil, errors.NewInvalidInputError("column", c.Column, fmt.Sprintf("must be one of: %s", statusNames()))
		}
		if c.Status != "" {
			return nil, errors.NewInvalidInputError("status", c.Status, "cannot combine --status with --column")
		}
		return forms.NewColumnCreateForm(c.app.api, status), nil
	}

	form := forms.NewCreateForm(c.app.api, domain.StatusToDo)
	if c.Status != "" {
		status, ok := domain.ParseStatus(c.Status)
		if !ok {
			return nil, errors.NewInvalidInputError("status", c.Status, fmt.Sprintf("must be one of: %s", statusNames()))
		}
		if err := form.SetStatus(status); err != nil {
			return nil, err
		}
	}
	return form, nil
}
