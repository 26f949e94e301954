package cli

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/board"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// MoveCommand moves a task to another board column, the command-line
// equivalent of a drag gesture
type MoveCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// ToIndex is the target position within the destination column; -1
	// means the drop position is unspecified
	ToIndex int
}

// NewMoveCommand creates a new move command handler
func NewMoveCommand(app *App) *MoveCommand {
	return &MoveCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		ToIndex:      -1,
	}
}

// Execute runs the move command with a task identifier and destination
// column
func (c *MoveCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.app.requireUser(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "move", "usage: tb task move <task-id> <column>")
	}

	taskID := args[0]
	to, ok := domain.ParseStatus(strings.Join(args[1:], " "))
	if !ok {
		return errors.NewInvalidInputError("column", args[1], fmt.Sprintf("must be one of: %s", statusNames()))
	}

	if err := c.app.board.Refresh(ctx); err != nil {
		return c.errorHandler.Handle("fetch tasks", c.app.handleAuthFailure(err))
	}

	task := c.app.board.FindTask(taskID)
	if task == nil {
		return c.errorHandler.HandleSimple(errors.NewNotFoundError("task", taskID))
	}

	event := board.DropEvent{
		TaskID:  taskID,
		From:    task.Status,
		To:      to,
		ToIndex: c.ToIndex,
	}

	if err := c.app.board.ApplyDrop(ctx, event); err != nil {
		return c.errorHandler.Handle("move task", c.app.handleAuthFailure(err))
	}

	if task.Status == to {
		fmt.Fprintf(c.app.stdout, "Task %s is already in %s\n", taskID, to)
		return nil
	}
	fmt.Fprintf(c.app.stdout, "Moved task %s to %s\n", taskID, to)
	return nil
}

func statusNames() string {
	statuses := domain.Statuses()
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
