package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"taskboard/internal/board"
	"taskboard/internal/domain"
)

// BoardCommand fetches and renders the kanban board
type BoardCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewBoardCommand creates a new board command handler
func NewBoardCommand(app *App) *BoardCommand {
	return &BoardCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the board command. A failed refetch still renders the cached
// snapshot when one exists, marked as possibly out of date.
func (c *BoardCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.app.requireUser(); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.board.Refresh(ctx); err != nil {
		err = c.app.handleAuthFailure(err)
		if !c.app.board.Stale() {
			return c.errorHandler.Handle("fetch tasks", err)
		}
		fmt.Fprintln(c.app.stdout, "Could not reach the server; showing the last known board.")
	}

	c.renderBoard(c.app.board.Columns())
	return nil
}

// renderBoard prints the four columns as vertical sections, empty columns
// included.
func (c *BoardCommand) renderBoard(columns []board.Column) {
	for i, column := range columns {
		if i > 0 {
			fmt.Fprintln(c.app.stdout)
		}
		fmt.Fprintf(c.app.stdout, "%s (%d)\n", column.Status, len(column.Tasks))
		fmt.Fprintln(c.app.stdout, strings.Repeat("-", c.app.config.Display.ColumnWidth))

		if len(column.Tasks) == 0 {
			fmt.Fprintln(c.app.stdout, "  (empty)")
			continue
		}
		for _, task := range column.Tasks {
			fmt.Fprintln(c.app.stdout, "  "+c.formatTask(task))
		}
	}
}

func (c *BoardCommand) formatTask(task *domain.Task) string {
	title := task.Title
	// Truncate by runes so a multibyte title is never cut mid-character.
	if width := c.app.config.Display.ColumnWidth; utf8.RuneCountInString(title) > width {
		title = string([]rune(title)[:width-3]) + "..."
	}

	line := fmt.Sprintf("[%s] %s (%s)", task.ID, title, task.Priority)
	if task.Deadline != nil {
		line += " due " + task.Deadline.Format(c.app.config.Display.DateFormat)
	}
	return line
}
