package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"taskboard/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tb",
		Short: "A command-line kanban board for personal tasks",
		Long: `Task Board (tb) is a command-line client for a personal task board.

Tasks live on a four-column kanban board: To-Do, In Progress, Under Review
and Completed. The board is stored on a remote server; tb signs in, shows
the board, and moves tasks between columns.

EXAMPLES:
  tb register                              # Create an account (interactive)
  tb login                                 # Sign in and store the session
  tb board                                 # Show the board
  tb task create "Write the report"        # Create a task in To-Do
  tb task create "Fix the bug" --column "In Progress"
  tb task move 64f1c2 "Under Review"       # Move a task to another column
  tb task edit 64f1c2 --priority Urgent    # Edit task fields
  tb task delete 64f1c2                    # Delete a task
  tb logout                                # Sign out (asks for confirmation)

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  API Configuration:
    TB_API_BASE_URL                        Server base URL (default: http://localhost:3000)
    TB_API_TIMEOUT                         Request timeout (default: 15s)

  State Configuration:
    TB_STATE_DIR                           State directory (default: ~/.taskboard)
    TB_STATE_FILENAME                      State filename (default: taskboard.db)

  Display Configuration:
    TB_DISPLAY_DATE_FORMAT                 Date format (default: 2006-01-02)
    TB_DISPLAY_COLUMN_WIDTH                Column display width (default: 28)

  Application Configuration:
    TB_APP_TIMEOUT                         Application timeout (default: 60s)
    TB_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  tb [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("base-url", "", "Server base URL (overrides TB_API_BASE_URL)")
	flags.Duration("api-timeout", 0, "Request timeout (overrides TB_API_TIMEOUT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TB_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TB_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Create a new account on the server. Missing fields are prompted for.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewRegisterCommand(r.app)
			handler.FullName, _ = cmd.Flags().GetString("fullname")
			handler.Email, _ = cmd.Flags().GetString("email")
			handler.Password, _ = cmd.Flags().GetString("password")
			return handler.Execute(ctx, args)
		},
	}
	registerCmd.Flags().String("fullname", "", "Full name")
	registerCmd.Flags().String("email", "", "Email address")
	registerCmd.Flags().String("password", "", "Password")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Long:  "Sign in with email and password. The session token is stored locally until logout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewLoginCommand(r.app)
			handler.Email, _ = cmd.Flags().GetString("email")
			handler.Password, _ = cmd.Flags().GetString("password")
			return handler.Execute(ctx, args)
		},
	}
	loginCmd.Flags().String("email", "", "Email address")
	loginCmd.Flags().String("password", "", "Password")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Long:  "Clear the stored session. Asks for confirmation unless --yes is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewLogoutCommand(r.app)
			handler.Yes, _ = cmd.Flags().GetBool("yes")
			return handler.Execute(ctx, args)
		},
	}
	logoutCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewWhoamiCommand(r.app).Execute(ctx, args)
		},
	}

	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Show the kanban board",
		Long:  "Fetch the task list and render the four board columns.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewBoardCommand(r.app).Execute(ctx, args)
		},
	}

	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Create, edit, move and delete tasks",
	}

	createCmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a new task",
		Long: `Create a new task. The title comes from the arguments; missing titles are
prompted for. With --column the task is created inside that column and the
status cannot be overridden, matching the per-column add action.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewCreateCommand(r.app)
			handler.Description, _ = cmd.Flags().GetString("description")
			handler.Status, _ = cmd.Flags().GetString("status")
			handler.Priority, _ = cmd.Flags().GetString("priority")
			handler.Deadline, _ = cmd.Flags().GetString("deadline")
			handler.Column, _ = cmd.Flags().GetString("column")
			return handler.Execute(ctx, args)
		},
	}
	createCmd.Flags().String("description", "", "Task description")
	createCmd.Flags().String("status", "", "Board column for the new task")
	createCmd.Flags().String("priority", "", "Priority: Low, Medium or Urgent")
	createCmd.Flags().String("deadline", "", "Deadline date, e.g. 2024-01-31")
	createCmd.Flags().String("column", "", "Create inside this column with the status locked")

	editCmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a task's fields",
		Long: `Edit an existing task. The current values are fetched first and only the
fields given as flags change. The status of an existing task cannot be
edited; use 'tb task move' instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewEditCommand(r.app)
			handler.Title, _ = cmd.Flags().GetString("title")
			handler.Priority, _ = cmd.Flags().GetString("priority")
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				handler.SetDescription(description)
			}
			if cmd.Flags().Changed("deadline") {
				deadline, _ := cmd.Flags().GetString("deadline")
				handler.SetDeadline(deadline)
			}
			return handler.Execute(ctx, args)
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("description", "", "New description (empty clears it)")
	editCmd.Flags().String("priority", "", "Priority: Low, Medium or Urgent")
	editCmd.Flags().String("deadline", "", "Deadline date (empty clears it)")

	moveCmd := &cobra.Command{
		Use:   "move <task-id> <column>",
		Short: "Move a task to another column",
		Long: `Move a task to another board column. Moving to the same column and
position is a no-op and issues no request.

Examples:
  tb task move 64f1c2 "In Progress"
  tb task move 64f1c2 Completed --index 0`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewMoveCommand(r.app)
			handler.ToIndex, _ = cmd.Flags().GetInt("index")
			return handler.Execute(ctx, args)
		},
	}
	moveCmd.Flags().Int("index", -1, "Target position within the destination column")

	deleteCmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewShowCommand(r.app).Execute(ctx, args)
		},
	}

	taskCmd.AddCommand(createCmd, editCmd, moveCmd, deleteCmd, showCmd)

	r.cmd.AddCommand(
		registerCmd,
		loginCmd,
		logoutCmd,
		whoamiCmd,
		boardCmd,
		taskCmd,
	)
}

// commandContext creates the per-command context with the application
// timeout applied
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if baseURL, _ := flags.GetString("base-url"); baseURL != "" {
		r.config.API.BaseURL = baseURL
	}
	if apiTimeout, _ := flags.GetDuration("api-timeout"); apiTimeout > 0 {
		r.config.API.RequestTimeout = apiTimeout
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
		r.app.log.SetLevel(logrus.DebugLevel)
	}

	return r.config.Validate()
}
