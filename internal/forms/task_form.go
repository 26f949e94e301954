package forms

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/validation"
)

// TaskForm creates or edits a single task. Mode is determined by the
// presence of a task identifier: absent means create with a caller-supplied
// initial status, present means fetch then edit.
//
// The status field is locked on edit and on tasks created from a column's
// add action; it is user-editable only when creating from the generic
// create action. Unlike the auth forms, entered values survive a failed
// save.
type TaskForm struct {
	TaskID      string
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	Deadline    string
	Error       string

	columnCreate bool
	loaded       bool

	api       api.API
	validator *validation.TaskValidator
}

// NewCreateForm creates a form for the generic create action; status
// defaults to the given column but remains user-editable.
func NewCreateForm(remote api.API, initialStatus domain.Status) *TaskForm {
	return &TaskForm{
		Status:    initialStatus,
		Priority:  domain.DefaultPriority,
		api:       remote,
		validator: validation.NewTaskValidator(),
	}
}

// NewColumnCreateForm creates a form opened from a column's add action; the
// status is locked to that column's value.
func NewColumnCreateForm(remote api.API, columnStatus domain.Status) *TaskForm {
	form := NewCreateForm(remote, columnStatus)
	form.columnCreate = true
	return form
}

// NewEditForm creates a form for editing an existing task. Load must be
// called before the fields are meaningful.
func NewEditForm(remote api.API, taskID string) *TaskForm {
	return &TaskForm{
		TaskID:    taskID,
		Priority:  domain.DefaultPriority,
		api:       remote,
		validator: validation.NewTaskValidator(),
	}
}

// IsEdit reports whether the form edits an existing task.
func (f *TaskForm) IsEdit() bool {
	return f.TaskID != ""
}

// StatusLocked reports whether the status field may not be changed by the
// user.
func (f *TaskForm) StatusLocked() bool {
	return f.IsEdit() || f.columnCreate
}

// SetStatus changes the status field, rejecting the change when the field
// is locked.
func (f *TaskForm) SetStatus(status domain.Status) error {
	if f.StatusLocked() {
		return errors.NewInvalidInputError("status", status, "status cannot be changed here")
	}
	if !status.IsValid() {
		return errors.NewInvalidInputError("status", status, "unknown board column")
	}
	f.Status = status
	return nil
}

// Load fetches the task being edited and populates the fields. The status
// is locked to its fetched value. Fetch failures surface inline.
func (f *TaskForm) Load(ctx context.Context) error {
	if !f.IsEdit() {
		return nil
	}

	task, err := f.api.GetTask(ctx, f.TaskID)
	if err != nil {
		f.Error = "Failed to fetch task details. Please try again later."
		return err
	}

	f.Title = task.Title
	f.Description = task.Description
	f.Status = task.Status
	f.Priority = task.Priority
	f.Deadline = ""
	if task.Deadline != nil {
		f.Deadline = task.Deadline.Format(validation.DeadlineFormat)
	}
	f.loaded = true
	return nil
}

// Submit validates the fields and issues either a create or an update
// request. Missing title or status blocks submission with an inline error
// and no request; there is no partial save. On failure the inline error is
// set and the entered values are left intact so the form can be
// resubmitted.
func (f *TaskForm) Submit(ctx context.Context) error {
	f.Error = ""

	if f.validator.ValidateTitle(f.Title) != nil || f.validator.ValidateStatus(f.Status) != nil {
		f.Error = "Title and status are required."
		return errors.NewValidationError(f.Error, nil)
	}

	priority := f.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}
	if err := f.validator.ValidatePriority(priority); err != nil {
		f.Error = "Priority must be Low, Medium or Urgent."
		return errors.NewValidationError(f.Error, err)
	}

	deadline, err := f.validator.ValidateDeadline(f.Deadline)
	if err != nil {
		f.Error = "Deadline must be a date like 2024-01-31."
		return errors.NewValidationError(f.Error, err)
	}

	task := domain.Task{
		ID:          f.TaskID,
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		Priority:    priority,
		Deadline:    deadline,
	}

	if f.IsEdit() {
		err = f.api.UpdateTask(ctx, task)
	} else {
		err = f.api.CreateTask(ctx, task)
	}
	if err != nil {
		// Keep the entered values so nothing is lost on a failed save.
		f.Error = "An error occurred while saving the task. Please try again."
		return err
	}

	return nil
}
