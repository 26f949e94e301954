package validation

import (
	"time"

	"taskboard/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, 255) {
		validationError.AddInvalidLengthError("title", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateStatus validates a task status
func (tv *TaskValidator) ValidateStatus(status domain.Status) error {
	validationError := NewValidationError()

	if status == "" {
		validationError.AddRequiredError("status")
		return validationError
	}
	if !status.IsValid() {
		validationError.AddInvalidValueError("status", status, "must be one of the board columns")
		return validationError
	}

	return nil
}

// ValidatePriority validates a task priority
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if !priority.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", priority, "must be Low, Medium or Urgent")
		return validationError
	}
	return nil
}

// ValidateDeadline parses and validates an optional deadline string,
// returning the parsed day-precision date
func (tv *TaskValidator) ValidateDeadline(deadline string) (*time.Time, error) {
	parsed, ok := tv.validator.ParseDeadline(deadline)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("deadline", deadline, DeadlineFormat)
		return nil, validationError
	}
	return parsed, nil
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(task.Title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if statusErr := tv.ValidateStatus(task.Status); statusErr != nil {
		if statusValidationErr, ok := statusErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, statusValidationErr.Errors...)
		}
	}

	if task.Priority != "" && !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority, "must be Low, Medium or Urgent")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
