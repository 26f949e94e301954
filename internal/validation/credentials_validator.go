package validation

// CredentialsValidator provides validation for login and registration input
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// ValidateLogin validates login input: both fields must be present.
// No format check is applied on login, matching the lighter gate the
// login form uses.
func (cv *CredentialsValidator) ValidateLogin(email, password string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	}
	if !cv.validator.IsNonEmptyString(password) {
		validationError.AddRequiredError("password")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRegistration validates registration input: all fields present and
// a well-formed email address
func (cv *CredentialsValidator) ValidateRegistration(fullname, email, password string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(fullname) {
		validationError.AddRequiredError("fullname")
	}
	if !cv.validator.IsNonEmptyString(password) {
		validationError.AddRequiredError("password")
	}

	if !cv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", email, "local@domain.tld")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// IsValidEmail reports whether the email has the expected shape
func (cv *CredentialsValidator) IsValidEmail(email string) bool {
	return cv.validator.IsValidEmail(email)
}
