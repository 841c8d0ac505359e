package service

// ValidationError reports a malformed input field by name so handlers can
// return {message, field} bodies.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}
