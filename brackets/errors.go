package brackets

// ValidationError is a descriptive rejection of a team/zone configuration.
// It unwraps to ErrInvalidFormat.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return ErrInvalidFormat.Error() + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFormat
}
