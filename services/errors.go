package services

import "errors"

// Errors shared by the services and mapped to HTTP statuses.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation
	ErrValidationFailed   = errors.New("validation failed")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFixtureInvalid     = errors.New("fixture cannot be generated")

	// Conflicts
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrTournamentNameConflict = errors.New("tournament name already exists")
	ErrTeamNameConflict       = errors.New("team name is used twice")
	ErrFieldNameConflict      = errors.New("field name is used twice")
	ErrFixtureNotGenerated    = errors.New("fixture has not been generated yet")

	// Authorization
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	ErrUserNotFound       = errors.New("user not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	ErrExportUnavailable = errors.New("export storage is not configured")
)
