package services

import "errors"

// Business-rule failures on the join workflow. Their text goes
// straight into the client-facing error envelope, matching what the
// registration pages display.
var (
	ErrTeamNotFound    = errors.New("Team not found.")
	ErrTeamFull        = errors.New("Team is already full.")
	ErrDuplicateMember = errors.New("Member already in team.")
)

// ValidationError reports missing or out-of-range request fields.
// Validation runs before any persistence call, so a ValidationError
// guarantees nothing was written.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
