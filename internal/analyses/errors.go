package analyses

import "errors"

var (
	ErrRoleRequired = errors.New("job role is required")
	ErrUnknownRole  = errors.New("unknown job role")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeUnreadable = "unreadable_resume"
	ErrorCodeTooLarge   = "file_too_large"
)

// roleSelectPlaceholder is the selector's "nothing chosen" option.
const roleSelectPlaceholder = "-- Select a role --"
