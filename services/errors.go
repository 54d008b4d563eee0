package services

import "errors"

// Shared errors, mapped to HTTP status codes in the handlers package.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password is too short")

	ErrParticipantNotFound     = errors.New("participant not found")
	ErrParticipantNameRequired = errors.New("participant name is required")
	ErrParticipantInUse        = errors.New("participant is referenced by competition results")

	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameConflict = errors.New("category name already exists")
	ErrCategoryInUse        = errors.New("category still has competition items")

	ErrItemNotFound        = errors.New("competition item not found")
	ErrItemTitleRequired   = errors.New("competition item title is required")
	ErrItemTypeInvalid     = errors.New("competition item type must be group or individual")
	ErrItemCategoryInvalid = errors.New("competition item category does not exist")
	ErrItemResultInvalid   = errors.New("result references an unknown participant")
	ErrGradeKeyInvalid     = errors.New("grade entry references an unknown grade key")

	ErrEventStatusInvalid      = errors.New("invalid event status")
	ErrRotationIntervalInvalid = errors.New("rotation interval must be positive")
	ErrGradeSystemInvalid      = errors.New("grade system keys must be unique and non-empty")

	ErrUserEmailConflict = errors.New("email address is already in use")
)
