package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrUsernameTooLong   = errors.New("username must not exceed 100 characters")
	ErrEmptyPassword     = errors.New("password is required")
	ErrWeakPassword      = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong   = errors.New("password must not exceed 72 bytes")
	ErrInvalidRole       = errors.New("invalid role")
	ErrEmptyOwner        = errors.New("prompt owner is required")
	ErrEmptyInputText    = errors.New("input text is required")
	ErrInputTextLength   = errors.New("input text must be between 3 and 1000 characters")
	ErrSourceTooLong     = errors.New("source must not exceed 50 characters")
	ErrInvalidPromptID   = errors.New("invalid prompt ID")
	ErrNoPromptsProvided = errors.New("no prompts provided")
)
