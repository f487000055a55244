package domain

import "errors"

var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidPrompt   = errors.New("invalid prompt")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrProviderFailure = errors.New("provider failure")
)
