package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingText    = errors.New("entry text is required")
	ErrMissingID      = errors.New("entry id is required")
	ErrNoBrowser      = errors.New("interactive mode is not available")
)
