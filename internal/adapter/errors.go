package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTooLarge     = errors.New("request entity too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected server response")
)
