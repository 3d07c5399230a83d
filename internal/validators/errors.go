package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoContentProvided = errors.New("no content provided")
	ErrMissingIDOrKey    = errors.New("missing id or key")
)
