package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/secure-e-diary/internal/service"
	"github.com/MKhiriev/secure-e-diary/internal/validators"
)

const internalServerErrorMessage = "Internal server error"

var errorStatusMap = map[error]int{
	validators.ErrNoContentProvided: http.StatusBadRequest,
	validators.ErrMissingIDOrKey:    http.StatusBadRequest,
	validators.ErrUnsupportedType:   http.StatusInternalServerError,
	validators.ErrUnknownField:      http.StatusInternalServerError,

	service.ErrEntryNotFound: http.StatusNotFound,
	service.ErrIncorrectKey:  http.StatusForbidden,
}

// errorMessageMap holds the client-facing text for every error a caller can
// provoke. Anything else is reported as internalServerErrorMessage.
var errorMessageMap = map[error]string{
	validators.ErrNoContentProvided: "No content provided",
	validators.ErrMissingIDOrKey:    "Missing id or key",

	service.ErrEntryNotFound: "Entry not found",
	service.ErrIncorrectKey:  "Incorrect decryption key",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return internalServerErrorMessage
}
