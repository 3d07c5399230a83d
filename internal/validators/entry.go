package validators

import (
	"context"

	"github.com/MKhiriev/secure-e-diary/models"
)

// Field name constants used to scope validation of diary requests.
const (
	// FieldEncryptedText targets the ciphertext of a save request.
	FieldEncryptedText = "encrypted_text"

	// FieldID targets the entry identifier of a decrypt request.
	FieldID = "id"

	// FieldKey targets the decryption key of a decrypt request. Only its
	// presence is checked here; whether it unlocks the entry is decided by
	// the service.
	FieldKey = "key"
)

type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaveRequest:
		return v.validateSaveRequest(ctx, value, fields...)
	case *models.SaveRequest:
		return v.validateSaveRequest(ctx, *value, fields...)

	case models.DecryptRequest:
		return v.validateDecryptRequest(ctx, value, fields...)
	case *models.DecryptRequest:
		return v.validateDecryptRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateSaveRequest(ctx context.Context, request models.SaveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEncryptedText}
	}

	for _, f := range fields {
		switch f {
		case FieldEncryptedText:
			if request.EncryptedText == "" {
				return ErrNoContentProvided
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateDecryptRequest(ctx context.Context, request models.DecryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if request.ID == "" {
				return ErrMissingIDOrKey
			}
		case FieldKey:
			if !request.Key.Present() {
				return ErrMissingIDOrKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
