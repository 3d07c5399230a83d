package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-e-diary/internal/validators"
	"github.com/MKhiriev/secure-e-diary/models"
)

type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *EntryValidationService) SaveEntry(ctx context.Context, request models.SaveRequest) (models.Entry, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Entry{}, fmt.Errorf("error during entry validation before saving: %w", err)
	}

	return v.inner.SaveEntry(ctx, request)
}

func (v *EntryValidationService) DecryptEntry(ctx context.Context, request models.DecryptRequest) (string, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return "", fmt.Errorf("error during decrypt request validation: %w", err)
	}

	return v.inner.DecryptEntry(ctx, request)
}

func (v *EntryValidationService) ListEntryIDs(ctx context.Context) []string {
	return v.inner.ListEntryIDs(ctx)
}

func (v *EntryValidationService) AllEntries(ctx context.Context) []models.Entry {
	return v.inner.AllEntries(ctx)
}

func (v *EntryValidationService) CountEntries(ctx context.Context) int {
	return v.inner.CountEntries(ctx)
}

func (v *EntryValidationService) Wrap(wrapper EntryService) EntryService {
	v.inner = wrapper
	return v
}
