package services

import (
	"context"

	"storefront-service/errors"
	"storefront-service/models"
	"storefront-service/repository"
)

const leadCollection = "lead"

// LeadService persists marketing leads and mirrors them to a spreadsheet.
type LeadService struct {
	store  repository.DocumentStore
	sheets *SheetsClient
}

func NewLeadService(store repository.DocumentStore, sheets *SheetsClient) *LeadService {
	return &LeadService{store: store, sheets: sheets}
}

// SubmitLead persists the lead and best-effort appends it to the configured
// spreadsheet. Persistence failure is the one hard failure; the sheet append
// never fails the request and yields a nil range instead.
func (s *LeadService) SubmitLead(ctx context.Context, req models.LeadRequest) (string, *string, error) {
	source := req.Source
	if source == "" {
		source = "website"
	}
	lead := models.Lead{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Interest: req.Interest,
		Source:   source,
		Notes:    req.Notes,
	}

	id, err := s.store.Create(ctx, leadCollection, lead)
	if err != nil {
		return "", nil, errors.Store("Database error: "+err.Error(), err)
	}

	sheetRange := s.sheets.AppendLead(ctx, lead)
	return id, sheetRange, nil
}
