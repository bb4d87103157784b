package service

import (
	"context"
	"strings"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/logger"
)

// globalSearchLimit caps hits per module so the dropdown stays small
const globalSearchLimit = 5

// searchBackend is the slice of the upstream the fan-out needs
type searchBackend interface {
	SearchCustomers(ctx context.Context, text string, limit int) ([]domain.Customer, error)
	SearchVehicles(ctx context.Context, text string, limit int) ([]domain.Vehicle, error)
	SearchReservations(ctx context.Context, text string, limit int) ([]domain.Reservation, error)
	SearchAgreements(ctx context.Context, text string, limit int) ([]domain.Agreement, error)
}

type globalSearchService struct {
	api searchBackend
}

func NewGlobalSearchService(api searchBackend) GlobalSearchService {
	return &globalSearchService{api: api}
}

// Search fans out to the per-module search endpoints with a small limit
// each and merges the hits tagged by type, in module order. A failing
// module is logged and skipped so the rest of the results still render.
func (s *globalSearchService) Search(ctx context.Context, text string) ([]SearchResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	var results []SearchResult

	customers, err := s.api.SearchCustomers(ctx, text, globalSearchLimit)
	if err != nil {
		logger.Warn("global search: customers failed", "error", err)
	}
	for _, c := range customers {
		results = append(results, SearchResult{
			Type:  "customer",
			ID:    c.ID,
			Label: c.FullName(),
			Extra: c.Email,
		})
	}

	vehicles, err := s.api.SearchVehicles(ctx, text, globalSearchLimit)
	if err != nil {
		logger.Warn("global search: vehicles failed", "error", err)
	}
	for _, v := range vehicles {
		results = append(results, SearchResult{
			Type:  "vehicle",
			ID:    v.ID,
			Label: v.VehicleNo,
			Extra: strings.TrimSpace(v.Make + " " + v.Model),
		})
	}

	reservations, err := s.api.SearchReservations(ctx, text, globalSearchLimit)
	if err != nil {
		logger.Warn("global search: reservations failed", "error", err)
	}
	for _, r := range reservations {
		results = append(results, SearchResult{
			Type:  "reservation",
			ID:    r.ID,
			Label: r.ReservationNumber,
			Extra: string(r.Status),
		})
	}

	agreements, err := s.api.SearchAgreements(ctx, text, globalSearchLimit)
	if err != nil {
		logger.Warn("global search: agreements failed", "error", err)
	}
	for _, a := range agreements {
		results = append(results, SearchResult{
			Type:  "agreement",
			ID:    a.ID,
			Label: a.AgreementNumber,
			Extra: string(a.Status),
		})
	}

	return results, nil
}
