package service

import (
	"context"
	"time"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/query"
	"rentaldesk-backend/internal/schema"
)

type agreementService struct {
	api       *navotar.Client
	cache     *query.Cache
	lookupTTL time.Duration
}

func NewAgreementService(api *navotar.Client, cache *query.Cache, lookupTTL time.Duration) AgreementService {
	return &agreementService{api: api, cache: cache, lookupTTL: lookupTTL}
}

func (s *agreementService) SearchAgreements(ctx context.Context, params schema.SearchParams) ([]domain.Agreement, navotar.Pagination, error) {
	return s.api.ListAgreements(ctx, params.Page, params.Size, params.Filters)
}

func (s *agreementService) GetAgreement(ctx context.Context, id int32) (*domain.Agreement, error) {
	return s.api.GetAgreement(ctx, id)
}

func (s *agreementService) ListStatuses(ctx context.Context) ([]string, error) {
	value, err := s.cache.Fetch(ctx, "agreement-statuses", s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListAgreementStatuses(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]string), nil
}

func (s *agreementService) ListTypes(ctx context.Context) ([]string, error) {
	value, err := s.cache.Fetch(ctx, "agreement-types", s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListAgreementTypes(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]string), nil
}
