package service

import (
	"context"
	"time"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/query"
	"rentaldesk-backend/internal/schema"
)

type reservationService struct {
	api       *navotar.Client
	cache     *query.Cache
	lookupTTL time.Duration
}

func NewReservationService(api *navotar.Client, cache *query.Cache, lookupTTL time.Duration) ReservationService {
	return &reservationService{api: api, cache: cache, lookupTTL: lookupTTL}
}

func (s *reservationService) SearchReservations(ctx context.Context, params schema.SearchParams) ([]domain.Reservation, navotar.Pagination, error) {
	return s.api.ListReservations(ctx, params.Page, params.Size, params.Filters)
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.api.GetReservation(ctx, id)
}

func (s *reservationService) CreateReservation(ctx context.Context, reservation *domain.Reservation) (int32, error) {
	if err := schema.ValidateDuration(&domain.Duration{
		CheckoutDate:       reservation.StartDate,
		CheckinDate:        reservation.EndDate,
		CheckoutLocationID: reservation.CheckoutLocationID,
		CheckinLocationID:  reservation.CheckinLocationID,
	}); err != nil {
		return 0, err
	}
	return s.api.CreateReservation(ctx, reservation)
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservation *domain.Reservation) error {
	return s.api.UpdateReservation(ctx, reservation)
}

func (s *reservationService) ListStatuses(ctx context.Context) ([]string, error) {
	value, err := s.cache.Fetch(ctx, "reservation-statuses", s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListReservationStatuses(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]string), nil
}

func (s *reservationService) ListTypes(ctx context.Context) ([]string, error) {
	value, err := s.cache.Fetch(ctx, "reservation-types", s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListReservationTypes(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]string), nil
}
