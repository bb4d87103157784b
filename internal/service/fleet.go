package service

import (
	"context"
	"fmt"
	"time"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/query"
	"rentaldesk-backend/internal/schema"
)

type fleetService struct {
	api       *navotar.Client
	cache     *query.Cache
	lookupTTL time.Duration
}

func NewFleetService(api *navotar.Client, cache *query.Cache, lookupTTL time.Duration) FleetService {
	return &fleetService{api: api, cache: cache, lookupTTL: lookupTTL}
}

func (s *fleetService) SearchVehicles(ctx context.Context, params schema.SearchParams) ([]domain.Vehicle, navotar.Pagination, error) {
	return s.api.ListVehicles(ctx, params.Page, params.Size, params.Filters)
}

func (s *fleetService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.api.GetVehicle(ctx, id)
}

// ListAvailableVehicles is the wizard's vehicle picker lookup; results are
// never cached because availability changes with every checkout
func (s *fleetService) ListAvailableVehicles(ctx context.Context, locationID int32, start, end time.Time, vehicleTypeID int32) ([]domain.Vehicle, error) {
	return s.api.ListAvailableVehicles(ctx, locationID, start, end, vehicleTypeID)
}

func (s *fleetService) ListVehicleTypes(ctx context.Context, locationID int32, start, end time.Time) ([]domain.VehicleType, error) {
	key := fmt.Sprintf("vehicle-types:%d:%d:%d", locationID, start.Unix(), end.Unix())
	value, err := s.cache.Fetch(ctx, key, s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListVehicleTypes(ctx, locationID, start, end)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.VehicleType), nil
}

func (s *fleetService) ListVehicleStatuses(ctx context.Context) ([]string, error) {
	value, err := s.cache.Fetch(ctx, "vehicle-statuses", s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListVehicleStatuses(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]string), nil
}

func (s *fleetService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	value, err := s.cache.Fetch(ctx, "locations", s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListLocations(ctx, true)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.Location), nil
}
