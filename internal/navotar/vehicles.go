package navotar

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"rentaldesk-backend/internal/domain"
)

// ListVehicles returns one page of fleet units with the given filters
func (c *Client) ListVehicles(ctx context.Context, page, size int, filters map[string]string) ([]domain.Vehicle, Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(size))
	for key, val := range filters {
		query.Set(key, val)
	}

	var vehicles []domain.Vehicle
	resp, err := c.get(ctx, "/vehicles", query, &vehicles)
	if err != nil {
		return nil, Pagination{}, err
	}
	pagination, err := parsePaginationHeader(resp)
	if err != nil {
		return nil, Pagination{}, err
	}
	return vehicles, pagination, nil
}

// GetVehicle fetches one fleet unit by id
func (c *Client) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if _, err := c.get(ctx, "/vehicles/"+strconv.Itoa(int(id)), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// ListAvailableVehicles is the picker lookup, scoped to a checkout
// location and date range
func (c *Client) ListAvailableVehicles(ctx context.Context, locationID int32, start, end time.Time, vehicleTypeID int32) ([]domain.Vehicle, error) {
	query := url.Values{}
	query.Set("LocationId", strconv.Itoa(int(locationID)))
	query.Set("StartDate", start.Format(time.RFC3339))
	query.Set("EndDate", end.Format(time.RFC3339))
	if vehicleTypeID != 0 {
		query.Set("VehicleTypeId", strconv.Itoa(int(vehicleTypeID)))
	}

	var vehicles []domain.Vehicle
	if _, err := c.get(ctx, "/vehicles", query, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListVehicleTypes returns the rate classes, optionally scoped to a
// location and date range the way the vehicle picker is
func (c *Client) ListVehicleTypes(ctx context.Context, locationID int32, start, end time.Time) ([]domain.VehicleType, error) {
	query := url.Values{}
	if locationID != 0 {
		query.Set("LocationId", strconv.Itoa(int(locationID)))
	}
	if !start.IsZero() {
		query.Set("StartDate", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		query.Set("EndDate", end.Format(time.RFC3339))
	}

	var types []domain.VehicleType
	if _, err := c.get(ctx, "/vehicles/types", query, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// ListVehicleStatuses returns the fleet status lookup values
func (c *Client) ListVehicleStatuses(ctx context.Context) ([]string, error) {
	var statuses []struct {
		Name string `json:"name"`
	}
	if _, err := c.get(ctx, "/vehicles/statuses", nil, &statuses); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.Name)
	}
	return names, nil
}

// SearchVehicles is the small-limit lookup used by global search
func (c *Client) SearchVehicles(ctx context.Context, text string, limit int) ([]domain.Vehicle, error) {
	query := url.Values{}
	query.Set("SearchText", text)
	query.Set("pageSize", strconv.Itoa(limit))

	var vehicles []domain.Vehicle
	if _, err := c.get(ctx, "/vehicles", query, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}
