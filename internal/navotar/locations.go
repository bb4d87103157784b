package navotar

import (
	"context"
	"net/url"

	"rentaldesk-backend/internal/domain"
)

// ListLocations returns the tenant's checkout/checkin sites
func (c *Client) ListLocations(ctx context.Context, activeOnly bool) ([]domain.Location, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("withActive", "true")
	}

	var locations []domain.Location
	if _, err := c.get(ctx, "/locations", query, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}
