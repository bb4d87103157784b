package navotar

import (
	"context"
	"net/url"
	"strconv"

	"rentaldesk-backend/internal/domain"
)

// ListTaxes returns the taxes configured for a checkout location
func (c *Client) ListTaxes(ctx context.Context, locationID int32) ([]domain.Tax, error) {
	query := url.Values{}
	query.Set("LocationId", strconv.Itoa(int(locationID)))

	var taxes []domain.Tax
	if _, err := c.get(ctx, "/taxes", query, &taxes); err != nil {
		return nil, err
	}
	return taxes, nil
}
