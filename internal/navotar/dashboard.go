package navotar

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"rentaldesk-backend/internal/domain"
)

// ListDashboardWidgets returns the user's configured dashboard panels
func (c *Client) ListDashboardWidgets(ctx context.Context) ([]domain.DashboardWidget, error) {
	var widgets []domain.DashboardWidget
	if _, err := c.get(ctx, "/dashboard", nil, &widgets); err != nil {
		return nil, err
	}
	return widgets, nil
}

// SaveDashboardWidgets persists widget layout changes
func (c *Client) SaveDashboardWidgets(ctx context.Context, widgets []domain.DashboardWidget) error {
	return c.post(ctx, "/dashboard", widgets, nil)
}

// GetDashboardStats returns the headline counters for a location and day;
// locationID 0 means all locations
func (c *Client) GetDashboardStats(ctx context.Context, locationID int32, date time.Time) (*domain.DashboardStats, error) {
	query := url.Values{}
	query.Set("LocationId", strconv.Itoa(int(locationID)))
	query.Set("ClientDate", date.Format(time.RFC3339))

	var stats domain.DashboardStats
	if _, err := c.get(ctx, "/statistics", query, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListDashboardNotices returns the active banner messages
func (c *Client) ListDashboardNotices(ctx context.Context) ([]domain.DashboardNotice, error) {
	var notices []domain.DashboardNotice
	if _, err := c.get(ctx, "/dashboard/notices", nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}
