package navotar

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"rentaldesk-backend/internal/domain"
)

// RateParams scopes a rate lookup to a vehicle type, checkout location and
// date range; RateName narrows to a single named scheme.
type RateParams struct {
	VehicleTypeID      int32
	CheckoutLocationID int32
	CheckoutDate       time.Time
	CheckinDate        time.Time
	RateName           string
	AgreementID        int32
	AgreementTypeName  string
}

func (p RateParams) values() url.Values {
	query := url.Values{}
	query.Set("VehicleTypeId", strconv.Itoa(int(p.VehicleTypeID)))
	query.Set("LocationId", strconv.Itoa(int(p.CheckoutLocationID)))
	if !p.CheckoutDate.IsZero() {
		query.Set("CheckoutDate", p.CheckoutDate.Format(time.RFC3339))
	}
	if !p.CheckinDate.IsZero() {
		query.Set("CheckinDate", p.CheckinDate.Format(time.RFC3339))
	}
	if p.RateName != "" {
		query.Set("RateName", p.RateName)
	}
	if p.AgreementID != 0 {
		query.Set("AgreementId", strconv.Itoa(int(p.AgreementID)))
	}
	if p.AgreementTypeName != "" {
		query.Set("AgreementTypeName", p.AgreementTypeName)
	}
	return query
}

// ListRates returns the rate definitions matching the params; with a
// RateName set the upstream returns at most one entry.
func (c *Client) ListRates(ctx context.Context, params RateParams) ([]domain.Rate, error) {
	var rates []domain.Rate
	if _, err := c.get(ctx, "/rates", params.values(), &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// GetOptimalRate asks the upstream for the suggested default rate name for
// a new rental; a nil result means no suggestion.
func (c *Client) GetOptimalRate(ctx context.Context, params RateParams) (*domain.OptimalRate, error) {
	var optimal *domain.OptimalRate
	if _, err := c.get(ctx, "/rates/ratesname/optimal", params.values(), &optimal); err != nil {
		return nil, err
	}
	return optimal, nil
}

// ListRateNames returns the named schemes selectable for the params
func (c *Client) ListRateNames(ctx context.Context, params RateParams) ([]string, error) {
	var names []struct {
		RateName string `json:"rateName"`
	}
	if _, err := c.get(ctx, "/rates/ratesname", params.values(), &names); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n.RateName)
	}
	return out, nil
}
