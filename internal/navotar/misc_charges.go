package navotar

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"rentaldesk-backend/internal/domain"
)

// ListMiscCharges returns the add-on charges applicable to a vehicle type
// at a checkout location over a date range
func (c *Client) ListMiscCharges(ctx context.Context, vehicleTypeID, locationID int32, checkout, checkin time.Time) ([]domain.MiscCharge, error) {
	query := url.Values{}
	query.Set("VehicleTypeId", strconv.Itoa(int(vehicleTypeID)))
	query.Set("LocationId", strconv.Itoa(int(locationID)))
	query.Set("CheckoutDate", checkout.Format(time.RFC3339))
	query.Set("CheckinDate", checkin.Format(time.RFC3339))

	var charges []domain.MiscCharge
	if _, err := c.get(ctx, "/misccharges", query, &charges); err != nil {
		return nil, err
	}
	return charges, nil
}
