package schema

import (
	"rentaldesk-backend/internal/domain"
)

// ValidateCustomer enforces the customer form rules: required names and
// at least one phone number.
func ValidateCustomer(c *domain.Customer) error {
	errs := FieldErrors{}
	if c.FirstName == "" {
		errs.Add("firstName", "first name is required")
	}
	if c.LastName == "" {
		errs.Add("lastName", "last name is required")
	}
	if !c.HasPhone() {
		errs.Add("hPhone", "at least one phone number is required")
	}
	if c.LicenseNumber != "" && c.LicenseExpiry == "" {
		errs.Add("licenseExpiryDate", "license expiry is required with a license number")
	}
	return errs.OrNil()
}

// ValidateDuration enforces the rental-duration form rules: both locations
// set and check-in strictly after checkout.
func ValidateDuration(d *domain.Duration) error {
	errs := FieldErrors{}
	if d.CheckoutLocationID == 0 {
		errs.Add("checkoutLocationId", "checkout location is required")
	}
	if d.CheckinLocationID == 0 {
		errs.Add("checkinLocationId", "checkin location is required")
	}
	if d.CheckoutDate.IsZero() {
		errs.Add("checkoutDate", "checkout date is required")
	}
	if d.CheckinDate.IsZero() {
		errs.Add("checkinDate", "checkin date is required")
	}
	if !d.CheckoutDate.IsZero() && !d.CheckinDate.IsZero() && !d.CheckinDate.After(d.CheckoutDate) {
		errs.Add("checkinDate", "checkin must be after checkout")
	}
	return errs.OrNil()
}
