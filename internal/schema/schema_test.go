package schema

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaldesk-backend/internal/domain"
)

func TestParseSearchParamsDefaults(t *testing.T) {
	p := ParseSearchParams(url.Values{})
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Empty(t, p.Filters)
}

func TestParseSearchParams(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("size", "20")
	values.Set("Statuses", "2")
	values.Set("VehicleNo", "UB-044")

	p := ParseSearchParams(values)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Size)
	assert.Equal(t, "2", p.Filters["Statuses"])
	assert.Equal(t, "UB-044", p.Filters["VehicleNo"])
}

func TestParseSearchParamsOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		size     string
		wantPage int
		wantSize int
	}{
		{"zero page", "0", "10", DefaultPage, 10},
		{"negative page", "-2", "10", DefaultPage, 10},
		{"garbage page", "abc", "10", DefaultPage, 10},
		{"zero size", "2", "0", 2, DefaultPageSize},
		{"oversized", "2", "5000", 2, MaxPageSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := url.Values{}
			values.Set("page", tc.page)
			values.Set("size", tc.size)
			p := ParseSearchParams(values)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantSize, p.Size)
		})
	}
}

func TestSearchParamsRoundTrip(t *testing.T) {
	original := SearchParams{
		Page: 3,
		Size: 20,
		Filters: map[string]string{
			"Statuses":   "2",
			"CreatedBy":  "1826",
			"SortOrder":  "desc",
			"SearchText": "santos",
		},
	}

	decoded := ParseSearchParams(original.Encode())
	assert.Equal(t, original, decoded)
}

func TestFieldErrorsFirstMessageWins(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("firstName", "first name is required")
	errs.Add("firstName", "something else")

	assert.Equal(t, "first name is required", errs["firstName"])
	assert.Error(t, errs.OrNil())
	assert.Nil(t, FieldErrors{}.OrNil())
}

func TestValidateCustomer(t *testing.T) {
	valid := domain.Customer{FirstName: "Maria", LastName: "Santos", HomePhone: "555-0101"}
	assert.NoError(t, ValidateCustomer(&valid))

	missing := domain.Customer{}
	err := ValidateCustomer(&missing)
	require.Error(t, err)
	fields := err.(FieldErrors)
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
	assert.Contains(t, fields, "hPhone")
}

func TestValidateCustomerAnyPhoneSatisfies(t *testing.T) {
	c := domain.Customer{FirstName: "Maria", LastName: "Santos", CellPhone: "555-0102"}
	assert.NoError(t, ValidateCustomer(&c))
}

func TestValidateCustomerLicenseExpiry(t *testing.T) {
	c := domain.Customer{
		FirstName: "Maria", LastName: "Santos", HomePhone: "555-0101",
		LicenseNumber: "D1234-56789",
	}
	err := ValidateCustomer(&c)
	require.Error(t, err)
	assert.Contains(t, err.(FieldErrors), "licenseExpiryDate")

	c.LicenseExpiry = "2027-06-30"
	assert.NoError(t, ValidateCustomer(&c))
}

func TestValidateDuration(t *testing.T) {
	checkout := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	valid := domain.Duration{
		CheckoutDate:       checkout,
		CheckinDate:        checkout.Add(72 * time.Hour),
		CheckoutLocationID: 5,
		CheckinLocationID:  5,
	}
	assert.NoError(t, ValidateDuration(&valid))

	equal := valid
	equal.CheckinDate = checkout
	err := ValidateDuration(&equal)
	require.Error(t, err)
	assert.Contains(t, err.(FieldErrors), "checkinDate")

	noLocation := valid
	noLocation.CheckoutLocationID = 0
	err = ValidateDuration(&noLocation)
	require.Error(t, err)
	assert.Contains(t, err.(FieldErrors), "checkoutLocationId")
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{
		"2024-03-01T10:00:00Z",
		"2024-03-01T10:00:00",
		"2024-03-01",
	} {
		parsed, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, time.March, parsed.Month())
	}

	_, err := ParseDate("03/01/2024")
	assert.Error(t, err)
}
