package navotar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaldesk-backend/internal/logger"
)

func init() {
	logger.Initialize("error", "text")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "622", "1826", 5*time.Second, StaticToken("test-token"))
	require.NoError(t, err)
	return c
}

func TestNewRequiresClientID(t *testing.T) {
	_, err := New("https://app.example.com/api", "", "", time.Second, StaticToken("t"))
	assert.Error(t, err)
}

func TestRequestCarriesBearerAndTenantScope(t *testing.T) {
	var gotAuth, gotClientID, gotUserID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotClientID = r.URL.Query().Get("clientId")
		gotUserID = r.URL.Query().Get("userId")
		w.Write([]byte(`{"customerId": 301, "firstName": "Maria"}`))
	})

	customer, err := c.GetCustomer(context.Background(), 301)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "622", gotClientID)
	assert.Equal(t, "1826", gotUserID)
	assert.Equal(t, "Maria", customer.FirstName)
}

func TestContextTokenForwardsSessionBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "622", "", 5*time.Second, ContextToken{})
	require.NoError(t, err)

	ctx := WithBearer(context.Background(), "session-jwt")
	_, err = c.GetCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-jwt", gotAuth)

	// no bearer stashed on the context means the call cannot proceed
	_, err = c.GetCustomer(context.Background(), 1)
	assert.Error(t, err)
}

func TestListCustomersParsesPaginationHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "santos", r.URL.Query().Get("SearchText"))
		w.Header().Set("X-Pagination", `{"currentPage":3,"pageSize":20,"totalCount":64,"totalPages":4}`)
		w.Write([]byte(`[{"customerId": 301, "firstName": "Maria", "lastName": "Santos"}]`))
	})

	customers, pagination, err := c.ListCustomers(context.Background(), 3, 20, map[string]string{"SearchText": "santos"})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int32(3), pagination.CurrentPage)
	assert.Equal(t, int32(64), pagination.TotalCount)
	assert.Equal(t, int32(4), pagination.TotalPages)
}

func TestMissingPaginationHeaderYieldsZeroValue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, pagination, err := c.ListCustomers(context.Background(), 1, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, Pagination{}, pagination)
}

func TestMalformedPaginationHeaderRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pagination", `{not json`)
		w.Write([]byte(`[]`))
	})

	_, _, err := c.ListCustomers(context.Background(), 1, 10, nil)
	assert.Error(t, err)
}

func TestListAgreementsParsesEnvelopePagination(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"page": 2, "pageSize": 10, "totalPages": 5, "totalRecords": 42,
			"data": [{"agreementId": 88, "agreementNumber": "AG-0088"}]
		}`))
	})

	agreements, pagination, err := c.ListAgreements(context.Background(), 2, 10, nil)
	require.NoError(t, err)
	require.Len(t, agreements, 1)
	assert.Equal(t, "AG-0088", agreements[0].AgreementNumber)
	assert.Equal(t, int32(2), pagination.CurrentPage)
	assert.Equal(t, int32(42), pagination.TotalCount)
	assert.Equal(t, int32(5), pagination.TotalPages)
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetCustomer(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpstreamErrorCarriesStatusAndMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "checkout date is in the past"}`))
	})

	_, err := c.GetCustomer(context.Background(), 301)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "checkout date is in the past", apiErr.Message)
}

func TestMalformedBodyRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"customerId": "not-a-number"}`))
	})

	_, err := c.GetCustomer(context.Background(), 301)
	assert.Error(t, err)
}

func TestCreateCustomerReturnsNewID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"customerId": 302}`))
	})

	id, err := c.CreateCustomer(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(302), id)
}

func TestRateParamsValues(t *testing.T) {
	checkout := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	p := RateParams{
		VehicleTypeID:      7,
		CheckoutLocationID: 5,
		CheckoutDate:       checkout,
		CheckinDate:        checkout.Add(96 * time.Hour),
		RateName:           "Standard",
	}

	values := p.values()
	assert.Equal(t, "7", values.Get("VehicleTypeId"))
	assert.Equal(t, "5", values.Get("LocationId"))
	assert.Equal(t, "2024-03-01T10:00:00Z", values.Get("CheckoutDate"))
	assert.Equal(t, "Standard", values.Get("RateName"))
	assert.Empty(t, values.Get("AgreementId"), "zero agreement id stays off the wire")
}

func TestCalculateSummaryDefaultsClientID(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"total": 260.5, "balanceDue": 260.5}`))
	})

	summary, err := c.CalculateSummary(context.Background(), &SummaryRequest{LocationID: 5})
	require.NoError(t, err)
	assert.Equal(t, 260.5, summary.Total)
	assert.Contains(t, gotBody, `"clientId":"622"`)
}
