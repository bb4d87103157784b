package navotar

import (
	"context"
	"net/url"
	"strconv"

	"rentaldesk-backend/internal/domain"
)

// ListCustomers returns one page of customers with the given filters
// (name, phone, email, etc. pass through as query parameters)
func (c *Client) ListCustomers(ctx context.Context, page, size int, filters map[string]string) ([]domain.Customer, Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(size))
	for key, val := range filters {
		query.Set(key, val)
	}

	var customers []domain.Customer
	resp, err := c.get(ctx, "/customers", query, &customers)
	if err != nil {
		return nil, Pagination{}, err
	}
	pagination, err := parsePaginationHeader(resp)
	if err != nil {
		return nil, Pagination{}, err
	}
	return customers, pagination, nil
}

// GetCustomer fetches one customer by id
func (c *Client) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	var customer domain.Customer
	if _, err := c.get(ctx, "/customers/"+strconv.Itoa(int(id)), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer persists a new customer and returns its id
func (c *Client) CreateCustomer(ctx context.Context, customer *domain.Customer) (int32, error) {
	var created struct {
		CustomerID int32 `json:"customerId"`
	}
	if err := c.post(ctx, "/customers", customer, &created); err != nil {
		return 0, err
	}
	return created.CustomerID, nil
}

// UpdateCustomer overwrites an existing customer record
func (c *Client) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return c.put(ctx, "/customers/"+strconv.Itoa(int(customer.ID)), customer, nil)
}

// SearchCustomers is the small-limit lookup used by global search
func (c *Client) SearchCustomers(ctx context.Context, text string, limit int) ([]domain.Customer, error) {
	query := url.Values{}
	query.Set("SearchText", text)
	query.Set("pageSize", strconv.Itoa(limit))

	var customers []domain.Customer
	if _, err := c.get(ctx, "/customers", query, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
