package service

import (
	"context"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/schema"
)

type customerService struct {
	api *navotar.Client
}

func NewCustomerService(api *navotar.Client) CustomerService {
	return &customerService{api: api}
}

func (s *customerService) SearchCustomers(ctx context.Context, params schema.SearchParams) ([]domain.Customer, navotar.Pagination, error) {
	return s.api.ListCustomers(ctx, params.Page, params.Size, params.Filters)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.api.GetCustomer(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (int32, error) {
	if err := schema.ValidateCustomer(customer); err != nil {
		return 0, err
	}
	return s.api.CreateCustomer(ctx, customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := schema.ValidateCustomer(customer); err != nil {
		return err
	}
	return s.api.UpdateCustomer(ctx, customer)
}
