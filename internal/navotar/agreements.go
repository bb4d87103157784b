package navotar

import (
	"context"
	"net/url"
	"strconv"

	"rentaldesk-backend/internal/domain"
)

// agreementListEnvelope is the newer-generation list response with
// pagination folded into the body
type agreementListEnvelope struct {
	envelopePagination
	Data []domain.Agreement `json:"data"`
}

// ListAgreements returns one page of agreements with the given filters
func (c *Client) ListAgreements(ctx context.Context, page, size int, filters map[string]string) ([]domain.Agreement, Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(size))
	for key, val := range filters {
		query.Set(key, val)
	}

	var envelope agreementListEnvelope
	if _, err := c.get(ctx, "/agreements", query, &envelope); err != nil {
		return nil, Pagination{}, err
	}
	return envelope.Data, envelope.normalize(), nil
}

// GetAgreement fetches the full aggregate for view/edit/check-in
func (c *Client) GetAgreement(ctx context.Context, id int32) (*domain.Agreement, error) {
	var agreement domain.Agreement
	if _, err := c.get(ctx, "/agreements/"+strconv.Itoa(int(id)), nil, &agreement); err != nil {
		return nil, err
	}
	return &agreement, nil
}

// CreateAgreement persists a new agreement aggregate and returns its id
func (c *Client) CreateAgreement(ctx context.Context, agreement *domain.Agreement) (int32, error) {
	var created struct {
		AgreementID int32 `json:"agreementId"`
	}
	if err := c.post(ctx, "/agreements", agreement, &created); err != nil {
		return 0, err
	}
	return created.AgreementID, nil
}

// UpdateAgreement overwrites an existing agreement aggregate
func (c *Client) UpdateAgreement(ctx context.Context, agreement *domain.Agreement) error {
	return c.put(ctx, "/agreements/"+strconv.Itoa(int(agreement.ID)), agreement, nil)
}

// ListAgreementStatuses returns the status lookup values
func (c *Client) ListAgreementStatuses(ctx context.Context) ([]string, error) {
	var statuses []struct {
		Name string `json:"name"`
	}
	if _, err := c.get(ctx, "/agreements/statuses", nil, &statuses); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.Name)
	}
	return names, nil
}

// ListAgreementTypes returns the agreement type lookup values
func (c *Client) ListAgreementTypes(ctx context.Context) ([]string, error) {
	var types []struct {
		TypeName string `json:"typeName"`
	}
	if _, err := c.get(ctx, "/agreements/types", nil, &types); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.TypeName)
	}
	return names, nil
}

// SearchAgreements is the small-limit lookup used by global search
func (c *Client) SearchAgreements(ctx context.Context, text string, limit int) ([]domain.Agreement, error) {
	query := url.Values{}
	query.Set("SearchText", text)
	query.Set("pageSize", strconv.Itoa(limit))

	var envelope agreementListEnvelope
	if _, err := c.get(ctx, "/agreements", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
