package navotar

import (
	"context"
	"net/url"
	"strconv"

	"rentaldesk-backend/internal/domain"
)

type reservationListEnvelope struct {
	envelopePagination
	Data []domain.Reservation `json:"data"`
}

// ListReservations returns one page of reservations with the given filters
func (c *Client) ListReservations(ctx context.Context, page, size int, filters map[string]string) ([]domain.Reservation, Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(size))
	for key, val := range filters {
		query.Set(key, val)
	}

	var envelope reservationListEnvelope
	if _, err := c.get(ctx, "/reservations", query, &envelope); err != nil {
		return nil, Pagination{}, err
	}
	return envelope.Data, envelope.normalize(), nil
}

// GetReservation fetches the full aggregate for view/edit
func (c *Client) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if _, err := c.get(ctx, "/reservations/"+strconv.Itoa(int(id)), nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CreateReservation persists a new reservation aggregate and returns its id
func (c *Client) CreateReservation(ctx context.Context, reservation *domain.Reservation) (int32, error) {
	var created struct {
		ReservationID int32 `json:"reservationId"`
	}
	if err := c.post(ctx, "/reservations", reservation, &created); err != nil {
		return 0, err
	}
	return created.ReservationID, nil
}

// UpdateReservation overwrites an existing reservation aggregate
func (c *Client) UpdateReservation(ctx context.Context, reservation *domain.Reservation) error {
	return c.put(ctx, "/reservations/"+strconv.Itoa(int(reservation.ID)), reservation, nil)
}

// ListReservationStatuses returns the status lookup values
func (c *Client) ListReservationStatuses(ctx context.Context) ([]string, error) {
	var statuses []struct {
		Name string `json:"name"`
	}
	if _, err := c.get(ctx, "/reservations/statuses", nil, &statuses); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.Name)
	}
	return names, nil
}

// ListReservationTypes returns the reservation type lookup values
func (c *Client) ListReservationTypes(ctx context.Context) ([]string, error) {
	var types []struct {
		TypeName string `json:"typeName"`
	}
	if _, err := c.get(ctx, "/reservations/types", nil, &types); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.TypeName)
	}
	return names, nil
}

// SearchReservations is the small-limit lookup used by global search
func (c *Client) SearchReservations(ctx context.Context, text string, limit int) ([]domain.Reservation, error) {
	query := url.Values{}
	query.Set("SearchText", text)
	query.Set("pageSize", strconv.Itoa(limit))

	var envelope reservationListEnvelope
	if _, err := c.get(ctx, "/reservations", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
