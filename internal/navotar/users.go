package navotar

import (
	"context"
	"strconv"

	"rentaldesk-backend/internal/domain"
)

// GetUserProfile fetches the operator profile for the given user
func (c *Client) GetUserProfile(ctx context.Context, userID int32) (*domain.User, error) {
	var user domain.User
	if _, err := c.get(ctx, "/users/"+strconv.Itoa(int(userID)), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUserPermissions fetches the capability set for the given user
func (c *Client) ListUserPermissions(ctx context.Context, userID int32) ([]domain.Permission, error) {
	var permissions []domain.Permission
	if _, err := c.get(ctx, "/users/"+strconv.Itoa(int(userID))+"/permissions", nil, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}
