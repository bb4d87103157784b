package service

import (
	"context"
	"fmt"
	"time"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/query"
)

type userService struct {
	api       *navotar.Client
	cache     *query.Cache
	lookupTTL time.Duration
}

func NewUserService(api *navotar.Client, cache *query.Cache, lookupTTL time.Duration) UserService {
	return &userService{api: api, cache: cache, lookupTTL: lookupTTL}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	key := fmt.Sprintf("user-profile:%d", userID)
	value, err := s.cache.Fetch(ctx, key, s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.GetUserProfile(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.User), nil
}

func (s *userService) GetPermissions(ctx context.Context, userID int32) ([]domain.Permission, error) {
	key := fmt.Sprintf("user-permissions:%d", userID)
	value, err := s.cache.Fetch(ctx, key, s.lookupTTL, func(ctx context.Context) (any, error) {
		return s.api.ListUserPermissions(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.Permission), nil
}
