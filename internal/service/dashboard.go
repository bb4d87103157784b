package service

import (
	"context"
	"fmt"
	"time"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/query"
)

type dashboardService struct {
	api   *navotar.Client
	cache *query.Cache
	ttl   time.Duration
}

func NewDashboardService(api *navotar.Client, cache *query.Cache, ttl time.Duration) DashboardService {
	return &dashboardService{api: api, cache: cache, ttl: ttl}
}

func (s *dashboardService) GetWidgets(ctx context.Context) ([]domain.DashboardWidget, error) {
	value, err := s.cache.Fetch(ctx, "dashboard-widgets", s.ttl, func(ctx context.Context) (any, error) {
		return s.api.ListDashboardWidgets(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.DashboardWidget), nil
}

// SaveWidgets persists a layout change and invalidates the cached copy
func (s *dashboardService) SaveWidgets(ctx context.Context, widgets []domain.DashboardWidget) error {
	if err := s.api.SaveDashboardWidgets(ctx, widgets); err != nil {
		return err
	}
	s.cache.Invalidate("dashboard-widgets")
	return nil
}

func (s *dashboardService) GetStats(ctx context.Context, locationID int32) (*domain.DashboardStats, error) {
	key := fmt.Sprintf("dashboard-stats:%d", locationID)
	value, err := s.cache.Fetch(ctx, key, s.ttl, func(ctx context.Context) (any, error) {
		return s.api.GetDashboardStats(ctx, locationID, time.Now())
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.DashboardStats), nil
}

func (s *dashboardService) GetNotices(ctx context.Context) ([]domain.DashboardNotice, error) {
	value, err := s.cache.Fetch(ctx, "dashboard-notices", s.ttl, func(ctx context.Context) (any, error) {
		return s.api.ListDashboardNotices(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.DashboardNotice), nil
}

// RefreshStats repopulates the all-locations counters out of band; the
// scheduler calls this so the dashboard stays warm
func (s *dashboardService) RefreshStats(ctx context.Context) error {
	stats, err := s.api.GetDashboardStats(ctx, 0, time.Now())
	if err != nil {
		return err
	}
	s.cache.Put("dashboard-stats:0", stats, s.ttl)
	return nil
}
