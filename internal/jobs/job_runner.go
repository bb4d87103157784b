package jobs

import (
	"context"
	"time"

	"rentaldesk-backend/internal/config"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/service"
)

// JobRunner executes the scheduled maintenance jobs
type JobRunner struct {
	cfg       *config.Config
	wizards   service.RentalWizardService
	dashboard service.DashboardService
}

// NewJobRunner creates a runner over the services the jobs touch
func NewJobRunner(cfg *config.Config, wizards service.RentalWizardService, dashboard service.DashboardService) *JobRunner {
	return &JobRunner{cfg: cfg, wizards: wizards, dashboard: dashboard}
}

// Config exposes the loaded configuration to the scheduler
func (j *JobRunner) Config() *config.Config {
	return j.cfg
}

// SweepWizardSessions evicts wizard sessions left idle past the configured
// window; abandoned drafts are never persisted, just dropped
func (j *JobRunner) SweepWizardSessions() {
	removed := j.wizards.SweepIdle(j.cfg.SessionIdle())
	if removed > 0 {
		logger.Info("swept idle wizard sessions", "removed", removed)
	}
}

// RefreshesDashboard reports whether a dashboard service with its own
// credentials was wired in; without one the refresh job is not scheduled
func (j *JobRunner) RefreshesDashboard() bool {
	return j.dashboard != nil
}

// RefreshDashboard keeps the all-locations counters warm
func (j *JobRunner) RefreshDashboard() {
	if j.dashboard == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := j.dashboard.RefreshStats(ctx); err != nil {
		logger.Warn("dashboard refresh failed", "error", err)
	}
}
