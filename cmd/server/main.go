package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "rentaldesk-backend/internal/api/http"
	"rentaldesk-backend/internal/config"
	"rentaldesk-backend/internal/jobs"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/query"
	"rentaldesk-backend/internal/scheduler"
	"rentaldesk-backend/internal/security"
	"rentaldesk-backend/internal/service"
	"rentaldesk-backend/internal/wizard"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rental Desk backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Upstream configuration", "base_url", cfg.Upstream.BaseURL, "client_id", cfg.Upstream.ClientID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize token verification against the identity provider
	verifier, err := security.NewJWKSVerifier(ctx, cfg.Auth.JWKSURL, cfg.Auth.Issuer, cfg.Auth.Audience)
	if err != nil {
		logger.Error("Failed to initialize JWKS verifier", "error", err)
		log.Fatalf("Failed to initialize JWKS verifier: %v", err)
	}
	defer verifier.Close()

	// Initialize the upstream API client; each call forwards the
	// session's own bearer token
	api, err := navotar.New(cfg.Upstream.BaseURL, cfg.Upstream.ClientID, cfg.Upstream.UserID, cfg.UpstreamTimeout(), navotar.ContextToken{})
	if err != nil {
		logger.Error("Failed to initialize upstream client", "error", err)
		log.Fatalf("Failed to initialize upstream client: %v", err)
	}

	// Initialize shared infrastructure
	cache := query.NewCache()
	sessions := wizard.NewStore()
	lookupTTL := time.Duration(cfg.Cache.LookupTTLMinutes) * time.Minute
	dashboardTTL := time.Duration(cfg.Cache.DashboardTTLMinutes) * time.Minute

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
		logger.Info("Email confirmations enabled", "from", cfg.Email.From)
	}

	// Initialize Services
	customerSvc := service.NewCustomerService(api)
	fleetSvc := service.NewFleetService(api, cache, lookupTTL)
	agreementSvc := service.NewAgreementService(api, cache, lookupTTL)
	reservationSvc := service.NewReservationService(api, cache, lookupTTL)
	wizardSvc := service.NewRentalWizardService(api, sessions, emailSvc, cfg.Upstream.ClientID)
	dashboardSvc := service.NewDashboardService(api, cache, dashboardTTL)
	searchSvc := service.NewGlobalSearchService(api)
	reportSvc := service.NewReportService(api)
	userSvc := service.NewUserService(api, cache, lookupTTL)

	// Wire the HTTP surface
	auth := httpapi.NewAuthMiddleware(verifier, cfg.Auth.LoginURL)
	server := httpapi.NewServer(
		customerSvc,
		fleetSvc,
		agreementSvc,
		reservationSvc,
		wizardSvc,
		dashboardSvc,
		searchSvc,
		reportSvc,
		userSvc,
		auth,
	)

	// Background jobs cannot borrow a user's session token, so they get
	// their own client authenticated with service credentials. It shares
	// the cache with the request-path dashboard service.
	var jobsDashboardSvc service.DashboardService
	if cfg.HasServiceCredentials() {
		creds := navotar.NewClientCredentials(cfg.Auth.TokenURL, cfg.Upstream.ClientID, cfg.Auth.ClientSecret, cfg.Auth.Scope)
		jobsAPI, err := navotar.New(cfg.Upstream.BaseURL, cfg.Upstream.ClientID, cfg.Upstream.UserID, cfg.UpstreamTimeout(), creds)
		if err != nil {
			logger.Error("Failed to initialize jobs upstream client", "error", err)
			log.Fatalf("Failed to initialize jobs upstream client: %v", err)
		}
		jobsDashboardSvc = service.NewDashboardService(jobsAPI, cache, dashboardTTL)
	}

	// Start the scheduler
	jobRunner := jobs.NewJobRunner(cfg, wizardSvc, jobsDashboardSvc)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
