package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/wizard"
)

var ErrSessionNotFound = errors.New("wizard session not found")

type rentalWizardService struct {
	api      *navotar.Client
	store    *wizard.Store
	emailSvc EmailService
	clientID string
}

func NewRentalWizardService(api *navotar.Client, store *wizard.Store, emailSvc EmailService, clientID string) RentalWizardService {
	return &rentalWizardService{
		api:      api,
		store:    store,
		emailSvc: emailSvc,
		clientID: clientID,
	}
}

// StartNew opens an empty wizard session
func (s *rentalWizardService) StartNew(ctx context.Context) (*wizard.Wizard, error) {
	return s.store.Create(s.api, s.clientID, wizard.ModeNew), nil
}

// StartEdit opens a session hydrated from an existing agreement
func (s *rentalWizardService) StartEdit(ctx context.Context, agreementID int32, checkin bool) (*wizard.Wizard, error) {
	agreement, err := s.api.GetAgreement(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agreement %d: %w", agreementID, err)
	}

	mode := wizard.ModeEdit
	if checkin {
		mode = wizard.ModeCheckin
	}
	w := s.store.Create(s.api, s.clientID, mode)
	w.Hydrate(ctx, agreement)
	return w, nil
}

func (s *rentalWizardService) Get(sessionID string) (*wizard.Wizard, bool) {
	return s.store.Get(sessionID)
}

// Cancel discards the session; nothing was persisted mid-wizard, so there
// is nothing else to undo
func (s *rentalWizardService) Cancel(sessionID string) {
	s.store.Delete(sessionID)
}

// Submit posts the completed aggregate upstream. The session closes only on
// success; upstream validation errors surface to the caller with the
// session intact.
func (s *rentalWizardService) Submit(ctx context.Context, sessionID string) (int32, error) {
	w, ok := s.store.Get(sessionID)
	if !ok {
		return 0, ErrSessionNotFound
	}

	agreement, err := w.Aggregate()
	if err != nil {
		return 0, err
	}

	id := agreement.ID
	if id == 0 {
		id, err = s.api.CreateAgreement(ctx, agreement)
	} else {
		err = s.api.UpdateAgreement(ctx, agreement)
	}
	if err != nil {
		return 0, err
	}

	s.store.Delete(sessionID)
	logger.Info("rental submitted", "agreement_id", id, "session_id", sessionID)

	s.sendConfirmation(ctx, agreement.CustomerID, id)
	return id, nil
}

// sendConfirmation mails the customer, best effort; a mail failure never
// fails the submit
func (s *rentalWizardService) sendConfirmation(ctx context.Context, customerID, agreementID int32) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.api.GetCustomer(ctx, customerID)
	if err != nil {
		logger.Warn("confirmation skipped, customer lookup failed", "customer_id", customerID, "error", err)
		return
	}
	if customer.Email == "" {
		return
	}
	number := fmt.Sprintf("%d", agreementID)
	if err := s.emailSvc.SendAgreementConfirmation(ctx, customer.Email, customer.FullName(), number); err != nil {
		logger.Warn("confirmation email failed", "customer_id", customerID, "error", err)
	}
}

func (s *rentalWizardService) SweepIdle(maxIdle time.Duration) int {
	return s.store.SweepIdle(maxIdle)
}
