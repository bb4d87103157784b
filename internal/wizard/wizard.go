// Package wizard hosts the staged rental creation/edit state machine. Each
// session holds the draft for one agreement or reservation; every mutation
// goes through a named transition that also applies the downstream
// invalidation and derivation rules, so the cascade behavior lives in one
// table instead of scattered change handlers.
package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/schema"
)

var (
	ErrIncomplete   = errors.New("required wizard stages are incomplete")
	ErrNoSuchCharge = errors.New("charge is not in the applicable set")
	ErrMandatory    = errors.New("mandatory selection cannot be removed")
)

// Mode distinguishes a fresh draft from one hydrated off an existing record
type Mode string

const (
	ModeNew     Mode = "new"
	ModeEdit    Mode = "edit"
	ModeCheckin Mode = "checkin"
)

// Backend is the slice of the upstream API the wizard depends on
type Backend interface {
	GetOptimalRate(ctx context.Context, params navotar.RateParams) (*domain.OptimalRate, error)
	ListRateNames(ctx context.Context, params navotar.RateParams) ([]string, error)
	ListRates(ctx context.Context, params navotar.RateParams) ([]domain.Rate, error)
	ListMiscCharges(ctx context.Context, vehicleTypeID, locationID int32, checkout, checkin time.Time) ([]domain.MiscCharge, error)
	ListTaxes(ctx context.Context, locationID int32) ([]domain.Tax, error)
	CalculateSummary(ctx context.Context, req *navotar.SummaryRequest) (*domain.RentalSummary, error)
}

// VehicleInfo is the vehicle-stage working data
type VehicleInfo struct {
	VehicleID     int32  `json:"vehicleId"`
	VehicleTypeID int32  `json:"vehicleTypeId"`
	VehicleNo     string `json:"vehicleNo"`
	FuelOut       string `json:"fuelOut,omitempty"`
	OdometerOut   int32  `json:"odometerOut,omitempty"`
}

// CustomerInfo is the customer-stage working data
type CustomerInfo struct {
	CustomerID int32  `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Wizard is one in-flight rental draft. It lives only in memory for the
// duration of the visit; cancel or idle expiry discards it.
type Wizard struct {
	mu sync.Mutex

	ID   string
	mode Mode

	backend  Backend
	clientID string

	agreementID   int32
	agreementType string

	stages   StageTracker
	duration *domain.Duration
	customer *CustomerInfo
	vehicle  *VehicleInfo

	rateName string
	rate     *domain.Rate

	available   []domain.MiscCharge
	miscCharges []domain.SelectedMiscCharge

	taxes          []domain.Tax
	taxIDs         []int32
	taxesPopulated bool

	persistedSummary *domain.RentalSummary
	liveSummary      *domain.RentalSummary
	edited           bool

	lastActive time.Time
}

func newWizard(id string, mode Mode, backend Backend, clientID string) *Wizard {
	return &Wizard{
		ID:         id,
		mode:       mode,
		backend:    backend,
		clientID:   clientID,
		stages:     NewStageTracker(),
		lastActive: time.Now(),
	}
}

func (w *Wizard) touch() {
	w.lastActive = time.Now()
}

func (w *Wizard) isEdit() bool {
	return w.mode == ModeEdit || w.mode == ModeCheckin
}

// DurationChanged records the rental-duration stage. A checkout location
// different from the previously stored one (first-time entry never counts)
// triggers the cascade reset: vehicle, rate, misc charges and taxes are
// cleared and their stages marked incomplete.
func (w *Wizard) DurationChanged(ctx context.Context, d domain.Duration) error {
	if err := schema.ValidateDuration(&d); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.duration != nil && w.duration.CheckoutLocationID != d.CheckoutLocationID {
		w.cascadeReset()
	}

	copied := d
	w.duration = &copied
	w.stages.Complete(StageRental)
	w.edited = true

	w.deriveLocked(ctx)
	return nil
}

// cascadeReset clears every selection computed against the old checkout
// location. Caller holds the lock.
func (w *Wizard) cascadeReset() {
	logger.WithSession(w.ID).Debug("checkout location changed, clearing dependent selections")
	w.vehicle = nil
	w.rateName = ""
	w.rate = nil
	w.available = nil
	w.miscCharges = nil
	w.taxes = nil
	w.taxIDs = nil
	w.taxesPopulated = false
	w.liveSummary = nil
	w.stages.Reset(StageVehicle)
	w.stages.Reset(StageRates)
	w.stages.Reset(StageTaxes)
	w.stages.Reset(StageMiscCharges)
}

// CustomerSelected records the customer stage
func (w *Wizard) CustomerSelected(ctx context.Context, info CustomerInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.customer = &info
	w.stages.Complete(StageCustomer)
	w.edited = true

	w.deriveLocked(ctx)
	return nil
}

// VehicleSelected records the vehicle stage
func (w *Wizard) VehicleSelected(ctx context.Context, info VehicleInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.vehicle = &info
	w.stages.Complete(StageVehicle)
	w.edited = true

	w.deriveLocked(ctx)
	return nil
}

// RateNames lists the named schemes selectable for the current duration and
// vehicle; empty until both are entered.
func (w *Wizard) RateNames(ctx context.Context) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.duration == nil || w.vehicle == nil {
		return nil, nil
	}
	return w.backend.ListRateNames(ctx, navotar.RateParams{
		VehicleTypeID:      w.vehicle.VehicleTypeID,
		CheckoutLocationID: w.duration.CheckoutLocationID,
		CheckoutDate:       w.duration.CheckoutDate,
		CheckinDate:        w.duration.CheckinDate,
		AgreementID:        w.agreementID,
		AgreementTypeName:  w.agreementType,
	})
}

// RateNameSelected records the chosen rate name and fetches its full
// definition; the first returned record becomes the working rate and the
// rates stage completes.
func (w *Wizard) RateNameSelected(ctx context.Context, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.rateName = name
	w.rate = nil
	w.stages.Reset(StageRates)
	w.edited = true
	if name == "" {
		w.liveSummary = nil
		return nil
	}

	if err := w.fetchRateDetailLocked(ctx); err != nil {
		return err
	}
	w.recomputeSummaryLocked(ctx)
	return nil
}

// RateEdited merges the rate-form edits over the previously fetched rate so
// fields not present in the form (ids, classifier flags) survive, then
// advances the stage.
func (w *Wizard) RateEdited(ctx context.Context, edits domain.Rate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.rate == nil {
		return errors.New("no rate fetched to edit")
	}

	mergeRateEdits(w.rate, &edits)
	w.stages.Complete(StageRates)
	w.edited = true

	w.recomputeSummaryLocked(ctx)
	return nil
}

// mergeRateEdits copies the user-editable pricing fields from edits onto
// base; identity and classifier fields are never taken from the form
func mergeRateEdits(base, edits *domain.Rate) {
	switch base.Layout() {
	case domain.RateLayoutFlatDaily:
		base.DailyQty = edits.DailyQty
		base.DailyRate = edits.DailyRate
	case domain.RateLayoutDayOfWeek:
		base.MonCount, base.MonRate = edits.MonCount, edits.MonRate
		base.TueCount, base.TueRate = edits.TueCount, edits.TueRate
		base.WedCount, base.WedRate = edits.WedCount, edits.WedRate
		base.ThuCount, base.ThuRate = edits.ThuCount, edits.ThuRate
		base.FriCount, base.FriRate = edits.FriCount, edits.FriRate
		base.SatCount, base.SatRate = edits.SatCount, edits.SatRate
		base.SunCount, base.SunRate = edits.SunCount, edits.SunRate
	default:
		base.HourlyQty, base.HourlyRate = edits.HourlyQty, edits.HourlyRate
		base.HalfDayQty, base.HalfDayRate = edits.HalfDayQty, edits.HalfDayRate
		base.DailyQty, base.DailyRate = edits.DailyQty, edits.DailyRate
		base.WeeklyQty, base.WeeklyRate = edits.WeeklyQty, edits.WeeklyRate
		base.MonthlyQty, base.MonthlyRate = edits.MonthlyQty, edits.MonthlyRate
		base.WeekendQty, base.WeekendRate = edits.WeekendQty, edits.WeekendRate
	}
	base.DailyKMorMileageAllowed = edits.DailyKMorMileageAllowed
	base.WeeklyKMorMileageAllowed = edits.WeeklyKMorMileageAllowed
	base.MonthlyKMorMileageAllowed = edits.MonthlyKMorMileageAllowed
	base.KMorMileageCharge = edits.KMorMileageCharge
	base.FuelCharge = edits.FuelCharge
}

// deriveLocked runs the dependent derivations after a duration, customer or
// vehicle transition: optimal-rate suggestion, applicable misc charges, tax
// defaults and the pricing summary. Derivation failures are logged and keep
// the last-known state rather than failing the transition. Caller holds the
// lock.
func (w *Wizard) deriveLocked(ctx context.Context) {
	w.resolveOptimalRateLocked(ctx)
	w.refreshMiscChargesLocked(ctx)
	w.populateTaxesLocked(ctx)
	w.recomputeSummaryLocked(ctx)
}

// resolveOptimalRateLocked pre-selects a default rate name for a new rental
// once vehicle type and checkout location are known. The suggestion is
// applied only while the selection is still the empty-string default; it
// never overrides a user's choice.
func (w *Wizard) resolveOptimalRateLocked(ctx context.Context) {
	if w.isEdit() || w.stages.IsComplete(StageRates) || w.rateName != "" {
		return
	}
	if w.vehicle == nil || w.vehicle.VehicleTypeID == 0 || w.duration == nil || w.duration.CheckoutLocationID == 0 {
		return
	}

	optimal, err := w.backend.GetOptimalRate(ctx, navotar.RateParams{
		VehicleTypeID:      w.vehicle.VehicleTypeID,
		CheckoutLocationID: w.duration.CheckoutLocationID,
		CheckoutDate:       w.duration.CheckoutDate,
		CheckinDate:        w.duration.CheckinDate,
	})
	if err != nil {
		logger.WithSession(w.ID).Warn("optimal rate lookup failed", "error", err)
		return
	}
	if optimal == nil || optimal.RateName == "" {
		return
	}
	if w.rateName != "" {
		// the user picked a rate while we were looking; discard
		return
	}

	w.rateName = optimal.RateName
	if err := w.fetchRateDetailLocked(ctx); err != nil {
		logger.WithSession(w.ID).Warn("suggested rate fetch failed", "rate", optimal.RateName, "error", err)
	}
}

// fetchRateDetailLocked loads the full definition of the selected rate
// name. Caller holds the lock and guarantees rateName is non-empty.
func (w *Wizard) fetchRateDetailLocked(ctx context.Context) error {
	if w.duration == nil || w.vehicle == nil {
		return nil
	}

	rates, err := w.backend.ListRates(ctx, navotar.RateParams{
		VehicleTypeID:      w.vehicle.VehicleTypeID,
		CheckoutLocationID: w.duration.CheckoutLocationID,
		CheckoutDate:       w.duration.CheckoutDate,
		CheckinDate:        w.duration.CheckinDate,
		RateName:           w.rateName,
		AgreementID:        w.agreementID,
		AgreementTypeName:  w.agreementType,
	})
	if err != nil {
		return err
	}
	if len(rates) == 0 {
		return nil
	}

	w.rate = &rates[0]
	w.stages.Complete(StageRates)
	return nil
}

// recomputeSummaryLocked asks the upstream pricing endpoint for a fresh
// summary whenever duration, vehicle, customer and a selected rate are all
// present. Caller holds the lock.
func (w *Wizard) recomputeSummaryLocked(ctx context.Context) {
	if w.duration == nil || w.vehicle == nil || w.customer == nil || w.rate == nil {
		return
	}

	req := &navotar.SummaryRequest{
		ClientID:          w.clientID,
		LocationID:        w.duration.CheckoutLocationID,
		CheckinLocationID: w.duration.CheckinLocationID,
		VehicleTypeID:     w.vehicle.VehicleTypeID,
		VehicleID:         w.vehicle.VehicleID,
		CustomerID:        w.customer.CustomerID,
		CheckoutDate:      w.duration.CheckoutDate,
		CheckinDate:       w.duration.CheckinDate,
		Rate:              w.rate,
		MiscCharges:       append([]domain.SelectedMiscCharge(nil), w.miscCharges...),
		TaxIDs:            append([]int32(nil), w.taxIDs...),
		AgreementID:       w.agreementID,
		AgreementTypeName: w.agreementType,
		PromotionIDs:      []int32{},
	}

	summary, err := w.backend.CalculateSummary(ctx, req)
	if err != nil {
		logger.WithSession(w.ID).Warn("summary recomputation failed", "error", err)
		return
	}
	w.liveSummary = summary
}

// Summary applies the display policy: while editing an existing record the
// persisted summary shows until the first edit of the session; a fresh
// draft shows the live summary as soon as one exists, otherwise nothing.
func (w *Wizard) Summary() *domain.RentalSummary {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isEdit() && !w.edited {
		return w.persistedSummary
	}
	if w.liveSummary != nil {
		return w.liveSummary
	}
	if w.isEdit() {
		return w.persistedSummary
	}
	return nil
}

// CanSubmit reports whether the Create/Save action is enabled
func (w *Wizard) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stages.CanSubmit()
}

// Aggregate assembles the draft into the agreement payload for submission.
// It fails while any required stage is incomplete.
func (w *Wizard) Aggregate() (*domain.Agreement, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.stages.CanSubmit() {
		return nil, ErrIncomplete
	}

	agreement := &domain.Agreement{
		ID:                 w.agreementID,
		AgreementType:      w.agreementType,
		CheckoutDate:       w.duration.CheckoutDate,
		CheckinDate:        w.duration.CheckinDate,
		CheckoutLocationID: w.duration.CheckoutLocationID,
		CheckinLocationID:  w.duration.CheckinLocationID,
		CustomerID:         w.customer.CustomerID,
		VehicleID:          w.vehicle.VehicleID,
		VehicleTypeID:      w.vehicle.VehicleTypeID,
		VehicleNo:          w.vehicle.VehicleNo,
		RateName:           w.rateName,
		Rate:               w.rate,
		MiscCharges:        append([]domain.SelectedMiscCharge(nil), w.miscCharges...),
		TaxIDs:             append([]int32(nil), w.taxIDs...),
	}
	return agreement, nil
}

// State is a snapshot of the session for the API layer
type State struct {
	ID          string                      `json:"id"`
	Mode        Mode                        `json:"mode"`
	Stages      map[Stage]bool              `json:"stages"`
	CanSubmit   bool                        `json:"canSubmit"`
	Duration    *domain.Duration            `json:"duration,omitempty"`
	Customer    *CustomerInfo               `json:"customer,omitempty"`
	Vehicle     *VehicleInfo                `json:"vehicle,omitempty"`
	RateName    string                      `json:"rateName,omitempty"`
	Rate        *domain.Rate                `json:"rate,omitempty"`
	MiscCharges []domain.SelectedMiscCharge `json:"miscCharges"`
	Applicable  []domain.MiscCharge         `json:"applicableCharges"`
	Taxes       []domain.Tax                `json:"taxes"`
	TaxIDs      []int32                     `json:"taxIds"`
	Summary     *domain.RentalSummary       `json:"summary,omitempty"`
}

// Snapshot returns a copy of the session state
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := State{
		ID:          w.ID,
		Mode:        w.mode,
		Stages:      w.stages.clone(),
		CanSubmit:   w.stages.CanSubmit(),
		RateName:    w.rateName,
		MiscCharges: append([]domain.SelectedMiscCharge(nil), w.miscCharges...),
		Applicable:  append([]domain.MiscCharge(nil), w.available...),
		Taxes:       append([]domain.Tax(nil), w.taxes...),
		TaxIDs:      append([]int32(nil), w.taxIDs...),
	}
	if w.duration != nil {
		d := *w.duration
		s.Duration = &d
	}
	if w.customer != nil {
		c := *w.customer
		s.Customer = &c
	}
	if w.vehicle != nil {
		v := *w.vehicle
		s.Vehicle = &v
	}
	if w.rate != nil {
		r := *w.rate
		s.Rate = &r
	}
	summary := w.liveSummary
	if w.isEdit() && (!w.edited || w.liveSummary == nil) {
		summary = w.persistedSummary
	}
	if summary != nil {
		sum := *summary
		s.Summary = &sum
	}
	return s
}
