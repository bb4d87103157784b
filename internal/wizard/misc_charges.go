package wizard

import (
	"context"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/logger"
)

// refreshMiscChargesLocked reloads the applicable charge list once dates,
// checkout location and vehicle type are all known, then re-applies the
// mandatory-charge rule. Caller holds the lock.
func (w *Wizard) refreshMiscChargesLocked(ctx context.Context) {
	if w.duration == nil || w.vehicle == nil || w.vehicle.VehicleTypeID == 0 || w.duration.CheckoutLocationID == 0 {
		return
	}

	charges, err := w.backend.ListMiscCharges(ctx,
		w.vehicle.VehicleTypeID,
		w.duration.CheckoutLocationID,
		w.duration.CheckoutDate,
		w.duration.CheckinDate,
	)
	if err != nil {
		logger.WithSession(w.ID).Warn("misc charge lookup failed", "error", err)
		return
	}

	w.available = charges
	w.applyMandatoryChargesLocked()
}

// applyMandatoryChargesLocked forces every non-optional charge into the
// selection. A charge already selected keeps its entered quantity, price
// and option; anything else gets the server defaults (quantity 1, full
// price, first deductible option). Caller holds the lock.
func (w *Wizard) applyMandatoryChargesLocked() {
	for _, charge := range w.available {
		if charge.IsOptional {
			continue
		}
		if prior := w.findSelected(charge.ID); prior != nil {
			prior.IsOptional = false
			continue
		}
		w.miscCharges = append(w.miscCharges, defaultSelection(&charge))
	}
}

// defaultSelection builds the server-default selection entry for a charge:
// quantity 1, price at Total, and for a deductible charge with options the
// first option pre-chosen with its value applied.
func defaultSelection(charge *domain.MiscCharge) domain.SelectedMiscCharge {
	sel := domain.SelectedMiscCharge{
		ID:         charge.ID,
		Name:       charge.Name,
		Quantity:   1,
		Unit:       charge.Total,
		Value:      charge.Total,
		IsOptional: charge.IsOptional,
		StartDate:  charge.StartDate,
		EndDate:    charge.EndDate,
	}
	if charge.IsDeductible && len(charge.Options) > 0 {
		sel.OptionID = charge.Options[0].ID
		sel.Value = charge.Options[0].Value
	}
	return sel
}

func (w *Wizard) findSelected(chargeID int32) *domain.SelectedMiscCharge {
	for i := range w.miscCharges {
		if w.miscCharges[i].ID == chargeID {
			return &w.miscCharges[i]
		}
	}
	return nil
}

func (w *Wizard) findAvailable(chargeID int32) *domain.MiscCharge {
	for i := range w.available {
		if w.available[i].ID == chargeID {
			return &w.available[i]
		}
	}
	return nil
}

// CheckMiscCharge adds a charge from the applicable set to the selection
// with server defaults; a deductible charge with options and no chosen
// option gets its first option applied.
func (w *Wizard) CheckMiscCharge(ctx context.Context, chargeID int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	charge := w.findAvailable(chargeID)
	if charge == nil {
		return ErrNoSuchCharge
	}
	if w.findSelected(chargeID) != nil {
		return nil
	}

	w.miscCharges = append(w.miscCharges, defaultSelection(charge))
	w.edited = true
	w.recomputeSummaryLocked(ctx)
	return nil
}

// UncheckMiscCharge removes an optional charge from the selection; a
// mandatory charge cannot be unchecked.
func (w *Wizard) UncheckMiscCharge(ctx context.Context, chargeID int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	charge := w.findAvailable(chargeID)
	if charge != nil && !charge.IsOptional {
		return ErrMandatory
	}

	for i := range w.miscCharges {
		if w.miscCharges[i].ID == chargeID {
			w.miscCharges = append(w.miscCharges[:i], w.miscCharges[i+1:]...)
			w.edited = true
			w.recomputeSummaryLocked(ctx)
			return nil
		}
	}
	return nil
}

// SetMiscChargeQuantity updates the quantity of a selected charge; the full
// record re-saves into the working list immediately.
func (w *Wizard) SetMiscChargeQuantity(ctx context.Context, chargeID, quantity int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	sel := w.findSelected(chargeID)
	if sel == nil {
		return ErrNoSuchCharge
	}
	if quantity < 1 {
		quantity = 1
	}
	sel.Quantity = quantity
	sel.Value = sel.Unit * float64(quantity)
	w.edited = true
	w.recomputeSummaryLocked(ctx)
	return nil
}

// SetMiscChargePrice overrides the working price of a selected charge
func (w *Wizard) SetMiscChargePrice(ctx context.Context, chargeID int32, price float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	sel := w.findSelected(chargeID)
	if sel == nil {
		return ErrNoSuchCharge
	}
	sel.Unit = price
	sel.Value = price * float64(sel.Quantity)
	w.edited = true
	w.recomputeSummaryLocked(ctx)
	return nil
}

// SelectMiscChargeOption picks one of a deductible charge's mutually
// exclusive options; the option's value overwrites the working price.
func (w *Wizard) SelectMiscChargeOption(ctx context.Context, chargeID, optionID int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	charge := w.findAvailable(chargeID)
	if charge == nil {
		return ErrNoSuchCharge
	}
	sel := w.findSelected(chargeID)
	if sel == nil {
		return ErrNoSuchCharge
	}

	for _, opt := range charge.Options {
		if opt.ID == optionID {
			sel.OptionID = opt.ID
			sel.Unit = opt.Value
			sel.Value = opt.Value
			w.edited = true
			w.recomputeSummaryLocked(ctx)
			return nil
		}
	}
	return ErrNoSuchCharge
}

// ConfirmMiscCharges marks the misc-charge stage satisfied
func (w *Wizard) ConfirmMiscCharges(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.stages.Complete(StageMiscCharges)
	w.recomputeSummaryLocked(ctx)
	return nil
}
