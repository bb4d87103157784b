package wizard

import (
	"context"

	"rentaldesk-backend/internal/domain"
)

// Hydrate populates the wizard from a fetched agreement for edit/check-in.
// Every assignment is set-only-if-unset, so a second hydration (a refetch)
// never clobbers state the user already started entering; stages whose data
// came from the server start complete. Hydration does not count as an edit,
// so the persisted summary keeps showing until the user changes something.
func (w *Wizard) Hydrate(ctx context.Context, agreement *domain.Agreement) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.agreementID = agreement.ID
	if w.agreementType == "" {
		w.agreementType = agreement.AgreementType
	}

	if w.duration == nil {
		w.duration = &domain.Duration{
			CheckoutDate:       agreement.CheckoutDate,
			CheckinDate:        agreement.CheckinDate,
			CheckoutLocationID: agreement.CheckoutLocationID,
			CheckinLocationID:  agreement.CheckinLocationID,
		}
		w.stages.Complete(StageRental)
	}

	if w.customer == nil && agreement.CustomerID != 0 {
		w.customer = &CustomerInfo{
			CustomerID: agreement.CustomerID,
			FirstName:  agreement.CustomerName,
		}
		w.stages.Complete(StageCustomer)
	}

	if w.vehicle == nil && agreement.VehicleID != 0 {
		w.vehicle = &VehicleInfo{
			VehicleID:     agreement.VehicleID,
			VehicleTypeID: agreement.VehicleTypeID,
			VehicleNo:     agreement.VehicleNo,
		}
		w.stages.Complete(StageVehicle)
	}

	if w.rateName == "" && agreement.RateName != "" {
		w.rateName = agreement.RateName
	}
	if w.rate == nil && agreement.Rate != nil {
		r := *agreement.Rate
		w.rate = &r
		w.stages.Complete(StageRates)
	}

	if len(w.miscCharges) == 0 && len(agreement.MiscCharges) > 0 {
		w.miscCharges = append([]domain.SelectedMiscCharge(nil), agreement.MiscCharges...)
		w.stages.Complete(StageMiscCharges)
	}

	if len(w.taxIDs) == 0 && len(agreement.TaxIDs) > 0 {
		w.taxIDs = append([]int32(nil), agreement.TaxIDs...)
		w.taxesPopulated = true
		w.stages.Complete(StageTaxes)
	}

	if w.persistedSummary == nil && agreement.Summary != nil {
		s := *agreement.Summary
		w.persistedSummary = &s
	}
}
