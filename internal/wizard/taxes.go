package wizard

import (
	"context"

	"rentaldesk-backend/internal/logger"
)

// populateTaxesLocked loads the location's taxes and applies the default
// selection at most once per session: the first successful load pre-checks
// the mandatory taxes, later reloads never override a non-empty selection.
// Caller holds the lock.
func (w *Wizard) populateTaxesLocked(ctx context.Context) {
	if w.duration == nil || w.duration.CheckoutLocationID == 0 {
		return
	}

	taxes, err := w.backend.ListTaxes(ctx, w.duration.CheckoutLocationID)
	if err != nil {
		logger.WithSession(w.ID).Warn("tax lookup failed", "error", err)
		return
	}
	w.taxes = taxes

	if w.taxesPopulated || len(w.taxIDs) > 0 {
		// keep what the user (or hydration) already chose, but mandatory
		// taxes stay locked on
		w.enforceMandatoryTaxesLocked()
		return
	}

	for _, tax := range taxes {
		if !tax.IsOptional {
			w.taxIDs = append(w.taxIDs, tax.ID)
		}
	}
	w.taxesPopulated = true
}

// enforceMandatoryTaxesLocked re-adds any mandatory tax missing from the
// selection. Caller holds the lock.
func (w *Wizard) enforceMandatoryTaxesLocked() {
	for _, tax := range w.taxes {
		if tax.IsOptional {
			continue
		}
		if !containsID(w.taxIDs, tax.ID) {
			w.taxIDs = append(w.taxIDs, tax.ID)
		}
	}
}

func containsID(ids []int32, id int32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// SetTaxes replaces the optional-tax selection; mandatory taxes cannot be
// deselected and are re-added if missing.
func (w *Wizard) SetTaxes(ctx context.Context, taxIDs []int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.taxIDs = append([]int32(nil), taxIDs...)
	w.enforceMandatoryTaxesLocked()
	w.taxesPopulated = true
	w.edited = true
	w.recomputeSummaryLocked(ctx)
	return nil
}

// ConfirmTaxes marks the tax stage satisfied
func (w *Wizard) ConfirmTaxes(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.stages.Complete(StageTaxes)
	w.recomputeSummaryLocked(ctx)
	return nil
}
