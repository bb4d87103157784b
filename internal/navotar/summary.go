package navotar

import (
	"context"
	"time"

	"rentaldesk-backend/internal/domain"
)

// SummaryRequest carries the full rental draft to the upstream pricing
// endpoint. The adjustment fields at the bottom are quantities the wizard
// does not collect; they are sent zeroed so the computation matches what
// submission will later persist.
type SummaryRequest struct {
	ClientID           string                      `json:"clientId"`
	LocationID         int32                       `json:"locationId"`
	CheckinLocationID  int32                       `json:"checkinLocationId"`
	VehicleTypeID      int32                       `json:"vehicleTypeId"`
	VehicleID          int32                       `json:"vehicleId,omitempty"`
	CustomerID         int32                       `json:"customerId"`
	CheckoutDate       time.Time                   `json:"checkoutDate"`
	CheckinDate        time.Time                   `json:"checkinDate"`
	Rate               *domain.Rate                `json:"rate"`
	MiscCharges        []domain.SelectedMiscCharge `json:"miscCharges"`
	TaxIDs             []int32                     `json:"taxIds"`
	AgreementID        int32                       `json:"agreementId,omitempty"`
	AgreementTypeName  string                      `json:"agreementTypeName,omitempty"`
	PromotionIDs       []int32                     `json:"promotionIds"`
	AdvancePayment     float64                     `json:"advancePayment"`
	PreAdjustment      float64                     `json:"preAdjustment"`
	PostAdjustment     float64                     `json:"postAdjustment"`
	Deposit            float64                     `json:"deposit"`
	AdditionalCharge   float64                     `json:"additionalCharge"`
	WritePaymentOff    float64                     `json:"wePayAmount"`
	UnTaxableAdditions float64                     `json:"unTaxableAdditions"`
}

// CalculateSummary asks the upstream pricing endpoint to recompute the
// draft's subtotal/tax/balance-due breakdown
func (c *Client) CalculateSummary(ctx context.Context, req *SummaryRequest) (*domain.RentalSummary, error) {
	if req.ClientID == "" {
		req.ClientID = c.clientID
	}
	var summary domain.RentalSummary
	if err := c.post(ctx, "/summary", req, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
