package domain

import "time"

type AgreementStatus string

const (
	AgreementStatusOpen      AgreementStatus = "Open"
	AgreementStatusClosed    AgreementStatus = "Closed"
	AgreementStatusPending   AgreementStatus = "PendingPayment"
	AgreementStatusCancelled AgreementStatus = "Cancelled"
)

type ReservationStatus string

const (
	ReservationStatusOpen      ReservationStatus = "Open"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusNoShow    ReservationStatus = "NoShow"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
	ReservationStatusCheckedIn ReservationStatus = "CheckedIn"
)

// Duration is the checkout/checkin leg of a rental
type Duration struct {
	CheckoutDate       time.Time `json:"checkoutDate"`
	CheckinDate        time.Time `json:"checkinDate"`
	CheckoutLocationID int32     `json:"checkoutLocationId"`
	CheckinLocationID  int32     `json:"checkinLocationId"`
}

// Agreement is a signed rental contract (post check-out)
type Agreement struct {
	ID                 int32                `json:"agreementId"`
	AgreementNumber    string               `json:"agreementNumber"`
	Status             AgreementStatus      `json:"agreementStatusName,omitempty"`
	AgreementType      string               `json:"agreementType,omitempty"`
	CheckoutDate       time.Time            `json:"checkoutDate"`
	CheckinDate        time.Time            `json:"checkinDate"`
	ReturnDate         *time.Time           `json:"returnDate,omitempty"`
	CheckoutLocationID int32                `json:"checkoutLocation"`
	CheckinLocationID  int32                `json:"checkinLocation"`
	CheckoutLocation   string               `json:"checkoutLocationName,omitempty"`
	CheckinLocation    string               `json:"checkinLocationName,omitempty"`
	CustomerID         int32                `json:"customerId"`
	CustomerName       string               `json:"firstName,omitempty"`
	VehicleID          int32                `json:"vehicleId"`
	VehicleTypeID      int32                `json:"vehicleTypeId"`
	VehicleNo          string               `json:"vehicleNo,omitempty"`
	RateName           string               `json:"rateName,omitempty"`
	Rate               *Rate                `json:"rateDetail,omitempty"`
	MiscCharges        []SelectedMiscCharge `json:"miscCharges,omitempty"`
	TaxIDs             []int32              `json:"taxIds,omitempty"`
	Summary            *RentalSummary       `json:"rentalSummary,omitempty"`
	Note               string               `json:"note,omitempty"`
	CreatedDate        time.Time            `json:"createdDate,omitzero"`
}

// Reservation is a future booking, convertible to an agreement at check-out
type Reservation struct {
	ID                 int32                `json:"reservationId"`
	ReservationNumber  string               `json:"reservationNumber"`
	Status             ReservationStatus    `json:"reservationStatusName,omitempty"`
	ReservationType    string               `json:"reservationType,omitempty"`
	StartDate          time.Time            `json:"startDate"`
	EndDate            time.Time            `json:"endDate"`
	CheckoutLocationID int32                `json:"startLocationId"`
	CheckinLocationID  int32                `json:"endLocationId"`
	CustomerID         int32                `json:"customerId"`
	CustomerName       string               `json:"firstName,omitempty"`
	VehicleID          int32                `json:"vehicleId,omitempty"`
	VehicleTypeID      int32                `json:"vehicleTypeId"`
	RateName           string               `json:"rateName,omitempty"`
	Rate               *Rate                `json:"rateDetail,omitempty"`
	MiscCharges        []SelectedMiscCharge `json:"miscCharges,omitempty"`
	TaxIDs             []int32              `json:"taxIds,omitempty"`
	Summary            *RentalSummary       `json:"reservationSummary,omitempty"`
	CreatedDate        time.Time            `json:"createdDate,omitzero"`
}

// RentalSummary is the server-computed pricing breakdown for a draft or
// persisted rental
type RentalSummary struct {
	BaseRate              float64 `json:"baseRate"`
	TotalDays             float64 `json:"totalDays"`
	MiscChargeTotal       float64 `json:"totalMiscChargesTaxable"`
	MiscChargeNonTaxable  float64 `json:"totalMiscChargesNonTaxable"`
	Subtotal              float64 `json:"subTotal"`
	TotalTax              float64 `json:"totalTax"`
	PromotionDiscount     float64 `json:"promotionDiscount"`
	AdvancePayment        float64 `json:"advancePayment"`
	PreAdjustment         float64 `json:"preAdjustment"`
	PostAdjustment        float64 `json:"additionalCharge"`
	Deposit               float64 `json:"securityDeposit"`
	AmountPaid            float64 `json:"amountPaid"`
	BalanceDue            float64 `json:"balanceDue"`
	Total                 float64 `json:"total"`
	KMorMileageCharge     float64 `json:"extraKMorMileageCharge"`
	FuelCharge            float64 `json:"extraFuelCharge"`
	AdditionalDriverTotal float64 `json:"additionalDriverTotal"`
}
