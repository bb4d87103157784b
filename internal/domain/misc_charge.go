package domain

// Older-generation endpoint, hence the PascalCase json keys.

type MiscChargeCalculationType string

const (
	MiscChargeCalculationFixed     MiscChargeCalculationType = "Fixed"
	MiscChargeCalculationPerDay    MiscChargeCalculationType = "Perday"
	MiscChargeCalculationPercent   MiscChargeCalculationType = "Percentage"
	MiscChargeCalculationRangeType MiscChargeCalculationType = "Range"
)

// MiscCharge is an add-on fee applicable to a rental given its vehicle
// type, checkout location and date range
type MiscCharge struct {
	ID              int32                     `json:"Id"`
	Name            string                    `json:"Name"`
	Description     string                    `json:"Description,omitempty"`
	CalculationType MiscChargeCalculationType `json:"CalculationType"`
	IsOptional      bool                      `json:"IsOptional"`
	IsQuantity      bool                      `json:"IsQuantity"`
	IsDeductible    bool                      `json:"IsDeductible"`
	Total           float64                   `json:"Total"`
	LocationID      int32                     `json:"LocationId,omitempty"`
	LocationName    string                    `json:"LocationName,omitempty"`
	StartDate       string                    `json:"StartDate,omitempty"`
	EndDate         string                    `json:"EndDate,omitempty"`
	Options         []MiscChargeOption        `json:"Options,omitempty"`
}

// MiscChargeOption is one mutually exclusive deductible sub-choice
type MiscChargeOption struct {
	ID          int32   `json:"miscChargeOptionId"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	DisplayName string  `json:"optionName,omitempty"`
}

// SelectedMiscCharge is a charge as attached to a rental draft
type SelectedMiscCharge struct {
	ID         int32   `json:"id"`
	Name       string  `json:"name"`
	Quantity   int32   `json:"quantity"`
	Unit       float64 `json:"unit"`
	Value      float64 `json:"value"`
	IsOptional bool    `json:"isOptional"`
	OptionID   int32   `json:"optionId,omitempty"`
	StartDate  string  `json:"startDate,omitempty"`
	EndDate    string  `json:"endDate,omitempty"`
}
