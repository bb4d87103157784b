package domain

// Rate is a named pricing scheme for a vehicle type at a location over a
// date range. Exactly one of three layouts applies, classified by the two
// read-only flags: plain multi-tier (both false), flat daily (IsDayRate),
// or seven-day-of-week table (IsDayWeek).
type Rate struct {
	RateID        int32  `json:"rateId"`
	RateName      string `json:"rateName"`
	VehicleTypeID int32  `json:"vehicleTypeId"`
	LocationID    int32  `json:"locationId"`
	ClientID      int32  `json:"clientId"`

	IsDayRate bool `json:"isDayRate"`
	IsDayWeek bool `json:"isDayWeek"`

	HourlyQty   float64 `json:"hourlyQty"`
	HourlyRate  float64 `json:"hourlyRate"`
	HalfDayQty  float64 `json:"halfHourlyQty"`
	HalfDayRate float64 `json:"halfDayRate"`
	DailyQty    float64 `json:"dailyQty"`
	DailyRate   float64 `json:"dailyRate"`
	WeeklyQty   float64 `json:"weeklyQty"`
	WeeklyRate  float64 `json:"weeklyRate"`
	MonthlyQty  float64 `json:"monthlyQty"`
	MonthlyRate float64 `json:"monthlyRate"`
	WeekendQty  float64 `json:"weekendDayQty"`
	WeekendRate float64 `json:"weekendDayRate"`

	// Day-of-week table, used only when IsDayWeek is set
	MonCount float64 `json:"monCount"`
	MonRate  float64 `json:"monRate"`
	TueCount float64 `json:"tuesCount"`
	TueRate  float64 `json:"tuesRate"`
	WedCount float64 `json:"wedCount"`
	WedRate  float64 `json:"wedRate"`
	ThuCount float64 `json:"thursCount"`
	ThuRate  float64 `json:"thursRate"`
	FriCount float64 `json:"friCount"`
	FriRate  float64 `json:"friRate"`
	SatCount float64 `json:"satCount"`
	SatRate  float64 `json:"satRate"`
	SunCount float64 `json:"sunCount"`
	SunRate  float64 `json:"sunRate"`

	DailyKMorMileageAllowed   float64 `json:"dailyKMorMileageAllowed"`
	WeeklyKMorMileageAllowed  float64 `json:"weeklyKMorMileageAllowed"`
	MonthlyKMorMileageAllowed float64 `json:"monthlyKMorMileageAllowed"`
	KMorMileageCharge         float64 `json:"kMorMileageCharge"`
	FuelCharge                float64 `json:"fuelCharge"`
}

// RateLayout identifies which of the three mutually exclusive rate form
// layouts a rate record renders with.
type RateLayout string

const (
	RateLayoutMultiTier RateLayout = "MULTI_TIER"
	RateLayoutFlatDaily RateLayout = "FLAT_DAILY"
	RateLayoutDayOfWeek RateLayout = "DAY_OF_WEEK"
)

// Layout classifies the rate record; the flags are read-only classifiers,
// IsDayRate wins when both are set upstream.
func (r *Rate) Layout() RateLayout {
	switch {
	case r.IsDayRate:
		return RateLayoutFlatDaily
	case r.IsDayWeek:
		return RateLayoutDayOfWeek
	default:
		return RateLayoutMultiTier
	}
}

// OptimalRate is the upstream suggestion of a default rate name for a new
// rental; RateName may be empty when no suggestion applies.
type OptimalRate struct {
	RateID   int32  `json:"rateId"`
	RateName string `json:"rateName"`
}
