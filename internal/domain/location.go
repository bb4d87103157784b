package domain

// Location is a checkout/checkin site
type Location struct {
	ID          int32  `json:"locationId"`
	Name        string `json:"locationName"`
	Address     string `json:"address1,omitempty"`
	City        string `json:"city,omitempty"`
	StateName   string `json:"stateName,omitempty"`
	CountryName string `json:"countryName,omitempty"`
	Phone       string `json:"contactPhone,omitempty"`
	Email       string `json:"emailName,omitempty"`
	Active      bool   `json:"active"`
}
