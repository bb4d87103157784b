package domain

// Customer is a renter record owned by the upstream API
type Customer struct {
	ID               int32  `json:"customerId"`
	ClientID         int32  `json:"clientId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfbirth,omitempty"`
	Email            string `json:"email,omitempty"`
	HomePhone        string `json:"hPhone,omitempty"`
	BusinessPhone    string `json:"bPhone,omitempty"`
	CellPhone        string `json:"cPhone,omitempty"`
	LicenseNumber    string `json:"licenseNumber,omitempty"`
	LicenseExpiry    string `json:"licenseExpiryDate,omitempty"`
	LicenseCategory  string `json:"licenseCategory,omitempty"`
	Address          string `json:"address1,omitempty"`
	City             string `json:"city,omitempty"`
	StateName        string `json:"stateName,omitempty"`
	CountryName      string `json:"countryName,omitempty"`
	ZipCode          string `json:"zipCode,omitempty"`
	CustomerType     string `json:"customerType,omitempty"`
	InsuranceCompany string `json:"insuranceCompanyName,omitempty"`
	Active           bool   `json:"active"`
}

// FullName joins first and last name for display and search results
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// HasPhone reports whether any of the three phone fields is set
func (c *Customer) HasPhone() bool {
	return c.HomePhone != "" || c.BusinessPhone != "" || c.CellPhone != ""
}
