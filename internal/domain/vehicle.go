package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusOnRent      VehicleStatus = "OnRent"
	VehicleStatusInService   VehicleStatus = "InService"
	VehicleStatusOutOfFleet  VehicleStatus = "OutOfFleet"
	VehicleStatusHold        VehicleStatus = "Hold"
	VehicleStatusUnavailable VehicleStatus = "Unavailable"
)

// Vehicle is a physical fleet unit
type Vehicle struct {
	ID              int32         `json:"vehicleId"`
	VehicleNo       string        `json:"vehicleNo"`
	LicenseNo       string        `json:"licenseNo,omitempty"`
	VIN             string        `json:"vin,omitempty"`
	Make            string        `json:"vehicleMakeName,omitempty"`
	Model           string        `json:"modelName,omitempty"`
	Year            int32         `json:"year,omitempty"`
	Color           string        `json:"color,omitempty"`
	VehicleTypeID   int32         `json:"vehicleTypeId"`
	VehicleTypeName string        `json:"vehicleType,omitempty"`
	LocationID      int32         `json:"locationId,omitempty"`
	LocationName    string        `json:"locationName,omitempty"`
	CurrentOdometer int32         `json:"currentOdometer,omitempty"`
	FuelLevel       string        `json:"fuelLevel,omitempty"`
	Status          VehicleStatus `json:"vehicleStatus,omitempty"`
	Active          bool          `json:"active"`
}

// VehicleType is a rate class grouping similar units
type VehicleType struct {
	ID       int32  `json:"id"`
	Name     string `json:"value"`
	Total    int32  `json:"total,omitempty"`
	IsActive bool   `json:"isActive"`
}
