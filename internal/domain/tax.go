package domain

// Tax is a named location-scoped charge; non-optional taxes are locked on
type Tax struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	IsOptional   bool    `json:"isOptional"`
	LocationID   int32   `json:"locationId"`
	LocationName string  `json:"locationName,omitempty"`
}
