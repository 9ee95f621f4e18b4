// internal/loads/models.go
package loads

// Load is one row of the load board dataset. The dataset is read once at
// startup and never mutated, so values can be shared across requests freely.
type Load struct {
	ReferenceNumber string  `json:"reference_number"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	EquipmentType   string  `json:"equipment_type"`
	Rate            float64 `json:"rate"`
	Commodity       string  `json:"commodity"`
	MCNumber        string  `json:"mc_number,omitempty"`
	IsPartial       bool    `json:"is_partial"`
	PickupTime      string  `json:"pickup_time,omitempty"`
	DeliveryTime    string  `json:"delivery_time,omitempty"`
}
