package entities

// AddOn is one priced line item of a breakdown.
type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PricingBreakdown is a preview estimate derived from the current preferences.
//
// It is never persisted and never authoritative: the booking service computes the
// financial record after creation, and nothing in this engine overwrites it.
// Optional fields are only populated by the calculators that produce them.
type PricingBreakdown struct {
	Taxonomy            string   `json:"taxonomy"`
	BaseRate            float64  `json:"baseRate"`
	AddOns              []AddOn  `json:"addOns"`
	Total               float64  `json:"total"`
	TotalHours          *float64 `json:"totalHours,omitempty"`
	IsHourly            bool     `json:"isHourly,omitempty"`
	Subtotal            *float64 `json:"subtotal,omitempty"`
	ServiceFee          *float64 `json:"serviceFee,omitempty"`
	EffectiveHourlyRate *float64 `json:"effectiveHourlyRate,omitempty"`
	ProviderID          string   `json:"providerId,omitempty"`
	Preview             bool     `json:"preview"`
}

// AddOnTotal sums all add-on prices.
func (b PricingBreakdown) AddOnTotal() float64 {
	total := 0.0
	for _, a := range b.AddOns {
		total += a.Price
	}
	return total
}

// HasAddOn reports whether a line item with the given name is present.
func (b PricingBreakdown) HasAddOn(name string) bool {
	for _, a := range b.AddOns {
		if a.Name == name {
			return true
		}
	}
	return false
}
