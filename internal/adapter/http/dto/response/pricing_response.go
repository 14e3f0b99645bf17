package response

import "nanny_booking/internal/domain/entities"

type AddOnResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PricingResponse is a preview estimate. The booking service computes the
// amount that is actually charged.
type PricingResponse struct {
	Taxonomy            string          `json:"taxonomy"`
	BaseRate            float64         `json:"base_rate"`
	AddOns              []AddOnResponse `json:"add_ons"`
	Total               float64         `json:"total"`
	TotalHours          *float64        `json:"total_hours,omitempty"`
	IsHourly            bool            `json:"is_hourly"`
	Subtotal            *float64        `json:"subtotal,omitempty"`
	ServiceFee          *float64        `json:"service_fee,omitempty"`
	EffectiveHourlyRate *float64        `json:"effective_hourly_rate,omitempty"`
	ProviderID          string          `json:"provider_id,omitempty"`
	Preview             bool            `json:"preview"`
}

func FromBreakdown(b entities.PricingBreakdown) PricingResponse {
	addOns := make([]AddOnResponse, 0, len(b.AddOns))
	for _, a := range b.AddOns {
		addOns = append(addOns, AddOnResponse{Name: a.Name, Price: a.Price})
	}
	return PricingResponse{
		Taxonomy:            b.Taxonomy,
		BaseRate:            b.BaseRate,
		AddOns:              addOns,
		Total:               b.Total,
		TotalHours:          b.TotalHours,
		IsHourly:            b.IsHourly,
		Subtotal:            b.Subtotal,
		ServiceFee:          b.ServiceFee,
		EffectiveHourlyRate: b.EffectiveHourlyRate,
		ProviderID:          b.ProviderID,
		Preview:             b.Preview,
	}
}
